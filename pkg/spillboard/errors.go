package spillboard

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned by Run when Init has not been called.
var ErrNotInitialized = errors.New("spillboard: Init must be called before Run")

// ConfigError reports an invalid Props value. It wraps the engine sentinel
// (spill.ErrNoSteps, spill.ErrMissingCallback, spill.ErrInvalidPosition) when
// one applies, so errors.Is works on the result of New.
type ConfigError struct {
	Field  string // Offending field, e.g. "Steps[2].Title"
	Reason string // Failed rule, e.g. "required"
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("spillboard: invalid %s (%s): %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("spillboard: invalid %s (%s)", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// InfrastructureError represents a failure inside the widget itself (SDL
// could not start, a font or image failed to load, rendering failed). The
// consuming application generally cannot recover from these at the domain
// level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_image")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("spillboard: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("spillboard: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
