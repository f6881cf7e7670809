package spillboard

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Props configures an onboarding.
type Props struct {
	Steps []Step     `validate:"min=1"`
	Intro IntroPanel `validate:"required"`

	OnComplete   func()          `validate:"required"`
	OnSkip       func()          `validate:"required"`
	OnStepChange func(index int) `validate:"required"`

	AnimationDuration time.Duration `validate:"gte=0"` // Default 500ms
	ShowCloseButton   bool
	HideBackButton    bool // The default step panel shows a back button unless this is set
	ShowControlHints  bool // Button hints along the top edge, for devices without touch
	ShowStepCounter   bool // "2 of 5" next to the hints

	Theme             ThemeOverrides
	RenderBackground  BackgroundRenderer
	RenderCloseButton CloseButtonRenderer
	Insets            InsetsProvider
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("notblank", validators.NotBlank)

		_ = v.RegisterValidation("position", func(fl validator.FieldLevel) bool {
			return spill.Position(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// sentinelFor maps a failed field to the engine error it corresponds to.
func sentinelFor(field string) error {
	switch {
	case field == "Steps":
		return spill.ErrNoSteps
	case field == "OnComplete", field == "OnSkip", field == "OnStepChange":
		return spill.ErrMissingCallback
	case strings.HasSuffix(field, ".Position"):
		return spill.ErrInvalidPosition
	default:
		return nil
	}
}

func configErrorFrom(prefix string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ConfigError{Field: prefix, Reason: "invalid", Err: err}
	}

	fe := verrs[0]
	field := fe.StructNamespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if prefix != "" {
		field = prefix + "." + field
	}

	return &ConfigError{Field: field, Reason: fe.Tag(), Err: sentinelFor(field)}
}

// Validate checks every field, step and the intro. It returns the first
// problem found as a *ConfigError.
func (p Props) Validate() error {
	v := validatorInstance()

	if err := v.Struct(p); err != nil {
		return configErrorFrom("", err)
	}

	for i, step := range p.Steps {
		prefix := fmt.Sprintf("Steps[%d]", i)
		switch s := step.(type) {
		case DefaultStep:
			if err := v.Struct(s); err != nil {
				return configErrorFrom(prefix, err)
			}
		case CustomStep:
			if err := v.Struct(s); err != nil {
				return configErrorFrom(prefix, err)
			}
		default:
			return &ConfigError{Field: prefix, Reason: "unsupported step type"}
		}
	}

	switch intro := p.Intro.(type) {
	case IntroProps:
		if err := v.Struct(intro); err != nil {
			return configErrorFrom("Intro", err)
		}
	case CustomIntro:
		if err := v.Struct(intro); err != nil {
			return configErrorFrom("Intro", err)
		}
	}

	return nil
}

func (p Props) duration() time.Duration {
	if p.AnimationDuration <= 0 {
		return spill.DefaultDuration
	}
	return p.AnimationDuration
}

func (p Props) positions() []spill.Position {
	positions := make([]spill.Position, len(p.Steps))
	for i, s := range p.Steps {
		positions[i] = s.imagePosition()
	}
	return positions
}
