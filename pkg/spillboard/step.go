package spillboard

import (
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/veandco/go-sdl2/sdl"
)

// Image positions.
const (
	PositionTop    = spill.PositionTop
	PositionBottom = spill.PositionBottom
)

// Step is one page of the onboarding. It is either a DefaultStep or a
// CustomStep; no other implementations exist.
type Step interface {
	imagePath() string
	imagePosition() spill.Position
	sealedStep()
}

// DefaultStep renders an optional label badge, title, description and a
// button row.
type DefaultStep struct {
	Label       string         `yaml:"label"` // Optional badge above the title
	Title       string         `yaml:"title" validate:"notblank"`
	Description string         `yaml:"description" validate:"notblank"`
	ButtonLabel string         `yaml:"button_label" validate:"notblank"`
	Image       string         `yaml:"image" validate:"required"` // Path to a PNG or JPEG
	Position    spill.Position `yaml:"position" validate:"position"`
}

func (s DefaultStep) imagePath() string             { return s.Image }
func (s DefaultStep) imagePosition() spill.Position { return s.Position }
func (DefaultStep) sealedStep()                     {}

// StepRenderer draws a custom step and returns the height, in pixels, of the
// bottom panel it occupies measured up from the bottom edge of ctx.Bounds.
type StepRenderer func(ctx *StepContext) int32

// CustomStep replaces the default step panel with caller drawing.
type CustomStep struct {
	Render   StepRenderer   `validate:"required"`
	Image    string         `validate:"required"`
	Position spill.Position `validate:"position"`
}

func (s CustomStep) imagePath() string             { return s.Image }
func (s CustomStep) imagePosition() spill.Position { return s.Position }
func (CustomStep) sealedStep()                     {}

// StepNav lets a custom step drive the flow.
type StepNav struct {
	Next   func()
	Back   func()
	IsLast bool
}

// StepContext is handed to a StepRenderer every frame the step is visible,
// including while it animates out.
type StepContext struct {
	Renderer *sdl.Renderer
	Bounds   sdl.Rect // Content box, origin at its top-left
	Theme    Theme
	Index    int
	Opacity  float64 // 0..1, fades during enter and exit
	Offset   int32   // Downward slide during enter and exit
	Active   bool    // False while exiting; exiting steps take no taps
	Nav      StepNav

	hits *hitRegions
}

// AddHitRegion registers a tap target for this frame. Ignored while the step
// is exiting.
func (c *StepContext) AddHitRegion(rect sdl.Rect, onTap func()) {
	if !c.Active || c.hits == nil {
		return
	}
	c.hits.add(rect, onTap)
}
