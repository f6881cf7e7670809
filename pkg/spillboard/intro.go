package spillboard

import "github.com/veandco/go-sdl2/sdl"

// IntroPanel is the content shown before the first step: IntroProps or
// CustomIntro.
type IntroPanel interface {
	sealedIntro()
}

// IntroProps is the default intro: an optional two-line headline and a start
// button.
type IntroProps struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"` // Drawn in the primary background colour
	Button   string `yaml:"button" validate:"notblank"`
	Image    string `yaml:"image"` // Optional artwork above the headline
}

func (IntroProps) sealedIntro() {}

// IntroRenderer draws a custom intro and returns the height it occupies
// measured up from the bottom edge of ctx.Bounds.
type IntroRenderer func(ctx *IntroContext) int32

type CustomIntro struct {
	Render IntroRenderer `validate:"required"`
}

func (CustomIntro) sealedIntro() {}

// IntroContext is handed to an IntroRenderer every frame. The intro stays
// mounted underneath the steps so its height is always current.
type IntroContext struct {
	Renderer *sdl.Renderer
	Bounds   sdl.Rect
	Theme    Theme
	Active   bool // True while no step is showing
	Start    func()

	hits *hitRegions
}

// AddHitRegion registers a tap target for this frame. Ignored once a step
// is showing.
func (c *IntroContext) AddHitRegion(rect sdl.Rect, onTap func()) {
	if !c.Active || c.hits == nil {
		return
	}
	c.hits.add(rect, onTap)
}
