package spillboard

import (
	"fmt"
	"math"
	"time"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/constants"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal/icons"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/veandco/go-sdl2/sdl"
)

// Layout constants for the built-in panels, in pixels.
const (
	panelInset      = 16 // Horizontal and bottom padding around bottom panels
	introMarginTop  = 16
	introTitleGap   = 20
	introTextGap    = 48
	cardPadding     = 16
	cardRadius      = 18
	cardGap         = 24
	textGap         = 16
	badgePadX       = 8
	badgePadY       = 4
	buttonHeight    = 48
	buttonRadius    = 12
	buttonGap       = 8
	backButtonWidth = 48
	arrowIconSize   = 24
	closeIconSize   = 24
	closeRadius     = 6
	hintInset       = 16
)

func errNoFont(role internal.FontRole) error {
	return fmt.Errorf("no font for role %s", role)
}

// drawer carries the per-frame drawing state.
type drawer struct {
	canvas *internal.Canvas
	theme  Theme
	bounds sdl.Rect
	hits   *hitRegions
	warn   func(key string, err error)
}

func (o *Onboarding) warnOnce(key string, err error) {
	if o.warned[key] {
		return
	}
	o.warned[key] = true
	o.logger.Warn("Rendering problem", "what", key, "error", err)
}

func (o *Onboarding) frame(window *internal.Window, canvas *internal.Canvas, themes *internal.ThemeCache, dt time.Duration) error {
	o.engine.Timeline().Tick(dt)

	w, h := window.Size()
	pres := spill.Present(float64(w), float64(h), o.allowOverlay)
	o.presentation = pres

	insets := o.insets.Insets()
	if pres.Overlay {
		insets = Insets{}
	}
	theme, err := themes.Resolve(o.props.Theme, insets)
	if err != nil {
		return &ConfigError{Field: "Theme", Reason: "colour", Err: err}
	}

	content := pres.Content
	o.engine.Screen().Report(content.H)
	geom := o.engine.Layout(spill.Viewport{
		Width:           content.W,
		Insets:          insets,
		PlatformPadding: pres.PlatformPadding,
	})

	r := canvas.Renderer
	r.SetViewport(nil)
	r.SetClipRect(nil)
	r.SetDrawColor(0, 0, 0, 255)
	r.Clear()

	box := internal.ToSDLRect(content)
	if pres.Overlay {
		canvas.FillRect(sdl.Rect{W: w, H: h}, sdl.Color{A: 255}, spill.BackdropOpacity)
		canvas.FillRoundedRect(box, int32(pres.CornerRadius), theme.Colors.Background.Secondary, 1)
	} else {
		canvas.FillRect(box, theme.Colors.Background.Secondary, 1)
	}

	r.SetViewport(&box)
	defer r.SetViewport(nil)

	o.hits.reset()
	d := &drawer{
		canvas: canvas,
		theme:  theme,
		bounds: sdl.Rect{W: box.W, H: box.H},
		hits:   &o.hits,
		warn:   o.warnOnce,
	}

	if err := o.drawIntro(d); err != nil {
		return err
	}
	o.drawBackground(d, geom)
	o.drawImage(d, geom)
	if err := o.drawSteps(d); err != nil {
		return err
	}
	o.drawClose(d, float64(box.W), insets)
	o.drawHints(d, insets)

	return nil
}

func (o *Onboarding) drawIntro(d *drawer) error {
	active := o.engine.CurrentIndex() == spill.IntroIndex

	var height int32
	switch intro := o.props.Intro.(type) {
	case IntroProps:
		h, err := d.defaultIntro(intro, active, o.engine.Start)
		if err != nil {
			return err
		}
		height = h
	case CustomIntro:
		height = intro.Render(&IntroContext{
			Renderer: d.canvas.Renderer,
			Bounds:   d.bounds,
			Theme:    d.theme,
			Active:   active,
			Start:    o.engine.Start,
			hits:     d.hits,
		})
	}

	o.engine.IntroPanel().Report(float64(height))
	return nil
}

func (o *Onboarding) drawBackground(d *drawer, geom spill.Geometry) {
	rect := internal.ToSDLRect(geom.Background)
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	radius := int32(math.Round(geom.CornerRadius))

	if o.props.RenderBackground == nil {
		d.canvas.FillRoundedRect(rect, radius, d.theme.Colors.Background.Primary, 1)
		return
	}

	d.canvas.Renderer.SetClipRect(&rect)
	o.props.RenderBackground(d.canvas.Renderer, rect, radius, d.theme)
	d.canvas.Renderer.SetClipRect(nil)
}

// imagePath is the active step's image, or the first step's on the intro.
func (o *Onboarding) imagePath() string {
	if i, ok := o.engine.ActiveStep(); ok {
		return o.props.Steps[i].imagePath()
	}
	return o.props.Steps[0].imagePath()
}

func (o *Onboarding) drawImage(d *drawer, geom spill.Geometry) {
	path := o.imagePath()
	tex, err := d.canvas.Image(path)
	if err != nil {
		d.warn("image "+path, err)
		return
	}

	w, h := internal.Fit(tex.W, tex.H, int32(geom.ImageMaxWidth))
	o.engine.Image().Report(float64(h))

	area := sdl.Rect{W: d.bounds.W, H: int32(math.Round(geom.ImageAreaHeight))}
	if w <= 0 || h <= 0 || area.H <= 0 {
		return
	}

	dst := sdl.Rect{
		X: (d.bounds.W - w) / 2,
		Y: int32(math.Round(geom.ImageY)),
		W: w,
		H: h,
	}

	d.canvas.Renderer.SetClipRect(&area)
	d.canvas.DrawTexture(tex, dst, 1)
	d.canvas.Renderer.SetClipRect(nil)
}

func (o *Onboarding) drawSteps(d *drawer) error {
	for _, layer := range o.container.Layers() {
		index := layer.Key
		active := !layer.Exiting
		offset := int32(math.Round(layer.Offset))

		nav := StepNav{
			Next:   o.engine.Next,
			Back:   o.engine.Back,
			IsLast: index == o.engine.StepCount()-1,
		}

		var height int32
		switch step := o.props.Steps[index].(type) {
		case DefaultStep:
			h, err := d.defaultStep(step, layer.Opacity, offset, active, nav, !o.props.HideBackButton)
			if err != nil {
				return err
			}
			height = h
		case CustomStep:
			height = step.Render(&StepContext{
				Renderer: d.canvas.Renderer,
				Bounds:   d.bounds,
				Theme:    d.theme,
				Index:    index,
				Opacity:  layer.Opacity,
				Offset:   offset,
				Active:   active,
				Nav:      nav,
				hits:     d.hits,
			})
		}

		if active {
			o.engine.StepPanel().Report(float64(height))
		}
	}
	return nil
}

func (o *Onboarding) drawClose(d *drawer, width float64, insets Insets) {
	if !o.container.CloseVisible() {
		return
	}

	rect := internal.ToSDLRect(spill.CloseRect(width, insets))
	opacity := o.container.CloseOpacity()

	if o.props.RenderCloseButton != nil {
		o.props.RenderCloseButton(d.canvas.Renderer, rect, opacity, d.theme)
	} else {
		d.canvas.FillRoundedRect(rect, closeRadius, d.theme.Colors.Background.Secondary, opacity)
		icon, err := d.canvas.Icon(icons.Close, closeIconSize, d.theme.Colors.Text.Primary)
		if err != nil {
			d.warn("close icon", err)
		} else {
			d.canvas.DrawTexture(icon, centred(rect, icon.W, icon.H), opacity)
		}
	}

	if o.container.CloseTappable() {
		d.hits.add(rect, o.engine.Skip)
	}
}

func (o *Onboarding) drawHints(d *drawer, insets Insets) {
	text := o.hintText()
	if text == "" {
		return
	}

	font, err := d.canvas.Fonts.Open(d.theme.Font(internal.FontSecondaryButton), internal.ScaleSM.Size)
	if err != nil {
		d.warn("hint font", err)
		return
	}

	y := int32(insets.Top) + hintInset + (spill.CloseButtonSize-internal.ScaleSM.LineHeight)/2
	x := int32(insets.Left) + hintInset
	d.canvas.DrawLines(font, []string{text}, x, y, d.bounds.W-2*x, internal.ScaleSM.LineHeight,
		constants.TextAlignLeft, d.theme.Colors.Text.Secondary, 1)
}

func centred(rect sdl.Rect, w, h int32) sdl.Rect {
	return sdl.Rect{X: rect.X + (rect.W-w)/2, Y: rect.Y + (rect.H-h)/2, W: w, H: h}
}
