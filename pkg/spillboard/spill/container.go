package spill

import "time"

// Step container constants, in pixels.
const (
	EnterSlide       = 25.0 // Vertical distance a step panel slides while fading
	CloseButtonSize  = 32.0
	CloseButtonInset = 16.0 // Distance of the close control from the top-right safe corner
)

// Layer is one mounted step panel as seen by the renderer.
type Layer struct {
	Key     int     // Step index the layer renders
	Opacity float64 // 0..1
	Offset  float64 // Downward offset in pixels
	Exiting bool    // True once a newer step has replaced it
}

type containerLayer struct {
	key     int
	opacity *Value
	offset  *Value
	exiting bool
}

// Container mounts at most one active step panel at a time. Switching steps
// keeps the outgoing panel around while it fades and slides down, and brings
// the incoming one in from below, both over the shared duration. Layers are
// keyed by step index, so a panel that is re-entered while still exiting is
// reversed instead of duplicated.
type Container struct {
	timeline  *Timeline
	duration  time.Duration
	showClose bool

	layers       []*containerLayer
	active       int
	hasActive    bool
	closeOpacity *Value
}

// NewContainer creates a Container whose values are advanced by timeline.
func NewContainer(timeline *Timeline, duration time.Duration, showClose bool) *Container {
	if duration <= 0 {
		duration = DefaultDuration
	}

	c := &Container{
		timeline:     timeline,
		duration:     duration,
		showClose:    showClose,
		active:       IntroIndex,
		closeOpacity: NewValue(0),
	}
	timeline.Track(c.closeOpacity)

	return c
}

// Sync brings the mounted layers in line with the engine's index.
func (c *Container) Sync(index int, active bool) {
	if active == c.hasActive && (!active || index == c.active) {
		return
	}

	for _, l := range c.layers {
		if !l.exiting && (!active || l.key != index) {
			l.exiting = true
			l.opacity.AnimateTo(0, c.duration)
			l.offset.AnimateTo(EnterSlide, c.duration)
		}
	}

	c.active = index
	c.hasActive = active

	if active {
		c.enter(index)
	}

	if c.showClose && active {
		c.closeOpacity.AnimateTo(1, c.duration)
	} else {
		c.closeOpacity.AnimateTo(0, c.duration)
	}
}

func (c *Container) enter(key int) {
	for _, l := range c.layers {
		if l.key == key {
			l.exiting = false
			l.opacity.AnimateTo(1, c.duration)
			l.offset.AnimateTo(0, c.duration)
			return
		}
	}

	l := &containerLayer{
		key:     key,
		opacity: NewValue(0),
		offset:  NewValue(EnterSlide),
	}
	l.opacity.AnimateTo(1, c.duration)
	l.offset.AnimateTo(0, c.duration)
	c.timeline.Track(l.opacity, l.offset)
	c.layers = append(c.layers, l)
}

// Layers drops layers that finished exiting and returns the rest in paint
// order, outgoing panels first.
func (c *Container) Layers() []Layer {
	kept := c.layers[:0]
	for _, l := range c.layers {
		if l.exiting && !l.opacity.Animating() && l.opacity.Current() == 0 {
			c.timeline.Untrack(l.opacity)
			c.timeline.Untrack(l.offset)
			continue
		}
		kept = append(kept, l)
	}
	c.layers = kept

	out := make([]Layer, 0, len(c.layers))
	for _, l := range c.layers {
		if l.exiting {
			out = append(out, c.snapshot(l))
		}
	}
	for _, l := range c.layers {
		if !l.exiting {
			out = append(out, c.snapshot(l))
		}
	}
	return out
}

func (c *Container) snapshot(l *containerLayer) Layer {
	return Layer{
		Key:     l.key,
		Opacity: l.opacity.Current(),
		Offset:  l.offset.Current(),
		Exiting: l.exiting,
	}
}

// CloseOpacity returns the close control's opacity this frame.
func (c *Container) CloseOpacity() float64 {
	return c.closeOpacity.Current()
}

// CloseVisible reports whether the close control is drawn at all.
func (c *Container) CloseVisible() bool {
	return c.closeOpacity.Current() > 0
}

// CloseTappable reports whether taps on the close control should register.
// Only the settled or fading-in control counts.
func (c *Container) CloseTappable() bool {
	return c.showClose && c.hasActive
}

// CloseRect returns where the close control sits on a surface of the given
// width: a fixed inset from the top-right safe corner.
func CloseRect(screenWidth float64, insets Insets) Rect {
	return Rect{
		X: screenWidth - insets.Right - CloseButtonInset - CloseButtonSize,
		Y: insets.Top + CloseButtonInset,
		W: CloseButtonSize,
		H: CloseButtonSize,
	}
}
