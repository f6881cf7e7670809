package spill

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Value is an animated scalar. It holds the current value, the value it is
// heading towards and the tween driving it there. Every transition uses an
// ease-out-cubic curve.
type Value struct {
	current float64
	target  float64
	tween   *gween.Tween
}

// NewValue creates a settled Value.
func NewValue(initial float64) *Value {
	return &Value{current: initial, target: initial}
}

// Set jumps to v immediately, cancelling any running tween.
func (v *Value) Set(x float64) {
	v.current = x
	v.target = x
	v.tween = nil
}

// AnimateTo moves towards target over d, starting from the current value.
// A running tween towards a different target is superseded. Asking for the
// target that is already being animated to leaves the running tween alone.
func (v *Value) AnimateTo(target float64, d time.Duration) {
	if v.tween != nil && target == v.target {
		return
	}
	if d <= 0 || target == v.current {
		v.Set(target)
		return
	}

	v.target = target
	v.tween = gween.New(float32(v.current), float32(target), float32(d.Seconds()), ease.OutCubic)
}

// Tick advances the running tween by dt.
func (v *Value) Tick(dt time.Duration) {
	if v.tween == nil || dt <= 0 {
		return
	}

	current, finished := v.tween.Update(float32(dt.Seconds()))
	if finished {
		v.Set(v.target)
		return
	}
	v.current = float64(current)
}

// Current returns the value as of the last tick.
func (v *Value) Current() float64 {
	return v.current
}

// Target returns the value being animated towards.
func (v *Value) Target() float64 {
	return v.target
}

// Animating reports whether a tween is still running.
func (v *Value) Animating() bool {
	return v.tween != nil
}

// Timeline is the set of values the host loop advances every frame.
type Timeline struct {
	values []*Value
}

// NewTimeline creates an empty Timeline.
func NewTimeline() *Timeline {
	return &Timeline{values: make([]*Value, 0, 8)}
}

// Track registers values to be advanced by Tick.
func (t *Timeline) Track(values ...*Value) {
	t.values = append(t.values, values...)
}

// Untrack removes a value. Unknown values are ignored.
func (t *Timeline) Untrack(value *Value) {
	for i, v := range t.values {
		if v == value {
			t.values = append(t.values[:i], t.values[i+1:]...)
			return
		}
	}
}

// Tick advances every tracked value by dt.
func (t *Timeline) Tick(dt time.Duration) {
	for _, v := range t.values {
		v.Tick(dt)
	}
}

// Settled reports whether no tracked value is animating. Hosts can use it
// to drop to a slower redraw rate.
func (t *Timeline) Settled() bool {
	for _, v := range t.values {
		if v.Animating() {
			return false
		}
	}
	return true
}

// Len returns the number of tracked values.
func (t *Timeline) Len() int {
	return len(t.values)
}
