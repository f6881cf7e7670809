package spillboard

import (
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme is the resolved appearance passed to custom renderers.
type Theme = internal.Theme

// ThemeOverrides is a partial theme; empty fields keep the defaults.
type ThemeOverrides = internal.ThemeOverrides

// Insets are safe-area insets in pixels.
type Insets = spill.Insets

// InsetsProvider reports the current safe-area insets. It is polled every
// frame so rotations and notch changes relayout immediately.
type InsetsProvider interface {
	Insets() Insets
}

type zeroInsets struct{}

func (zeroInsets) Insets() Insets { return Insets{} }

// BackgroundRenderer draws the spill background into rect. The renderer's
// clip rect is already set to rect.
type BackgroundRenderer func(r *sdl.Renderer, rect sdl.Rect, radius int32, theme Theme)

// CloseButtonRenderer draws the close control into rect at the given opacity.
type CloseButtonRenderer func(r *sdl.Renderer, rect sdl.Rect, opacity float64, theme Theme)

// LoadThemeFile reads ThemeOverrides from a TOML file.
func LoadThemeFile(path string) (ThemeOverrides, error) {
	o, err := internal.LoadThemeFile(path)
	if err != nil {
		return ThemeOverrides{}, &ConfigError{Field: "ThemeFile", Reason: "load", Err: err}
	}
	return o, nil
}
