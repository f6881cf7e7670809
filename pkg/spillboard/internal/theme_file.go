package internal

import (
	"fmt"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/BurntSushi/toml"
)

// LoadThemeFile reads theme overrides from a TOML file:
//
//	font_family = "/usr/share/fonts/Inter.ttf"
//
//	[colors.background]
//	primary = "#FF6B00"
//
//	[fonts]
//	step_title = "/usr/share/fonts/Inter-Bold.ttf"
//
// Unknown keys are rejected.
func LoadThemeFile(path string) (ThemeOverrides, error) {
	var o ThemeOverrides
	md, err := toml.DecodeFile(path, &o)
	if err != nil {
		return ThemeOverrides{}, fmt.Errorf("theme file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return ThemeOverrides{}, fmt.Errorf("theme file %s: unknown key %q", path, undecoded[0].String())
	}

	// Colours are parsed here so a bad file fails at load.
	if _, err := ResolveTheme(Theme{}, o, spill.Insets{}); err != nil {
		return ThemeOverrides{}, fmt.Errorf("theme file %s: %w", path, err)
	}
	return o, nil
}
