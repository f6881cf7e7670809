// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal"
)

// FontPath is where Cannoli ships its UI font.
const FontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// Theme returns onboarding overrides in Cannoli's teal-on-white palette
// using the firmware font. Pass it as Props.Theme.
func Theme() internal.ThemeOverrides {
	var o internal.ThemeOverrides
	o.Colors.Background.Primary = "#008080"
	o.Colors.Background.Secondary = "#FFFFFF"
	o.Colors.Background.Accent = "#008080"
	o.Colors.Text.Primary = "#000000"
	o.Colors.Text.Contrast = "#FFFFFF"
	o.FontFamily = FontPath
	return o
}
