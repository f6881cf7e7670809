package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/veandco/go-sdl2/sdl"
)

// FontRole names a typographic slot in the widget.
type FontRole int

const (
	FontIntroTitle FontRole = iota
	FontIntroSubtitle
	FontIntroButton
	FontStepLabel
	FontStepTitle
	FontStepDescription
	FontStepButton
	FontPrimaryButton
	FontSecondaryButton

	fontRoleCount
)

var fontRoleNames = [fontRoleCount]string{
	"introTitle",
	"introSubtitle",
	"introButton",
	"stepLabel",
	"stepTitle",
	"stepDescription",
	"stepButton",
	"primaryButton",
	"secondaryButton",
}

func (r FontRole) String() string {
	if r < 0 || r >= fontRoleCount {
		return "unknown"
	}
	return fontRoleNames[r]
}

// FontRoles returns every role in declaration order.
func FontRoles() []FontRole {
	roles := make([]FontRole, 0, fontRoleCount)
	for r := FontRole(0); r < fontRoleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// BackgroundColors are the fills used behind content.
type BackgroundColors struct {
	Primary   sdl.Color // Spill background, intro subtitle
	Secondary sdl.Color // Screen, step card, close button
	Label     sdl.Color // Step label badge, secondary buttons
	Accent    sdl.Color // Primary buttons
}

type TextColors struct {
	Primary   sdl.Color // Titles, labels, close glyph
	Secondary sdl.Color // Descriptions, hints
	Contrast  sdl.Color // Text on accent fills
}

type Colors struct {
	Background BackgroundColors
	Text       TextColors
}

// Theme is the fully resolved appearance handed to every drawing routine.
type Theme struct {
	Colors Colors
	Fonts  [fontRoleCount]string // TTF path per role
	Insets spill.Insets
}

// Font returns the font path for a role.
func (t Theme) Font(role FontRole) string {
	if role < 0 || role >= fontRoleCount {
		return t.Fonts[FontPrimaryButton]
	}
	return t.Fonts[role]
}

// DefaultTheme returns the stock palette with every role using fontPath.
func DefaultTheme(fontPath string) Theme {
	t := Theme{
		Colors: Colors{
			Background: BackgroundColors{
				Primary:   HexToColor(0x007AFF),
				Secondary: HexToColor(0xFFFFFF),
				Label:     HexToColor(0xF2F2F7),
				Accent:    HexToColor(0x1C1C1E),
			},
			Text: TextColors{
				Primary:   HexToColor(0x1C1C1E),
				Secondary: HexToColor(0x8E8E93),
				Contrast:  HexToColor(0xFFFFFF),
			},
		},
	}
	for i := range t.Fonts {
		t.Fonts[i] = fontPath
	}
	return t
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}

// ParseHexColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA". The
// leading '#' is required, matching the hexcolor rule Props.Validate applies.
func ParseHexColor(s string) (sdl.Color, error) {
	raw, ok := strings.CutPrefix(s, "#")
	if !ok {
		return sdl.Color{}, fmt.Errorf("invalid colour %q: missing leading '#'", s)
	}
	if len(raw) == 3 || len(raw) == 4 {
		var b strings.Builder
		for _, r := range raw {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		raw = b.String()
	}
	if len(raw) != 6 && len(raw) != 8 {
		return sdl.Color{}, fmt.Errorf("invalid colour %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	if len(raw) == 6 {
		return HexToColor(uint32(v)), nil
	}
	return sdl.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// ColorOverrides holds optional colour replacements as hex strings. Empty
// fields keep the default.
type ColorOverrides struct {
	Background struct {
		Primary   string `toml:"primary" yaml:"primary" validate:"omitempty,hexcolor"`
		Secondary string `toml:"secondary" yaml:"secondary" validate:"omitempty,hexcolor"`
		Label     string `toml:"label" yaml:"label" validate:"omitempty,hexcolor"`
		Accent    string `toml:"accent" yaml:"accent" validate:"omitempty,hexcolor"`
	} `toml:"background" yaml:"background"`
	Text struct {
		Primary   string `toml:"primary" yaml:"primary" validate:"omitempty,hexcolor"`
		Secondary string `toml:"secondary" yaml:"secondary" validate:"omitempty,hexcolor"`
		Contrast  string `toml:"contrast" yaml:"contrast" validate:"omitempty,hexcolor"`
	} `toml:"text" yaml:"text"`
}

// FontOverrides holds optional per-role font paths.
type FontOverrides struct {
	IntroTitle      string `toml:"intro_title" yaml:"intro_title"`
	IntroSubtitle   string `toml:"intro_subtitle" yaml:"intro_subtitle"`
	IntroButton     string `toml:"intro_button" yaml:"intro_button"`
	StepLabel       string `toml:"step_label" yaml:"step_label"`
	StepTitle       string `toml:"step_title" yaml:"step_title"`
	StepDescription string `toml:"step_description" yaml:"step_description"`
	StepButton      string `toml:"step_button" yaml:"step_button"`
	PrimaryButton   string `toml:"primary_button" yaml:"primary_button"`
	SecondaryButton string `toml:"secondary_button" yaml:"secondary_button"`
}

func (f FontOverrides) byRole() [fontRoleCount]string {
	return [fontRoleCount]string{
		f.IntroTitle,
		f.IntroSubtitle,
		f.IntroButton,
		f.StepLabel,
		f.StepTitle,
		f.StepDescription,
		f.StepButton,
		f.PrimaryButton,
		f.SecondaryButton,
	}
}

// ThemeOverrides is a partial theme. FontFamily, when set, replaces every
// role's font before the per-role Fonts are applied.
type ThemeOverrides struct {
	Colors     ColorOverrides `toml:"colors" yaml:"colors"`
	Fonts      FontOverrides  `toml:"fonts" yaml:"fonts"`
	FontFamily string         `toml:"font_family" yaml:"font_family"`
}

// Layer returns o with every non-empty field of top applied over it.
func (o ThemeOverrides) Layer(top ThemeOverrides) ThemeOverrides {
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	out := o
	pick(&out.Colors.Background.Primary, top.Colors.Background.Primary)
	pick(&out.Colors.Background.Secondary, top.Colors.Background.Secondary)
	pick(&out.Colors.Background.Label, top.Colors.Background.Label)
	pick(&out.Colors.Background.Accent, top.Colors.Background.Accent)
	pick(&out.Colors.Text.Primary, top.Colors.Text.Primary)
	pick(&out.Colors.Text.Secondary, top.Colors.Text.Secondary)
	pick(&out.Colors.Text.Contrast, top.Colors.Text.Contrast)

	pick(&out.Fonts.IntroTitle, top.Fonts.IntroTitle)
	pick(&out.Fonts.IntroSubtitle, top.Fonts.IntroSubtitle)
	pick(&out.Fonts.IntroButton, top.Fonts.IntroButton)
	pick(&out.Fonts.StepLabel, top.Fonts.StepLabel)
	pick(&out.Fonts.StepTitle, top.Fonts.StepTitle)
	pick(&out.Fonts.StepDescription, top.Fonts.StepDescription)
	pick(&out.Fonts.StepButton, top.Fonts.StepButton)
	pick(&out.Fonts.PrimaryButton, top.Fonts.PrimaryButton)
	pick(&out.Fonts.SecondaryButton, top.Fonts.SecondaryButton)

	pick(&out.FontFamily, top.FontFamily)
	return out
}

// ResolveTheme merges overrides onto base and attaches the safe-area insets.
func ResolveTheme(base Theme, o ThemeOverrides, insets spill.Insets) (Theme, error) {
	t := base
	t.Insets = insets

	colors := []struct {
		field string
		raw   string
		dst   *sdl.Color
	}{
		{"colors.background.primary", o.Colors.Background.Primary, &t.Colors.Background.Primary},
		{"colors.background.secondary", o.Colors.Background.Secondary, &t.Colors.Background.Secondary},
		{"colors.background.label", o.Colors.Background.Label, &t.Colors.Background.Label},
		{"colors.background.accent", o.Colors.Background.Accent, &t.Colors.Background.Accent},
		{"colors.text.primary", o.Colors.Text.Primary, &t.Colors.Text.Primary},
		{"colors.text.secondary", o.Colors.Text.Secondary, &t.Colors.Text.Secondary},
		{"colors.text.contrast", o.Colors.Text.Contrast, &t.Colors.Text.Contrast},
	}
	for _, c := range colors {
		if c.raw == "" {
			continue
		}
		parsed, err := ParseHexColor(c.raw)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", c.field, err)
		}
		*c.dst = parsed
	}

	if o.FontFamily != "" {
		for i := range t.Fonts {
			t.Fonts[i] = o.FontFamily
		}
	}
	for i, path := range o.Fonts.byRole() {
		if path != "" {
			t.Fonts[i] = path
		}
	}

	return t, nil
}

// ThemeCache recomputes the resolved theme only when one of its inputs
// changes.
type ThemeCache struct {
	base      Theme
	overrides ThemeOverrides
	insets    spill.Insets
	theme     Theme
	valid     bool
	resolves  int
}

func NewThemeCache(base Theme) *ThemeCache {
	return &ThemeCache{base: base}
}

func (c *ThemeCache) Resolve(o ThemeOverrides, insets spill.Insets) (Theme, error) {
	if c.valid && c.overrides == o && c.insets == insets {
		return c.theme, nil
	}

	t, err := ResolveTheme(c.base, o, insets)
	if err != nil {
		return Theme{}, err
	}

	c.overrides = o
	c.insets = insets
	c.theme = t
	c.valid = true
	c.resolves++
	return t, nil
}
