package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// TypeScale is a font size with the line height text blocks advance by.
type TypeScale struct {
	Size       int32
	LineHeight int32
}

var (
	ScaleXXL = TypeScale{Size: 34, LineHeight: 40}
	ScaleXL  = TypeScale{Size: 22, LineHeight: 28}
	ScaleLG  = TypeScale{Size: 18, LineHeight: 24}
	ScaleMD  = TypeScale{Size: 16, LineHeight: 24}
	ScaleSM  = TypeScale{Size: 14, LineHeight: 20}
	ScaleXS  = TypeScale{Size: 12, LineHeight: 16}
	ScaleXXS = TypeScale{Size: 10, LineHeight: 12}
)

var roleScales = [fontRoleCount]TypeScale{
	FontIntroTitle:      ScaleXXL,
	FontIntroSubtitle:   ScaleXXL,
	FontIntroButton:     ScaleMD,
	FontStepLabel:       ScaleXS,
	FontStepTitle:       ScaleLG,
	FontStepDescription: ScaleMD,
	FontStepButton:      ScaleMD,
	FontPrimaryButton:   ScaleMD,
	FontSecondaryButton: ScaleMD,
}

// RoleScale returns the type scale used for a font role.
func RoleScale(role FontRole) TypeScale {
	if role < 0 || role >= fontRoleCount {
		return ScaleMD
	}
	return roleScales[role]
}

type fontKey struct {
	path string
	size int32
}

// FontSet opens fonts lazily and keeps them for the widget's lifetime.
type FontSet struct {
	fonts map[fontKey]*ttf.Font
}

func NewFontSet() *FontSet {
	return &FontSet{fonts: make(map[fontKey]*ttf.Font)}
}

// Open returns path at size, opening it on first use.
func (fs *FontSet) Open(path string, size int32) (*ttf.Font, error) {
	key := fontKey{path: path, size: size}
	if f, ok := fs.fonts[key]; ok {
		return f, nil
	}

	if path == "" {
		return nil, fmt.Errorf("no font configured")
	}

	f, err := ttf.OpenFont(path, int(size))
	if err != nil {
		return nil, fmt.Errorf("open font %s@%d: %w", path, size, err)
	}
	fs.fonts[key] = f
	return f, nil
}

// ForRole opens the theme's font for role at the role's scale.
func (fs *FontSet) ForRole(theme Theme, role FontRole) (*ttf.Font, TypeScale, error) {
	scale := RoleScale(role)
	f, err := fs.Open(theme.Font(role), scale.Size)
	return f, scale, err
}

func (fs *FontSet) Close() {
	for key, f := range fs.fonts {
		f.Close()
		delete(fs.fonts, key)
	}
}
