package internal

import (
	"fmt"
	"image/color"
	"math"
	"unsafe"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/constants"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal/icons"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Canvas bundles the renderer with the font and texture caches every draw
// routine needs.
type Canvas struct {
	Renderer *sdl.Renderer
	Fonts    *FontSet
	Textures *TextureCache
}

func NewCanvas(renderer *sdl.Renderer) *Canvas {
	return &Canvas{
		Renderer: renderer,
		Fonts:    NewFontSet(),
		Textures: NewTextureCache(),
	}
}

func (c *Canvas) Destroy() {
	c.Textures.Destroy()
	c.Fonts.Close()
}

// Alpha scales an 8-bit alpha by opacity in [0, 1].
func Alpha(a uint8, opacity float64) uint8 {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 1 {
		return a
	}
	return uint8(math.Round(float64(a) * opacity))
}

// ToSDLRect rounds a layout rect to whole pixels.
func ToSDLRect(r spill.Rect) sdl.Rect {
	return sdl.Rect{
		X: int32(math.Round(r.X)),
		Y: int32(math.Round(r.Y)),
		W: int32(math.Round(r.W)),
		H: int32(math.Round(r.H)),
	}
}

func (c *Canvas) FillRect(rect sdl.Rect, col sdl.Color, opacity float64) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	c.Renderer.SetDrawColor(col.R, col.G, col.B, Alpha(col.A, opacity))
	c.Renderer.FillRect(&rect)
}

// FillRoundedRect fills rect with corners of the given radius. The radius is
// clamped to half the shorter side.
func (c *Canvas) FillRoundedRect(rect sdl.Rect, radius int32, col sdl.Color, opacity float64) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	radius = min(radius, rect.W/2, rect.H/2)
	if radius <= 0 {
		c.FillRect(rect, col, opacity)
		return
	}
	gfx.RoundedBoxRGBA(c.Renderer,
		rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1,
		radius, col.R, col.G, col.B, Alpha(col.A, opacity))
}

// DrawTexture copies tex into dst at the given opacity.
func (c *Canvas) DrawTexture(tex CachedTexture, dst sdl.Rect, opacity float64) {
	if tex.Texture == nil || opacity <= 0 {
		return
	}
	tex.Texture.SetAlphaMod(Alpha(255, opacity))
	c.Renderer.Copy(tex.Texture, nil, &dst)
}

func colorKey(col sdl.Color) string {
	return fmt.Sprintf("%02x%02x%02x%02x", col.R, col.G, col.B, col.A)
}

// Text renders text once and caches the texture.
func (c *Canvas) Text(font *ttf.Font, text string, col sdl.Color) (CachedTexture, error) {
	if text == "" {
		return CachedTexture{}, nil
	}

	key := fmt.Sprintf("text|%p|%s|%s", font, colorKey(col), text)
	if entry, ok := c.Textures.Get(key); ok {
		return entry, nil
	}

	surface, err := font.RenderUTF8Blended(text, col)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	tex, err := c.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("text texture: %w", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)

	return c.Textures.Set(key, tex, surface.W, surface.H), nil
}

// Measure returns the rendered width of text in font.
func Measure(font *ttf.Font, text string) int32 {
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// Wrap breaks text to fit width using font metrics.
func (c *Canvas) Wrap(font *ttf.Font, text string, width int32) []string {
	return WrapText(text, width, func(s string) int32 { return Measure(font, s) })
}

// DrawLines draws pre-wrapped lines starting at (x, y), each centred
// vertically in a lineHeight band, and returns the block height.
func (c *Canvas) DrawLines(font *ttf.Font, lines []string, x, y, width, lineHeight int32,
	align constants.TextAlign, col sdl.Color, opacity float64) int32 {

	for i, line := range lines {
		if line == "" {
			continue
		}
		tex, err := c.Text(font, line, col)
		if err != nil {
			GetInternalLogger().Warn("Failed to draw text line", "error", err)
			continue
		}
		lineY := y + int32(i)*lineHeight + (lineHeight-tex.H)/2
		lineX := x + AlignOffset(align, tex.W, width)
		c.DrawTexture(tex, sdl.Rect{X: lineX, Y: lineY, W: tex.W, H: tex.H}, opacity)
	}
	return int32(len(lines)) * lineHeight
}

// Image loads an image from disk once and caches it with its natural size.
func (c *Canvas) Image(path string) (CachedTexture, error) {
	key := "image|" + path
	if entry, ok := c.Textures.Get(key); ok {
		return entry, nil
	}

	tex, err := img.LoadTexture(c.Renderer, path)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("load image %s: %w", path, err)
	}
	_, _, w, h, err := tex.Query()
	if err != nil {
		tex.Destroy()
		return CachedTexture{}, fmt.Errorf("query image %s: %w", path, err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)

	return c.Textures.Set(key, tex, w, h), nil
}

// Icon rasterizes a built-in icon once per size and colour.
func (c *Canvas) Icon(name icons.Name, size int32, col sdl.Color) (CachedTexture, error) {
	key := fmt.Sprintf("icon|%s|%d|%s", name, size, colorKey(col))
	if entry, ok := c.Textures.Get(key); ok {
		return entry, nil
	}

	rgba, err := icons.Render(name, int(size), color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A})
	if err != nil {
		return CachedTexture{}, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&rgba.Pix[0]),
		size, size, 32, int32(rgba.Stride), uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return CachedTexture{}, fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	tex, err := c.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, fmt.Errorf("icon texture: %w", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)

	return c.Textures.Set(key, tex, size, size), nil
}

// Fit scales a w x h box down to fit maxW, preserving aspect ratio. Boxes
// that already fit are returned unchanged.
func Fit(w, h, maxW int32) (int32, int32) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if maxW <= 0 {
		return 0, 0
	}
	if w <= maxW {
		return w, h
	}
	return maxW, int32(math.Round(float64(h) * float64(maxW) / float64(w)))
}
