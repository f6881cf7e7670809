// Package icons rasterizes the widget's built-in SVG icons.
package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Name identifies a built-in icon.
type Name string

const (
	Close     Name = "close"
	ArrowLeft Name = "arrow-left"
)

// Paths are drawn on a 24x24 canvas. The close cross uses 70% of the box
// with a 10% stroke.
var sources = map[Name]string{
	Close: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <path d="M5.64 5.64 L18.36 18.36 M18.36 5.64 L5.64 18.36" stroke="{{color}}" stroke-width="2.4" stroke-linecap="round" fill="none"/>
</svg>`,
	ArrowLeft: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <path d="M19 12 L5 12 M11 6 L5 12 L11 18" stroke="{{color}}" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" fill="none"/>
</svg>`,
}

// Render rasterizes icon at size x size pixels in the given colour.
func Render(name Name, size int, c color.Color) (*image.RGBA, error) {
	src, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("icons: unknown icon %q", name)
	}
	if size <= 0 {
		return nil, fmt.Errorf("icons: invalid size %d", size)
	}

	svg := strings.ReplaceAll(src, "{{color}}", hex(c))
	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
	if err != nil {
		return nil, fmt.Errorf("icons: parse %s: %w", name, err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return img, nil
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}
