package spill

import "math"

// Overlay presentation constants, in pixels.
const (
	WideThreshold   = 600.0 // Viewport width at which the widget moves into an overlay
	ModalMaxWidth   = 500.0
	ModalMaxHeight  = 800.0
	ModalRadius     = 28.0
	OverlayPadding  = 16.0 // Platform padding applied inside the overlay
	BackdropOpacity = 0.5
)

// Presentation decides whether the widget renders inline or centred in an
// overlay, and where its content box sits.
type Presentation struct {
	Overlay         bool
	Viewport        Rect    // Whole host surface
	Content         Rect    // Box the onboarding is laid out in
	CornerRadius    float64 // Content box rounding
	PlatformPadding float64 // Extra top padding for the geometry
}

// Present lays out the widget on a width x height surface. Overlays are only
// used when the host allows them and the surface is at least WideThreshold
// wide; everything else renders inline across the full surface.
func Present(width, height float64, allowOverlay bool) Presentation {
	width = sanitize(width)
	height = sanitize(height)
	viewport := Rect{W: width, H: height}

	if !allowOverlay || width < WideThreshold {
		return Presentation{
			Viewport: viewport,
			Content:  viewport,
		}
	}

	w := math.Min(width, ModalMaxWidth)
	h := math.Min(height, ModalMaxHeight)

	radius := 0.0
	if width > ModalMaxWidth {
		radius = ModalRadius
	}

	return Presentation{
		Overlay:         true,
		Viewport:        viewport,
		Content:         Rect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h},
		CornerRadius:    radius,
		PlatformPadding: OverlayPadding,
	}
}

// BackdropHit reports whether a tap at (x, y) landed on the backdrop. Inline
// presentations have no backdrop.
func (p Presentation) BackdropHit(x, y float64) bool {
	if !p.Overlay {
		return false
	}
	return p.Viewport.Contains(x, y) && !p.Content.Contains(x, y)
}

// ToContent converts surface coordinates into content-box coordinates.
func (p Presentation) ToContent(x, y float64) (float64, float64) {
	return x - p.Content.X, y - p.Content.Y
}
