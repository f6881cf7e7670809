package spill

import "math"

// Position places a step's image relative to the bottom panel.
type Position string

const (
	PositionTop    Position = "top"    // Pinned under the top safe line
	PositionBottom Position = "bottom" // Resting on top of the bottom panel
)

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	return p == PositionTop || p == PositionBottom
}

// Layout constants, in pixels.
const (
	ImageMargin            = 16.0 // Gap between the image and the safe line or bottom panel
	BackgroundSideInset    = 16.0 // Side margin of the unspilled background panel
	BackgroundCornerRadius = 12.0 // Corner radius of the unspilled background panel
	ImageSideBudget        = 56.0 // Horizontal margin budget of the image (32 + 24)
)

// Insets are the safe-area insets of the host display.
type Insets struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// LayoutInput is everything the geometry depends on for one frame.
type LayoutInput struct {
	Progress          float64  // Spill progress in [0,1]
	ScreenWidth       float64  // Width of the onboarding surface
	ScreenHeight      float64  // Measured height of the onboarding surface
	BottomPanelHeight float64  // Measured height of the visible bottom panel
	ImageHeight       float64  // Measured height of the rendered image
	SafeTop           float64  // Top safe-area inset
	PlatformPadding   float64  // Extra top padding of the host platform
	Position          Position // Image position of the active (or first) step
	StepActive        bool     // False while the intro panel is showing
}

// Geometry is the derived layout of one frame.
type Geometry struct {
	SpillDistance   float64 // How far the background has spilled behind the bottom panel
	ImageAreaHeight float64 // Height of the clipped area the image lives in
	ImageTargetY    float64 // Where the image should come to rest
	ImageY          float64 // Where the image is this frame (filled by Engine.Layout)
	ImageMaxWidth   float64 // Widest the image may render

	BackgroundTop    float64 // Top inset of the background panel
	BackgroundSide   float64 // Left and right inset of the background panel
	BackgroundBottom float64 // Bottom inset of the background panel
	CornerRadius     float64 // Corner radius of the background panel
	Background       Rect    // Background panel bounding box
}

// Compute derives the frame geometry. It is pure: the same input always
// yields the same output. Negative or non-finite inputs are treated as 0 and
// progress is clamped to [0,1], so every output is finite. Every output is
// also non-negative, except ImageTargetY for an active step whose bottom
// image is taller than the space above a measured panel.
//
// A bottom image rests at the top safe line until both the screen and the
// bottom panel have been measured.
func Compute(in LayoutInput) Geometry {
	screenW := sanitize(in.ScreenWidth)
	screenH := sanitize(in.ScreenHeight)
	bottom := sanitize(in.BottomPanelHeight)
	imageH := sanitize(in.ImageHeight)
	safeTop := sanitize(in.SafeTop)
	padding := sanitize(in.PlatformPadding)
	progress := clamp01(in.Progress)

	spillDistance := lerp(0, bottom, progress)
	imageAreaHeight := screenH - bottom + spillDistance

	topSafe := safeTop + padding + ImageMargin
	targetY := topSafe
	if in.Position == PositionBottom && screenH > 0 && bottom > 0 {
		modalTop := screenH - bottom - ImageMargin
		targetY = modalTop - imageH
		if !in.StepActive {
			targetY = math.Max(targetY, topSafe)
		}
	}

	bgTop := math.Max(safeTop+padding-spillDistance, 0)
	bgSide := math.Max(BackgroundSideInset-spillDistance, 0)
	bgBottom := math.Max(screenH-imageAreaHeight, 0)
	radius := math.Max(BackgroundCornerRadius-spillDistance, 0)

	sideEdges := math.Max(ImageSideBudget-spillDistance, 0)

	return Geometry{
		SpillDistance:    spillDistance,
		ImageAreaHeight:  math.Max(imageAreaHeight, 0),
		ImageTargetY:     targetY,
		ImageY:           targetY,
		ImageMaxWidth:    math.Max(screenW-sideEdges, 0),
		BackgroundTop:    bgTop,
		BackgroundSide:   bgSide,
		BackgroundBottom: bgBottom,
		CornerRadius:     radius,
		Background: Rect{
			X: bgSide,
			Y: bgTop,
			W: math.Max(screenW-2*bgSide, 0),
			H: math.Max(screenH-bgBottom-bgTop, 0),
		},
	}
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
