package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// SymmetricPadding creates a Padding with separate horizontal and vertical values.
func SymmetricPadding(horizontal, vertical int32) Padding {
	return Padding{
		Top:    vertical,
		Right:  horizontal,
		Bottom: vertical,
		Left:   horizontal,
	}
}

// Horizontal returns the combined left and right padding.
func (p Padding) Horizontal() int32 {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom padding.
func (p Padding) Vertical() int32 {
	return p.Top + p.Bottom
}
