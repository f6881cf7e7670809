package spill

import "math"

// Measure holds the last rendered height of one panel.
//
// The component that renders a panel is its only writer: it calls Report
// after every layout pass, because step content height varies between
// steps. Everyone else only reads. Height is 0 until the first report and
// consumers treat 0 as "not measured yet".
type Measure struct {
	height   float64
	reported bool
}

// Report records the height produced by the latest layout pass.
// Negative and non-finite heights are stored as 0.
func (m *Measure) Report(height float64) {
	m.height = sanitize(height)
	m.reported = true
}

// Height returns the last reported height, or 0 before the first layout.
func (m *Measure) Height() float64 {
	if m == nil {
		return 0
	}
	return m.height
}

// Measured reports whether a non-zero height has been seen.
func (m *Measure) Measured() bool {
	return m != nil && m.reported && m.height > 0
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
