package level

import "vquest/constants"

// Bounds is the visible math-space box.
type Bounds struct {
	XMin, XMax, YMin, YMax float64
}

// DefaultBounds is used before any level has been fitted.
var DefaultBounds = Bounds{XMin: -10, XMax: 10, YMin: -10, YMax: 10}

// XRange is the visible width in math units.
func (b Bounds) XRange() float64 { return b.XMax - b.XMin }

// YRange is the visible height in math units.
func (b Bounds) YRange() float64 { return b.YMax - b.YMin }

// HalfExtent returns the symmetric half-size of the fitted viewing box for a spec.
func HalfExtent(s Spec) int {
	m := max(abs(s.Vertex.X), abs(s.Vertex.Y), abs(s.SlopePoint.X), abs(s.SlopePoint.Y), constants.MinFitCoord)
	return min(max(m+constants.BoundsPadding, constants.MinHalfExtent), constants.MaxHalfExtent)
}

// FitBounds returns a box centered on the origin that contains both targets with padding.
func FitBounds(s Spec) Bounds {
	b := float64(HalfExtent(s))
	return Bounds{XMin: -b, XMax: b, YMin: -b, YMax: b}
}
