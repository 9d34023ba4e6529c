// Package render turns game and animation state into a drawable scene description.
// It owns the math-to-screen mapping; frontends only paint what it produces.
package render

import (
	"math"

	"vquest/anim"
	"vquest/level"
)

// Viewport is the drawing surface geometry. Width and Height are logical pixels;
// DPR is the device pixel ratio the frontend renders at.
type Viewport struct {
	Width, Height float64
	DPR           float64
	Bounds        level.Bounds
}

// NewViewport returns a viewport with the default bounds.
func NewViewport(w, h, dpr float64) Viewport {
	if dpr <= 0 {
		dpr = 1
	}
	return Viewport{Width: w, Height: h, DPR: dpr, Bounds: level.DefaultBounds}
}

// Resize updates the surface size, keeping the bounds.
func (v *Viewport) Resize(w, h, dpr float64) {
	v.Width, v.Height = w, h
	if dpr > 0 {
		v.DPR = dpr
	}
}

// DeviceSize is the backing store size in physical pixels.
func (v Viewport) DeviceSize() (int, int) {
	return int(math.Round(v.Width * v.DPR)), int(math.Round(v.Height * v.DPR))
}

// Scale is pixels per math unit. The smaller axis ratio wins so the grid stays square.
func (v Viewport) Scale() float64 {
	xr, yr := v.Bounds.XRange(), v.Bounds.YRange()
	if xr <= 0 || yr <= 0 {
		return 1
	}
	return math.Min(v.Width/xr, v.Height/yr)
}

// ToScreen maps a math coordinate (origin centered, y up) to screen pixels (y down).
func (v Viewport) ToScreen(x, y float64) anim.Vec {
	s := v.Scale()
	return anim.Vec{X: v.Width/2 + x*s, Y: v.Height/2 - y*s}
}

// ToMath is the inverse of ToScreen.
func (v Viewport) ToMath(p anim.Vec) (float64, float64) {
	s := v.Scale()
	return (p.X - v.Width/2) / s, (v.Height/2 - p.Y) / s
}

// PointToScreen maps an integer level point.
func (v Viewport) PointToScreen(p level.Point) anim.Vec {
	return v.ToScreen(float64(p.X), float64(p.Y))
}
