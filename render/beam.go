package render

import (
	"math"

	"vquest/anim"
	"vquest/constants"
)

// Segment is a straight line between two screen points.
type Segment struct{ From, To anim.Vec }

// Length is the segment's pixel length.
func (s Segment) Length() float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

// Beam returns the two laser arms of y = a|x-h|+k starting at the vertex.
// In screen space the right arm heads along (1, -a) and the left arm along (-1, -a);
// both are normalized, extended past the canvas diagonal, and cut to progress.
func Beam(v Viewport, h, k, a int, progress float64) [2]Segment {
	origin := v.ToScreen(float64(h), float64(k))
	reach := math.Max(v.Width, v.Height) * constants.BeamReach * anim.Clamp01(progress)

	arm := func(dx float64) Segment {
		dy := -float64(a)
		n := math.Hypot(dx, dy)
		return Segment{
			From: origin,
			To:   anim.Vec{X: origin.X + dx/n*reach, Y: origin.Y + dy/n*reach},
		}
	}
	return [2]Segment{arm(-1), arm(1)}
}
