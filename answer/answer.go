// Package answer judges submitted coefficients against a level's target geometry.
package answer

import (
	"vquest/constants"
	"vquest/level"
)

// Submission holds the coefficients of y = a|x-h|+k as entered by the student.
type Submission struct {
	A, H, K int
}

// Result reports which part of a submission matched.
type Result struct {
	VertexOK bool
	SlopeOK  bool
}

// Correct is true only when both the vertex and the slope point match.
func (r Result) Correct() bool { return r.VertexOK && r.SlopeOK }

// Verify compares the submission with the target using exact integer arithmetic.
func Verify(sub Submission, spec level.Spec) Result {
	vertexOK := sub.H == spec.Vertex.X && sub.K == spec.Vertex.Y
	y := sub.A*abs(spec.SlopePoint.X-sub.H) + sub.K
	return Result{
		VertexOK: vertexOK,
		SlopeOK:  y == spec.SlopePoint.Y,
	}
}

// Reward converts the attempts left after a successful submission into stars and points.
// With two attempts, a first-try solve leaves one attempt and earns two stars.
func Reward(attemptsLeft int) (stars, points int) {
	stars = attemptsLeft + 1
	return stars, stars * constants.PointsPerStar
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
