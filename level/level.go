// Package level generates the target geometry for each level of the game.
package level

import (
	"math/rand"

	"vquest/constants"
)

// Point is an integer coordinate in math space.
type Point struct{ X, Y int }

// Spec is the target for one level: the vertex the student must land on, a second
// point one arm must pass through, and the coefficient that achieves it.
type Spec struct {
	Vertex     Point
	SlopePoint Point
	A          int
}

// Eval returns a|x-h|+k for the spec's own coefficients.
func (s Spec) Eval(x int) int {
	return s.A*abs(x-s.Vertex.X) + s.Vertex.Y
}

// Tier is the difficulty tier of a 1-based level number.
func Tier(level int) int {
	if level < 1 {
		level = 1
	}
	return min((level-1)/2, constants.MaxTier)
}

// Range is the largest vertex coordinate magnitude for a level.
func Range(level int) int {
	return min(constants.BaseRange+Tier(level), constants.MaxRange)
}

// Candidates lists the values a may take on the given level. Zero is never present.
func Candidates(level int) []int {
	switch {
	case level <= 3:
		return []int{1, -1, 2}
	case level <= 6:
		return []int{1, -1, 2, -2, 3}
	default:
		return []int{1, -1, 2, -2, 3, -3}
	}
}

// Generate builds the spec for a 1-based level using rng for every random draw,
// so a seeded source yields a reproducible level.
func Generate(level int, rng *rand.Rand) Spec {
	r := Range(level)
	h := randInt(rng, -r, r)
	k := randInt(rng, -r, r)

	as := Candidates(level)
	a := as[rng.Intn(len(as))]

	dx := randInt(rng, 1, constants.MaxSlopeOffset)
	if rng.Intn(2) == 0 {
		dx = -dx
	}

	return Spec{
		Vertex:     Point{h, k},
		SlopePoint: Point{h + dx, a*abs(dx) + k},
		A:          a,
	}
}

func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
