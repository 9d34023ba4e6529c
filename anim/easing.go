package anim

import "time"

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// EaseOutCubic decelerates to rest; used for the saucer's flight.
func EaseOutCubic(t float64) float64 {
	u := 1 - Clamp01(t)
	return 1 - u*u*u
}

// EaseOutQuad decelerates more gently; used for beam extension.
func EaseOutQuad(t float64) float64 {
	u := 1 - Clamp01(t)
	return 1 - u*u
}

// Progress is the normalized position of elapsed within a phase of length d.
// A non-positive duration is already complete.
func Progress(elapsed, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return Clamp01(float64(elapsed) / float64(d))
}
