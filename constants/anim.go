package constants

import "time"

// Sequence phase durations
const (
	FlyDuration   = 800 * time.Millisecond
	GlowDuration  = 600 * time.Millisecond
	LaserDuration = 500 * time.Millisecond
	HitDuration   = 700 * time.Millisecond
	HoldDuration  = 800 * time.Millisecond
)

// Saucer flight
const (
	// SaucerEntryOffset is how far above the top edge the saucer starts, in pixels
	SaucerEntryOffset = 40

	// WobbleAmplitude is the horizontal sway during flight, in pixels
	WobbleAmplitude = 3

	// WobbleRate is the sway frequency in radians per millisecond
	WobbleRate = 0.012

	// BobAmplitude is the vertical hover offset once the saucer has landed, in pixels
	BobAmplitude = 2

	// BobRate is the hover frequency in radians per millisecond
	BobRate = 0.005
)

// Hit burst
const (
	ParticleCount     = 24
	ParticleJitter    = 0.3 // total angle jitter band, radians
	ParticleMinSpeed  = 50  // px/s
	ParticleMaxSpeed  = 150 // px/s
	ParticleMinRadius = 2
	ParticleMaxRadius = 6
	// ParticleFade is the alpha lost per unit of hit progress
	ParticleFade = 1.2
	// ParticleShrink is the fraction of radius kept after a full hit phase
	ParticleShrink = 0.3
)

// Beam geometry
const (
	// BeamReach multiplies the larger canvas side to get the full arm length
	BeamReach = 1.5
)
