package anim

import (
	"image/color"
	"math"
	"math/rand"

	"vquest/constants"
)

// Vec is a screen-space position or velocity in pixels.
type Vec struct{ X, Y float64 }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v * f.
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

// Lerp interpolates from v toward o by t.
func (v Vec) Lerp(o Vec, t float64) Vec { return v.Add(o.Sub(v).Scale(t)) }

// Particle is one fragment of the hit burst. Velocity is in pixels per second.
type Particle struct {
	Pos    Vec
	Vel    Vec
	Radius float64
	Color  color.NRGBA
	Alpha  float64

	origin     Vec
	baseRadius float64
}

// spawnBurst creates a radial ring of particles at center with per-particle jitter.
func spawnBurst(rng *rand.Rand, center Vec) []Particle {
	n := constants.ParticleCount
	ps := make([]Particle, n)
	for i := range ps {
		angle := 2*math.Pi*float64(i)/float64(n) + (rng.Float64()-0.5)*constants.ParticleJitter
		speed := constants.ParticleMinSpeed + rng.Float64()*(constants.ParticleMaxSpeed-constants.ParticleMinSpeed)
		r := constants.ParticleMinRadius + rng.Float64()*(constants.ParticleMaxRadius-constants.ParticleMinRadius)
		ps[i] = Particle{
			Pos:        center,
			Vel:        Vec{math.Cos(angle) * speed, math.Sin(angle) * speed},
			Radius:     r,
			Color:      constants.ParticlePalette[i%len(constants.ParticlePalette)],
			Alpha:      1,
			origin:     center,
			baseRadius: r,
		}
	}
	return ps
}

// updateBurst places every particle for the given time into the hit phase.
// Motion is linear from the origin; alpha and radius decay with progress t.
func updateBurst(ps []Particle, seconds, t float64) {
	alpha := math.Max(0, 1-t*constants.ParticleFade)
	shrink := math.Pow(constants.ParticleShrink, t)
	for i := range ps {
		p := &ps[i]
		p.Pos = p.origin.Add(p.Vel.Scale(seconds))
		p.Alpha = alpha
		p.Radius = p.baseRadius * shrink
	}
}
