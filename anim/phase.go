package anim

import (
	"time"

	"vquest/constants"
)

// Phase is a time-bounded segment of the firing sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFly
	PhaseGlow
	PhaseLaser
	PhaseHit
	PhaseHold
	PhaseDone
)

var phaseNames = [...]string{"idle", "fly", "glow", "laser", "hit", "hold", "done"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// BeamVisible reports whether the laser arms are drawn in this phase.
func (p Phase) BeamVisible() bool {
	return p == PhaseLaser || p == PhaseHit || p == PhaseHold
}

// Armed reports whether the saucer's emitter is lit in this phase.
func (p Phase) Armed() bool {
	return p == PhaseGlow || p.BeamVisible()
}

// Durations holds the nominal length of each timed phase.
type Durations struct {
	Fly, Glow, Laser, Hit, Hold time.Duration
}

// DefaultDurations returns the standard sequence timing.
func DefaultDurations() Durations {
	return Durations{
		Fly:   constants.FlyDuration,
		Glow:  constants.GlowDuration,
		Laser: constants.LaserDuration,
		Hit:   constants.HitDuration,
		Hold:  constants.HoldDuration,
	}
}

// Of returns the duration of a timed phase, zero for idle and done.
func (d Durations) Of(p Phase) time.Duration {
	switch p {
	case PhaseFly:
		return d.Fly
	case PhaseGlow:
		return d.Glow
	case PhaseLaser:
		return d.Laser
	case PhaseHit:
		return d.Hit
	case PhaseHold:
		return d.Hold
	}
	return 0
}

// Total is the full sequence length for the given outcome branch.
func (d Durations) Total(correct bool) time.Duration {
	t := d.Fly + d.Glow + d.Laser + d.Hold
	if correct {
		t += d.Hit
	}
	return t
}

// next returns the phase that follows p; the hit phase only plays for a correct answer.
func next(p Phase, correct bool) Phase {
	switch p {
	case PhaseIdle:
		return PhaseFly
	case PhaseFly:
		return PhaseGlow
	case PhaseGlow:
		return PhaseLaser
	case PhaseLaser:
		if correct {
			return PhaseHit
		}
		return PhaseHold
	case PhaseHit:
		return PhaseHold
	}
	return PhaseDone
}
