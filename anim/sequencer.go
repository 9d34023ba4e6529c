// Package anim drives the saucer firing sequence: a one-way phase machine advanced by
// caller-supplied timestamps.
package anim

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"vquest/constants"
)

// ErrBusy is returned when a sequence is started while another is still playing.
var ErrBusy = errors.New("anim: sequence already active")

// Flight describes one firing: where the saucer enters, where it lands (the submitted
// vertex), where the beam strikes on a hit, and whether the answer was correct.
type Flight struct {
	From    Vec
	To      Vec
	Impact  Vec
	Correct bool
}

// State is a snapshot of the sequence.
type State struct {
	Phase      Phase
	PhaseStart time.Duration
	// PhaseProgress is the normalized progress of the current phase at the last tick
	PhaseProgress float64

	Actor         Vec
	LaserProgress float64
	GlowAlpha     float64
	Particles     []Particle

	Correct bool
	Impact  Vec
}

// Sequencer is the phase machine. It is not safe for concurrent use; the owner
// calls Start, Tick and Reset from one goroutine.
type Sequencer struct {
	durations  Durations
	rng        *rand.Rand
	onComplete func(correct bool)
	onEnter    func(p Phase)

	state  State
	flight Flight
	active bool
}

// New creates an idle sequencer. rng seeds the particle burst.
func New(rng *rand.Rand, d Durations) *Sequencer {
	return &Sequencer{durations: d, rng: rng}
}

// OnComplete registers the callback fired once when a sequence reaches done.
func (s *Sequencer) OnComplete(fn func(correct bool)) {
	s.onComplete = fn
}

// OnEnter registers a callback fired for every phase a Tick moves into, including
// phases a late tick passes straight through.
func (s *Sequencer) OnEnter(fn func(p Phase)) {
	s.onEnter = fn
}

// Durations returns the configured phase timing.
func (s *Sequencer) Durations() Durations { return s.durations }

// Active reports whether a sequence is playing.
func (s *Sequencer) Active() bool { return s.active }

// State returns a copy of the current snapshot.
func (s *Sequencer) State() State {
	st := s.state
	if s.state.Particles != nil {
		st.Particles = append([]Particle(nil), s.state.Particles...)
	}
	return st
}

// Start begins a sequence at time now.
func (s *Sequencer) Start(now time.Duration, f Flight) error {
	if s.active {
		return ErrBusy
	}
	s.flight = f
	s.active = true
	s.state = State{
		Phase:      PhaseFly,
		PhaseStart: now,
		Actor:      f.From,
		Correct:    f.Correct,
		Impact:     f.Impact,
	}
	return nil
}

// Reset cancels any sequence and returns to idle.
func (s *Sequencer) Reset() {
	s.active = false
	s.flight = Flight{}
	s.state = State{Phase: PhaseIdle}
}

// Tick advances the sequence to time now and reports whether it is still active.
// A late tick crosses as many phases as have elapsed; each phase begins exactly
// where the previous one ended, so total length does not depend on frame timing.
func (s *Sequencer) Tick(now time.Duration) bool {
	if !s.active {
		return false
	}

	for {
		phase := s.state.Phase
		elapsed := max(now-s.state.PhaseStart, 0)
		d := s.durations.Of(phase)
		t := Progress(elapsed, d)

		s.state.PhaseProgress = t
		s.apply(phase, elapsed, t)
		if t < 1 {
			return true
		}

		s.state.PhaseStart += d
		s.state.Phase = next(phase, s.flight.Correct)
		s.state.PhaseProgress = 0
		if s.onEnter != nil {
			s.onEnter(s.state.Phase)
		}

		switch s.state.Phase {
		case PhaseHit:
			s.state.Particles = spawnBurst(s.rng, s.flight.Impact)
		case PhaseDone:
			s.active = false
			if s.onComplete != nil {
				s.onComplete(s.flight.Correct)
			}
			return false
		}
	}
}

func (s *Sequencer) apply(p Phase, elapsed time.Duration, t float64) {
	switch p {
	case PhaseFly:
		if t >= 1 {
			s.state.Actor = s.flight.To
			return
		}
		pos := s.flight.From.Lerp(s.flight.To, EaseOutCubic(t))
		ms := float64(elapsed) / float64(time.Millisecond)
		pos.X += math.Sin(ms*constants.WobbleRate) * constants.WobbleAmplitude * (1 - t)
		s.state.Actor = pos

	case PhaseGlow:
		if t < 0.5 {
			s.state.GlowAlpha = t * 2
		} else {
			s.state.GlowAlpha = 1
		}

	case PhaseLaser:
		s.state.LaserProgress = EaseOutQuad(t)

	case PhaseHit:
		updateBurst(s.state.Particles, elapsed.Seconds(), t)
	}
}
