// Package sound plays short synthesized cues for the firing sequence.
package sound

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate for all cues.
const SampleRate = beep.SampleRate(44100)

// Note is one step of a cue.
type Note struct {
	Freq     float64 // Hz; 0 is a rest
	Duration time.Duration
}

// Cues
var (
	LaserCue = []Note{{1320, 40 * time.Millisecond}, {1100, 40 * time.Millisecond}, {880, 60 * time.Millisecond}}
	HitCue   = []Note{{660, 60 * time.Millisecond}, {0, 20 * time.Millisecond}, {990, 120 * time.Millisecond}}
	MissCue  = []Note{{220, 180 * time.Millisecond}}
)

// Cue builds a streamer that plays notes back to back at the given volume
// (base-2 exponent, 0 is unchanged).
func Cue(rate beep.SampleRate, volume float64, notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := rate.N(n.Duration)
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(rate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("sound: tone %.0fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Player plays cues through the system speaker. A Player whose speaker failed to
// initialize stays silent.
type Player struct {
	ready  bool
	volume float64
}

// NewPlayer initializes the speaker. On error the returned Player is still usable
// and silent.
func NewPlayer(volume float64) (*Player, error) {
	p := &Player{volume: volume}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return p, fmt.Errorf("sound: speaker init: %w", err)
	}
	p.ready = true
	return p, nil
}

// Silent returns a Player that never touches the speaker.
func Silent() *Player { return &Player{} }

func (p *Player) play(notes []Note) {
	if !p.ready {
		return
	}
	s, err := Cue(SampleRate, p.volume, notes)
	if err != nil {
		log.Printf("[Sound] %v", err)
		return
	}
	speaker.Play(s)
}

// Laser plays the beam cue.
func (p *Player) Laser() { p.play(LaserCue) }

// Hit plays the impact cue.
func (p *Player) Hit() { p.play(HitCue) }

// Miss plays the failure cue.
func (p *Player) Miss() { p.play(MissCue) }

// Close releases the speaker.
func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
