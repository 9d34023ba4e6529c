// Package game owns a play session: level setup, coefficient entry, submissions,
// the firing sequence and its outcome, and saving progress.
package game

import (
	"errors"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"vquest/anim"
	"vquest/answer"
	"vquest/constants"
	"vquest/level"
	"vquest/render"
	"vquest/store"
)

// Input and submission errors. None of them change state.
var (
	ErrNotNumber  = errors.New("game: value is not a whole number")
	ErrZeroA      = errors.New("game: a cannot be 0")
	ErrBusy       = errors.New("game: sequence in progress")
	ErrSolved     = errors.New("game: level already solved")
	ErrNoAttempts = errors.New("game: no attempts left")
	ErrIncomplete = errors.New("game: a, h and k must all be set")
)

// Sounder plays cues for sequence milestones.
type Sounder interface {
	Laser()
	Hit()
	Miss()
}

type nopSounder struct{}

func (nopSounder) Laser() {}
func (nopSounder) Hit()   {}
func (nopSounder) Miss()  {}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	MaxAttempts int
	Durations   anim.Durations
	Generate    func(lvl int, rng *rand.Rand) level.Spec
	Store       store.Store
	Sound       Sounder
	Viewport    render.Viewport
}

// Controller is the single owner of game, animation and viewport state.
// It is driven from one goroutine.
type Controller struct {
	rng      *rand.Rand
	generate func(int, *rand.Rand) level.Spec
	store    store.Store
	sound    Sounder

	state     State
	spec      level.Spec
	viewport  render.Viewport
	seq       *anim.Sequencer
	submitted answer.Submission

	now    time.Duration
	events []Event
}

// New creates a controller at level 1. Call NewGame or Continue to set up a level.
func New(rng *rand.Rand, opts Options) *Controller {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = constants.MaxAttempts
	}
	if opts.Durations == (anim.Durations{}) {
		opts.Durations = anim.DefaultDurations()
	}
	if opts.Generate == nil {
		opts.Generate = level.Generate
	}
	if opts.Store == nil {
		opts.Store = &store.Memory{}
	}
	if opts.Sound == nil {
		opts.Sound = nopSounder{}
	}
	if opts.Viewport.Width == 0 || opts.Viewport.Height == 0 {
		opts.Viewport = render.NewViewport(constants.ScreenW, constants.ScreenH, 1)
	}

	c := &Controller{
		rng:      rng,
		generate: opts.Generate,
		store:    opts.Store,
		sound:    opts.Sound,
		viewport: opts.Viewport,
		seq:      anim.New(rng, opts.Durations),
		state: State{
			Level:       1,
			MaxAttempts: opts.MaxAttempts,
			Attempts:    opts.MaxAttempts,
		},
	}
	c.seq.OnComplete(c.complete)
	c.seq.OnEnter(c.cue)
	return c
}

// State returns a copy of the game state.
func (c *Controller) State() State {
	s := c.state
	s.History = append([]int(nil), c.state.History...)
	return s
}

// Spec returns the current level's target.
func (c *Controller) Spec() level.Spec { return c.spec }

// Mission describes the current level's goal.
func (c *Controller) Mission() string { return level.Mission(c.spec) }

// Viewport returns the current drawing geometry.
func (c *Controller) Viewport() render.Viewport { return c.viewport }

// Animation returns a snapshot of the firing sequence.
func (c *Controller) Animation() anim.State { return c.seq.State() }

// Animating reports whether a firing sequence is playing.
func (c *Controller) Animating() bool { return c.seq.Active() }

// HasSave reports whether there is saved progress to continue.
func (c *Controller) HasSave() bool { return c.store.Exists() }

// Resize updates the drawing surface. Bounds are kept.
func (c *Controller) Resize(w, h, dpr float64) {
	c.viewport.Resize(w, h, dpr)
}

// NewGame starts over at level 1 and saves.
func (c *Controller) NewGame() {
	c.state.Level = 1
	c.state.Score = 0
	c.state.History = nil
	c.save()
	c.SetupLevel()
}

// Continue restores saved progress, falling back to a new game if none can be read.
func (c *Controller) Continue() {
	p, err := c.store.Load()
	if err != nil && !errors.Is(err, store.ErrNoSave) {
		log.Printf("[Game] load failed, starting fresh: %v", err)
	}
	c.state.Level = p.Level
	c.state.Score = p.Score
	c.state.History = append([]int(nil), p.LevelHistory...)
	c.SetupLevel()
}

// NextLevel advances one level and saves.
func (c *Controller) NextLevel() {
	c.state.Level++
	c.save()
	c.SetupLevel()
}

// RetryLevel regenerates the current level.
func (c *Controller) RetryLevel() {
	c.SetupLevel()
}

// SetupLevel generates a fresh target for the current level, cancels any sequence,
// clears entered coefficients and refits the view.
func (c *Controller) SetupLevel() {
	c.spec = c.generate(c.state.Level, c.rng)
	c.state.Attempts = c.state.MaxAttempts
	c.state.Solved = false
	c.state.A, c.state.H, c.state.K = Coef{}, Coef{}, Coef{}

	c.seq.Reset()
	c.submitted = answer.Submission{}
	c.events = nil

	c.viewport.Bounds = level.FitBounds(c.spec)
	log.Printf("[Game] level %d: vertex %v slope point %v a=%d",
		c.state.Level, c.spec.Vertex, c.spec.SlopePoint, c.spec.A)
}

// Coefficient returns the entered value of v.
func (c *Controller) Coefficient(v Var) Coef {
	return *c.state.coef(v)
}

// SetCoefficient parses raw as an integer and stores it as v, clamped to the
// allowed range. Non-numeric input and a zero a are rejected without changing state.
func (c *Controller) SetCoefficient(v Var, raw string) error {
	if c.seq.Active() {
		return ErrBusy
	}
	if c.state.Solved {
		return ErrSolved
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		// Atoi saturates out-of-range values, which the clamp below then bounds
		err = nil
	}
	if err != nil {
		return ErrNotNumber
	}
	if v == VarA && n == 0 {
		return ErrZeroA
	}
	n = min(max(n, constants.CoefficientMin), constants.CoefficientMax)
	*c.state.coef(v) = Coef{Value: n, Set: true}
	return nil
}

// Submit checks the entered coefficients and starts the firing sequence at now.
// It consumes one attempt; the result is reported when the sequence completes.
func (c *Controller) Submit(now time.Duration) error {
	c.now = now
	switch {
	case c.seq.Active():
		return ErrBusy
	case c.state.Solved:
		return ErrSolved
	case c.state.Attempts <= 0:
		return ErrNoAttempts
	case !c.state.Complete():
		c.emit(Feedback{Text: "Set a, h, and k before trying!", Kind: FeedbackFail})
		return ErrIncomplete
	}

	c.state.Attempts--
	sub := c.state.Submission()
	res := answer.Verify(sub, c.spec)
	c.submitted = sub

	vp := c.viewport
	flight := anim.Flight{
		From:    anim.Vec{X: vp.Width / 2, Y: -constants.SaucerEntryOffset},
		To:      vp.ToScreen(float64(sub.H), float64(sub.K)),
		Impact:  vp.PointToScreen(c.spec.SlopePoint),
		Correct: res.Correct(),
	}
	if err := c.seq.Start(now, flight); err != nil {
		return err
	}
	log.Printf("[Game] submit a=%d h=%d k=%d vertex=%v slope=%v attempts left %d",
		sub.A, sub.H, sub.K, res.VertexOK, res.SlopeOK, c.state.Attempts)
	return nil
}

// Tick advances the firing sequence to now and reports whether it is still playing.
func (c *Controller) Tick(now time.Duration) bool {
	c.now = now
	return c.seq.Tick(now)
}

// cue plays the sound for a phase the sequence just entered.
func (c *Controller) cue(p anim.Phase) {
	switch p {
	case anim.PhaseLaser:
		c.sound.Laser()
	case anim.PhaseHit:
		c.sound.Hit()
	}
}

// Scene builds the frame to paint at now.
func (c *Controller) Scene(now time.Duration) render.Scene {
	return render.Build(render.Input{
		Viewport:  c.viewport,
		Spec:      c.spec,
		Submitted: c.submitted,
		Anim:      c.seq.State(),
		Animating: c.seq.Active(),
		Now:       now,
	})
}

// Events returns and clears the pending events.
func (c *Controller) Events() []Event {
	ev := c.events
	c.events = nil
	return ev
}

func (c *Controller) complete(correct bool) {
	if correct {
		c.state.Solved = true
		stars, points := answer.Reward(c.state.Attempts)
		c.state.Score += points
		c.state.History = append(c.state.History, stars)
		c.save()

		c.emit(Feedback{Text: "Direct hit! Mission complete!", Kind: FeedbackSuccess})
		c.emit(Outcome{
			Solved:       true,
			Stars:        stars,
			Points:       points,
			AttemptsUsed: c.state.MaxAttempts - c.state.Attempts,
			MaxAttempts:  c.state.MaxAttempts,
		})
		log.Printf("[Game] level %d solved: %d stars, +%d", c.state.Level, stars, points)
		return
	}

	c.sound.Miss()
	if c.state.Attempts > 0 {
		c.emit(Feedback{Text: answer.Hint(c.submitted, c.spec), Kind: FeedbackFail})
		return
	}

	c.emit(Feedback{Text: "Out of tries!", Kind: FeedbackFail})
	c.emit(Outcome{
		AttemptsUsed: c.state.MaxAttempts,
		MaxAttempts:  c.state.MaxAttempts,
		Answer:       answer.Submission{A: c.spec.A, H: c.spec.Vertex.X, K: c.spec.Vertex.Y},
	})
	log.Printf("[Game] level %d failed", c.state.Level)
}

func (c *Controller) emit(e Event) {
	switch ev := e.(type) {
	case Feedback:
		ev.At = c.now
		e = ev
	case Outcome:
		ev.At = c.now
		e = ev
	}
	c.events = append(c.events, e)
}

func (c *Controller) save() {
	p := store.Progress{
		Level:        c.state.Level,
		Score:        c.state.Score,
		LevelHistory: append([]int{}, c.state.History...),
	}
	if err := c.store.Save(p); err != nil {
		log.Printf("[Game] save failed: %v", err)
	}
}
