package game

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"vquest/anim"
	"vquest/constants"
	"vquest/level"
	"vquest/store"
)

const frame = 16 * time.Millisecond

var exampleSpec = level.Spec{
	Vertex:     level.Point{X: 2, Y: -1},
	SlopePoint: level.Point{X: 3, Y: 1},
	A:          2,
}

type soundLog struct{ laser, hit, miss int }

func (s *soundLog) Laser() { s.laser++ }
func (s *soundLog) Hit()   { s.hit++ }
func (s *soundLog) Miss()  { s.miss++ }

func newTestController(t *testing.T, st store.Store) (*Controller, *soundLog) {
	t.Helper()
	snd := &soundLog{}
	c := New(rand.New(rand.NewSource(3)), Options{
		Generate: func(int, *rand.Rand) level.Spec { return exampleSpec },
		Store:    st,
		Sound:    snd,
	})
	c.NewGame()
	return c, snd
}

func enter(t *testing.T, c *Controller, a, h, k string) {
	t.Helper()
	for v, raw := range map[Var]string{VarA: a, VarH: h, VarK: k} {
		if err := c.SetCoefficient(v, raw); err != nil {
			t.Fatalf("SetCoefficient(%v, %q) failed: %v", v, raw, err)
		}
	}
}

// play ticks frames from start until the sequence ends and returns the end time.
func play(t *testing.T, c *Controller, start time.Duration) time.Duration {
	t.Helper()
	now := start
	for i := 0; i < 1000; i++ {
		now += frame
		if !c.Tick(now) {
			return now
		}
	}
	t.Fatal("sequence did not finish")
	return 0
}

func outcomes(evs []Event) []Outcome {
	var out []Outcome
	for _, e := range evs {
		if o, ok := e.(Outcome); ok {
			out = append(out, o)
		}
	}
	return out
}

func feedbacks(evs []Event) []Feedback {
	var out []Feedback
	for _, e := range evs {
		if f, ok := e.(Feedback); ok {
			out = append(out, f)
		}
	}
	return out
}

func TestController_EndToEndFirstTry(t *testing.T) {
	mem := &store.Memory{}
	c, snd := newTestController(t, mem)

	enter(t, c, "2", "2", "-1")
	if err := c.Submit(0); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !c.Animating() {
		t.Fatal("Expected sequence to start")
	}
	if c.State().Solved {
		t.Error("Solved must not be set before the sequence completes")
	}

	play(t, c, 0)

	st := c.State()
	if !st.Solved {
		t.Error("Expected solved after sequence")
	}
	if st.Score != 200 {
		t.Errorf("Expected score 200, got %d", st.Score)
	}
	if !reflect.DeepEqual(st.History, []int{2}) {
		t.Errorf("Expected history [2], got %v", st.History)
	}

	evs := c.Events()
	out := outcomes(evs)
	if len(out) != 1 || !out[0].Solved || out[0].Stars != 2 || out[0].Points != 200 {
		t.Errorf("unexpected outcome %+v", out)
	}
	if out[0].AttemptsText() != "1/2" {
		t.Errorf("Expected attempts 1/2, got %s", out[0].AttemptsText())
	}
	fb := feedbacks(evs)
	if len(fb) != 1 || fb[0].Kind != FeedbackSuccess {
		t.Errorf("Expected one success feedback, got %+v", fb)
	}

	saved, err := mem.Load()
	if err != nil || saved.Score != 200 || !reflect.DeepEqual(saved.LevelHistory, []int{2}) {
		t.Errorf("Expected solve to be saved, got %+v (%v)", saved, err)
	}
	if snd.laser != 1 || snd.hit != 1 || snd.miss != 0 {
		t.Errorf("unexpected sound cues %+v", *snd)
	}

	if err := c.Submit(10 * time.Second); !errors.Is(err, ErrSolved) {
		t.Errorf("Expected ErrSolved after solving, got %v", err)
	}
}

func TestController_SecondTrySuccess(t *testing.T) {
	c, _ := newTestController(t, nil)

	enter(t, c, "1", "2", "-1")
	_ = c.Submit(0)
	end := play(t, c, 0)

	fb := feedbacks(c.Events())
	if len(fb) != 1 || fb[0].Text != "The V needs to be steeper, increase |a|." {
		t.Errorf("Expected steeper hint, got %+v", fb)
	}
	if c.State().Attempts != 1 {
		t.Errorf("Expected 1 attempt left, got %d", c.State().Attempts)
	}

	_ = c.SetCoefficient(VarA, "2")
	if err := c.Submit(end); err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	play(t, c, end)

	out := outcomes(c.Events())
	if len(out) != 1 || out[0].Stars != 1 || out[0].Points != 100 {
		t.Errorf("Expected 1 star 100 points, got %+v", out)
	}
	if c.State().Score != 100 {
		t.Errorf("Expected score 100, got %d", c.State().Score)
	}
}

func TestController_ExhaustedAttempts(t *testing.T) {
	c, snd := newTestController(t, nil)

	enter(t, c, "2", "0", "0")
	now := time.Duration(0)
	for i := 0; i < constants.MaxAttempts; i++ {
		if err := c.Submit(now); err != nil {
			t.Fatalf("submit %d failed: %v", i, err)
		}
		now = play(t, c, now)
	}

	evs := c.Events()
	out := outcomes(evs)
	if len(out) != 1 || out[0].Solved || out[0].Points != 0 {
		t.Fatalf("Expected one failure outcome, got %+v", out)
	}
	if out[0].AnswerText() != "The answer was a = 2, h = 2, k = -1." {
		t.Errorf("unexpected reveal %q", out[0].AnswerText())
	}
	fb := feedbacks(evs)
	if len(fb) != 2 || fb[0].Text != "Try moving h to the right." || fb[1].Text != "Out of tries!" {
		t.Errorf("unexpected feedback %+v", fb)
	}
	if c.State().Score != 0 || c.State().Solved {
		t.Errorf("Expected no score and unsolved, got %+v", c.State())
	}
	if err := c.Submit(now); !errors.Is(err, ErrNoAttempts) {
		t.Errorf("Expected ErrNoAttempts, got %v", err)
	}
	if c.State().Attempts != 0 {
		t.Errorf("attempts must not go below 0, got %d", c.State().Attempts)
	}
	if snd.miss != 2 || snd.hit != 0 {
		t.Errorf("unexpected sound cues %+v", *snd)
	}
}

func TestController_RejectsWhileAnimating(t *testing.T) {
	c, _ := newTestController(t, nil)
	enter(t, c, "2", "2", "-1")
	_ = c.Submit(0)
	c.Tick(frame)

	if err := c.Submit(2 * frame); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy on submit, got %v", err)
	}
	if err := c.SetCoefficient(VarH, "5"); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy on input, got %v", err)
	}
	if c.State().Attempts != constants.MaxAttempts-1 {
		t.Errorf("rejected submit must not consume an attempt, got %d", c.State().Attempts)
	}
	if c.Coefficient(VarH).Value != 2 {
		t.Error("rejected input must not change h")
	}
}

func TestController_IncompleteSubmission(t *testing.T) {
	c, _ := newTestController(t, nil)
	_ = c.SetCoefficient(VarA, "1")

	if err := c.Submit(0); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Expected ErrIncomplete, got %v", err)
	}
	if c.State().Attempts != constants.MaxAttempts {
		t.Error("incomplete submit must not consume an attempt")
	}
	fb := feedbacks(c.Events())
	if len(fb) != 1 || fb[0].Text != "Set a, h, and k before trying!" {
		t.Errorf("unexpected feedback %+v", fb)
	}
}

func TestController_SetCoefficient(t *testing.T) {
	tests := []struct {
		v     Var
		raw   string
		err   error
		value int
	}{
		{VarA, "3", nil, 3},
		{VarA, " -2 ", nil, -2},
		{VarA, "0", ErrZeroA, 0},
		{VarH, "0", nil, 0},
		{VarH, "99", nil, 15},
		{VarK, "-40", nil, -15},
		{VarH, "99999999999999999999", nil, 15},
		{VarA, "-99999999999999999999", nil, -15},
		{VarK, "abc", ErrNotNumber, 0},
		{VarK, "", ErrNotNumber, 0},
		{VarH, "1.5", ErrNotNumber, 0},
	}
	for _, tt := range tests {
		c, _ := newTestController(t, nil)
		err := c.SetCoefficient(tt.v, tt.raw)
		if !errors.Is(err, tt.err) {
			t.Errorf("%v=%q: expected error %v, got %v", tt.v, tt.raw, tt.err, err)
			continue
		}
		got := c.Coefficient(tt.v)
		if tt.err != nil {
			if got.Set {
				t.Errorf("%v=%q: rejected input must leave coefficient unset", tt.v, tt.raw)
			}
			continue
		}
		if !got.Set || got.Value != tt.value {
			t.Errorf("%v=%q: expected %d, got %+v", tt.v, tt.raw, tt.value, got)
		}
	}
}

func TestController_LateTickPlaysEveryCue(t *testing.T) {
	c, snd := newTestController(t, nil)
	enter(t, c, "2", "2", "-1")
	if err := c.Submit(0); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// one stalled frame jumps from fly straight to done
	if c.Tick(anim.DefaultDurations().Total(true)) {
		t.Fatal("Expected the sequence to finish")
	}
	if snd.laser != 1 || snd.hit != 1 {
		t.Errorf("Expected laser and hit cues once each, got laser=%d hit=%d", snd.laser, snd.hit)
	}
}

func TestController_SetupCancelsSequence(t *testing.T) {
	c, _ := newTestController(t, nil)
	enter(t, c, "2", "2", "-1")
	_ = c.Submit(0)
	c.Tick(time.Second)

	c.RetryLevel()
	first := c.Animation()
	c.RetryLevel()
	second := c.Animation()

	if c.Animating() {
		t.Error("Expected setup to cancel the sequence")
	}
	if !reflect.DeepEqual(first, second) || first.Phase != anim.PhaseIdle {
		t.Errorf("Expected identical idle state after repeated setup, got %+v and %+v", first, second)
	}
	st := c.State()
	if st.Attempts != constants.MaxAttempts || st.A.Set || st.H.Set || st.K.Set {
		t.Errorf("Expected reset attempts and coefficients, got %+v", st)
	}

	// A completion from the cancelled sequence must never arrive
	c.Tick(10 * time.Second)
	if len(c.Events()) != 0 {
		t.Error("Expected no events from a cancelled sequence")
	}
}

func TestController_FitsBounds(t *testing.T) {
	c, _ := newTestController(t, nil)
	b := c.Viewport().Bounds
	want := level.FitBounds(exampleSpec)
	if b != want {
		t.Errorf("Expected bounds %+v, got %+v", want, b)
	}
}

func TestController_ContinueAndAdvance(t *testing.T) {
	mem := &store.Memory{}
	_ = mem.Save(store.Progress{Level: 5, Score: 700, LevelHistory: []int{2, 2, 1, 2}})

	c := New(rand.New(rand.NewSource(1)), Options{Store: mem})
	if !c.HasSave() {
		t.Fatal("Expected HasSave")
	}
	c.Continue()
	st := c.State()
	if st.Level != 5 || st.Score != 700 || len(st.History) != 4 {
		t.Fatalf("Expected restored progress, got %+v", st)
	}
	if c.Spec().A == 0 {
		t.Error("Expected a generated level")
	}

	c.NextLevel()
	saved, _ := mem.Load()
	if saved.Level != 6 || c.State().Level != 6 {
		t.Errorf("Expected level 6 saved, got %+v", saved)
	}

	c.NewGame()
	saved, _ = mem.Load()
	if saved.Level != 1 || saved.Score != 0 || len(saved.LevelHistory) != 0 {
		t.Errorf("Expected fresh save after new game, got %+v", saved)
	}
}

func TestController_PersistenceFailureIsSilent(t *testing.T) {
	mem := &store.Memory{Err: errors.New("storage unavailable")}
	c := New(rand.New(rand.NewSource(1)), Options{Store: mem, Generate: func(int, *rand.Rand) level.Spec { return exampleSpec }})

	c.Continue()
	if c.State().Level != 1 || c.State().Score != 0 {
		t.Errorf("Expected defaults when load fails, got %+v", c.State())
	}

	enter(t, c, "2", "2", "-1")
	_ = c.Submit(0)
	play(t, c, 0)
	if !c.State().Solved || c.State().Score != 200 {
		t.Errorf("Expected play to continue despite save failure, got %+v", c.State())
	}
}

func TestController_SceneDuringSequence(t *testing.T) {
	c, _ := newTestController(t, nil)
	enter(t, c, "2", "2", "-1")
	_ = c.Submit(0)

	laser := constants.FlyDuration + constants.GlowDuration + constants.LaserDuration/2
	c.Tick(laser)
	sc := c.Scene(laser)
	if sc.Actor == nil || len(sc.Beams) == 0 {
		t.Fatalf("Expected actor and beams mid-laser, got actor=%v beams=%d", sc.Actor, len(sc.Beams))
	}
	want := c.Viewport().ToScreen(2, -1)
	if sc.Beams[0].From != want {
		t.Errorf("Expected beams from submitted vertex %v, got %v", want, sc.Beams[0].From)
	}
}

func TestHUD(t *testing.T) {
	var h HUD
	h.Apply([]Event{Feedback{Text: "hi", At: time.Second}})

	if f, ok := h.Toast(time.Second + time.Millisecond); !ok || f.Text != "hi" {
		t.Errorf("Expected visible toast, got %+v %v", f, ok)
	}
	if _, ok := h.Toast(time.Second + constants.FeedbackDuration); ok {
		t.Error("Expected toast to expire")
	}

	h.Apply([]Event{Feedback{Text: "win", At: 2 * time.Second}, Outcome{Solved: true, At: 2 * time.Second}})
	if _, ok := h.Overlay(2 * time.Second); ok {
		t.Error("Expected overlay to wait for its delay")
	}
	if _, ok := h.Toast(2*time.Second + constants.OverlayDelay/2); !ok {
		t.Error("Expected toast before overlay shows")
	}
	if o, ok := h.Overlay(2*time.Second + constants.OverlayDelay); !ok || !o.Solved {
		t.Errorf("Expected overlay after delay, got %+v %v", o, ok)
	}
	if _, ok := h.Toast(2*time.Second + constants.OverlayDelay); ok {
		t.Error("Expected overlay to hide the toast")
	}

	h.Clear()
	if _, ok := h.Overlay(time.Hour); ok {
		t.Error("Expected no overlay after Clear")
	}
}
