package term

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"vquest/anim"
	"vquest/constants"
	"vquest/game"
	"vquest/level"
	"vquest/store"
)

var fixedSpec = level.Spec{
	Vertex:     level.Point{X: 2, Y: -1},
	SlopePoint: level.Point{X: 3, Y: 1},
	A:          2,
}

func newTestApp(t *testing.T) (*App, *game.Controller) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	ctrl := game.New(rand.New(rand.NewSource(1)), game.Options{
		Generate: func(int, *rand.Rand) level.Spec { return fixedSpec },
		Store:    &store.Memory{},
	})
	return New(screen, ctrl), ctrl
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typeValue(a *App, v rune, digits string) {
	a.Handle(key(v), 0)
	for _, r := range digits {
		a.Handle(key(r), 0)
	}
	a.Handle(special(tcell.KeyEnter), 0)
}

func TestViewportFollowsScreen(t *testing.T) {
	_, ctrl := newTestApp(t)
	vp := ctrl.Viewport()
	if vp.Width != 80 || vp.Height != float64((24-hudRows-footerRows)*2) {
		t.Errorf("Expected 80x40 viewport, got %vx%v", vp.Width, vp.Height)
	}
}

func TestQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)
	if a.Handle(special(tcell.KeyCtrlC), 0) {
		t.Error("Expected Ctrl-C to quit")
	}
	if a.Handle(key('q'), 0) {
		t.Error("Expected q on the title page to quit")
	}
	if !a.Handle(key('x'), 0) {
		t.Error("Expected unbound key to keep running")
	}
}

func TestPlayThroughLevel(t *testing.T) {
	a, ctrl := newTestApp(t)

	a.Handle(key('n'), 0)
	if a.page != pagePlay {
		t.Fatalf("Expected play page after n, got %v", a.page)
	}

	typeValue(a, 'a', "2")
	typeValue(a, 'h', "2")
	typeValue(a, 'k', "-1")

	st := ctrl.State()
	if st.A.Value != 2 || st.H.Value != 2 || st.K.Value != -1 || !st.Complete() {
		t.Fatalf("Expected a=2 h=2 k=-1, got %+v", st)
	}

	a.Handle(key(' '), 0)
	if !ctrl.Animating() {
		t.Fatal("Expected space to fire")
	}
	// keys are refused mid-sequence
	a.Handle(key('a'), frameInterval)
	if a.entry.Active {
		t.Error("Expected entry to stay closed while animating")
	}

	end := anim.DefaultDurations().Total(true) + frameInterval
	a.Frame(end)
	if !ctrl.State().Solved {
		t.Fatal("Expected level solved after the sequence")
	}

	shown := end + constants.OverlayDelay
	a.Frame(shown)
	a.Handle(special(tcell.KeyEnter), shown)
	if got := ctrl.State().Level; got != 2 {
		t.Errorf("Expected level 2 after Enter on the overlay, got %d", got)
	}
	if got := ctrl.State().Score; got != 200 {
		t.Errorf("Expected score 200, got %d", got)
	}
}

func TestEntryEditing(t *testing.T) {
	a, ctrl := newTestApp(t)
	a.Handle(key('n'), 0)

	a.Handle(key('h'), 0)
	a.Handle(key('-'), 0)
	a.Handle(key('4'), 0)
	a.Handle(key('7'), 0)
	a.Handle(special(tcell.KeyBackspace2), 0)
	if a.entry.Buf != "-4" {
		t.Errorf("Expected buffer -4, got %q", a.entry.Buf)
	}
	a.Handle(special(tcell.KeyEscape), 0)
	if a.entry.Active || ctrl.State().H.Set {
		t.Error("Expected Esc to cancel without setting h")
	}
	if a.page != pagePlay {
		t.Error("Expected Esc in the editor to stay on the play page")
	}
}

func TestFrameDrawsHUD(t *testing.T) {
	a, _ := newTestApp(t)
	a.Handle(key('n'), 0)
	a.Frame(0)

	want := "Level 1"
	for i, r := range want {
		if got, _, _, _ := a.screen.GetContent(i, 0); got != r {
			t.Fatalf("Expected %q at column %d, got %q", r, i, got)
		}
	}
}
