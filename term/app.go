package term

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"vquest/constants"
	"vquest/game"
)

const (
	frameInterval = 16 * time.Millisecond
	hudRows       = 3
	footerRows    = 1
)

type page int

const (
	pageTitle page = iota
	pageHow
	pagePlay
)

// App drives a Controller from a tcell screen.
type App struct {
	screen tcell.Screen
	ctrl   *game.Controller
	hud    game.HUD
	entry  game.Entry

	page    page
	buf     *Buffer
	painter Painter
	start   time.Time
	width   int
	height  int
}

// New wraps an initialized screen.
func New(screen tcell.Screen, ctrl *game.Controller) *App {
	a := &App{
		screen: screen,
		ctrl:   ctrl,
		buf:    NewBuffer(0, 0, constants.ColorBackground),
		start:  time.Now(),
	}
	a.painter = NewPainter(a.buf)
	a.resize()
	return a
}

// Run processes events and redraws at about 60 FPS until the player quits.
func (a *App) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.Handle(ev, time.Since(a.start)) {
				return
			}
		case <-ticker.C:
			a.Frame(time.Since(a.start))
		}
	}
}

// Frame advances the controller and redraws.
func (a *App) Frame(now time.Duration) {
	a.ctrl.Tick(now)
	a.hud.Apply(a.ctrl.Events())
	a.draw(now)
}

func (a *App) resize() {
	a.width, a.height = a.screen.Size()
	rows := max(a.height-hudRows-footerRows, 1)
	a.buf.Resize(a.width, rows)
	w, h := a.buf.PixelSize()
	a.ctrl.Resize(float64(w), float64(h), 1)
}

// Handle applies one event. It returns false when the app should exit.
func (a *App) Handle(ev tcell.Event, now time.Duration) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch a.page {
		case pageTitle:
			return a.keyTitle(ev)
		case pageHow:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyEnter {
				a.page = pageTitle
			}
		case pagePlay:
			a.keyPlay(ev, now)
		}
	}
	return true
}

func (a *App) keyTitle(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		return false
	}
	switch runeOf(ev) {
	case 'n':
		a.ctrl.NewGame()
		a.enterPlay()
	case 'c':
		if a.ctrl.HasSave() {
			a.ctrl.Continue()
			a.enterPlay()
		}
	case 'h':
		a.page = pageHow
	case 'q':
		return false
	}
	return true
}

func (a *App) enterPlay() {
	a.hud.Clear()
	a.entry.Cancel()
	a.page = pagePlay
}

func (a *App) keyPlay(ev *tcell.EventKey, now time.Duration) {
	if a.entry.Active {
		a.keyEntry(ev)
		return
	}

	if o, ok := a.hud.Overlay(now); ok {
		switch {
		case ev.Key() == tcell.KeyEscape:
			a.page = pageTitle
		case o.Solved && (runeOf(ev) == 'n' || ev.Key() == tcell.KeyEnter):
			a.ctrl.NextLevel()
			a.hud.Clear()
		case !o.Solved && (runeOf(ev) == 'r' || ev.Key() == tcell.KeyEnter):
			a.ctrl.RetryLevel()
			a.hud.Clear()
		}
		return
	}

	switch {
	case ev.Key() == tcell.KeyEscape:
		a.page = pageTitle
	case ev.Key() == tcell.KeyEnter || runeOf(ev) == ' ':
		_ = a.ctrl.Submit(now)
	case runeOf(ev) == 'a':
		a.entry.Open(a.ctrl, game.VarA)
	case runeOf(ev) == 'h':
		a.entry.Open(a.ctrl, game.VarH)
	case runeOf(ev) == 'k':
		a.entry.Open(a.ctrl, game.VarK)
	}
}

func (a *App) keyEntry(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		_ = a.entry.Confirm(a.ctrl)
	case tcell.KeyEscape:
		a.entry.Cancel()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.entry.Backspace()
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r >= '0' && r <= '9':
			a.entry.Digit(int(r - '0'))
		case r == '-':
			a.entry.Minus()
		}
	}
}

func (a *App) draw(now time.Duration) {
	a.screen.Clear()
	switch a.page {
	case pageTitle:
		a.drawTitle()
	case pageHow:
		a.drawLines(1, []string{
			"Your saucer fires a V-shaped laser: y = a|x - h| + k.",
			"Land the vertex (h, k) on the red target.",
			"Pick a so one arm hits the blue diamond.",
			"",
			"a, h, k  set a value (Enter confirms, Esc cancels)",
			"Space    fire",
			"",
			"Two tries per level. First-try hits earn two stars.",
			"",
			"Esc to go back",
		}, false)
	case pagePlay:
		a.drawPlay(now)
	}
	a.screen.Show()
}

func (a *App) drawTitle() {
	lines := []string{"V-QUEST", "Absolute value transformations", "", "n  new game"}
	if a.ctrl.HasSave() {
		lines = append(lines, "c  continue")
	}
	lines = append(lines, "h  how to play", "q  quit")
	a.drawLines(a.height/4, lines, true)
}

func (a *App) drawPlay(now time.Duration) {
	a.painter.Render(a.ctrl.Scene(now))
	a.buf.Flush(a.screen, hudRows)

	st := a.ctrl.State()
	a.puts(0, 0, fmt.Sprintf("Level %d  Score %d  Tries %d/%d", st.Level, st.Score, st.Attempts, st.MaxAttempts), constants.ColorText)
	a.puts(0, 1, "y = "+slot(st.A, game.VarA)+"|x - "+slot(st.H, game.VarH)+"| + "+slot(st.K, game.VarK), constants.ColorSlope)
	a.puts(0, 2, a.ctrl.Mission(), constants.ColorTarget)

	footer := a.height - 1
	switch {
	case a.entry.Active:
		buf := a.entry.Buf
		if buf == "" {
			buf = a.entry.Placeholder()
		}
		a.puts(0, footer, a.entry.Prompt()+" "+buf, constants.ColorText)
	default:
		if f, ok := a.hud.Toast(now); ok {
			c := constants.ColorFail
			if f.Kind == game.FeedbackSuccess {
				c = constants.ColorSuccess
			}
			a.puts(0, footer, f.Text, c)
		} else if !a.ctrl.Animating() {
			a.puts(0, footer, "a/h/k set value, space fire, esc menu", constants.ColorAxisLabel)
		}
	}

	if o, ok := a.hud.Overlay(now); ok {
		a.drawOutcome(o)
	}
}

func (a *App) drawOutcome(o game.Outcome) {
	var lines []string
	if o.Solved {
		lines = []string{
			"Mission Success!",
			strings.TrimSpace(strings.Repeat("* ", o.Stars)),
			fmt.Sprintf("+%d points, tries %s", o.Points, o.AttemptsText()),
			"Enter for next level",
		}
	} else {
		lines = []string{"Mission Failed", o.AnswerText(), "r to retry"}
	}
	a.drawLines(a.height/2-len(lines)/2, lines, true)
}

func (a *App) drawLines(row int, lines []string, center bool) {
	for i, l := range lines {
		col := 2
		if center {
			col = (a.width - len(l)) / 2
		}
		a.puts(col, row+i, l, constants.ColorText)
	}
}

func (a *App) puts(col, row int, s string, c color.NRGBA) {
	st := tcell.StyleDefault.Foreground(rgb(c))
	for _, r := range s {
		a.screen.SetContent(col, row, r, nil, st)
		col++
	}
}

// runeOf returns the typed character, or 0 for special keys.
func runeOf(ev *tcell.EventKey) rune {
	if ev.Key() != tcell.KeyRune {
		return 0
	}
	return ev.Rune()
}

func slot(c game.Coef, v game.Var) string {
	if !c.Set {
		return "[" + v.String() + "]"
	}
	return "[" + c.String() + "]"
}
