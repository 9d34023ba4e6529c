// Package ui is the desktop frontend: an ebiten game that feeds keyboard and mouse
// input to the controller and paints its scenes.
package ui

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"vquest/constants"
	"vquest/game"
	"vquest/render"
)

// Screen is the top-level page being shown.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenHow
	ScreenPlay
)

var digitKeys = []ebiten.Key{
	ebiten.Key0, ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

var numpadKeys = []ebiten.Key{
	ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
	ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
}

const (
	hudHeight = 56
	slotW     = 44
	slotH     = 26
)

// Game implements ebiten.Game.
type Game struct {
	ctrl  *game.Controller
	hud   game.HUD
	entry game.Entry

	screen Screen
	canvas *ebiten.Image
	start  time.Time
	width  int
	height int
	quit   bool
}

// New returns a game showing the title screen.
func New(ctrl *game.Controller, width, height int) *Game {
	return &Game{
		ctrl:   ctrl,
		start:  time.Now(),
		width:  width,
		height: height,
	}
}

func (g *Game) now() time.Duration { return time.Since(g.start) }

// Layout keeps the logical screen equal to the window and refits the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
	}
	g.ctrl.Resize(float64(g.width), float64(g.height-hudHeight), ebiten.Monitor().DeviceScaleFactor())
	return g.width, g.height
}

// Update handles input and advances the sequence.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	now := g.now()

	g.ctrl.Tick(now)
	g.hud.Apply(g.ctrl.Events())

	switch g.screen {
	case ScreenTitle:
		g.updateTitle()
	case ScreenHow:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.screen = ScreenTitle
		}
	case ScreenPlay:
		g.updatePlay(now)
	}
	return nil
}

func (g *Game) updateTitle() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.ctrl.NewGame()
		g.enterPlay()
	case inpututil.IsKeyJustPressed(ebiten.KeyC) && g.ctrl.HasSave():
		g.ctrl.Continue()
		g.enterPlay()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.screen = ScreenHow
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.quit = true
	}
}

func (g *Game) enterPlay() {
	g.hud.Clear()
	g.entry.Cancel()
	g.screen = ScreenPlay
}

func (g *Game) updatePlay(now time.Duration) {
	// modal coefficient editor takes all keys while open
	if g.entry.Active {
		g.updateEntry()
		return
	}

	if o, ok := g.hud.Overlay(now); ok {
		switch {
		case o.Solved && (inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)):
			g.ctrl.NextLevel()
			g.hud.Clear()
		case !o.Solved && (inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)):
			g.ctrl.RetryLevel()
			g.hud.Clear()
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			g.screen = ScreenTitle
		}
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.entry.Open(g.ctrl, game.VarA)
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.entry.Open(g.ctrl, game.VarH)
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		g.entry.Open(g.ctrl, game.VarK)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		_ = g.ctrl.Submit(now)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.screen = ScreenTitle
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pt := image.Pt(x, y)
		for v := game.VarA; v <= game.VarK; v++ {
			if pt.In(g.slotRect(v)) {
				g.entry.Open(g.ctrl, v)
				return
			}
		}
		if pt.In(g.fireRect()) {
			_ = g.ctrl.Submit(now)
		}
	}
}

func (g *Game) updateEntry() {
	for d, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) || inpututil.IsKeyJustPressed(numpadKeys[d]) {
			g.entry.Digit(d)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.entry.Minus()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.entry.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		_ = g.entry.Confirm(g.ctrl)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.entry.Cancel()
	}
}

// Draw paints the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.screen {
	case ScreenTitle:
		g.drawTitle(screen)
	case ScreenHow:
		g.drawHow(screen)
	case ScreenPlay:
		g.drawPlay(screen)
	}
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	screen.Fill(constants.ColorBackground)
	cx := float64(g.width) / 2
	cy := float64(g.height) / 3
	lines := []string{
		"V-QUEST",
		"Absolute value transformations",
		"",
		"N  new game",
	}
	if g.ctrl.HasSave() {
		lines = append(lines, "C  continue")
	}
	lines = append(lines, "H  how to play", "Q  quit")
	for i, l := range lines {
		drawText(screen, l, cx, cy+float64(i)*20, render.AlignCenter, render.VAlignTop, constants.ColorText)
	}
}

var howText = []string{
	"Your saucer fires a V-shaped laser: y = a|x - h| + k.",
	"",
	"Land the vertex on the red target by choosing h and k.",
	"Pick a so one arm passes through the blue diamond.",
	"",
	"Press A, H or K (or click a slot) to set a value, Enter to confirm.",
	"Press Space to fire. You get two tries per level.",
	"First-try hits earn two stars, second-try hits one.",
	"",
	"Esc to go back",
}

func (g *Game) drawHow(screen *ebiten.Image) {
	screen.Fill(constants.ColorBackground)
	for i, l := range howText {
		drawText(screen, l, 40, 60+float64(i)*20, render.AlignLeft, render.VAlignTop, constants.ColorText)
	}
}

func (g *Game) drawPlay(screen *ebiten.Image) {
	now := g.now()
	screen.Fill(constants.ColorBackground)

	// SubImage keeps the parent's coordinates, so the play area gets its own image.
	w, h := g.width, max(g.height-hudHeight, 1)
	if g.canvas == nil || g.canvas.Bounds().Dx() != w || g.canvas.Bounds().Dy() != h {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(w, h)
	}
	Painter{dst: g.canvas}.Render(g.ctrl.Scene(now))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, hudHeight)
	screen.DrawImage(g.canvas, op)

	g.drawHUD(screen)

	if f, ok := g.hud.Toast(now); ok {
		c := constants.ColorFail
		if f.Kind == game.FeedbackSuccess {
			c = constants.ColorSuccess
		}
		w := float32(len(f.Text)*7 + 40)
		x := (float32(g.width) - w) / 2
		y := float32(g.height - 60)
		vector.DrawFilledRect(screen, x, y, w, 30, constants.ColorBackground, false)
		vector.StrokeRect(screen, x, y, w, 30, 2, c, false)
		drawText(screen, f.Text, float64(g.width)/2, float64(y)+15, render.AlignCenter, render.VAlignMiddle, c)
	}

	if o, ok := g.hud.Overlay(now); ok {
		g.drawOutcome(screen, o)
	}
	if g.entry.Active {
		g.drawEntry(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.ctrl.State()
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), hudHeight, constants.ColorGrid, false)

	drawText(screen, fmt.Sprintf("Level %d", st.Level), 10, 8, render.AlignLeft, render.VAlignTop, constants.ColorText)
	drawText(screen, fmt.Sprintf("Score %d", st.Score), 110, 8, render.AlignLeft, render.VAlignTop, constants.ColorText)
	drawText(screen, fmt.Sprintf("Tries %d", st.Attempts), 210, 8, render.AlignLeft, render.VAlignTop, constants.ColorText)
	drawText(screen, g.ctrl.Mission(), 10, 34, render.AlignLeft, render.VAlignTop, constants.ColorTarget)

	// y = [a]|x - [h]| + [k]
	drawText(screen, "y =", float64(g.width-300), 16, render.AlignLeft, render.VAlignTop, constants.ColorText)
	for v := game.VarA; v <= game.VarK; v++ {
		r := g.slotRect(v)
		c := st.A
		switch v {
		case game.VarH:
			c = st.H
		case game.VarK:
			c = st.K
		}
		label := c.String()
		col := constants.ColorText
		if !c.Set {
			label = v.String()
			col = constants.ColorAxisLabel
		}
		border := constants.ColorAxis
		if g.entry.Active && g.entry.Var == v {
			border = constants.ColorSlope
		}
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), slotW, slotH, 1.5, border, false)
		drawText(screen, label, float64(r.Min.X+slotW/2), float64(r.Min.Y+slotH/2), render.AlignCenter, render.VAlignMiddle, col)
	}
	x := float64(g.slotRect(game.VarA).Max.X + 3)
	drawText(screen, "|x -", x, 16, render.AlignLeft, render.VAlignTop, constants.ColorText)
	x = float64(g.slotRect(game.VarH).Max.X + 3)
	drawText(screen, "| +", x, 16, render.AlignLeft, render.VAlignTop, constants.ColorText)

	fr := g.fireRect()
	fire := constants.ColorLaserCore
	if g.ctrl.Animating() {
		fire = constants.ColorAxis
	}
	vector.DrawFilledRect(screen, float32(fr.Min.X), float32(fr.Min.Y), float32(fr.Dx()), float32(fr.Dy()), fire, false)
	drawText(screen, "FIRE", float64(fr.Min.X+fr.Dx()/2), float64(fr.Min.Y+fr.Dy()/2), render.AlignCenter, render.VAlignMiddle, constants.ColorBackground)
}

func (g *Game) slotRect(v game.Var) image.Rectangle {
	x := g.width - 270 + int(v)*80
	return image.Rect(x, 10, x+slotW, 10+slotH)
}

func (g *Game) fireRect() image.Rectangle {
	return image.Rect(g.width-60, 10, g.width-8, 10+slotH)
}

func (g *Game) drawOutcome(screen *ebiten.Image, o game.Outcome) {
	w, h := 420.0, 160.0
	x := (float64(g.width) - w) / 2
	y := (float64(g.height) - h) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), constants.ColorOverlayFill, false)

	var lines []string
	if o.Solved {
		lines = []string{
			"Mission Success!",
			"All of Glaxonia Prime 3 salutes you.",
			strings.Repeat("* ", o.Stars),
			fmt.Sprintf("+%d points   tries %s", o.Points, o.AttemptsText()),
			"Enter for next level",
		}
	} else {
		lines = []string{
			"Mission Failed",
			"Glaxonon police put you in Xinothropic Galactic Jail for 2 parsecs.",
			o.AnswerText(),
			"",
			"R to retry",
		}
	}
	for i, l := range lines {
		drawText(screen, l, float64(g.width)/2, y+20+float64(i)*24, render.AlignCenter, render.VAlignTop, constants.ColorBackground)
	}
}

// drawEntry is the coefficient modal, laid out like the challenge box.
func (g *Game) drawEntry(screen *ebiten.Image) {
	w, h := 300.0, 110.0
	x := (float64(g.width) - w) / 2
	y := (float64(g.height) - h) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), constants.ColorOverlayFill, false)

	buf := g.entry.Buf
	if buf == "" {
		buf = g.entry.Placeholder()
	}
	drawText(screen, g.entry.Prompt(), x+20, y+30, render.AlignLeft, render.VAlignBottom, constants.ColorBackground)
	drawText(screen, "> "+buf, x+20, y+60, render.AlignLeft, render.VAlignBottom, constants.ColorBackground)
	drawText(screen, "Enter to confirm, Esc to cancel", x+20, y+90, render.AlignLeft, render.VAlignBottom, constants.ColorBackground)
}
