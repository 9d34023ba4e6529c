package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"vquest/anim"
	"vquest/constants"
	"vquest/render"
)

// glowRings is how many concentric discs approximate a radial gradient.
const glowRings = 8

// Painter draws scenes onto an ebiten image.
type Painter struct {
	dst *ebiten.Image
}

// Render paints sc back to front.
func (p Painter) Render(sc render.Scene) {
	p.dst.Fill(sc.Background)

	for _, l := range sc.Grid {
		p.line(l)
	}
	for _, l := range sc.Axes {
		p.line(l)
	}
	for _, lb := range sc.Labels {
		p.label(lb)
	}
	for _, m := range sc.Targets {
		p.marker(m)
	}
	for _, l := range sc.Beams {
		p.line(l)
	}
	for _, pt := range sc.Particles {
		disc(p.dst, pt.Pos, pt.Radius, fade(pt.Color, pt.Alpha))
	}
	for _, g := range sc.Glows {
		p.glow(g)
	}
	if sc.Actor != nil {
		p.saucer(*sc.Actor)
	}
}

func (p Painter) line(l render.Line) {
	vector.StrokeLine(p.dst,
		float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y),
		float32(l.Width), l.Color, true)
}

func (p Painter) label(lb render.Label) {
	drawText(p.dst, lb.Text, lb.Pos.X, lb.Pos.Y, lb.Align, lb.VAlign, lb.Color)
}

func (p Painter) marker(m render.Marker) {
	disc(p.dst, m.Pos, m.HaloRadius, m.Halo)

	x, y, s := float32(m.Pos.X), float32(m.Pos.Y), float32(m.Size)
	switch m.Kind {
	case render.MarkerRing:
		vector.StrokeCircle(p.dst, x, y, s, 2, m.Color, true)
	case render.MarkerDiamond:
		pts := [][2]float32{{x, y - s}, {x + s, y}, {x, y + s}, {x - s, y}}
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			vector.StrokeLine(p.dst, a[0], a[1], b[0], b[1], 2, m.Color, true)
		}
	}

	disc(p.dst, m.Pos, m.DotRadius, m.Color)
	p.label(m.Label)
}

// glow fakes a radial gradient with shrinking translucent discs.
func (p Painter) glow(g render.Glow) {
	if g.Alpha <= 0 {
		return
	}
	step := g.Alpha / glowRings
	for i := 0; i < glowRings; i++ {
		r := g.Radius * float64(glowRings-i) / glowRings
		disc(p.dst, g.Center, r, fade(g.Color, step))
	}
}

func (p Painter) saucer(a render.Actor) {
	x, y := a.Pos.X, a.Pos.Y

	// dome, upper half disc
	fillEllipse(p.dst, x, y-3, 11, 11, true, constants.ColorSaucerDome)
	// body
	fillEllipse(p.dst, x, y, 22, 8, false, constants.ColorSaucerBody)
	vector.StrokeLine(p.dst, float32(x-22), float32(y), float32(x+22), float32(y), 1, constants.ColorSaucerRim, true)

	for _, l := range a.Lights {
		disc(p.dst, l.Pos, 2, fade(l.Color, l.Alpha))
	}

	if a.Armed {
		// emitter under the hull
		for dy := 0.0; dy <= 5; dy++ {
			hw := 4 * (1 - dy/5)
			vector.StrokeLine(p.dst, float32(x-hw), float32(y+8+dy), float32(x+hw), float32(y+8+dy), 1,
				fade(constants.ColorLaserCore, 0.8), true)
		}
	}
}

// fillEllipse draws a filled ellipse (or its upper half) as horizontal spans.
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float64, upper bool, c color.Color) {
	bottom := ry
	if upper {
		bottom = 0
	}
	for dy := -ry; dy <= bottom; dy++ {
		hw := rx * math.Sqrt(math.Max(0, 1-(dy*dy)/(ry*ry)))
		if hw <= 0 {
			continue
		}
		vector.StrokeLine(dst, float32(cx-hw), float32(cy+dy), float32(cx+hw), float32(cy+dy), 1.2, c, true)
	}
}

func disc(dst *ebiten.Image, at anim.Vec, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(at.X), float32(at.Y), float32(r), c, true)
}

func fade(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * anim.Clamp01(a))
	return c
}

func drawText(dst *ebiten.Image, s string, x, y float64, align render.Align, valign render.VAlign, c color.Color) {
	face := basicfont.Face7x13
	b := text.BoundString(face, s)
	w := float64(b.Dx())

	switch align {
	case render.AlignCenter:
		x -= w / 2
	case render.AlignRight:
		x -= w
	}

	// y becomes the baseline
	ascent := float64(face.Ascent)
	switch valign {
	case render.VAlignTop:
		y += ascent
	case render.VAlignMiddle:
		y += ascent / 2
	}
	text.Draw(dst, s, face, int(x), int(y), c)
}
