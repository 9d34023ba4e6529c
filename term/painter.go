package term

import (
	"image/color"
	"unicode/utf8"

	"vquest/anim"
	"vquest/constants"
	"vquest/render"
)

// spriteScale shrinks radii authored for window pixels to half-block pixels.
const spriteScale = 0.25

var _ render.Renderer = Painter{}

// Painter rasterizes scenes into a Buffer. Scenes must be built for a viewport of
// the buffer's pixel size.
type Painter struct {
	buf *Buffer
}

// NewPainter returns a painter drawing into buf.
func NewPainter(buf *Buffer) Painter { return Painter{buf: buf} }

// Render paints sc back to front.
func (p Painter) Render(sc render.Scene) {
	p.buf.Clear(sc.Background)

	for _, l := range sc.Grid {
		p.buf.Line(l.From, l.To, 1, l.Color)
	}
	for _, l := range sc.Axes {
		p.buf.Line(l.From, l.To, 1, l.Color)
	}
	for _, m := range sc.Targets {
		p.marker(m)
	}
	for _, l := range sc.Beams {
		p.buf.Line(l.From, l.To, l.Width*spriteScale, l.Color)
	}
	for _, pt := range sc.Particles {
		c := pt.Color
		c.A = uint8(float64(c.A) * anim.Clamp01(pt.Alpha))
		p.buf.Disc(pt.Pos, max(pt.Radius*spriteScale, 0.5), c)
	}
	for _, g := range sc.Glows {
		c := g.Color
		c.A = uint8(float64(c.A) * anim.Clamp01(g.Alpha) * 0.5)
		p.buf.Disc(g.Center, g.Radius*spriteScale, c)
	}
	if sc.Actor != nil {
		p.saucer(*sc.Actor)
	}

	// text goes last so shapes never overwrite it
	for _, lb := range sc.Labels {
		p.label(lb)
	}
	for _, m := range sc.Targets {
		p.label(m.Label)
	}
}

func (p Painter) marker(m render.Marker) {
	p.buf.Disc(m.Pos, m.HaloRadius*spriteScale, m.Halo)
	p.buf.Disc(m.Pos, max(m.DotRadius*spriteScale*2, 1), m.Color)
}

func (p Painter) saucer(a render.Actor) {
	x, y := a.Pos.X, a.Pos.Y
	p.buf.Disc(anim.Vec{X: x, Y: y - 1}, 1.5, constants.ColorSaucerDome)
	p.buf.Line(anim.Vec{X: x - 4, Y: y}, anim.Vec{X: x + 4, Y: y}, 1, constants.ColorSaucerBody)
	p.buf.Line(anim.Vec{X: x - 3, Y: y + 1}, anim.Vec{X: x + 3, Y: y + 1}, 1, constants.ColorSaucerRim)
	if a.Armed {
		p.buf.Pixel(round(x), round(y+2), constants.ColorLaserCore)
	}
}

// label places text on the cell grid. A label that would overlap existing text
// is dropped so dense tick labels thin out on small terminals.
func (p Painter) label(lb render.Label) {
	if lb.Text == "" {
		return
	}
	n := utf8.RuneCountInString(lb.Text)
	col := round(lb.Pos.X)
	switch lb.Align {
	case render.AlignCenter:
		col -= n / 2
	case render.AlignRight:
		col -= n
	}

	y := lb.Pos.Y
	switch lb.VAlign {
	case render.VAlignTop:
		y += 2
	case render.VAlignBottom:
		y -= 2
	}
	row := round(y) / 2

	if p.occupied(col-1, row, n+2) {
		return
	}
	p.buf.Text(col, row, lb.Text, opaque(lb.Color))
}

func (p Painter) occupied(col, row, n int) bool {
	for i := 0; i < n; i++ {
		if p.buf.Cell(col+i, row).Rune != 0 {
			return true
		}
	}
	return false
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xFF
	return c
}
