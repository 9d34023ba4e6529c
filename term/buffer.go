// Package term is the terminal frontend. Scenes are rasterized onto half-block
// cells, so every character cell holds two vertically stacked pixels.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"vquest/anim"
)

// halfBlock draws the top pixel in the foreground and the bottom one in the background.
const halfBlock = '▀'

// Cell is one character cell.
type Cell struct {
	Top    color.NRGBA
	Bottom color.NRGBA
	Rune   rune // 0 draws the two pixels
	Fg     color.NRGBA
}

// Buffer is a flat cell grid in pixel space of cols x rows*2.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer filled with bg.
func NewBuffer(cols, rows int, bg color.NRGBA) *Buffer {
	b := &Buffer{}
	b.Resize(cols, rows)
	b.Clear(bg)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient.
func (b *Buffer) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	size := cols * rows
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width, b.height = cols, rows
}

// Size returns the grid size in cells.
func (b *Buffer) Size() (int, int) { return b.width, b.height }

// PixelSize returns the grid size in pixels.
func (b *Buffer) PixelSize() (int, int) { return b.width, b.height * 2 }

// Clear fills every pixel with bg and removes text.
func (b *Buffer) Clear(bg color.NRGBA) {
	bg.A = 0xFF
	for i := range b.cells {
		b.cells[i] = Cell{Top: bg, Bottom: bg}
	}
}

// Cell returns the cell at col,row. Out of range returns the zero Cell.
func (b *Buffer) Cell(col, row int) Cell {
	if col < 0 || row < 0 || col >= b.width || row >= b.height {
		return Cell{}
	}
	return b.cells[row*b.width+col]
}

// Pixel alpha-blends c onto pixel x,y.
func (b *Buffer) Pixel(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height*2 || c.A == 0 {
		return
	}
	cell := &b.cells[(y/2)*b.width+x]
	if y%2 == 0 {
		cell.Top = blend(cell.Top, c)
	} else {
		cell.Bottom = blend(cell.Bottom, c)
	}
}

// Line rasterizes a segment by stepping one pixel along its major axis, after
// clipping it to the buffer. Widths above 2 pixels thicken it to a 3 pixel brush.
func (b *Buffer) Line(from, to anim.Vec, width float64, c color.NRGBA) {
	w, h := b.PixelSize()
	from, to, ok := clip(from, to, -1, -1, float64(w), float64(h))
	if !ok {
		return
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		b.Pixel(round(from.X), round(from.Y), c)
		return
	}
	sx, sy := dx/float64(steps), dy/float64(steps)
	thick := width > 2
	for i := 0; i <= steps; i++ {
		x, y := round(from.X+sx*float64(i)), round(from.Y+sy*float64(i))
		b.Pixel(x, y, c)
		if thick {
			if math.Abs(dx) > math.Abs(dy) {
				b.Pixel(x, y-1, c)
				b.Pixel(x, y+1, c)
			} else {
				b.Pixel(x-1, y, c)
				b.Pixel(x+1, y, c)
			}
		}
	}
}

// clip is Liang-Barsky against the box [x0,x1]x[y0,y1].
func clip(p, q anim.Vec, x0, y0, x1, y1 float64) (anim.Vec, anim.Vec, bool) {
	d := q.Sub(p)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, p.X - x0},
		{d.X, x1 - p.X},
		{-d.Y, p.Y - y0},
		{d.Y, y1 - p.Y},
	}
	for _, e := range edges {
		pe, qe := e[0], e[1]
		if pe == 0 {
			if qe < 0 {
				return p, q, false
			}
			continue
		}
		r := qe / pe
		if pe < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return p, q, false
		}
	}
	return p.Add(d.Scale(t0)), p.Add(d.Scale(t1)), true
}

// Disc fills a circle.
func (b *Buffer) Disc(center anim.Vec, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	x0, x1 := int(math.Floor(center.X-r)), int(math.Ceil(center.X+r))
	y0, y1 := int(math.Floor(center.Y-r)), int(math.Ceil(center.Y+r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ddx, ddy := float64(x)-center.X, float64(y)-center.Y
			if ddx*ddx+ddy*ddy <= r*r {
				b.Pixel(x, y, c)
			}
		}
	}
}

// Text writes s starting at col,row. Characters keep the cell's background.
func (b *Buffer) Text(col, row int, s string, fg color.NRGBA) {
	if row < 0 || row >= b.height {
		return
	}
	for _, r := range s {
		if col >= 0 && col < b.width {
			cell := &b.cells[row*b.width+col]
			cell.Rune = r
			cell.Fg = fg
		}
		col++
	}
}

// Flush writes the buffer to screen with its top-left at offsetRow.
func (b *Buffer) Flush(screen tcell.Screen, offsetRow int) {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			cell := b.cells[row*b.width+col]
			if cell.Rune != 0 {
				// a text cell shows one background, take the darker half
				bg := cell.Top
				if luma(cell.Bottom) < luma(bg) {
					bg = cell.Bottom
				}
				st := tcell.StyleDefault.Foreground(rgb(cell.Fg)).Background(rgb(bg))
				screen.SetContent(col, row+offsetRow, cell.Rune, nil, st)
				continue
			}
			st := tcell.StyleDefault.Foreground(rgb(cell.Top)).Background(rgb(cell.Bottom))
			screen.SetContent(col, row+offsetRow, halfBlock, nil, st)
		}
	}
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend composites src over an opaque dst.
func blend(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return color.NRGBA{mix(dst.R, src.R), mix(dst.G, src.G), mix(dst.B, src.B), 0xFF}
}

func luma(c color.NRGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

func round(v float64) int { return int(math.Round(v)) }
