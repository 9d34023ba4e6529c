package render

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"vquest/anim"
	"vquest/answer"
	"vquest/constants"
	"vquest/level"
)

// Renderer paints a scene onto some surface.
type Renderer interface {
	Render(Scene)
}

// Align anchors a label relative to its position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAlign anchors a label vertically relative to its position.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
	VAlignBottom
)

// MarkerKind selects the target glyph.
type MarkerKind int

const (
	MarkerRing MarkerKind = iota
	MarkerDiamond
)

// Line is a stroked segment.
type Line struct {
	Segment
	Width float64
	Color color.NRGBA
}

// Label is text anchored at Pos.
type Label struct {
	Pos    anim.Vec
	Text   string
	Color  color.NRGBA
	Align  Align
	VAlign VAlign
}

// Marker is a target point with a pulsing outline, a soft halo and a center dot.
type Marker struct {
	Kind       MarkerKind
	Pos        anim.Vec
	Size       float64
	HaloRadius float64
	DotRadius  float64
	Color      color.NRGBA
	Halo       color.NRGBA
	Label      Label
}

// Glow is a radial fade from Color at the center to transparent at Radius.
type Glow struct {
	Center anim.Vec
	Radius float64
	Color  color.NRGBA
	Alpha  float64
}

// Light is one of the saucer's rim lights.
type Light struct {
	Pos   anim.Vec
	Color color.NRGBA
	Alpha float64
}

// Actor is the saucer sprite.
type Actor struct {
	Pos    anim.Vec
	Phase  anim.Phase
	Armed  bool
	Lights []Light
}

// Scene is everything a frontend needs to paint one frame, back to front.
type Scene struct {
	Width, Height float64
	Background    color.NRGBA

	Grid    []Line
	Axes    []Line
	Labels  []Label
	Targets []Marker

	Beams     []Line
	Particles []anim.Particle
	Glows     []Glow
	Actor     *Actor
}

// Input is the state a scene is built from.
type Input struct {
	Viewport  Viewport
	Spec      level.Spec
	Submitted answer.Submission
	Anim      anim.State
	Animating bool
	Now       time.Duration
}

var beamLayers = []struct {
	width float64
	color color.NRGBA
}{
	{12, constants.ColorLaserOuter},
	{6, constants.ColorLaserGlow},
	{2.5, constants.ColorLaserCore},
}

// Build assembles the full scene for one frame.
func Build(in Input) Scene {
	v := in.Viewport
	ms := float64(in.Now) / float64(time.Millisecond)

	sc := Scene{
		Width:      v.Width,
		Height:     v.Height,
		Background: constants.ColorBackground,
	}
	sc.Grid = gridLines(v)
	sc.Axes, sc.Labels = axes(v)
	sc.Targets = targets(v, in.Spec, ms)

	if !in.Animating {
		return sc
	}

	st := in.Anim
	if st.Phase.BeamVisible() {
		sub := in.Submitted
		for _, layer := range beamLayers {
			for _, arm := range Beam(v, sub.H, sub.K, sub.A, st.LaserProgress) {
				sc.Beams = append(sc.Beams, Line{Segment: arm, Width: layer.width, Color: layer.color})
			}
		}
	}

	if (st.Phase == anim.PhaseHit || st.Phase == anim.PhaseHold) && len(st.Particles) > 0 {
		for _, p := range st.Particles {
			if p.Alpha > 0 {
				sc.Particles = append(sc.Particles, p)
			}
		}
	}

	if st.Phase == anim.PhaseHit {
		t := st.PhaseProgress
		sc.Glows = append(sc.Glows, Glow{
			Center: st.Impact,
			Radius: 30 + 20*math.Sin(t*math.Pi),
			Color:  constants.ColorHitGlow,
			Alpha:  0.6 * (1 - t),
		})
	}

	if st.GlowAlpha > 0 {
		sc.Glows = append(sc.Glows, Glow{
			Center: st.Actor,
			Radius: 50,
			Color:  constants.ColorSaucerGlow,
			Alpha:  0.4 * st.GlowAlpha,
		})
	}

	sc.Actor = saucer(st, ms)
	return sc
}

func gridLines(v Viewport) []Line {
	b := v.Bounds
	var lines []Line
	for x := math.Ceil(b.XMin); x <= b.XMax; x++ {
		p := v.ToScreen(x, 0)
		lines = append(lines, Line{
			Segment: Segment{anim.Vec{X: p.X, Y: 0}, anim.Vec{X: p.X, Y: v.Height}},
			Width:   1,
			Color:   constants.ColorGrid,
		})
	}
	for y := math.Ceil(b.YMin); y <= b.YMax; y++ {
		p := v.ToScreen(0, y)
		lines = append(lines, Line{
			Segment: Segment{anim.Vec{X: 0, Y: p.Y}, anim.Vec{X: v.Width, Y: p.Y}},
			Width:   1,
			Color:   constants.ColorGrid,
		})
	}
	return lines
}

func axes(v Viewport) ([]Line, []Label) {
	b := v.Bounds
	o := v.ToScreen(0, 0)

	lines := []Line{
		{Segment: Segment{anim.Vec{X: 0, Y: o.Y}, anim.Vec{X: v.Width, Y: o.Y}}, Width: 1.5, Color: constants.ColorAxis},
		{Segment: Segment{anim.Vec{X: o.X, Y: 0}, anim.Vec{X: o.X, Y: v.Height}}, Width: 1.5, Color: constants.ColorAxis},
	}
	var labels []Label

	for x := math.Ceil(b.XMin); x <= b.XMax; x++ {
		if x == 0 {
			continue
		}
		p := v.ToScreen(x, 0)
		lines = append(lines, Line{Segment: Segment{anim.Vec{X: p.X, Y: o.Y - 3}, anim.Vec{X: p.X, Y: o.Y + 3}}, Width: 1, Color: constants.ColorAxis})
		labels = append(labels, Label{Pos: anim.Vec{X: p.X, Y: o.Y + 6}, Text: fmt.Sprint(x), Color: constants.ColorAxisLabel, Align: AlignCenter, VAlign: VAlignTop})
	}
	for y := math.Ceil(b.YMin); y <= b.YMax; y++ {
		if y == 0 {
			continue
		}
		p := v.ToScreen(0, y)
		lines = append(lines, Line{Segment: Segment{anim.Vec{X: o.X - 3, Y: p.Y}, anim.Vec{X: o.X + 3, Y: p.Y}}, Width: 1, Color: constants.ColorAxis})
		labels = append(labels, Label{Pos: anim.Vec{X: o.X - 7, Y: p.Y}, Text: fmt.Sprint(y), Color: constants.ColorAxisLabel, Align: AlignRight, VAlign: VAlignMiddle})
	}
	labels = append(labels, Label{Pos: anim.Vec{X: o.X - 5, Y: o.Y + 5}, Text: "0", Color: constants.ColorAxisLabel, Align: AlignRight, VAlign: VAlignTop})
	return lines, labels
}

func targets(v Viewport, s level.Spec, ms float64) []Marker {
	vp := v.PointToScreen(s.Vertex)
	sp := v.PointToScreen(s.SlopePoint)

	return []Marker{
		{
			Kind:       MarkerRing,
			Pos:        vp,
			Size:       10 * (1 + 0.15*math.Sin(ms/300)),
			HaloRadius: 14,
			DotRadius:  4,
			Color:      constants.ColorTarget,
			Halo:       constants.ColorTargetGlow,
			Label:      pointLabel(vp, s.Vertex, constants.ColorTarget),
		},
		{
			Kind:       MarkerDiamond,
			Pos:        sp,
			Size:       7 * (1 + 0.12*math.Sin(ms/350+1)),
			HaloRadius: 12,
			DotRadius:  3,
			Color:      constants.ColorSlope,
			Halo:       constants.ColorSlopeGlow,
			Label:      pointLabel(sp, s.SlopePoint, constants.ColorSlope),
		},
	}
}

func pointLabel(at anim.Vec, p level.Point, c color.NRGBA) Label {
	return Label{
		Pos:    anim.Vec{X: at.X + 14, Y: at.Y - 6},
		Text:   fmt.Sprintf("(%d, %d)", p.X, p.Y),
		Color:  c,
		Align:  AlignLeft,
		VAlign: VAlignBottom,
	}
}

func saucer(st anim.State, ms float64) *Actor {
	pos := st.Actor
	if st.Phase != anim.PhaseFly {
		pos.Y += math.Sin(ms*constants.BobRate) * constants.BobAmplitude
	}

	lights := make([]Light, 0, 5)
	for i := -2; i <= 2; i++ {
		alpha := 0.3
		if math.Sin(ms*0.008+float64(i)*1.5) > 0 {
			alpha = 1
		}
		lights = append(lights, Light{
			Pos:   anim.Vec{X: pos.X + float64(i*8), Y: pos.Y + 3},
			Color: constants.RimLightPalette[(i+2)%len(constants.RimLightPalette)],
			Alpha: alpha,
		})
	}

	return &Actor{
		Pos:    pos,
		Phase:  st.Phase,
		Armed:  st.Phase.Armed(),
		Lights: lights,
	}
}
