package render

import (
	"math"
	"testing"
	"time"

	"vquest/anim"
	"vquest/answer"
	"vquest/level"
)

func testViewport() Viewport {
	v := NewViewport(800, 600, 2)
	v.Bounds = level.Bounds{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
	return v
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestViewport_Scale(t *testing.T) {
	v := testViewport()
	// min(800/20, 600/20)
	if got := v.Scale(); got != 30 {
		t.Errorf("Expected scale 30, got %v", got)
	}
	v.Resize(400, 1000, 0)
	if got := v.Scale(); got != 20 {
		t.Errorf("Expected scale 20 after resize, got %v", got)
	}
	if v.DPR != 2 {
		t.Errorf("Expected DPR kept at 2 when resized with 0, got %v", v.DPR)
	}
}

func TestViewport_ToScreen(t *testing.T) {
	v := testViewport()
	tests := []struct {
		x, y   float64
		px, py float64
	}{
		{0, 0, 400, 300},
		{1, 0, 430, 300},
		{0, 1, 400, 270},
		{-2, -3, 340, 390},
	}
	for _, tt := range tests {
		p := v.ToScreen(tt.x, tt.y)
		if !near(p.X, tt.px) || !near(p.Y, tt.py) {
			t.Errorf("ToScreen(%v,%v): expected (%v,%v), got %v", tt.x, tt.y, tt.px, tt.py, p)
		}
		mx, my := v.ToMath(p)
		if !near(mx, tt.x) || !near(my, tt.y) {
			t.Errorf("ToMath round trip: expected (%v,%v), got (%v,%v)", tt.x, tt.y, mx, my)
		}
	}
}

func TestViewport_DeviceSize(t *testing.T) {
	w, h := testViewport().DeviceSize()
	if w != 1600 || h != 1200 {
		t.Errorf("Expected 1600x1200, got %dx%d", w, h)
	}
}

func TestBeam_FollowsCurve(t *testing.T) {
	v := testViewport()
	spec := level.Spec{Vertex: level.Point{X: 2, Y: -1}, SlopePoint: level.Point{X: 3, Y: 1}, A: 2}
	arms := Beam(v, 2, -1, 2, 1)

	vertex := v.PointToScreen(spec.Vertex)
	for i, arm := range arms {
		if arm.From != vertex {
			t.Errorf("arm %d: expected to start at vertex %v, got %v", i, vertex, arm.From)
		}
	}

	// The right arm must pass through the slope point (x > h)
	target := v.PointToScreen(spec.SlopePoint)
	right := arms[1]
	cross := (right.To.X-right.From.X)*(target.Y-right.From.Y) - (right.To.Y-right.From.Y)*(target.X-right.From.X)
	if math.Abs(cross)/right.Length() > 1e-6 {
		t.Errorf("right arm misses slope point, distance %v", math.Abs(cross)/right.Length())
	}

	// Left arm mirrors the right arm about the vertical through the vertex
	left := arms[0]
	if !near(left.To.X-vertex.X, -(right.To.X-vertex.X)) || !near(left.To.Y, right.To.Y) {
		t.Errorf("arms are not mirrored: left %v right %v", left.To, right.To)
	}
}

func TestBeam_ProgressAndReach(t *testing.T) {
	v := testViewport()
	diag := math.Hypot(v.Width, v.Height)

	for _, a := range []int{-3, -1, 1, 2} {
		full := Beam(v, 0, 0, a, 1)
		for i, arm := range full {
			if arm.Length() <= diag {
				t.Errorf("a=%d arm %d: expected length beyond diagonal %v, got %v", a, i, diag, arm.Length())
			}
		}
		half := Beam(v, 0, 0, a, 0.5)
		if !near(half[0].Length(), full[0].Length()/2) {
			t.Errorf("a=%d: expected half length at progress 0.5", a)
		}
		zero := Beam(v, 0, 0, a, 0)
		if zero[0].Length() != 0 || zero[1].Length() != 0 {
			t.Errorf("a=%d: expected zero-length arms at progress 0", a)
		}
	}
}

func TestBuild_Static(t *testing.T) {
	v := testViewport()
	spec := level.Spec{Vertex: level.Point{X: 2, Y: -1}, SlopePoint: level.Point{X: 3, Y: 1}, A: 2}
	sc := Build(Input{Viewport: v, Spec: spec})

	// 21 vertical + 21 horizontal grid lines for [-10, 10]
	if len(sc.Grid) != 42 {
		t.Errorf("Expected 42 grid lines, got %d", len(sc.Grid))
	}
	// 2 axes + 20 x ticks + 20 y ticks
	if len(sc.Axes) != 42 {
		t.Errorf("Expected 42 axis lines, got %d", len(sc.Axes))
	}
	if len(sc.Targets) != 2 {
		t.Fatalf("Expected 2 targets, got %d", len(sc.Targets))
	}
	if sc.Targets[0].Kind != MarkerRing || sc.Targets[0].Label.Text != "(2, -1)" {
		t.Errorf("unexpected vertex marker %+v", sc.Targets[0])
	}
	if sc.Targets[1].Kind != MarkerDiamond || sc.Targets[1].Label.Text != "(3, 1)" {
		t.Errorf("unexpected slope marker %+v", sc.Targets[1])
	}
	if sc.Actor != nil || len(sc.Beams) != 0 || len(sc.Glows) != 0 {
		t.Error("Expected no animation layers when idle")
	}
}

func TestBuild_Animating(t *testing.T) {
	v := testViewport()
	spec := level.Spec{Vertex: level.Point{X: 2, Y: -1}, SlopePoint: level.Point{X: 3, Y: 1}, A: 2}
	sub := answer.Submission{A: 2, H: 2, K: -1}

	tests := []struct {
		phase     anim.Phase
		beams     bool
		particles bool
		glows     int
	}{
		{anim.PhaseFly, false, false, 0},
		{anim.PhaseGlow, false, false, 1},
		{anim.PhaseLaser, true, false, 1},
		{anim.PhaseHit, true, true, 2},
		{anim.PhaseHold, true, true, 1},
	}
	for _, tt := range tests {
		st := anim.State{
			Phase:         tt.phase,
			Actor:         anim.Vec{X: 460, Y: 330},
			LaserProgress: 0.5,
			Particles:     []anim.Particle{{Alpha: 0.5}, {Alpha: 0}},
			PhaseProgress: 0.3,
		}
		if tt.phase != anim.PhaseFly {
			st.GlowAlpha = 1
		}
		sc := Build(Input{Viewport: v, Spec: spec, Submitted: sub, Anim: st, Animating: true, Now: time.Second})

		if sc.Actor == nil {
			t.Fatalf("%v: expected actor", tt.phase)
		}
		if (len(sc.Beams) > 0) != tt.beams {
			t.Errorf("%v: beams present=%v, expected %v", tt.phase, len(sc.Beams) > 0, tt.beams)
		}
		if tt.beams && len(sc.Beams) != 6 {
			t.Errorf("%v: expected 3 layers x 2 arms, got %d", tt.phase, len(sc.Beams))
		}
		if tt.particles && len(sc.Particles) != 1 {
			t.Errorf("%v: expected only visible particles, got %d", tt.phase, len(sc.Particles))
		}
		if !tt.particles && len(sc.Particles) != 0 {
			t.Errorf("%v: expected no particles, got %d", tt.phase, len(sc.Particles))
		}
		if len(sc.Glows) != tt.glows {
			t.Errorf("%v: expected %d glows, got %d", tt.phase, tt.glows, len(sc.Glows))
		}
		if sc.Actor.Armed != (tt.phase != anim.PhaseFly) {
			t.Errorf("%v: unexpected armed=%v", tt.phase, sc.Actor.Armed)
		}
		if len(sc.Actor.Lights) != 5 {
			t.Errorf("%v: expected 5 rim lights, got %d", tt.phase, len(sc.Actor.Lights))
		}
	}
}
