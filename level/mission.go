package level

import "fmt"

// Mission describes the level's goal relative to the vertex target.
func Mission(s Spec) string {
	dx := s.SlopePoint.X - s.Vertex.X
	dy := s.SlopePoint.Y - s.Vertex.Y

	vert := offset(dy, "up", "down")
	horiz := offset(dx, "right", "left")

	var part string
	switch {
	case vert != "" && horiz != "":
		part = vert + " and " + horiz
	case vert != "":
		part = vert
	case horiz != "":
		part = horiz
	default:
		part = "at the same spot"
	}

	return fmt.Sprintf("Land vertex on (%d, %d) and adjust slope to hit a point %s",
		s.Vertex.X, s.Vertex.Y, part)
}

func offset(d int, pos, neg string) string {
	if d == 0 {
		return ""
	}
	dir := pos
	if d < 0 {
		dir = neg
	}
	n := abs(d)
	unit := "units"
	if n == 1 {
		unit = "unit"
	}
	return fmt.Sprintf("%d %s %s", n, unit, dir)
}
