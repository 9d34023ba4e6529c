package answer

import "vquest/level"

// Hint picks a single directional hint for an incorrect submission.
// Vertex mistakes are reported before slope mistakes, and when h and k are both
// wrong only h is mentioned.
func Hint(sub Submission, spec level.Spec) string {
	ch, ck, ca := spec.Vertex.X, spec.Vertex.Y, spec.A

	if sub.H != ch && sub.K != ck {
		if sub.H < ch {
			return "Try moving h to the right."
		}
		return "Try moving h to the left."
	}
	if sub.H != ch {
		if sub.H < ch {
			return "Shift h to the right."
		}
		return "Shift h to the left."
	}
	if sub.K != ck {
		if sub.K < ck {
			return "Move k up (larger)."
		}
		return "Move k down (smaller)."
	}
	if sub.A != ca {
		switch {
		case abs(sub.A) < abs(ca):
			return "The V needs to be steeper, increase |a|."
		case abs(sub.A) > abs(ca):
			return "The V is too steep, decrease |a|."
		case sub.A > 0 && ca < 0:
			return "Try flipping the V upside down (negative a)."
		case sub.A < 0 && ca > 0:
			return "The V should open upward (positive a)."
		}
		return "Adjust the slope (a)."
	}
	return "Close! Double-check your values."
}
