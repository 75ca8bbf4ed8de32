package polybool

// IntersectKind discriminates the three cases a pairwise segment
// intersection can fall into.
type IntersectKind int

const (
	// IntersectNone means the segments do not meet within epsilon.
	IntersectNone IntersectKind = iota
	// IntersectPoint means a single crossing (or touch).
	IntersectPoint
	// IntersectOverlap means a collinear shared sub-interval.
	IntersectOverlap
)

// SegmentIntersection is the tagged-variant result of intersect: a
// single Kind field selects which of the Point or Overlap fields are
// meaningful, so callers never read a field that was never populated.
type SegmentIntersection struct {
	Kind IntersectKind

	// Populated when Kind == IntersectPoint.
	TA, TB float64
	P      Point

	// Populated when Kind == IntersectOverlap. TA0/TA1 are ordered
	// low-to-high on segment A's parametric axis; TB0/TB1 likewise
	// on B's.
	TA0, TA1 float64
	TB0, TB1 float64
}

// intersect classifies the pairwise relationship between segment
// A0-A1 and segment B0-B1. epsGeom governs both the parallelism test
// and the endpoint-clamping window.
//
// Decision order: non-parallel segments are solved directly for their
// crossing parameters; parallel segments are checked for being on the
// same line (collinear) versus merely parallel; collinear segments
// are resolved by projecting each endpoint onto the other segment's
// parametric axis, which yields either a point (near-zero overlap,
// i.e. a touch) or a genuine shared sub-interval.
func intersect(A0, A1, B0, B1 Point, epsGeom float64) SegmentIntersection {
	var out SegmentIntersection
	r := sub(A1, A0)
	s := sub(B1, B0)
	d := sub(B0, A0)
	rxs := cross2D(r, s)

	if abs(rxs) > epsGeom {
		t := cross2D(d, s) / rxs
		u := cross2D(d, r) / rxs
		if t >= -epsGeom && t <= 1+epsGeom && u >= -epsGeom && u <= 1+epsGeom {
			t = clamp01(t)
			u = clamp01(u)
			out.Kind = IntersectPoint
			out.TA, out.TB = t, u
			out.P = add(A0, scale(r, t))
		}
		return out
	}

	// Parallel. Distinct lines (non-collinear) never intersect.
	if abs(cross2D(d, r)) > epsGeom {
		return out
	}

	rr := dot2D(r, r)
	ss := dot2D(s, s)
	paramOnA := func(p Point) float64 {
		if rr < epsGeom {
			return 0
		}
		return dot2D(sub(p, A0), r) / rr
	}
	paramOnB := func(p Point) float64 {
		if ss < epsGeom {
			return 0
		}
		return dot2D(sub(p, B0), s) / ss
	}

	tALo, tAHi, okA := intervalIntersection(0, 1, paramOnA(B0), paramOnA(B1))
	if !okA {
		return out
	}
	tBLo, tBHi, okB := intervalIntersection(0, 1, paramOnB(A0), paramOnB(A1))
	if !okB {
		return out
	}

	lenA := tAHi - tALo
	lenB := tBHi - tBLo
	if lenA <= epsGeom && lenB <= epsGeom {
		tAMid := 0.5 * (tALo + tAHi)
		tBMid := 0.5 * (tBLo + tBHi)
		out.Kind = IntersectPoint
		out.TA, out.TB = tAMid, tBMid
		out.P = lerpPoint(A0, A1, tAMid)
		return out
	}

	out.Kind = IntersectOverlap
	out.TA0, out.TA1 = tALo, tAHi
	out.TB0, out.TB1 = tBLo, tBHi
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
