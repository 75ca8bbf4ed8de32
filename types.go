package polybool

// Point holds a 2D coordinate. X increases to the right, Y increases
// up the page.
type Point struct {
	X, Y float64
}

// MinMax sorts two numbers into ascending order.
func MinMax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// BB determines the lower-left and upper-right corners of the
// bounding box of a and b.
func BB(a, b Point) (lo, hi Point) {
	lo.X, hi.X = MinMax(a.X, b.X)
	lo.Y, hi.Y = MinMax(a.Y, b.Y)
	return
}

// bboxOverlap reports whether the bounding boxes of segment a0-a1 and
// segment b0-b1 come within slack of touching. It is a cheap reject
// used to skip the full intersection kernel for segment pairs that
// cannot possibly meet.
func bboxOverlap(a0, a1, b0, b1 Point, slack float64) bool {
	aLo, aHi := BB(a0, a1)
	bLo, bHi := BB(b0, b1)
	if aLo.X-bHi.X > slack || bLo.X-aHi.X > slack {
		return false
	}
	if aLo.Y-bHi.Y > slack || bLo.Y-aHi.Y > slack {
		return false
	}
	return true
}

// InputPolygon is an outer boundary loop plus zero or more hole
// loops. Loops are ordered sequences of points with an implicit edge
// closing the last point back to the first; callers must not repeat
// the first point at the end (the loader drops that duplicate for
// callers that load from text files).
type InputPolygon struct {
	Outer []Point
	Holes [][]Point
}

// Empty reports whether the polygon has no outer loop.
func (p InputPolygon) Empty() bool {
	return len(p.Outer) == 0
}

// Tolerances names the three epsilon values the engine needs plus the
// coincidence-orientation probe distance. Conflating any of these
// breaks either coincidence detection or T-junction handling, so each
// is threaded explicitly rather than hard-coded.
type Tolerances struct {
	// EpsClose is the Euclidean distance under which a loop's
	// trailing point is considered a duplicate of its first point.
	EpsClose float64
	// EpsGeom is the threshold used by the segment intersection
	// kernel for parallelism and endpoint-clamping decisions.
	EpsGeom float64
	// EpsParam is the parameter-space tolerance used to dedupe cut
	// parameters and to reject atomic segments shorter than it.
	EpsParam float64
	// EpsProbe is the offset used by the coincidence-orientation
	// probe; it must be much larger than the point-in-polygon tolerance
	// the probe is evaluated with (EpsParam) so the probe lands clearly
	// off the boundary.
	EpsProbe float64
}

// DefaultTolerances returns a conservative tolerance triple (plus
// probe distance) suitable for geometry expressed in ordinary
// floating-point units.
func DefaultTolerances() Tolerances {
	return Tolerances{
		EpsClose: 1e-9,
		EpsGeom:  1e-3,
		EpsParam: 1e-9,
		EpsProbe: 1e-4,
	}
}
