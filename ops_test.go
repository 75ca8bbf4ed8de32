package polybool

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// canonicalPolylines sorts polylines and normalizes each one's
// endpoint order, so two polyline sets that represent the same
// geometry up to ordering compare equal.
func canonicalPolylines(lines []Polyline) []Polyline {
	out := append([]Polyline(nil), lines...)
	for i, l := range out {
		if l[1].X < l[0].X || (l[1].X == l[0].X && l[1].Y < l[0].Y) {
			out[i] = Polyline{l[1], l[0]}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a[0].X != b[0].X {
			return a[0].X < b[0].X
		}
		if a[0].Y != b[0].Y {
			return a[0].Y < b[0].Y
		}
		if a[1].X != b[1].X {
			return a[1].X < b[1].X
		}
		return a[1].Y < b[1].Y
	})
	return out
}

func totalLength(lines []Polyline) float64 {
	var sum float64
	for _, l := range lines {
		dx, dy := l[1].X-l[0].X, l[1].Y-l[0].Y
		sum += math.Hypot(dx, dy)
	}
	return sum
}

// S1/S2: two overlapping unit-offset squares of side 2.
func overlappingSquares() (InputPolygon, InputPolygon) {
	a := square(0, 0, 2, 2)
	b := square(1, 1, 3, 3)
	return a, b
}

func TestS1IntersectionOfOverlappingSquares(t *testing.T) {
	a, b := overlappingSquares()
	tol := DefaultTolerances()
	ctx := Prepare(a, b, tol)
	got := Intersection(ctx, a, b, tol)
	if len(got) != 4 {
		t.Fatalf("expected 4 atomic segments tracing the [1,1]-[2,2] box, got %d: %+v", len(got), got)
	}
	want := totalLength([]Polyline{
		{{1, 1}, {2, 1}}, {{2, 1}, {2, 2}}, {{2, 2}, {1, 2}}, {{1, 2}, {1, 1}},
	})
	if math.Abs(totalLength(got)-want) > 1e-6 {
		t.Fatalf("expected total boundary length %v, got %v", want, totalLength(got))
	}
}

func TestS2SubtractABLShape(t *testing.T) {
	a, b := overlappingSquares()
	tol := DefaultTolerances()
	ctx := Prepare(a, b, tol)
	got := SubtractAB(ctx, a, b, tol)
	want := totalLength([]Polyline{
		{{0, 0}, {2, 0}}, {{2, 0}, {2, 1}}, {{2, 1}, {1, 1}},
		{{1, 1}, {1, 2}}, {{1, 2}, {0, 2}}, {{0, 2}, {0, 0}},
	})
	if math.Abs(totalLength(got)-want) > 1e-6 {
		t.Fatalf("expected L-shaped boundary length %v, got %v (%d segments)", want, totalLength(got), len(got))
	}
}

func TestS3CoincidentEdgeNotDoubled(t *testing.T) {
	// A and B are adjacent squares sharing the edge x=2 with opposite
	// winding along it, so that edge is interior to A∪B and must not
	// appear in the union at all (not merely not doubled).
	a := InputPolygon{Outer: []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}}
	b := InputPolygon{Outer: []Point{{2, 0}, {4, 0}, {4, 2}, {2, 2}}}
	tol := DefaultTolerances()
	ctx := Prepare(a, b, tol)

	for _, seg := range ctx.Atoms {
		if seg.P0.X == 2 && seg.P1.X == 2 {
			if !coincidentOpposite(seg, a, b, tol.EpsParam, tol.EpsProbe) {
				t.Fatalf("shared edge %+v must be classified opposite-coincident", seg)
			}
		}
	}

	got := Union(ctx, a, b, tol)
	var onSharedEdge int
	for _, l := range got {
		if l[0].X == 2 && l[1].X == 2 {
			onSharedEdge++
		}
	}
	if onSharedEdge != 0 {
		t.Fatalf("the shared edge x=2 is interior to A∪B and must not be emitted, got %d copies", onSharedEdge)
	}
}

func TestS4PolygonWithHoleIntersection(t *testing.T) {
	a := InputPolygon{
		Outer: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Holes: [][]Point{{{0.25, 0.25}, {0.75, 0.25}, {0.75, 0.75}, {0.25, 0.75}}},
	}
	b := square(0.5, 0.5, 1.5, 1.5)
	tol := DefaultTolerances()
	ctx := Prepare(a, b, tol)
	got := Intersection(ctx, a, b, tol)
	if len(got) == 0 {
		t.Fatal("expected a nonempty intersection between A-minus-hole and B")
	}
	for _, l := range got {
		mid := lerpPoint(l[0], l[1], 0.5)
		hole := InputPolygon{Outer: a.Holes[0]}
		if pointInSimpleLoop(a.Holes[0], mid, tol.EpsGeom) && !onBoundary(hole, mid, tol.EpsGeom) {
			// The boundary of A's own hole legitimately appears in the
			// intersection's trace wherever B covers it; a midpoint
			// strictly inside the hole (which is not part of A) would
			// indicate a bug in hole handling.
			t.Fatalf("kept segment midpoint %v falls strictly inside A's hole", mid)
		}
	}
}

func onBoundary(p InputPolygon, pt Point, eps float64) bool {
	loops := append([][]Point{p.Outer}, p.Holes...)
	for _, loop := range loops {
		n := len(loop)
		for i := 0; i < n; i++ {
			a, b := loop[i], loop[(i+1)%n]
			ab := sub(b, a)
			ap := sub(pt, a)
			cross := cross2D(ap, ab)
			if abs(cross) < 1e-6 {
				return true
			}
		}
	}
	return false
}

func TestS5TJunctionProducesTwoSegments(t *testing.T) {
	a := InputPolygon{Outer: []Point{{1, 0}, {2, 2}, {0, 2}}} // vertex (1,0) touches B's bottom edge
	b := square(0, 0, 2, 1)
	tol := DefaultTolerances()
	topoA := makeTopo(a, tol.EpsClose)
	topoB := makeTopo(b, tol.EpsClose)
	atoms := computeAtomicSegments(topoA, topoB, tol.EpsGeom, tol.EpsParam)
	var bottomEdgeAtoms int
	for _, seg := range atoms {
		if !seg.FromA && seg.P0.Y == 0 && seg.P1.Y == 0 {
			bottomEdgeAtoms++
		}
	}
	if bottomEdgeAtoms != 2 {
		t.Fatalf("expected B's bottom edge to be cut into 2 atomic segments at the T-junction, got %d", bottomEdgeAtoms)
	}
}

func TestS6IdenticalPolygons(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(0, 0, 1, 1)
	tol := DefaultTolerances()
	ctx := Prepare(a, b, tol)

	union := Union(ctx, a, b, tol)
	if len(union) != 4 {
		t.Fatalf("A∪A must emit each edge once, got %d segments", len(union))
	}
	inter := Intersection(ctx, a, b, tol)
	if len(inter) != 4 {
		t.Fatalf("A∩A must emit each edge once, got %d segments", len(inter))
	}
	diff := SubtractAB(ctx, a, b, tol)
	if len(diff) != 0 {
		t.Fatalf("A−A must be empty, got %d segments: %+v", len(diff), diff)
	}
}

func TestPropertyEmptyB(t *testing.T) {
	a := square(0, 0, 2, 2)
	empty := InputPolygon{}
	tol := DefaultTolerances()
	ctx := Prepare(a, empty, tol)

	if got := Intersection(ctx, a, empty, tol); len(got) != 0 {
		t.Fatalf("A∩∅ must be empty, got %d segments", len(got))
	}
	if got := SubtractAB(ctx, a, empty, tol); len(got) != 4 {
		t.Fatalf("A−∅ must be the boundary of A (4 segments), got %d", len(got))
	}
	if got := SubtractBA(ctx, a, empty, tol); len(got) != 0 {
		t.Fatalf("∅−A must be empty, got %d segments", len(got))
	}
	if got := Union(ctx, a, empty, tol); len(got) != 4 {
		t.Fatalf("A∪∅ must be the boundary of A (4 segments), got %d", len(got))
	}
}

func TestPropertyCommutativity(t *testing.T) {
	a, b := overlappingSquares()
	tol := DefaultTolerances()

	ctxAB := Prepare(a, b, tol)
	ctxBA := Prepare(b, a, tol)

	unionAB := canonicalPolylines(Union(ctxAB, a, b, tol))
	unionBA := canonicalPolylines(Union(ctxBA, b, a, tol))
	if diff := cmp.Diff(unionAB, unionBA, pointApprox); diff != "" {
		t.Fatalf("A∪B and B∪A must trace the same boundary (-AB +BA):\n%s", diff)
	}

	interAB := canonicalPolylines(Intersection(ctxAB, a, b, tol))
	interBA := canonicalPolylines(Intersection(ctxBA, b, a, tol))
	if diff := cmp.Diff(interAB, interBA, pointApprox); diff != "" {
		t.Fatalf("A∩B and B∩A must trace the same boundary (-AB +BA):\n%s", diff)
	}
}

// pointApprox compares Points up to the same tolerance the other
// property checks in this file use, so go-cmp's diff output doesn't
// flag harmless floating-point noise as a mismatch.
var pointApprox = cmp.Comparer(func(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
})

func TestPropertyDisjointBoundingBoxes(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(10, 10, 11, 11)
	tol := DefaultTolerances()
	ctx := Prepare(a, b, tol)

	if got := Union(ctx, a, b, tol); len(got) != 8 {
		t.Fatalf("disjoint union must keep all 8 original edges, got %d", len(got))
	}
	if got := Intersection(ctx, a, b, tol); len(got) != 0 {
		t.Fatalf("disjoint intersection must keep nothing, got %d", len(got))
	}
	if got := SubtractAB(ctx, a, b, tol); len(got) != 4 {
		t.Fatalf("disjoint A−B must keep all of A, got %d", len(got))
	}
	if got := SubtractBA(ctx, a, b, tol); len(got) != 4 {
		t.Fatalf("disjoint B−A must keep all of B, got %d", len(got))
	}
}

func TestPropertyMidpointStability(t *testing.T) {
	a, b := overlappingSquares()
	tol := DefaultTolerances()
	ctx := Prepare(a, b, tol)
	for _, seg := range ctx.Atoms {
		if seg.CoincidentWithOther {
			continue
		}
		inA, inB := midpointContainment(seg, a, b, tol.EpsParam)
		wantUnion := (seg.FromA && !inB) || (!seg.FromA && !inA)
		wantInter := (seg.FromA && inB) || (!seg.FromA && inA)

		gotUnion := containsSegment(Union(ctx, a, b, tol), seg)
		gotInter := containsSegment(Intersection(ctx, a, b, tol), seg)
		if gotUnion != wantUnion {
			t.Fatalf("union decision mismatch for %+v: want %v got %v", seg, wantUnion, gotUnion)
		}
		if gotInter != wantInter {
			t.Fatalf("intersection decision mismatch for %+v: want %v got %v", seg, wantInter, gotInter)
		}
	}
}

func containsSegment(lines []Polyline, seg AtomicSegment) bool {
	for _, l := range lines {
		if l[0] == seg.P0 && l[1] == seg.P1 {
			return true
		}
	}
	return false
}
