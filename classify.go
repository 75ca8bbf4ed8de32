package polybool

import "math"

// pointInSimpleLoop is a crossing-number test with on-edge detection.
// A point exactly on an edge (within eps) counts as inside. loop is a
// plain ordered point sequence (not a LoopTopo) so this can be reused
// directly against InputPolygon's Outer/Holes.
func pointInSimpleLoop(loop []Point, p Point, eps float64) bool {
	n := len(loop)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		ap := sub(p, a)
		ab := sub(b, a)
		cross := cross2D(ap, ab)
		if abs(cross) < eps {
			dot := dot2D(ap, ab)
			if dot >= -eps {
				ab2 := dot2D(ab, ab)
				if dot <= ab2+eps {
					return true
				}
			}
		}
	}
	inside := false
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			t := (p.Y - a.Y) / (b.Y - a.Y)
			xHit := a.X + t*(b.X-a.X)
			if xHit >= p.X-eps {
				inside = !inside
			}
		}
	}
	return inside
}

// pointInPolygonWithHoles reports whether p is inside poly's outer
// loop and outside every one of its hole loops.
func pointInPolygonWithHoles(poly InputPolygon, p Point, eps float64) bool {
	if !pointInSimpleLoop(poly.Outer, p, eps) {
		return false
	}
	for _, h := range poly.Holes {
		if pointInSimpleLoop(h, p, eps) {
			return false
		}
	}
	return true
}

// coincidentOpposite is the coincidence-orientation probe. Given an
// atomic segment known to be CoincidentWithOther, it decides whether A
// and B bound the same side of the segment (same-direction
// coincidence, returns false) or opposite sides (returns true). It
// samples midpoint +/- epsProbe along the segment's normal and looks
// for exactly one of the two samples inside A while the other is
// inside B, with the roles swapped between the samples. eps must be
// much smaller than epsProbe (pass EpsParam, not EpsGeom) or both
// samples land inside the probed edge's own on-edge band and register
// as inside both polygons, making every coincident edge look
// same-direction regardless of its true winding.
func coincidentOpposite(seg AtomicSegment, polyA, polyB InputPolygon, eps, epsProbe float64) bool {
	mid := lerpPoint(seg.P0, seg.P1, 0.5)
	dir := sub(seg.P1, seg.P0)
	n := Point{X: dir.Y, Y: -dir.X}
	nlen := math.Hypot(n.X, n.Y)
	if nlen < 1e-12 {
		return false
	}
	n = scale(n, 1/nlen)

	plus := add(mid, scale(n, epsProbe))
	minus := sub(mid, scale(n, epsProbe))

	inAPlus := pointInPolygonWithHoles(polyA, plus, eps)
	inAMinus := pointInPolygonWithHoles(polyA, minus, eps)
	inBPlus := pointInPolygonWithHoles(polyB, plus, eps)
	inBMinus := pointInPolygonWithHoles(polyB, minus, eps)

	oppCase1 := inAPlus && !inBPlus && !inAMinus && inBMinus
	oppCase2 := !inAPlus && inBPlus && inAMinus && !inBMinus
	return oppCase1 || oppCase2
}
