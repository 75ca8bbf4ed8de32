package polybool

// PrepContext holds the two polygons' topology plus the full atomic
// segment list computed for them. Build it once per (A, B) pair with
// Prepare and reuse it across however many of the four operations the
// caller needs; none of the operation functions mutate it.
type PrepContext struct {
	TopoA PolygonTopo
	TopoB PolygonTopo
	Atoms []AtomicSegment
}

// Prepare builds the topology of A and B and the complete atomic
// segment list between them. Each Boolean operation then filters
// ctx.Atoms through its own keep/drop rule table.
func Prepare(a, b InputPolygon, tol Tolerances) PrepContext {
	topoA := makeTopo(a, tol.EpsClose)
	topoB := makeTopo(b, tol.EpsClose)
	atoms := computeAtomicSegments(topoA, topoB, tol.EpsGeom, tol.EpsParam)
	return PrepContext{TopoA: topoA, TopoB: topoB, Atoms: atoms}
}

// Polyline is a single kept atomic segment re-expressed as its two
// endpoints.
type Polyline [2]Point

func segmentsToPolylines(segs []AtomicSegment) []Polyline {
	out := make([]Polyline, len(segs))
	for i, s := range segs {
		out[i] = Polyline{s.P0, s.P1}
	}
	return out
}

// midpointContainment is shared by every non-coincident branch of the
// operation selector: the only two facts that matter for a
// non-coincident segment are whether its midpoint lies inside A and
// inside B. eps is a point-in-polygon tolerance (EpsParam), not the
// segment-intersection tolerance (EpsGeom). The midpoint lies on its
// own source polygon's boundary (and counts as inside it through the
// on-edge rule) and, for a non-coincident segment, off the other
// polygon's boundary, so the tighter value is safe here.
func midpointContainment(seg AtomicSegment, a, b InputPolygon, eps float64) (inA, inB bool) {
	mid := lerpPoint(seg.P0, seg.P1, 0.5)
	return pointInPolygonWithHoles(a, mid, eps), pointInPolygonWithHoles(b, mid, eps)
}

// Union computes A ∪ B: the coincident-opposite case is dropped (the
// two opposing boundary layers cancel), the coincident-same case is
// deduped by keeping only the copy fromA, and a non-coincident segment
// survives iff the *other* polygon does not contain it.
func Union(ctx PrepContext, a, b InputPolygon, tol Tolerances) []Polyline {
	var keep []AtomicSegment
	for _, seg := range ctx.Atoms {
		if seg.CoincidentWithOther {
			if !coincidentOpposite(seg, a, b, tol.EpsParam, tol.EpsProbe) && seg.FromA {
				keep = append(keep, seg)
			}
			continue
		}
		inA, inB := midpointContainment(seg, a, b, tol.EpsParam)
		if seg.FromA {
			if !inB {
				keep = append(keep, seg)
			}
		} else {
			if !inA {
				keep = append(keep, seg)
			}
		}
	}
	return segmentsToPolylines(keep)
}

// Intersection computes A ∩ B with the same coincident-edge rules as
// Union, but a non-coincident segment survives iff the *other*
// polygon's interior contains it.
func Intersection(ctx PrepContext, a, b InputPolygon, tol Tolerances) []Polyline {
	var keep []AtomicSegment
	for _, seg := range ctx.Atoms {
		if seg.CoincidentWithOther {
			if !coincidentOpposite(seg, a, b, tol.EpsParam, tol.EpsProbe) && seg.FromA {
				keep = append(keep, seg)
			}
			continue
		}
		inA, inB := midpointContainment(seg, a, b, tol.EpsParam)
		if seg.FromA {
			if inB {
				keep = append(keep, seg)
			}
		} else {
			if inA {
				keep = append(keep, seg)
			}
		}
	}
	return segmentsToPolylines(keep)
}

// SubtractAB computes A − B. Coincident-opposite segments are kept
// when fromA (they are the true boundary of the cut); coincident-same
// segments are dropped entirely (both copies sit inside the
// untouched-material region's interior or exterior together and carry
// no boundary information for the difference). Non-coincident
// segments use loop-aware rules: a hole-loop segment's "material
// side" is the outside of its own loop, so its keep condition is the
// mirror image of an outer-loop segment's.
func SubtractAB(ctx PrepContext, a, b InputPolygon, tol Tolerances) []Polyline {
	var keep []AtomicSegment
	for _, seg := range ctx.Atoms {
		if seg.CoincidentWithOther {
			if coincidentOpposite(seg, a, b, tol.EpsParam, tol.EpsProbe) && seg.FromA {
				keep = append(keep, seg)
			}
			continue
		}
		inA, inB := midpointContainment(seg, a, b, tol.EpsParam)
		hole := seg.LoopID > 0
		var useIt bool
		switch {
		case seg.FromA && hole:
			useIt = !inB
		case seg.FromA && !hole:
			useIt = inA && !inB
		case !seg.FromA && hole:
			useIt = inA && !inB
		default: // fromB, outer
			useIt = inA && inB
		}
		if useIt {
			keep = append(keep, seg)
		}
	}
	return segmentsToPolylines(keep)
}

// SubtractBA computes B − A; it is SubtractAB with the roles of A and
// B swapped throughout its rule table.
func SubtractBA(ctx PrepContext, a, b InputPolygon, tol Tolerances) []Polyline {
	var keep []AtomicSegment
	for _, seg := range ctx.Atoms {
		if seg.CoincidentWithOther {
			if coincidentOpposite(seg, a, b, tol.EpsParam, tol.EpsProbe) && !seg.FromA {
				keep = append(keep, seg)
			}
			continue
		}
		inA, inB := midpointContainment(seg, a, b, tol.EpsParam)
		hole := seg.LoopID > 0
		var useIt bool
		switch {
		case !seg.FromA && hole:
			useIt = !inA
		case !seg.FromA && !hole:
			useIt = inB && !inA
		case seg.FromA && hole:
			useIt = inB && !inA
		default: // fromA, outer
			useIt = inA && inB
		}
		if useIt {
			keep = append(keep, seg)
		}
	}
	return segmentsToPolylines(keep)
}
