package polybool

import (
	"runtime"
	"sort"
	"sync"
)

// OverlapInterval is a parameter-space sub-interval, low-to-high, on
// which an edge is collinearly coincident with some edge of the other
// polygon.
type OverlapInterval struct {
	T0, T1 float64
}

// EdgeWork is the mutable scratch attached to a RawEdge while cut
// parameters accumulate. cutParams is seeded with {0, 1}.
type EdgeWork struct {
	Edge      RawEdge
	CutParams []float64
	Overlaps  []OverlapInterval
}

// AtomicSegment is a maximal sub-segment of some original edge whose
// interior is free of intersection events.
type AtomicSegment struct {
	P0, P1              Point
	FromA               bool
	LoopID              int
	CoincidentWithOther bool
}

// injectSelfCollinearCuts runs intersect over every unordered pair of
// raw edges within a single polygon, so that T-junctions and
// self-touches already present in one polygon are honored by the
// subdivision. This only needs to record cut params (not overlap
// intervals) — self-coincidence never sets CoincidentWithOther, which
// is reserved for coincidence with the *other* polygon.
func injectSelfCollinearCuts(poly PolygonTopo, edges []RawEdge, work []EdgeWork, epsGeom, epsParam float64) {
	for i := 0; i < len(edges); i++ {
		A0 := poly.Verts[edges[i].VStart].Pos
		A1 := poly.Verts[edges[i].VEnd].Pos
		for j := i + 1; j < len(edges); j++ {
			B0 := poly.Verts[edges[j].VStart].Pos
			B1 := poly.Verts[edges[j].VEnd].Pos
			if !bboxOverlap(A0, A1, B0, B1, epsGeom) {
				continue
			}
			inter := intersect(A0, A1, B0, B1, epsGeom)
			switch inter.Kind {
			case IntersectOverlap:
				work[i].CutParams = append(work[i].CutParams, inter.TA0, inter.TA1)
				work[j].CutParams = append(work[j].CutParams, inter.TB0, inter.TB1)
			case IntersectPoint:
				work[i].CutParams = append(work[i].CutParams, inter.TA)
				work[j].CutParams = append(work[j].CutParams, inter.TB)
			}
		}
	}
}

// crossCutResult is the outcome of intersecting one A-edge against one
// B-edge, addressed back to its (i, j) position so results collected
// from worker goroutines can be merged in deterministic order.
type crossCutResult struct {
	i, j  int
	inter SegmentIntersection
}

// crossCuts runs intersect over every pair (edge_i in A, edge_j in B)
// and returns only the pairs that produced a Point or Overlap,
// indexed by (i, j). The outer loop over A-edges is split across a
// bounded worker pool: each worker owns a private output slice so no
// writes are shared, and crossCuts concatenates the per-worker slices
// and stable-sorts them by (i, j) before returning — giving the same
// result every run regardless of scheduling.
func crossCuts(workA, workB []EdgeWork, polyA, polyB PolygonTopo, epsGeom float64) []crossCutResult {
	n := len(workA)
	if n == 0 || len(workB) == 0 {
		return nil
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	perWorker := make([][]crossCutResult, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var out []crossCutResult
			for i := w; i < n; i += workers {
				A0 := polyA.Verts[workA[i].Edge.VStart].Pos
				A1 := polyA.Verts[workA[i].Edge.VEnd].Pos
				for j := 0; j < len(workB); j++ {
					B0 := polyB.Verts[workB[j].Edge.VStart].Pos
					B1 := polyB.Verts[workB[j].Edge.VEnd].Pos
					if !bboxOverlap(A0, A1, B0, B1, epsGeom) {
						continue
					}
					inter := intersect(A0, A1, B0, B1, epsGeom)
					if inter.Kind == IntersectNone {
						continue
					}
					out = append(out, crossCutResult{i: i, j: j, inter: inter})
				}
			}
			perWorker[w] = out
		}(w)
	}
	wg.Wait()

	// Concatenate per-worker slices in worker order, then stable-sort
	// by (i, j). Each worker's own slice is already ordered by
	// increasing i then j, so the sort just interleaves workers
	// deterministically regardless of goroutine completion order.
	var merged []crossCutResult
	for w := 0; w < workers; w++ {
		merged = append(merged, perWorker[w]...)
	}
	sort.SliceStable(merged, func(a, b int) bool {
		if merged[a].i != merged[b].i {
			return merged[a].i < merged[b].i
		}
		return merged[a].j < merged[b].j
	})
	return merged
}

// explodeEdgeWork sorts ew's cut parameters, dedupes under epsParam,
// and forms consecutive pairs into atomic segments. Pairs narrower
// than epsParam are dropped.
func explodeEdgeWork(ew EdgeWork, poly PolygonTopo, epsParam float64) []AtomicSegment {
	if len(ew.CutParams) == 0 {
		return nil
	}
	params := append([]float64(nil), ew.CutParams...)
	sort.Float64s(params)
	deduped := params[:0:0]
	for _, t := range params {
		if len(deduped) == 0 || t-deduped[len(deduped)-1] >= epsParam {
			deduped = append(deduped, t)
		}
	}

	P0 := poly.Verts[ew.Edge.VStart].Pos
	P1 := poly.Verts[ew.Edge.VEnd].Pos

	inOverlap := func(t0, t1 float64) bool {
		for _, ov := range ew.Overlaps {
			a, b := MinMax(ov.T0, ov.T1)
			if t0 >= a-epsParam && t1 <= b+epsParam {
				return true
			}
		}
		return false
	}

	var out []AtomicSegment
	for k := 0; k+1 < len(deduped); k++ {
		tLo, tHi := deduped[k], deduped[k+1]
		if tHi-tLo < epsParam {
			continue
		}
		out = append(out, AtomicSegment{
			P0:                  lerpPoint(P0, P1, tLo),
			P1:                  lerpPoint(P0, P1, tHi),
			FromA:               ew.Edge.FromA,
			LoopID:              ew.Edge.LoopID,
			CoincidentWithOther: inOverlap(tLo, tHi),
		})
	}
	return out
}

// computeAtomicSegments builds every atomic segment for polygons A and
// B: self-collinear cuts within each polygon, then cross cuts between
// them, then explosion of each edge's accumulated cut parameters.
func computeAtomicSegments(polyA, polyB PolygonTopo, epsGeom, epsParam float64) []AtomicSegment {
	rawA := buildRawEdges(polyA, true)
	rawB := buildRawEdges(polyB, false)

	workA := make([]EdgeWork, len(rawA))
	for i, e := range rawA {
		workA[i] = EdgeWork{Edge: e, CutParams: []float64{0, 1}}
	}
	workB := make([]EdgeWork, len(rawB))
	for i, e := range rawB {
		workB[i] = EdgeWork{Edge: e, CutParams: []float64{0, 1}}
	}

	injectSelfCollinearCuts(polyA, rawA, workA, epsGeom, epsParam)
	injectSelfCollinearCuts(polyB, rawB, workB, epsGeom, epsParam)

	for _, cc := range crossCuts(workA, workB, polyA, polyB, epsGeom) {
		switch cc.inter.Kind {
		case IntersectPoint:
			workA[cc.i].CutParams = append(workA[cc.i].CutParams, cc.inter.TA)
			workB[cc.j].CutParams = append(workB[cc.j].CutParams, cc.inter.TB)
		case IntersectOverlap:
			workA[cc.i].CutParams = append(workA[cc.i].CutParams, cc.inter.TA0, cc.inter.TA1)
			workA[cc.i].Overlaps = append(workA[cc.i].Overlaps, OverlapInterval{T0: cc.inter.TA0, T1: cc.inter.TA1})
			workB[cc.j].CutParams = append(workB[cc.j].CutParams, cc.inter.TB0, cc.inter.TB1)
			workB[cc.j].Overlaps = append(workB[cc.j].Overlaps, OverlapInterval{T0: cc.inter.TB0, T1: cc.inter.TB1})
		}
	}

	var all []AtomicSegment
	for _, ew := range workA {
		all = append(all, explodeEdgeWork(ew, polyA, epsParam)...)
	}
	for _, ew := range workB {
		all = append(all, explodeEdgeWork(ew, polyB, epsParam)...)
	}
	return all
}
