package polybool

// Vertex holds a vertex position plus a flag marking whether this
// vertex was introduced by an intersection event. The flag is
// currently unused by the engine itself (all subdivision happens in
// parameter space on EdgeWork, not on the vertex array) but is kept
// on the model because downstream consumers that walk PolygonTopo
// directly — a re-stitcher, say — need to tell original vertices from
// ones the Boolean engine introduced.
type Vertex struct {
	Pos            Point
	IsIntersection bool
}

// LoopTopo is an ordered list of indices into a PolygonTopo's Verts,
// plus a flag saying whether the loop is a hole.
type LoopTopo struct {
	Verts  []int
	IsHole bool
}

// PolygonTopo is a flat vertex array plus a loop array. Vertices are
// not shared across loops — each loop owns its own run of indices —
// which keeps loop traversal simple at the cost of some duplication.
type PolygonTopo struct {
	Verts []Vertex
	Loops []LoopTopo
}

// closeLoop drops a loop's trailing point when it lies within
// epsClose of the first point, the same rule the text-file loader
// applies. A loop with fewer than three points after closing
// contributes nothing to the topology.
func closeLoop(loop []Point, epsClose float64) []Point {
	if len(loop) < 2 {
		return loop
	}
	first, last := loop[0], loop[len(loop)-1]
	dx, dy := first.X-last.X, first.Y-last.Y
	if dx*dx+dy*dy < epsClose*epsClose {
		return loop[:len(loop)-1]
	}
	return loop
}

// makeTopo walks the outer loop then each hole loop of p, closing each
// per epsClose, and builds a PolygonTopo. Loops with fewer than three
// points after closing are silently dropped.
func makeTopo(p InputPolygon, epsClose float64) PolygonTopo {
	var topo PolygonTopo
	appendLoop := func(raw []Point, isHole bool) {
		pts := closeLoop(raw, epsClose)
		if len(pts) < 3 {
			return
		}
		var lt LoopTopo
		lt.IsHole = isHole
		lt.Verts = make([]int, 0, len(pts))
		for _, pt := range pts {
			idx := len(topo.Verts)
			topo.Verts = append(topo.Verts, Vertex{Pos: pt})
			lt.Verts = append(lt.Verts, idx)
		}
		topo.Loops = append(topo.Loops, lt)
	}
	appendLoop(p.Outer, false)
	for _, h := range p.Holes {
		appendLoop(h, true)
	}
	return topo
}

// RawEdge is one edge of a walked loop: the triple (loopID,
// vStart, vEnd) plus which polygon it came from. LoopID 0 denotes the
// outer loop by convention; positive IDs denote holes, in loop order.
type RawEdge struct {
	LoopID int
	VStart int
	VEnd   int
	FromA  bool
}

// buildRawEdges walks every loop of poly cyclically and returns its
// edges, tagged fromA.
func buildRawEdges(poly PolygonTopo, fromA bool) []RawEdge {
	var edges []RawEdge
	for lid, loop := range poly.Loops {
		n := len(loop.Verts)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			edges = append(edges, RawEdge{
				LoopID: lid,
				VStart: loop.Verts[i],
				VEnd:   loop.Verts[(i+1)%n],
				FromA:  fromA,
			})
		}
	}
	return edges
}
