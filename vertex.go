package clipper

// Vertex is one point of an input path's doubly linked ring, tagged with
// local-min/-max/open-end flags. Closed paths form a cycle; open paths are
// a linear chain with OpenStart/OpenEnd set on the two ends.
//
// Grounded on original_source/CPP/Clipper2Lib/clipper.engine.h's Vertex
// struct; next/prev are plain pointers rather than arena indices since Go's
// GC makes the cyclic-graph caveat in spec.md §9 a documentation note, not
// a memory-safety requirement (cycles are still broken explicitly in
// ClipperBase.cleanUp so OutRecs don't outlive an Execute via a stale ring).
type Vertex struct {
	Pt    Point64
	Next  *Vertex
	Prev  *Vertex
	Flags VertexFlags
}

// LocalMinima is a vertex at which both adjacent edges go upward, paired
// with the polytype and open/closed flag of the path it came from.
type LocalMinima struct {
	Vertex   *Vertex
	PolyType PathType
	IsOpen   bool
}

// buildPathVertices converts one input path into a vertex ring and appends
// one LocalMinima per local-minimum vertex found to minimaList. Returns the
// first vertex of the ring (nil if the path degenerates to nothing usable).
//
// Mirrors clipper.engine.h's ClipperBase::AddPath local-minima detection:
// walk the ring's edges in order, ignore horizontal ones, and mark an
// extremum only where the direction between successive non-horizontal
// edges flips.
func buildPathVertices(path Path64, polytype PathType, isOpen bool, minimaList *[]*LocalMinima) *Vertex {
	path = StripDuplicates(path, !isOpen)
	n := len(path)
	if n == 0 || (!isOpen && n < 3) {
		return nil
	}

	verts := make([]Vertex, n)
	for i, pt := range path {
		verts[i].Pt = pt
	}
	for i := range verts {
		next := (i + 1) % n
		prev := (i - 1 + n) % n
		verts[i].Next = &verts[next]
		verts[i].Prev = &verts[prev]
	}
	if isOpen {
		verts[0].Flags |= VertexOpenStart
		verts[n-1].Flags |= VertexOpenEnd
		verts[0].Prev = nil
		verts[n-1].Next = nil
	}

	first := &verts[0]

	if isOpen {
		// An open path is walked by a single always-forward active edge
		// (insertLocalMinimaIntoAEL never builds a left bound for an
		// OpenStart vertex, only a lone windDx=+1 bound that advances via
		// Vertex.Next regardless of which way each segment happens to
		// point). Local-max/-min pairing exists to match up a *ring's* two
		// converging bounds, so it doesn't apply here: flagging an interior
		// direction reversal as VertexLocalMax would make doMaxima treat it
		// as a pair-retirement event and truncate the path early. Only the
		// real endpoint matters, and it's already flagged VertexOpenEnd
		// above; scanline.go's doTopOfScanbeam (and doHorizontal, for a
		// horizontal final run) terminate the open edge off that flag
		// directly instead of off VertexLocalMax.
		*minimaList = append(*minimaList, &LocalMinima{Vertex: &verts[0], PolyType: polytype, IsOpen: true})
		return first
	}

	// Walk the ring's edges in order, skipping horizontal ones (equal-Y
	// endpoints), and record each point where the direction of travel
	// flips. A descending-then-ascending flip marks the vertex bordering
	// the transition as a local minimum; ascending-then-descending marks
	// it a local maximum. This only ever marks one vertex per extremum,
	// even when the extremum is a flat run of several collinear points
	// (mirrors clipper.engine.h's AddPath, which tracks direction between
	// successive non-horizontal edges rather than classifying vertices
	// independently).
	type edgeDir struct {
		startIdx int
		up       bool
	}
	var edges []edgeDir
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if verts[i].Pt.Y == verts[j].Pt.Y {
			continue
		}
		edges = append(edges, edgeDir{startIdx: i, up: verts[j].Pt.Y > verts[i].Pt.Y})
	}
	if len(edges) == 0 {
		return first
	}

	for k, e := range edges {
		prevK := k - 1
		if prevK < 0 {
			prevK = len(edges) - 1
		}
		prevUp := edges[prevK].up
		if prevUp == e.up {
			continue
		}
		cur := &verts[e.startIdx]
		if e.up {
			cur.Flags |= VertexLocalMin
			*minimaList = append(*minimaList, &LocalMinima{Vertex: cur, PolyType: polytype, IsOpen: false})
		} else {
			cur.Flags |= VertexLocalMax
		}
	}
	return first
}
