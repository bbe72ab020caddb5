package clipper

import (
	"container/heap"
	"sort"
)

// int64Heap is a min-heap of scan-line Y values. container/heap is stdlib,
// used here because no third-party priority-queue library appears anywhere
// in the retrieved pack; a handful of ad-hoc sorted-slice examples exist
// but none offer a push/pop heap, so reimplementing one would only
// duplicate container/heap.
type int64Heap []int64

func (h int64Heap) Len() int            { return len(h) }
func (h int64Heap) Less(i, j int) bool  { return h[i] < h[j] }
func (h int64Heap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *int64Heap) Push(x interface{}) { *h = append(*h, x.(int64)) }
func (h *int64Heap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// ZFillFunc lets a caller preserve a Z coordinate through intersections;
// nil by default (spec §9's USINGZ extension point). Arguments are the two
// intersecting edges' endpoints and the crossing point to fill in.
type ZFillFunc func(e1bot, e1top, e2bot, e2top Point64, pt *Point64)

// ClipperBase owns every piece of per-Execute sweep state: the vertex
// rings and local minima built at path-add time, and the AEL/SEL/OutRec/
// joiner state that's only valid during Execute. Grounded on
// clipper.engine.h's ClipperBase class.
type ClipperBase struct {
	PreserveCollinear bool
	ZFill             ZFillFunc

	ClipType ClipType
	FillRule FillRule

	botY           int64
	errorFound     bool
	lastError      error
	hasOpenPaths   bool
	minimaSorted   bool
	usingPolytree  bool

	actives *Active
	sel     *Active

	horzJoiners *Joiner
	joinerList  []*Joiner
	horzQueue   []*Active

	minimaList  []*LocalMinima
	locMinIdx   int
	vertexLists []*Vertex

	scanline int64Heap

	intersectNodes []intersectNode

	outrecList []*OutRec

	solutionClosed Paths64
	solutionOpen   Paths64
	polytree       *PolyPath64
}

// NewClipperBase constructs an engine with PreserveCollinear off (the Go
// zero value; Clipper2's C++ ClipperBase defaults it to true). The
// Clipper64/ClipperD constructors in clipper.go keep this zero value; set
// PreserveCollinear = true to keep collinear vertices.
func NewClipperBase() *ClipperBase {
	return &ClipperBase{}
}

func (cb *ClipperBase) AddPath(path Path64, polytype PathType, isOpen bool) {
	cb.AddPaths(Paths64{path}, polytype, isOpen)
}

func (cb *ClipperBase) AddPaths(paths Paths64, polytype PathType, isOpenPaths bool) {
	if isOpenPaths {
		cb.hasOpenPaths = true
	}
	cb.minimaSorted = false
	for _, path := range paths {
		first := buildPathVertices(path, polytype, isOpenPaths, &cb.minimaList)
		if first == nil {
			continue
		}
		cb.vertexLists = append(cb.vertexLists, first)
	}
}

// Clear drops every added path and all per-Execute state.
func (cb *ClipperBase) Clear() {
	cb.vertexLists = nil
	cb.minimaList = nil
	cb.locMinIdx = 0
	cb.minimaSorted = false
	cb.hasOpenPaths = false
	cb.cleanUp()
}

// cleanUp releases per-Execute state (AEL, OutRecs, joiners) while
// preserving added paths, unlike Clear (spec §5's resource policy).
func (cb *ClipperBase) cleanUp() {
	cb.disposeAllOutRecs()
	cb.actives = nil
	cb.sel = nil
	cb.horzJoiners = nil
	cb.joinerList = nil
	cb.scanline = nil
	cb.intersectNodes = nil
	cb.errorFound = false
}

// LastError returns the detail behind the most recent Execute/ExecuteTree
// returning ok=false, or nil if the last run succeeded (or none has run).
func (cb *ClipperBase) LastError() error {
	return cb.lastError
}

func (cb *ClipperBase) fail(op, message string) {
	cb.errorFound = true
	cb.lastError = newClipError(op, message)
}

func (cb *ClipperBase) disposeAllOutRecs() {
	for _, or := range cb.outrecList {
		// Break the pts cycle and owner back-pointer explicitly so the
		// ring doesn't keep the whole OutRec graph reachable longer than
		// necessary (spec §5: "cleanup pass nulls owners before freeing
		// rings").
		if or.Pts != nil {
			op := or.Pts
			for {
				next := op.Next
				op.Next, op.Prev, op.OutRec = nil, nil, nil
				if next == or.Pts {
					break
				}
				op = next
			}
		}
		or.Owner = nil
		or.FrontEdge = nil
		or.BackEdge = nil
		or.Pts = nil
	}
	cb.outrecList = nil
}

func (cb *ClipperBase) reset() {
	if !cb.minimaSorted {
		sort.SliceStable(cb.minimaList, func(i, j int) bool {
			a, b := cb.minimaList[i].Vertex.Pt, cb.minimaList[j].Vertex.Pt
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.X < b.X
		})
		cb.minimaSorted = true
	}
	cb.scanline = cb.scanline[:0]
	seen := make(map[int64]bool, len(cb.minimaList))
	for _, lm := range cb.minimaList {
		y := lm.Vertex.Pt.Y
		if !seen[y] {
			seen[y] = true
			cb.scanline = append(cb.scanline, y)
		}
	}
	heap.Init(&cb.scanline)
	cb.locMinIdx = 0
	cb.actives = nil
	cb.sel = nil
}

func (cb *ClipperBase) insertScanline(y int64) {
	for _, existing := range cb.scanline {
		if existing == y {
			return
		}
	}
	heap.Push(&cb.scanline, y)
}

func (cb *ClipperBase) popScanline() (int64, bool) {
	if len(cb.scanline) == 0 {
		return 0, false
	}
	return heap.Pop(&cb.scanline).(int64), true
}

// popLocalMinima returns every LocalMinima at exactly y, advancing the
// cursor (spec §4.2).
func (cb *ClipperBase) popLocalMinima(y int64) []*LocalMinima {
	var out []*LocalMinima
	for cb.locMinIdx < len(cb.minimaList) && cb.minimaList[cb.locMinIdx].Vertex.Pt.Y == y {
		out = append(out, cb.minimaList[cb.locMinIdx])
		cb.locMinIdx++
	}
	return out
}
