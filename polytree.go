package clipper

// PolyPath64 is a node of the containment tree Execute's tree-mode entry
// point returns: outer rings and the holes/outers nested inside them,
// preserving path ownership the flat Paths64 result discards (spec §4.10).
// Grounded on clipper.engine.h's PolyPath<T> template, collapsed to a
// concrete int64 type per spec §9's "do not parameterize the core on
// coordinate type".
type PolyPath64 struct {
	Polygon Path64
	Parent  *PolyPath64
	Childs  []*PolyPath64
}

// PolyPathD is the floating-point analogue, produced by ClipperD.ExecuteTree
// (clipper.go) and consumed by the geomio.go adapter.
type PolyPathD struct {
	Polygon PathD
	Parent  *PolyPathD
	Childs  []*PolyPathD
}

func (pp *PolyPath64) addChild(path Path64) *PolyPath64 {
	child := &PolyPath64{Polygon: path, Parent: pp}
	pp.Childs = append(pp.Childs, child)
	return child
}

// IsHole reports whether pp sits at an even depth (2, 4, ...) under the
// tree root: the root's direct children are outers, and holes alternate
// with outers at each nesting level below them.
func (pp *PolyPath64) IsHole() bool {
	isHole := false
	for p := pp.Parent; p != nil && p.Parent != nil; p = p.Parent {
		isHole = !isHole
	}
	return isHole
}

// Area returns this node's signed area plus every descendant's.
func (pp *PolyPath64) Area() float64 {
	total := Area(pp.Polygon)
	for _, c := range pp.Childs {
		total += c.Area()
	}
	return total
}

func (pp *PolyPath64) Count() int {
	n := len(pp.Childs)
	for _, c := range pp.Childs {
		n += c.Count()
	}
	return n
}

// pointInPolygon implements the standard ray-casting test used by the tree
// builder to confirm bounding-box candidates (spec §4.10).
func pointInPolygon(pt Point64, path Path64) PointInPolyResult {
	n := len(path)
	if n < 3 {
		return IsOutside
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := path[i], path[j]
		if pointsEqual(pt, pi) {
			return IsOn
		}
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			slopeCross := float64(pj.X-pi.X)*float64(pt.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(pt.X) < slopeCross {
				inside = !inside
			} else if float64(pt.X) == slopeCross {
				return IsOn
			}
		}
		j = i
	}
	if inside {
		return IsInside
	}
	return IsOutside
}

type ringCandidate struct {
	outrec *OutRec
	path   Path64
	bounds Rect64
	area   float64
}

// buildTree reconstructs nesting for every surviving closed ring: each
// ring's parent is the innermost other ring whose bounding box contains
// its first point and for which a point-in-polygon test returns inside
// (spec §4.10). Open paths bypass the tree entirely.
func (cb *ClipperBase) buildTree() *PolyPath64 {
	root := &PolyPath64{}
	var candidates []ringCandidate
	for _, or := range cb.outrecList {
		if or.State == StateOpen || or.Pts == nil {
			continue
		}
		path := ringToPath(or.Pts)
		if len(path) < 3 {
			continue
		}
		candidates = append(candidates, ringCandidate{
			outrec: or,
			path:   path,
			bounds: GetBounds(path),
			area:   Area(path),
		})
	}

	nodeFor := make(map[*OutRec]*PolyPath64, len(candidates))
	parentIdx := make([]int, len(candidates))
	for i, c := range candidates {
		parentIdx[i] = -1
		bestArea := 0.0
		first := true
		for j, other := range candidates {
			if i == j || !other.bounds.Contains(c.path[0]) {
				continue
			}
			if pointInPolygon(c.path[0], other.path) != IsInside {
				continue
			}
			absArea := absFloat(other.area)
			if first || absArea < bestArea {
				bestArea = absArea
				parentIdx[i] = j
				first = false
			}
		}
	}

	// create nodes in an order where parents always precede children:
	// repeatedly attach any candidate whose parent is already resolved.
	remaining := make([]int, len(candidates))
	for i := range candidates {
		remaining[i] = i
	}
	for len(remaining) > 0 {
		progressed := false
		next := remaining[:0]
		for _, i := range remaining {
			pIdx := parentIdx[i]
			var parentNode *PolyPath64
			if pIdx < 0 {
				parentNode = root
			} else if n, ok := nodeFor[candidates[pIdx].outrec]; ok {
				parentNode = n
			} else {
				next = append(next, i)
				continue
			}
			node := parentNode.addChild(candidates[i].path)
			nodeFor[candidates[i].outrec] = node
			candidates[i].outrec.PolyPath = node
			progressed = true
		}
		remaining = next
		if !progressed && len(remaining) > 0 {
			// a cycle would indicate a bug in candidate containment;
			// fall back to attaching the stragglers at the root rather
			// than looping forever.
			for _, i := range remaining {
				node := root.addChild(candidates[i].path)
				nodeFor[candidates[i].outrec] = node
				candidates[i].outrec.PolyPath = node
			}
			break
		}
	}

	return root
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// ringToPath materializes an OutPt cycle into a plain Path64.
func ringToPath(start *OutPt) Path64 {
	if start == nil {
		return nil
	}
	var path Path64
	op := start
	for {
		path = append(path, op.Pt)
		op = op.Next
		if op == start {
			break
		}
	}
	return path
}
