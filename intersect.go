package clipper

import "sort"

// intersectNode is one recorded AEL crossing within the current scan-beam
// (spec §4.7).
type intersectNode struct {
	e1, e2 *Active
	pt     Point64
}

func isHotEdge(e *Active) bool { return e.OutRec != nil }
func isFront(e *Active) bool   { return e == e.OutRec.FrontEdge }

func swapOutrecs(e1, e2 *Active) {
	or1, or2 := e1.OutRec, e2.OutRec
	if or1 == or2 {
		or := or1
		e := or.FrontEdge
		or.FrontEdge = or.BackEdge
		or.BackEdge = e
		return
	}
	if or1 != nil {
		if e1 == or1.FrontEdge {
			or1.FrontEdge = e2
		} else {
			or1.BackEdge = e2
		}
	}
	if or2 != nil {
		if e2 == or2.FrontEdge {
			or2.FrontEdge = e1
		} else {
			or2.BackEdge = e1
		}
	}
	e1.OutRec, e2.OutRec = or2, or1
}

// intersectPoint computes the geometric crossing of two non-parallel
// segments, snapped to the nearest integer point (spec §4.7's numerical
// policy).
func intersectPoint(e1, e2 *Active) (Point64, bool) {
	if e1.Dx == e2.Dx {
		return Point64{}, false
	}
	var x, y float64
	if e1.Dx == 0 {
		x = float64(e1.Bot.X)
		y = e2.Dx*(x-float64(e2.Bot.X)) + float64(e2.Bot.Y)
	} else if e2.Dx == 0 {
		x = float64(e2.Bot.X)
		y = e1.Dx*(x-float64(e1.Bot.X)) + float64(e1.Bot.Y)
	} else {
		b1 := float64(e1.Bot.Y) - float64(e1.Bot.X)*e1.Dx
		b2 := float64(e2.Bot.Y) - float64(e2.Bot.X)*e2.Dx
		x = (b2 - b1) / (e1.Dx - e2.Dx)
		y = e1.Dx*x + b1
	}
	return Point64{X: round64(x), Y: round64(y)}, true
}

// updateWindCountsAt updates e1/e2's winding counts in place for their
// crossing; intersectEdges saves the pre-update counts itself before
// calling it.
func (cb *ClipperBase) updateWindCountsAt(e1, e2 *Active) {
	if e1.LocalMin.PolyType == e2.LocalMin.PolyType {
		if cb.FillRule == EvenOdd {
			e1.WindCnt, e2.WindCnt = e2.WindCnt, e1.WindCnt
		} else {
			if e1.WindCnt+e2.WindDx == 0 {
				e1.WindCnt = -e1.WindCnt
			} else {
				e1.WindCnt += e2.WindDx
			}
			if e2.WindCnt-e1.WindDx == 0 {
				e2.WindCnt = -e2.WindCnt
			} else {
				e2.WindCnt -= e1.WindDx
			}
		}
	} else {
		if cb.FillRule != EvenOdd {
			e1.WindCnt2 += e2.WindDx
			e2.WindCnt2 -= e1.WindDx
		} else {
			if e1.WindCnt2 == 0 {
				e1.WindCnt2 = 1
			} else {
				e1.WindCnt2 = 0
			}
			if e2.WindCnt2 == 0 {
				e2.WindCnt2 = 1
			} else {
				e2.WindCnt2 = 0
			}
		}
	}
}

// intersectEdges updates both edges' winding counts, emits output points
// if either contributes, and swaps OutRec ownership if the crossing joins
// two hot edges from different rings (spec §4.7 step 4).
func (cb *ClipperBase) intersectEdges(e1, e2 *Active, pt Point64) *OutPt {
	if cb.ZFill != nil {
		cb.ZFill(e1.Bot, e1.Top, e2.Bot, e2.Top, &pt)
	}

	if cb.hasOpenPaths && (isOpen(e1) || isOpen(e2)) {
		if isOpen(e1) && isOpen(e2) {
			return nil
		}
		edgeO, edgeC := e1, e2
		if isOpen(e2) {
			edgeO, edgeC = e2, e1
		}
		if edgeO.LocalMin.PolyType != edgeC.LocalMin.PolyType {
			edgeO.WindCnt2 = edgeC.WindCnt
		}
		var contributes bool
		switch cb.ClipType {
		case Union:
			contributes = isHotEdge(edgeO)
		default:
			contributes = edgeO.WindCnt2 != 0
		}
		if !contributes {
			return nil
		}
		if isHotEdge(edgeO) {
			return cb.addOutPt(edgeO, pt)
		}
		return cb.startOpenPath(edgeO, pt)
	}

	oldE1Wc, oldE2Wc := e1.WindCnt, e2.WindCnt
	cb.updateWindCountsAt(e1, e2)

	switch {
	case !isHotEdge(e1) && !isHotEdge(e2):
		return nil
	case isHotEdge(e1) && isHotEdge(e2):
		if (oldE1Wc != 0 && oldE1Wc != 1) || (oldE2Wc != 0 && oldE2Wc != 1) ||
			(e1.LocalMin.PolyType != e2.LocalMin.PolyType && cb.ClipType != Xor) {
			return cb.addLocalMaxPoly(e1, e2, pt)
		}
		if isFront(e1) || e1.OutRec == e2.OutRec {
			op := cb.addLocalMaxPoly(e1, e2, pt)
			cb.addLocalMinPoly(e1, e2, pt, false)
			return op
		}
		op := cb.addOutPt(e1, pt)
		cb.addOutPt(e2, pt)
		swapOutrecs(e1, e2)
		return op
	case isHotEdge(e1):
		op := cb.addOutPt(e1, pt)
		swapOutrecs(e1, e2)
		return op
	case isHotEdge(e2):
		op := cb.addOutPt(e2, pt)
		swapOutrecs(e1, e2)
		return op
	}

	var e1Wc2, e2Wc2 int
	switch cb.FillRule {
	case Positive:
		e1Wc2, e2Wc2 = e1.WindCnt2, e2.WindCnt2
	case Negative:
		e1Wc2, e2Wc2 = -e1.WindCnt2, -e2.WindCnt2
	default:
		e1Wc2, e2Wc2 = absInt(e1.WindCnt2), absInt(e2.WindCnt2)
	}

	if e1.LocalMin.PolyType != e2.LocalMin.PolyType {
		return cb.addLocalMinPoly(e1, e2, pt, false)
	}
	if oldE1Wc != 1 || oldE2Wc != 1 {
		return nil
	}
	switch cb.ClipType {
	case Intersection:
		if e1Wc2 <= 0 || e2Wc2 <= 0 {
			return nil
		}
	case Union:
		if e1Wc2 > 0 && e2Wc2 > 0 {
			return nil
		}
	case Difference:
		isSubj := e1.LocalMin.PolyType == Subject
		if isSubj && (e1Wc2 > 0 && e2Wc2 > 0) {
			return nil
		}
		if !isSubj && (e1Wc2 <= 0 && e2Wc2 <= 0) {
			return nil
		}
	case Xor:
		// always contributes
	}
	return cb.addLocalMinPoly(e1, e2, pt, false)
}

// adjustCurrXAndCopyToSEL advances every active edge's CurrX to top_y and
// copies the AEL into the SEL in that new order (spec §4.7 step 1).
func (cb *ClipperBase) adjustCurrXAndCopyToSEL(topY int64) {
	var prev *Active
	for e := cb.actives; e != nil; e = e.NextInAEL {
		e.CurrX = topX(e, topY)
		e.PrevInSEL = prev
		e.NextInSEL = nil
		if prev != nil {
			prev.NextInSEL = e
		} else {
			cb.sel = e
		}
		prev = e
	}
}

// buildIntersectList records every AEL inversion between bot_y order and
// the X-at-top_y order as an intersectNode (spec §4.7 steps 1-2), sorted
// so the adjacent-swap sequence that processes them is well-defined.
func (cb *ClipperBase) buildIntersectList(topY int64) bool {
	if cb.actives == nil || cb.actives.NextInAEL == nil {
		return false
	}
	cb.adjustCurrXAndCopyToSEL(topY)

	// Bubble-sort the SEL into ascending CurrX order; every adjacent swap
	// needed to do so corresponds to exactly one intersection (classic
	// Vatti insertion-sort-as-inversion-count technique).
	// A correct AEL ordering converges in at most len(sel) passes; a pass
	// count far beyond that means the SEL links are corrupted (e.g. by a
	// prior deleteFromAEL bug) rather than a pathological-but-valid input.
	maxPasses := 0
	for e := cb.sel; e != nil; e = e.NextInSEL {
		maxPasses++
	}
	maxPasses = maxPasses*maxPasses + 16

	more := true
	for pass := 0; more; pass++ {
		if pass > maxPasses {
			cb.fail("buildIntersectList", "AEL/SEL ordering failed to converge")
			return len(cb.intersectNodes) > 0
		}
		more = false
		e1 := cb.sel
		for e1 != nil && e1.NextInSEL != nil {
			e2 := e1.NextInSEL
			if e1.CurrX <= e2.CurrX {
				e1 = e1.NextInSEL
				continue
			}
			pt, ok := intersectPoint(e1, e2)
			if !ok {
				pt = Point64{X: e2.CurrX, Y: topY}
			}
			cb.intersectNodes = append(cb.intersectNodes, intersectNode{e1: e1, e2: e2, pt: pt})
			cb.swapPositionsInSEL(e1, e2)
			more = true
		}
	}
	return len(cb.intersectNodes) > 0
}

// edgesAdjacentInAEL reports whether node's two edges are still immediate
// AEL neighbours. Processing a node whose edges aren't adjacent would
// apply intersectEdges/swapPositionsInAEL to a pair that isn't actually
// next to each other, corrupting the AEL ordering for everything between
// them (spec §4.7 step 3).
func edgesAdjacentInAEL(node intersectNode) bool {
	return node.e1.NextInAEL == node.e2 || node.e2.NextInAEL == node.e1
}

// processIntersectList processes every recorded crossing in Y-ascending
// order (the sweep itself runs Y-ascending: base.go's scanline is a
// min-heap and reset()'s minima sort is Y-ascending too), re-ordering
// same-Y ties so that every node processed is currently adjacent in the
// AEL: walk forward for the next node that is, and swap it into place
// (spec §4.7 step 3).
func (cb *ClipperBase) processIntersectList() {
	sort.SliceStable(cb.intersectNodes, func(i, j int) bool {
		a, b := cb.intersectNodes[i], cb.intersectNodes[j]
		if a.pt.Y != b.pt.Y {
			return a.pt.Y < b.pt.Y
		}
		return a.pt.X < b.pt.X
	})
	for i := 0; i < len(cb.intersectNodes); i++ {
		if !edgesAdjacentInAEL(cb.intersectNodes[i]) {
			j := i + 1
			for j < len(cb.intersectNodes) && !edgesAdjacentInAEL(cb.intersectNodes[j]) {
				j++
			}
			if j < len(cb.intersectNodes) {
				cb.intersectNodes[i], cb.intersectNodes[j] = cb.intersectNodes[j], cb.intersectNodes[i]
			}
		}
		node := cb.intersectNodes[i]
		cb.intersectEdges(node.e1, node.e2, node.pt)
		cb.swapPositionsInAEL(node.e1, node.e2)
	}
	cb.intersectNodes = cb.intersectNodes[:0]
}

// doIntersections is the C5 entry point invoked by the scan-line driver.
func (cb *ClipperBase) doIntersections(topY int64) bool {
	if cb.buildIntersectList(topY) {
		cb.processIntersectList()
	}
	return true
}
