package clipper

// OutPt is one point of an output ring's doubly linked cycle.
type OutPt struct {
	Pt     Point64
	Next   *OutPt
	Prev   *OutPt
	OutRec *OutRec
	Joiner *Joiner
}

func newOutPt(pt Point64, outrec *OutRec) *OutPt {
	op := &OutPt{Pt: pt, OutRec: outrec}
	op.Next = op
	op.Prev = op
	return op
}

// OutRec is an output polygon under construction (C6).
type OutRec struct {
	Idx       int
	Owner     *OutRec
	Splits    []*OutRec // rings spun off from this one by fixSelfIntersects
	FrontEdge *Active
	BackEdge  *Active
	Pts       *OutPt
	State     OutRecState
	PolyPath  *PolyPath64
}

func (cb *ClipperBase) createOutRec() *OutRec {
	or := &OutRec{Idx: len(cb.outrecList)}
	cb.outrecList = append(cb.outrecList, or)
	return or
}

func uncoupleOutRec(e *Active) {
	outrec := e.OutRec
	if outrec == nil {
		return
	}
	outrec.FrontEdge.OutRec = nil
	outrec.BackEdge.OutRec = nil
	outrec.FrontEdge = nil
	outrec.BackEdge = nil
}

// startOpenPath begins an OutRec for an open-path subject (these never
// gain holes and are returned separately from the closed solution).
func (cb *ClipperBase) startOpenPath(e *Active, pt Point64) *OutPt {
	outrec := cb.createOutRec()
	outrec.State = StateOpen
	e.OutRec = outrec
	op := newOutPt(pt, outrec)
	outrec.Pts = op
	return op
}

// addLocalMinPoly opens a new OutRec when a contributing left/right bound
// pair enters the AEL, emitting the shared minimum point as the ring's
// first OutPt (spec §4.6).
func (cb *ClipperBase) addLocalMinPoly(e1, e2 *Active, pt Point64, isNew bool) *OutPt {
	outrec := cb.createOutRec()
	outrec.State = StateUndefined
	e1.OutRec = outrec
	e2.OutRec = outrec

	if isOpen(e1) {
		outrec.Owner = nil
		outrec.State = StateOpen
	} else {
		var prevHotEdge *Active
		if !e1.IsLeftBound {
			prevHotEdge = e1.PrevInAEL
		} else {
			prevHotEdge = e2.PrevInAEL
		}
		for prevHotEdge != nil && (prevHotEdge.OutRec == nil || isOpen(prevHotEdge)) {
			prevHotEdge = prevHotEdge.PrevInAEL
		}
		if prevHotEdge == nil {
			outrec.Owner = nil
		} else {
			outrec.Owner = prevHotEdge.OutRec
		}
	}

	if e1.IsLeftBound {
		outrec.FrontEdge = e1
		outrec.BackEdge = e2
	} else {
		outrec.FrontEdge = e2
		outrec.BackEdge = e1
	}

	op := newOutPt(pt, outrec)
	outrec.Pts = op
	return op
}

// addLocalMaxPoly closes an OutRec when two edges of the same ring meet
// at their common top vertex (spec §4.6).
func (cb *ClipperBase) addLocalMaxPoly(e1, e2 *Active, pt Point64) *OutPt {
	if e1.OutRec == e2.OutRec {
		op := cb.addOutPt(e1, pt)
		uncoupleOutRec(e1)
		return op
	}
	if isOpen(e1) || isOpen(e2) {
		return cb.addOutPt(e1, pt)
	}
	if e1.OutRec.Idx == e2.OutRec.Idx {
		return cb.addOutPt(e1, pt)
	}
	var result *OutPt
	if e1.OutRec.Idx < e2.OutRec.Idx {
		result = cb.joinOutrecPaths(e1, e2)
	} else {
		result = cb.joinOutrecPaths(e2, e1)
	}
	return result
}

// addOutPt appends pt to e's ring at the end dictated by whether e is the
// ring's front or back edge.
func (cb *ClipperBase) addOutPt(e *Active, pt Point64) *OutPt {
	outrec := e.OutRec
	toFront := e == outrec.FrontEdge
	opFront := outrec.Pts
	opBack := opFront.Prev
	if toFront {
		if pointsEqual(pt, opFront.Pt) {
			return opFront
		}
	} else if pointsEqual(pt, opBack.Pt) {
		return opBack
	}
	newOp := &OutPt{Pt: pt, OutRec: outrec}
	opBack.Next = newOp
	newOp.Prev = opBack
	newOp.Next = opFront
	opFront.Prev = newOp
	if toFront {
		outrec.Pts = newOp
	}
	return newOp
}

// joinOutrecPaths splices two different rings together at a shared top
// vertex (e.g. a union merge), adopting the deeper owner (spec §4.6).
func (cb *ClipperBase) joinOutrecPaths(e1, e2 *Active) *OutPt {
	p1Start, p1End := e1.OutRec.Pts, e1.OutRec.Pts.Next
	p2Start, p2End := e2.OutRec.Pts, e2.OutRec.Pts.Next

	if e1.IsLeftBound {
		p2End.Prev = p1Start
		p1Start.Next = p2End
		p2Start.Next = p1End
		p1End.Prev = p2Start
		e1.OutRec.Pts = p2Start
		if e1.OutRec.FrontEdge != nil {
			e1.OutRec.FrontEdge.OutRec = e1.OutRec
		}
		e1.OutRec.FrontEdge = e2.OutRec.FrontEdge
		if e1.OutRec.FrontEdge != nil {
			e1.OutRec.FrontEdge.OutRec = e1.OutRec
		}
	} else {
		p1End.Prev = p2Start
		p2Start.Next = p1End
		p1Start.Next = p2End
		p2End.Prev = p1Start
		e1.OutRec.BackEdge = e2.OutRec.BackEdge
		if e1.OutRec.BackEdge != nil {
			e1.OutRec.BackEdge.OutRec = e1.OutRec
		}
	}

	if e1.OutRec.Idx == e2.OutRec.Idx {
		return e1.OutRec.Pts
	}
	e2.OutRec.Pts = nil
	e2.OutRec.FrontEdge = nil
	e2.OutRec.BackEdge = nil
	e2.OutRec.Owner = e1.OutRec

	e1.OutRec = nil
	e2.OutRec = nil
	return p1End
}

func (or *OutRec) hasValidRing() bool {
	if or.Pts == nil {
		return false
	}
	n := 0
	op := or.Pts
	for {
		n++
		op = op.Next
		if op == or.Pts || n > 3 {
			break
		}
	}
	return n >= 3
}
