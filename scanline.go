package clipper

// This file implements the scan-line driver (C4): InsertLocalMinimaIntoAEL
// builds new edges at each local minimum, DoTopOfScanbeam advances or
// retires edges reaching the top of the current beam; engine.go's
// executeInternal ties the whole loop together (spec §4.4).

func newActiveFromVertex(v *Vertex, lm *LocalMinima, windDx int) *Active {
	e := &Active{
		Bot:      v.Pt,
		CurrX:    v.Pt.X,
		WindDx:   windDx,
		LocalMin: lm,
	}
	top := nextVertexFrom(v, windDx)
	if top != nil {
		e.Top = top.Pt
		e.VertexTop = top
	} else {
		e.Top = v.Pt
		e.VertexTop = v
	}
	setDx(e)
	return e
}

func (cb *ClipperBase) pushHorz(e *Active) {
	cb.horzQueue = append(cb.horzQueue, e)
}

func (cb *ClipperBase) popHorz() (*Active, bool) {
	if len(cb.horzQueue) == 0 {
		return nil, false
	}
	e := cb.horzQueue[0]
	cb.horzQueue = cb.horzQueue[1:]
	return e, true
}

// insertLocalMinimaIntoAEL creates the left/right bound actives for every
// LocalMinima at botY, computes their winding counts relative to the AEL,
// inserts them, and opens a local-min polygon for contributing pairs
// (spec §4.4 step 2).
func (cb *ClipperBase) insertLocalMinimaIntoAEL(botY int64) {
	for _, lm := range cb.popLocalMinima(botY) {
		v := lm.Vertex

		var leftB, rightB *Active
		if v.Flags.has(VertexOpenStart) {
			leftB = nil
			rightB = newActiveFromVertex(v, lm, 1)
			rightB.IsLeftBound = false
		} else {
			leftB = newActiveFromVertex(v, lm, -1)
			rightB = newActiveFromVertex(v, lm, 1)
			// Both bounds rise from the same vertex, so whichever has
			// the smaller Dx sits to the left at any Y above it. Prev
			// and Next only coincide with left/right when the ring
			// winds counterclockwise; a clockwise ring (e.g. a hole,
			// or simply a clockwise-wound input) has them backwards,
			// so this can't be assumed from ring-walk order alone.
			// WindDx stays tied to whichever vertex (prev/next) each
			// bound actually travels toward; only which one plays the
			// "left" AEL/wind-count role is decided here.
			if leftB.Dx > rightB.Dx {
				leftB, rightB = rightB, leftB
			}
			leftB.IsLeftBound = true
			rightB.IsLeftBound = false
		}

		if leftB != nil {
			if leftB.isHorizontal() {
				cb.pushHorz(leftB)
			} else {
				cb.insertScanline(leftB.Top.Y)
			}
		}
		if rightB != nil {
			if rightB.isHorizontal() {
				cb.pushHorz(rightB)
			} else {
				cb.insertScanline(rightB.Top.Y)
			}
		}

		if leftB == nil {
			cb.insertLeftEdge(rightB)
			cb.setWindCountForOpenEdge(rightB)
			if cb.isContributingOpen(rightB) {
				cb.startOpenPath(rightB, rightB.Bot)
			}
			continue
		}

		cb.insertLeftEdge(leftB)
		cb.insertRightEdge(leftB, rightB)

		if isOpen(leftB) {
			cb.setWindCountForOpenEdge(leftB)
			rightB.WindCnt, rightB.WindCnt2 = leftB.WindCnt, leftB.WindCnt2
		} else {
			cb.setWindCountForClosedPathEdge(leftB)
			rightB.WindCnt = leftB.WindCnt
			rightB.WindCnt2 = leftB.WindCnt2
		}

		if cb.contributes(rightB) {
			cb.addLocalMinPoly(leftB, rightB, leftB.Bot, true)
		}
	}
}

func (cb *ClipperBase) setWindCountForOpenEdge(e *Active) {
	if isOpen(e) {
		cb.setWindCountForOpenPathEdge(e)
	} else {
		cb.setWindCountForClosedPathEdge(e)
	}
}

func (cb *ClipperBase) contributes(e *Active) bool {
	if isOpen(e) {
		return cb.isContributingOpen(e)
	}
	return cb.isContributingClosed(e)
}

// updateEdgeIntoAEL advances e to its next vertex ("edge bend") within the
// same bound, keeping the AEL/SEL links intact.
func (cb *ClipperBase) updateEdgeIntoAEL(e *Active) {
	e.Bot = e.Top
	e.VertexTop = nextVertex(e)
	e.Top = e.VertexTop.Pt
	e.CurrX = e.Bot.X
	setDx(e)
	if e.isHorizontal() {
		return
	}
	cb.insertScanline(e.Top.Y)
}

// doMaxima retires e at a local maximum vertex, stitching it against its
// maxima-pair edge (spec §3's "local-maximum events always destroy a pair
// of adjacent edges"), and returns the AEL edge to resume scanning from.
func (cb *ClipperBase) doMaxima(e *Active) *Active {
	maxPair := getMaximaPair(e)
	if maxPair == nil {
		if isHotEdge(e) {
			cb.addOutPt(e, e.Top)
		}
		next := e.NextInAEL
		cb.deleteFromAEL(e)
		return next
	}

	enext := e.NextInAEL
	for enext != nil && enext != maxPair {
		cb.intersectEdges(e, enext, e.Top)
		cb.swapPositionsInAEL(e, enext)
		enext = e.NextInAEL
	}

	if !isHotEdge(e) && !isHotEdge(maxPair) {
		next := maxPair.NextInAEL
		cb.deleteFromAEL(e)
		cb.deleteFromAEL(maxPair)
		return next
	}

	if isHotEdge(e) {
		cb.addLocalMaxPoly(e, maxPair, e.Top)
	}
	next := maxPair.NextInAEL
	cb.deleteFromAEL(e)
	cb.deleteFromAEL(maxPair)
	return next
}

// doTopOfScanbeam advances every remaining active edge to topY, retiring
// maxima and requeuing edges that become horizontal (spec §4.4 step 4).
func (cb *ClipperBase) doTopOfScanbeam(topY int64) {
	e := cb.actives
	for e != nil {
		if e.Top.Y == topY {
			e.CurrX = e.Top.X
			if isOpen(e) && e.VertexTop.Flags.has(VertexOpenEnd) {
				if isHotEdge(e) {
					cb.addOutPt(e, e.Top)
				}
				next := e.NextInAEL
				cb.deleteFromAEL(e)
				e = next
				continue
			}
			if isMaxima(e) {
				e = cb.doMaxima(e)
				continue
			}
			cb.updateEdgeIntoAEL(e)
			if isHotEdge(e) {
				cb.addOutPt(e, e.Bot)
			}
			if e.isHorizontal() {
				cb.pushHorz(e)
			}
			e = e.NextInAEL
		} else {
			e.CurrX = topX(e, topY)
			e = e.NextInAEL
		}
	}
}

// processHorizontals drains the horizontal queue accumulated this beam
// (spec §4.4 step 5).
func (cb *ClipperBase) processHorizontals() {
	for {
		e, ok := cb.popHorz()
		if !ok {
			break
		}
		cb.doHorizontal(e)
	}
}
