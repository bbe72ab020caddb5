package clipper

// Horizontal edges are pulled out of ordinary AEL membership while they
// traverse their run and processed through a dedicated queue (spec §4.8).
// horzQueue lives on ClipperBase (see scanline.go) and is refilled each
// beam by doTopOfScanbeam.

// getCurrYMaximaVertex walks forward along e's vertex chain past any
// collinear horizontal run to find the vertex where the bound ends: either
// a local maximum, or (for open paths) the final vertex.
func getCurrYMaximaVertex(e *Active) *Vertex {
	v := e.VertexTop
	for {
		next := nextVertexFrom(v, e.WindDx)
		if next == nil || next.Pt.Y != v.Pt.Y {
			break
		}
		v = next
	}
	return v
}

// resetHorzDirection determines whether horz travels left-to-right,
// returning the AEL-X bounds of its current run (spec §4.8 step 1).
func resetHorzDirection(horz *Active, maxPair *Active) (leftToRight bool, left, right int64) {
	if horz.Bot.X == horz.Top.X {
		// pure zero-length horizontal: direction doesn't matter.
		return true, horz.CurrX, horz.CurrX
	}
	if maxPair != nil {
		return horz.Bot.X < horz.Top.X, horz.Bot.X, horz.Top.X
	}
	if horz.Bot.X < horz.Top.X {
		return true, horz.Bot.X, horz.Top.X
	}
	return false, horz.Top.X, horz.Bot.X
}

// doHorizontal processes one dequeued horizontal edge: determines its
// direction, walks the AEL performing intersect_edges + swap against every
// encountered edge along the run, and advances the horizontal through any
// collinear continuation until it reaches its maxima vertex (spec §4.8).
func (cb *ClipperBase) doHorizontal(horz *Active) {
	y := horz.Bot.Y
	isOpenHorz := isOpen(horz)
	vertexMax := getCurrYMaximaVertex(horz)
	maxPair := getMaximaPair(horz)

	if isHotEdge(horz) {
		cb.addOutPt(horz, Point64{X: horz.CurrX, Y: y})
	}

	for {
		leftToRight, horzLeft, horzRight := resetHorzDirection(horz, maxPair)

		var e *Active
		if leftToRight {
			e = horz.NextInAEL
		} else {
			e = horz.PrevInAEL
		}

		for e != nil {
			if e.VertexTop == vertexMax {
				if isHotEdge(horz) {
					for horz.VertexTop != vertexMax {
						cb.addOutPt(horz, horz.Top)
						cb.updateEdgeIntoAEL(horz)
					}
					if leftToRight {
						cb.addLocalMaxPoly(horz, e, horz.Top)
					} else {
						cb.addLocalMaxPoly(e, horz, horz.Top)
					}
				}
				cb.deleteFromAEL(e)
				cb.deleteFromAEL(horz)
				return
			}

			if leftToRight && e.CurrX > horzRight {
				break
			}
			if !leftToRight && e.CurrX < horzLeft {
				break
			}

			pt := Point64{X: e.CurrX, Y: y}
			var op *OutPt
			if leftToRight {
				op = cb.intersectEdges(horz, e, pt)
				cb.swapPositionsInAEL(horz, e)
				e = horz.NextInAEL
			} else {
				op = cb.intersectEdges(e, horz, pt)
				cb.swapPositionsInAEL(e, horz)
				e = horz.PrevInAEL
			}
			if op != nil && isHotEdge(horz) && !pointsEqual(pt, horz.Bot) && !pointsEqual(pt, horz.Top) {
				cb.addTrialHorzJoin(op)
			}
		}

		if isOpenHorz {
			if isOpenEndReached(horz, vertexMax) {
				break
			}
		}
		if horz.VertexTop == vertexMax {
			break
		}
		horz.Top = nextVertex(horz).Pt
		if isHotEdge(horz) {
			cb.addOutPt(horz, horz.Top)
		}
		cb.updateEdgeIntoAEL(horz)
		if !horz.isHorizontal() {
			break
		}
	}

	if isHotEdge(horz) {
		cb.addOutPt(horz, horz.Top)
	}
	if horz.isHorizontal() {
		cb.updateEdgeIntoAEL(horz)
	}
}

func isOpenEndReached(e *Active, vertexMax *Vertex) bool {
	return e.VertexTop.Flags.has(VertexOpenEnd) && e.VertexTop != vertexMax
}
