package clipper

import "math"

// Active is an edge currently crossing the scan line. Grounded on
// clipper.engine.h's Active struct; AEL/SEL prev/next links are plain Go
// pointers into a per-Execute set owned by ClipperBase.
type Active struct {
	Bot, Top Point64
	CurrX    int64
	Dx       float64 // horizontalDx (+Inf/-Inf) for horizontal edges
	WindDx   int     // +1 or -1
	WindCnt  int
	WindCnt2 int // winding count of the opposite polytype

	OutRec *OutRec

	PrevInAEL, NextInAEL *Active
	PrevInSEL, NextInSEL *Active

	VertexTop   *Vertex
	LocalMin    *LocalMinima
	IsLeftBound bool
}

var horizontalDx = math.Inf(1)

func (e *Active) isHorizontal() bool { return e.Bot.Y == e.Top.Y }

// topX returns the edge's X coordinate at scanline currentY.
func topX(e *Active, currentY int64) int64 {
	if currentY == e.Top.Y || e.Top.X == e.Bot.X {
		return e.Top.X
	}
	if currentY == e.Bot.Y {
		return e.Bot.X
	}
	return e.Bot.X + round64(e.Dx*float64(currentY-e.Bot.Y))
}

func setDx(e *Active) {
	dy := e.Top.Y - e.Bot.Y
	if dy == 0 {
		e.Dx = horizontalDx
	} else {
		e.Dx = float64(e.Top.X-e.Bot.X) / float64(dy)
	}
}

func isMaxima(e *Active) bool {
	return e.VertexTop.Flags.has(VertexLocalMax)
}

func isOpen(e *Active) bool { return e.LocalMin != nil && e.LocalMin.IsOpen }

func getMaximaPair(e *Active) *Active {
	n, p := e.NextInAEL, e.PrevInAEL
	for n != nil {
		if n.VertexTop == e.VertexTop {
			return n
		}
		n = n.NextInAEL
	}
	for p != nil {
		if p.VertexTop == e.VertexTop {
			return p
		}
		p = p.PrevInAEL
	}
	return nil
}

// nextVertex returns the vertex an edge travels toward next, respecting
// the direction it was built in (WindDx encodes whether Bot was the
// lower-indexed side of the ring).
func nextVertex(e *Active) *Vertex {
	return nextVertexFrom(e.VertexTop, e.WindDx)
}

func nextVertexFrom(v *Vertex, windDx int) *Vertex {
	if windDx > 0 {
		return v.Next
	}
	return v.Prev
}

// --- AEL (C3) ---------------------------------------------------------

func (cb *ClipperBase) insertLeftEdge(e *Active) {
	if cb.actives == nil {
		e.PrevInAEL, e.NextInAEL = nil, nil
		cb.actives = e
		return
	}
	if !e2InsertsBeforeE1(cb.actives, e) {
		e.PrevInAEL, e.NextInAEL = nil, nil
		e.NextInAEL = cb.actives
		cb.actives.PrevInAEL = e
		cb.actives = e
		return
	}
	curr := cb.actives
	for curr.NextInAEL != nil && !e2InsertsBeforeE1(curr.NextInAEL, e) {
		curr = curr.NextInAEL
	}
	e.NextInAEL = curr.NextInAEL
	if curr.NextInAEL != nil {
		curr.NextInAEL.PrevInAEL = e
	}
	e.PrevInAEL = curr
	curr.NextInAEL = e
}

// e2InsertsBeforeE1 reports whether e2 belongs to the left of e1 in the
// AEL, breaking X ties by slope so a left-turning edge sorts first.
func e2InsertsBeforeE1(e1, e2 *Active) bool {
	if e2.CurrX != e1.CurrX {
		return e2.CurrX < e1.CurrX
	}
	d := CrossProduct(e1.Top, e1.Bot, e2.Bot)
	if d != 0 {
		return d < 0
	}
	return e2.Dx < e1.Dx
}

func (cb *ClipperBase) insertRightEdge(left, right *Active) {
	right.PrevInAEL = left
	right.NextInAEL = left.NextInAEL
	if left.NextInAEL != nil {
		left.NextInAEL.PrevInAEL = right
	}
	left.NextInAEL = right
}

func (cb *ClipperBase) deleteFromAEL(e *Active) {
	prev, next := e.PrevInAEL, e.NextInAEL
	if prev == nil && next == nil && e != cb.actives {
		return
	}
	if prev != nil {
		prev.NextInAEL = next
	} else {
		cb.actives = next
	}
	if next != nil {
		next.PrevInAEL = prev
	}
	e.NextInAEL, e.PrevInAEL = nil, nil
}

func (cb *ClipperBase) swapPositionsInAEL(e1, e2 *Active) {
	next2 := e2.NextInAEL
	if next2 == e1 {
		e1, e2 = e2, e1
	}
	prev1, next1 := e1.PrevInAEL, e1.NextInAEL
	next2 = e2.NextInAEL
	if next1 == e2 {
		e1.NextInAEL = next2
		if next2 != nil {
			next2.PrevInAEL = e1
		}
		e2.PrevInAEL = prev1
		if prev1 != nil {
			prev1.NextInAEL = e2
		}
		e2.NextInAEL = e1
		e1.PrevInAEL = e2
	} else {
		prev2 := e2.PrevInAEL
		if prev1 != nil {
			prev1.NextInAEL = e2
		}
		e2.PrevInAEL = prev1
		if next1 != nil {
			next1.PrevInAEL = e2
		}
		e2.NextInAEL = next1
		if prev2 != nil {
			prev2.NextInAEL = e1
		}
		e1.PrevInAEL = prev2
		if next2 != nil {
			next2.PrevInAEL = e1
		}
		e1.NextInAEL = next2
	}
	if e1.PrevInAEL == nil {
		cb.actives = e1
	}
	if e2.PrevInAEL == nil {
		cb.actives = e2
	}
}

// --- SEL (sorted edge list, reused for horizontals and intersection sort) --

func (cb *ClipperBase) copyAELToSEL() {
	var prev *Active
	for e := cb.actives; e != nil; e = e.NextInAEL {
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

func (cb *ClipperBase) swapPositionsInSEL(e1, e2 *Active) {
	prev1, next1 := e1.PrevInSEL, e1.NextInSEL
	prev2, next2 := e2.PrevInSEL, e2.NextInSEL
	if next1 == e2 {
		e1.NextInSEL = next2
		if next2 != nil {
			next2.PrevInSEL = e1
		}
		e2.PrevInSEL = prev1
		if prev1 != nil {
			prev1.NextInSEL = e2
		}
		e2.NextInSEL = e1
		e1.PrevInSEL = e2
	} else {
		if prev1 != nil {
			prev1.NextInSEL = e2
		}
		e2.PrevInSEL = prev1
		if next1 != nil {
			next1.PrevInSEL = e2
		}
		e2.NextInSEL = next1
		if prev2 != nil {
			prev2.NextInSEL = e1
		}
		e1.PrevInSEL = prev2
		if next2 != nil {
			next2.PrevInSEL = e1
		}
		e1.NextInSEL = next2
	}
	if e1.PrevInSEL == nil {
		cb.sel = e1
	}
	if e2.PrevInSEL == nil {
		cb.sel = e2
	}
}
