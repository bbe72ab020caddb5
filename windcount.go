package clipper

// setWindCountForClosedPathEdge walks leftward from e in the AEL,
// accumulating signed winding contributions for e's own polytype and the
// opposite polytype, per spec §4.5.
func (cb *ClipperBase) setWindCountForClosedPathEdge(e *Active) {
	prev := e.PrevInAEL
	for prev != nil && (isOpen(prev) || prev.LocalMin.PolyType != e.LocalMin.PolyType) {
		prev = prev.PrevInAEL
	}
	if prev == nil {
		e.WindCnt = e.WindDx
		prev = e.PrevInAEL
		e.WindCnt2 = 0
		for prev != nil {
			if prev.LocalMin.PolyType != e.LocalMin.PolyType {
				e.WindCnt2 += prev.WindDx
			}
			prev = prev.PrevInAEL
		}
		return
	}

	if cb.FillRule == EvenOdd {
		e.WindCnt = e.WindDx
	} else if prev.WindCnt*prev.WindDx < 0 {
		if absInt(prev.WindCnt) > 1 {
			if prev.WindDx*e.WindDx < 0 {
				e.WindCnt = prev.WindCnt
			} else {
				e.WindCnt = prev.WindCnt + e.WindDx
			}
		} else {
			e.WindCnt = e.WindDx
		}
	} else {
		if prev.WindDx*e.WindDx < 0 {
			e.WindCnt = prev.WindCnt
		} else {
			e.WindCnt = prev.WindCnt + e.WindDx
		}
	}

	e.WindCnt2 = prev.WindCnt2
	p := prev.NextInAEL
	for p != e {
		if p.LocalMin.PolyType != e.LocalMin.PolyType {
			e.WindCnt2 += p.WindDx
		}
		p = p.NextInAEL
	}
}

// setWindCountForOpenPathEdge implements the restricted variant used for
// open-path subjects, which never opens holes (spec §4.5).
func (cb *ClipperBase) setWindCountForOpenPathEdge(e *Active) {
	cnt1, cnt2 := 0, 0
	for p := e.PrevInAEL; p != nil; p = p.PrevInAEL {
		if p.LocalMin.PolyType == Clip {
			cnt2 += p.WindDx
		} else if !isOpen(p) {
			cnt1 += p.WindDx
		}
	}
	e.WindCnt, e.WindCnt2 = cnt1, cnt2
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// isContributingClosed determines whether a closed-path edge belongs to
// the solution under the active ClipType/FillRule, per Vatti's tables
// (spec §4.5).
func (cb *ClipperBase) isContributingClosed(e *Active) bool {
	switch cb.FillRule {
	case EvenOdd:
		// fine, falls through to shared logic below
	case NonZero:
		if absInt(e.WindCnt) != 1 {
			return false
		}
	case Positive:
		if e.WindCnt != 1 {
			return false
		}
	case Negative:
		if e.WindCnt != -1 {
			return false
		}
	}

	switch cb.ClipType {
	case Intersection:
		switch cb.FillRule {
		case Positive:
			return e.WindCnt2 > 0
		case Negative:
			return e.WindCnt2 < 0
		default:
			return e.WindCnt2 != 0
		}
	case Union:
		switch cb.FillRule {
		case Positive:
			return e.WindCnt2 <= 0
		case Negative:
			return e.WindCnt2 >= 0
		default:
			return e.WindCnt2 == 0
		}
	case Difference:
		isSubj := e.LocalMin.PolyType == Subject
		switch cb.FillRule {
		case Positive:
			if isSubj {
				return e.WindCnt2 <= 0
			}
			return e.WindCnt2 > 0
		case Negative:
			if isSubj {
				return e.WindCnt2 >= 0
			}
			return e.WindCnt2 < 0
		default:
			if isSubj {
				return e.WindCnt2 == 0
			}
			return e.WindCnt2 != 0
		}
	case Xor:
		return true
	}
	return false
}

// isContributingOpen is the open-path analogue: open subjects only ever
// contribute against the clip set and never open holes.
func (cb *ClipperBase) isContributingOpen(e *Active) bool {
	var isInClip bool
	switch cb.FillRule {
	case Positive:
		isInClip = e.WindCnt2 > 0
	case Negative:
		isInClip = e.WindCnt2 < 0
	default:
		isInClip = e.WindCnt2 != 0
	}
	switch cb.ClipType {
	case Intersection:
		return isInClip
	case Union:
		return !isInClip
	case Difference:
		return !isInClip
	case Xor:
		return true
	}
	return false
}
