package clipper

// Joiner is a pending merge of two output-ring points at a shared point or
// along a horizontal run, kept in each OutPt's intrusive list until the
// post-sweep joiner pass (C8) resolves it. Mirrors clipper.engine.h's
// Joiner struct; NextH chains the engine-wide trial-horizontal-joiner list.
type Joiner struct {
	Op1, Op2   *OutPt
	NextH      *Joiner
	Next1      *Joiner
	Next2      *Joiner
	IsHorzTrial bool
}

func (cb *ClipperBase) addTrialHorzJoin(op *OutPt) {
	j := &Joiner{Op1: op, IsHorzTrial: true}
	j.NextH = cb.horzJoiners
	cb.horzJoiners = j
	op.Joiner = j
}

func (cb *ClipperBase) deleteTrialHorzJoin(op *OutPt) {
	if op.Joiner == nil || !op.Joiner.IsHorzTrial {
		return
	}
	target := op.Joiner
	if cb.horzJoiners == target {
		cb.horzJoiners = target.NextH
	} else {
		for j := cb.horzJoiners; j != nil; j = j.NextH {
			if j.NextH == target {
				j.NextH = target.NextH
				break
			}
		}
	}
	op.Joiner = nil
}

// convertHorzTrialsToJoins promotes every still-valid trial horizontal
// joiner recorded during the sweep into a real joiner (spec §4.9).
func (cb *ClipperBase) convertHorzTrialsToJoins() {
	for j := cb.horzJoiners; j != nil; {
		next := j.NextH
		if j.Op1 != nil && j.Op2 == nil {
			if partner := cb.findHorzJoinPartner(j.Op1); partner != nil {
				cb.addJoin(j.Op1, partner)
			}
		}
		j = next
	}
	cb.horzJoiners = nil
}

// findHorzJoinPartner looks for another ring's pending horizontal trial
// joiner recorded at exactly op's point: two horizontal edges from
// different OutRecs that both crossed the same vertical edge during this
// beam each get a trial joiner at that shared coordinate, and those are
// the pair that needs splicing back together post-sweep. Matching on Y
// alone (an earlier draft's test) would also catch unrelated OutPts that
// merely happen to sit on the same horizontal line elsewhere in the
// geometry; the exact-point test is what actually identifies the same
// physical location (a simplification of clipper.engine.h's
// GetHorzTrialParent search over the full joiner list).
func (cb *ClipperBase) findHorzJoinPartner(op *OutPt) *OutPt {
	for _, or := range cb.outrecList {
		if or.Pts == nil || or == op.OutRec {
			continue
		}
		start := or.Pts
		p := start
		for {
			if p.Joiner != nil && p.Joiner.IsHorzTrial && pointsEqual(p.Pt, op.Pt) {
				return p
			}
			p = p.Next
			if p == start {
				break
			}
		}
	}
	return nil
}

func (cb *ClipperBase) addJoin(op1, op2 *OutPt) {
	j := &Joiner{Op1: op1, Op2: op2}
	cb.joinerList = append(cb.joinerList, j)
}

// processJoinerList resolves every real joiner: two points on different
// rings have their rings spliced into one; two points already on the same
// ring have fixSelfIntersects run on that ring (spec §4.9). No spur
// segments are split off, and a splice of two different rings is not
// checked for self-crossings.
func (cb *ClipperBase) processJoinerList() {
	for _, j := range cb.joinerList {
		cb.processJoin(j)
	}
	cb.joinerList = nil
}

func (cb *ClipperBase) processJoin(j *Joiner) {
	op1, op2 := j.Op1, j.Op2
	if op1 == nil || op2 == nil || op1.OutRec == nil || op2.OutRec == nil {
		return
	}
	or1, or2 := resolveOutRec(op1.OutRec), resolveOutRec(op2.OutRec)
	if or1 == or2 {
		cb.fixSelfIntersects(or1)
		return
	}
	// merge the larger index into the smaller so child owners stay valid.
	keep, drop := or1, or2
	if drop.Idx < keep.Idx {
		keep, drop = drop, keep
	}
	spliceRings(op1, op2)
	if drop.Pts != nil {
		p := drop.Pts
		for {
			p.OutRec = keep
			p = p.Next
			if p == drop.Pts {
				break
			}
		}
	}
	drop.Pts = nil
	drop.Owner = keep
}

func resolveOutRec(or *OutRec) *OutRec {
	for or.Pts == nil && or.Owner != nil {
		or = or.Owner
	}
	return or
}

func spliceRings(op1, op2 *OutPt) {
	n1, n2 := op1.Next, op2.Next
	op1.Next = n2
	n2.Prev = op1
	op2.Next = n1
	n1.Prev = op2
}

// fixSelfIntersects cuts outrec's ring in two at a self-crossing pair of
// points, producing a split-off OutRec that is re-registered for
// re-validation (spec §4.9's fix_self_intersects / CompleteSplit).
func (cb *ClipperBase) fixSelfIntersects(outrec *OutRec) {
	if outrec == nil || outrec.Pts == nil {
		return
	}
	op1, op2, ok := findSelfCrossing(outrec.Pts)
	if !ok {
		return
	}
	newOutrec := cb.createOutRec()
	newOutrec.Owner = outrec.Owner
	newOutrec.State = outrec.State

	op1Next := op1.Next
	op2Next := op2.Next

	// op1 -> op2Next ... -> op1 stays on outrec; op1Next ... -> op2 ->
	// op1Next becomes the split-off ring.
	op1.Next = op2Next
	op2Next.Prev = op1
	op2.Next = op1Next
	op1Next.Prev = op2

	outrec.Pts = op1
	newOutrec.Pts = op1Next
	outrec.Splits = append(outrec.Splits, newOutrec)

	for p := newOutrec.Pts; ; p = p.Next {
		p.OutRec = newOutrec
		if p.Next == newOutrec.Pts {
			break
		}
	}
}

// findSelfCrossing does a brute-force O(n^2) scan for a pair of
// non-adjacent edges in the ring that cross; acceptable since it only
// fires in the rare self-intersection repair path (spec's Open Question
// on FixSides/CompleteSplit).
func findSelfCrossing(start *OutPt) (*OutPt, *OutPt, bool) {
	a := start
	for {
		aNext := a.Next
		b := aNext.Next
		for b != a {
			bNext := b.Next
			if bNext != a && segmentsCross(a.Pt, aNext.Pt, b.Pt, bNext.Pt) {
				return a, b, true
			}
			b = b.Next
		}
		a = a.Next
		if a == start {
			break
		}
	}
	return nil, nil, false
}

func segmentsCross(p1, p2, p3, p4 Point64) bool {
	d1 := CrossProduct(p3, p4, p1)
	d2 := CrossProduct(p3, p4, p2)
	d3 := CrossProduct(p1, p2, p3)
	d4 := CrossProduct(p1, p2, p4)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cleanCollinear walks a surviving ring, removing vertices where three
// consecutive points are collinear (spec §4.9), unless PreserveCollinear
// is set. Open paths are left as they are.
func (cb *ClipperBase) cleanCollinear(outrec *OutRec) {
	if cb.PreserveCollinear || outrec == nil || outrec.Pts == nil || outrec.State == StateOpen {
		return
	}
	start := outrec.Pts
	op := start
	for {
		prev, next := op.Prev, op.Next
		if prev == op || next == op {
			break
		}
		if CrossProduct(prev.Pt, op.Pt, next.Pt) == 0 {
			prev.Next = next
			next.Prev = prev
			if op == start {
				start = next
				outrec.Pts = start
			}
			removed := op
			op = next
			removed.Next, removed.Prev = nil, nil
			if start.Next == start {
				outrec.Pts = nil
				return
			}
			continue
		}
		op = op.Next
		if op == start {
			break
		}
	}
}
