package clipper

// executeInternal runs the full scan-line loop (spec §4.4) followed by the
// joiner pass (C8) and is shared by every public Execute variant.
func (cb *ClipperBase) executeInternal(ct ClipType, fr FillRule, usingPolytree bool) bool {
	cb.lastError = nil
	if ct == NoClip {
		return true
	}
	cb.FillRule = fr
	cb.ClipType = ct
	cb.usingPolytree = usingPolytree
	cb.reset()

	y, ok := cb.popScanline()
	if !ok {
		return true
	}
	cb.botY = y
	for {
		cb.insertLocalMinimaIntoAEL(cb.botY)
		cb.processHorizontals()
		if cb.horzJoiners != nil {
			cb.convertHorzTrialsToJoins()
		}
		topY, hasNext := cb.popScanline()
		if !hasNext {
			break
		}
		cb.doIntersections(topY)
		cb.doTopOfScanbeam(topY)
		cb.processHorizontals()
		cb.botY = topY
	}

	cb.processJoinerList()
	for _, or := range cb.outrecList {
		cb.cleanCollinear(or)
	}
	return !cb.errorFound
}

// buildPaths materializes every surviving OutRec into flat Path64 output,
// split into closed and open sets (spec §4.10's "open paths bypass the
// tree").
func (cb *ClipperBase) buildPaths() (closed, open Paths64) {
	for _, or := range cb.outrecList {
		if or.Pts == nil {
			continue
		}
		path := ringToPath(or.Pts)
		if or.State == StateOpen {
			// The >=3 degenerate threshold below is a closed-ring
			// invariant; an open path only needs 2 distinct points to be
			// a valid segment (spec §3).
			if len(path) < 2 {
				continue
			}
			open = append(open, path)
			continue
		}
		if len(path) < 3 || Area(path) == 0 {
			continue
		}
		closed = append(closed, path)
	}
	return
}

// Execute runs a Boolean clip between every added subject and clip path,
// returning the closed solution and any open-path solution, under the
// given ClipType and FillRule. A false return means the engine hit an
// unrecoverable error (spec §7); the outputs are empty in that case.
func (cb *ClipperBase) Execute(ct ClipType, fr FillRule) (closed, open Paths64, ok bool) {
	defer cb.cleanUp()
	if !cb.executeInternal(ct, fr, false) {
		return nil, nil, false
	}
	closed, open = cb.buildPaths()
	return closed, open, true
}

// ExecuteTree runs Execute but returns the closed solution as a
// containment tree (PolyPath64) instead of a flat path set (spec §6).
func (cb *ClipperBase) ExecuteTree(ct ClipType, fr FillRule) (tree *PolyPath64, open Paths64, ok bool) {
	defer cb.cleanUp()
	if !cb.executeInternal(ct, fr, true) {
		return nil, nil, false
	}
	tree = cb.buildTree()
	_, open = cb.buildPaths()
	return tree, open, true
}
