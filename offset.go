package clipper

import "math"

// PathGroup is one batch of paths added via AddPath/AddPaths, sharing a
// join type and end type, offset together and optionally merged with
// other groups (spec §4.11; grounded on
// original_source/CPP/Clipper2Lib/clipper.offset.h's PathGroup).
type PathGroup struct {
	pathsIn  Paths64
	pathsOut Paths64
	joinType JoinType
	endType  EndType
}

// ClipperOffset converts an open or closed path into a widened polygon
// via per-vertex mitered, rounded, or squared joins, then hands the
// result to the clipping engine (Clipper64, Union, Positive fill) to
// remove self-overlap (spec §4.11, C10).
type ClipperOffset struct {
	MiterLimit        float64
	ArcTolerance      float64
	MergeGroups       bool
	PreserveCollinear bool

	delta  float64
	groups []*PathGroup
}

// NewClipperOffset returns a builder with Clipper2's documented defaults:
// miter limit 2.0, arc tolerance auto (0 means "derive from delta"), and
// groups merged together (spec §6).
func NewClipperOffset() *ClipperOffset {
	return &ClipperOffset{MiterLimit: 2.0, MergeGroups: true}
}

func (co *ClipperOffset) AddPath(path Path64, jt JoinType, et EndType) {
	co.AddPaths(Paths64{path}, jt, et)
}

func (co *ClipperOffset) AddPaths(paths Paths64, jt JoinType, et EndType) {
	if len(paths) == 0 {
		return
	}
	in := make(Paths64, len(paths))
	copy(in, paths)
	co.groups = append(co.groups, &PathGroup{pathsIn: in, joinType: jt, endType: et})
}

func (co *ClipperOffset) Clear() { co.groups = nil }

// Execute computes the offset of every added path by delta (positive
// grows the polygon, negative shrinks it) and returns the merged,
// self-overlap-free result (spec §4.11 step 4).
func (co *ClipperOffset) Execute(delta float64) Paths64 {
	if len(co.groups) == 0 {
		return nil
	}
	co.delta = delta
	if co.ArcTolerance <= 0 {
		co.ArcTolerance = math.Max(absFloat(delta)*0.0025, 0.5)
		defer func() { co.ArcTolerance = 0 }()
	}
	for _, g := range co.groups {
		co.doGroupOffset(g)
	}

	if co.MergeGroups {
		var all Paths64
		for _, g := range co.groups {
			all = append(all, g.pathsOut...)
		}
		return co.unionPositive(all)
	}
	var result Paths64
	for _, g := range co.groups {
		result = append(result, co.unionPositive(g.pathsOut)...)
	}
	return result
}

func (co *ClipperOffset) unionPositive(paths Paths64) Paths64 {
	if len(paths) == 0 {
		return nil
	}
	c := NewClipper64()
	c.PreserveCollinear = co.PreserveCollinear
	c.AddSubject(paths)
	closed, _, ok := c.Execute(Union, Positive)
	if !ok {
		return nil
	}
	return closed
}

func (co *ClipperOffset) doGroupOffset(g *PathGroup) {
	for _, path := range g.pathsIn {
		isClosed := g.endType == EndPolygon || g.endType == EndJoined
		path = StripDuplicates(path, isClosed)
		if len(path) < 2 {
			continue
		}
		switch g.endType {
		case EndPolygon:
			co.offsetPolygon(g, path)
		case EndJoined:
			co.offsetOpenJoined(g, path)
		default:
			co.offsetOpenPath(g, path, g.endType)
		}
	}
}

// buildNormals returns one unit normal per edge of a closed path (edge i
// runs path[i] -> path[(i+1)%n]).
func buildNormals(path Path64) PathD {
	n := len(path)
	norms := make(PathD, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		norms[i] = unitNormal(path[i], path[j])
	}
	return norms
}

func unitNormal(pt1, pt2 Point64) PointD {
	dx := float64(pt2.X - pt1.X)
	dy := float64(pt2.Y - pt1.Y)
	if dx == 0 && dy == 0 {
		return PointD{}
	}
	inv := 1 / math.Hypot(dx, dy)
	return PointD{X: dy * inv, Y: -dx * inv}
}

func negateD(p PointD) PointD { return PointD{X: -p.X, Y: -p.Y} }

func crossD(a, b PointD) float64 { return a.X*b.Y - a.Y*b.X }
func dotD(a, b PointD) float64   { return a.X*b.X + a.Y*b.Y }

func unitD(p PointD) PointD {
	l := math.Hypot(p.X, p.Y)
	if l == 0 {
		return p
	}
	return PointD{X: p.X / l, Y: p.Y / l}
}

func (co *ClipperOffset) offsetPt(v Point64, norm PointD) Point64 {
	return Point64{X: v.X + round64(norm.X*co.delta), Y: v.Y + round64(norm.Y*co.delta)}
}

// offsetPolygon offsets one closed ring, normalizing to positive
// orientation first so delta's sign consistently means "grow outward"
// (spec §4.11).
func (co *ClipperOffset) offsetPolygon(g *PathGroup, path Path64) {
	if !IsPositive(path) {
		path = ReversePath(path)
	}
	norms := buildNormals(path)
	n := len(path)
	var out Path64
	k := n - 1
	for j := 0; j < n; j++ {
		out = co.joinAt(out, g.joinType, path[j], norms[k], norms[j])
		k = j
	}
	if len(out) >= 3 {
		g.pathsOut = append(g.pathsOut, out)
	}
}

// offsetOpenJoined treats an open path as closed, offsetting delta on one
// side then -delta on the other; the inner ring is reversed so the
// Positive-fill union leaves a band (outer ring plus hole) (spec §4.11
// step 3, EndJoined).
func (co *ClipperOffset) offsetOpenJoined(g *PathGroup, path Path64) {
	fwd := &PathGroup{joinType: g.joinType}
	co.offsetPolygon(fwd, path)

	saved := co.delta
	co.delta = -co.delta
	rev := &PathGroup{joinType: g.joinType}
	co.offsetPolygon(rev, ReversePath(path))
	co.delta = saved

	g.pathsOut = append(g.pathsOut, fwd.pathsOut...)
	for _, p := range rev.pathsOut {
		g.pathsOut = append(g.pathsOut, ReversePath(p))
	}
}

// offsetOpenPath builds the widened band for an open path: an offset
// point sequence down one side (rhs), an end cap, the mirrored sequence
// back up the other side (lhs), and a start cap — the same rhs/lhs +
// Capper/Joiner shape as tdewolff/canvas's path_stroke.go, adapted to
// integer coordinates and Clipper2's join vocabulary (spec §4.11 step 3).
func (co *ClipperOffset) offsetOpenPath(g *PathGroup, path Path64, endType EndType) {
	n := len(path)
	if n < 2 {
		return
	}
	edgeNorms := make(PathD, n-1)
	for i := 0; i < n-1; i++ {
		edgeNorms[i] = unitNormal(path[i], path[i+1])
	}

	var rhs, lhs Path64
	rhs = append(rhs, co.offsetPt(path[0], edgeNorms[0]))
	lhs = append(lhs, co.offsetPt(path[0], negateD(edgeNorms[0])))
	for j := 1; j < n-1; j++ {
		rhs = co.joinAt(rhs, g.joinType, path[j], edgeNorms[j-1], edgeNorms[j])
		lhs = co.joinAt(lhs, g.joinType, path[j], negateD(edgeNorms[j-1]), negateD(edgeNorms[j]))
	}
	rhs = append(rhs, co.offsetPt(path[n-1], edgeNorms[n-2]))
	lhs = append(lhs, co.offsetPt(path[n-1], negateD(edgeNorms[n-2])))

	result := make(Path64, 0, len(rhs)+len(lhs)+6)
	result = append(result, rhs...)
	result = append(result, co.endCap(path[n-1], edgeNorms[n-2], endType)...)
	result = append(result, ReversePath(lhs)...)
	result = append(result, co.endCap(path[0], negateD(edgeNorms[0]), endType)...)

	if len(result) >= 3 {
		g.pathsOut = append(g.pathsOut, result)
	}
}

// endCap emits the cap points at an open path's end, pivoting on the
// forward-side normal n0 (grounded on path_stroke.go's Capper functions:
// RoundCapper's semicircle, SquareCapper's extended blunt corner, and
// ButtCapper's single perpendicular point).
func (co *ClipperOffset) endCap(pivot Point64, n0 PointD, endType EndType) Path64 {
	switch endType {
	case EndRound:
		return co.arcPoints(pivot, n0, negateD(n0))
	case EndSquare:
		e := PointD{X: -n0.Y, Y: n0.X}
		corner1 := Point64{X: pivot.X + round64((e.X+n0.X)*co.delta), Y: pivot.Y + round64((e.Y+n0.Y)*co.delta)}
		corner2 := Point64{X: pivot.X + round64((e.X-n0.X)*co.delta), Y: pivot.Y + round64((e.Y-n0.Y)*co.delta)}
		end := co.offsetPt(pivot, negateD(n0))
		return Path64{corner1, corner2, end}
	default: // EndButt
		return Path64{co.offsetPt(pivot, negateD(n0))}
	}
}

// joinAt appends the point(s) needed to carry the offset from edge-normal
// normK to edge-normal normJ around vertex v, per spec §4.11 step 2.
func (co *ClipperOffset) joinAt(out Path64, jt JoinType, v Point64, normK, normJ PointD) Path64 {
	sinA := crossD(normK, normJ)
	if sinA > 1 {
		sinA = 1
	} else if sinA < -1 {
		sinA = -1
	}
	cosA := dotD(normK, normJ)

	if cosA > 0.9999 {
		return append(out, co.offsetPt(v, normJ))
	}

	if sinA*signOf(co.delta) < 0 {
		// concave turn: emit both single-edge offset points and let the
		// clipping union eliminate the overlap (spec §4.11 step 2, else
		// branch).
		out = append(out, co.offsetPt(v, normK))
		out = append(out, v)
		out = append(out, co.offsetPt(v, normJ))
		return out
	}

	switch jt {
	case JoinMiter:
		return co.doMiter(out, v, normK, normJ, cosA)
	case JoinSquare:
		p1, p2 := co.doSquare(v, normK, normJ)
		return append(out, p1, p2)
	default:
		return append(out, co.arcPoints(v, normK, normJ)...)
	}
}

func signOf(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// doMiter implements spec §4.11 step 2's miter join, falling back to a
// square join when the miter point would exceed MiterLimit * |delta|.
func (co *ClipperOffset) doMiter(out Path64, v Point64, normK, normJ PointD, cosA float64) Path64 {
	q := co.delta / (1 + cosA)
	mx, my := (normK.X+normJ.X)*q, (normK.Y+normJ.Y)*q
	dist := math.Hypot(mx, my)
	if dist > co.MiterLimit*absFloat(co.delta) {
		p1, p2 := co.doSquare(v, normK, normJ)
		return append(out, p1, p2)
	}
	return append(out, Point64{X: v.X + round64(mx), Y: v.Y + round64(my)})
}

// doSquare implements spec §4.11 step 2's square join: two mitered-then-
// extended segments forming a blunt corner, built from the bisector of
// the two perpendicular (edge) directions (grounded on clipper.offset.h's
// DoSquare and, for the bisector shape, path_stroke.go's BevelJoiner).
func (co *ClipperOffset) doSquare(v Point64, normK, normJ PointD) (Point64, Point64) {
	dirK := PointD{X: -normK.Y, Y: normK.X}
	dirJ := PointD{X: normJ.Y, Y: -normJ.X}
	avg := unitD(PointD{X: dirK.X + dirJ.X, Y: dirK.Y + dirJ.Y})

	// extend each offset edge until it meets the line perpendicular to avg
	// at |delta| from v.
	delta := co.delta
	absDelta := absFloat(delta)
	t := (absDelta - delta*dotD(normK, avg)) / dotD(dirK, avg)
	s := (absDelta - delta*dotD(normJ, avg)) / dotD(dirJ, avg)
	p1 := Point64{
		X: v.X + round64(delta*normK.X+t*dirK.X),
		Y: v.Y + round64(delta*normK.Y+t*dirK.Y),
	}
	p2 := Point64{
		X: v.X + round64(delta*normJ.X+s*dirJ.X),
		Y: v.Y + round64(delta*normJ.Y+s*dirJ.Y),
	}
	return p1, p2
}

// arcPoints emits a round join/cap: a sequence of arc points spaced to
// keep chord-height <= ArcTolerance (spec §4.11 step 2's round join
// formula: steps = ceil(|theta| / acos(1 - tol/|delta|))).
func (co *ClipperOffset) arcPoints(v Point64, normFrom, normTo PointD) Path64 {
	angleFrom := math.Atan2(normFrom.Y, normFrom.X)
	angleTo := math.Atan2(normTo.Y, normTo.X)
	da := angleTo - angleFrom
	for da <= -math.Pi {
		da += 2 * math.Pi
	}
	for da > math.Pi {
		da -= 2 * math.Pi
	}

	absDelta := absFloat(co.delta)
	if absDelta == 0 {
		return Path64{v}
	}
	ratio := 1 - co.ArcTolerance/absDelta
	if ratio < -1 {
		ratio = -1
	} else if ratio > 1 {
		ratio = 1
	}
	stepAngle := math.Acos(ratio)
	if stepAngle <= 0 {
		stepAngle = math.Pi / 16
	}
	steps := int(math.Ceil(absFloat(da) / stepAngle))
	if steps < 1 {
		steps = 1
	}

	pts := make(Path64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := angleFrom + da*float64(i)/float64(steps)
		pts = append(pts, Point64{
			X: v.X + round64(math.Cos(a)*co.delta),
			Y: v.Y + round64(math.Sin(a)*co.delta),
		})
	}
	return pts
}
