package clipper

// ClipType selects the Boolean combination Execute computes between the
// subject and clip path sets. All clip types except Difference are
// commutative.
type ClipType int

const (
	NoClip ClipType = iota
	Intersection
	Union
	Difference
	Xor
)

func (ct ClipType) String() string {
	switch ct {
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Difference:
		return "Difference"
	case Xor:
		return "Xor"
	default:
		return "None"
	}
}

// PathType tags a path as belonging to the subject or clip set.
type PathType int

const (
	Subject PathType = iota
	Clip
)

// FillRule selects the predicate mapping winding number to inside/outside.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
	Positive
	Negative
)

// VertexFlags is a bitmask of per-vertex attributes set by the vertex graph
// builder (C1). Mirrors Clipper2's VertexFlags enum.
type VertexFlags uint8

const (
	VertexNone      VertexFlags = 0
	VertexOpenStart VertexFlags = 1
	VertexOpenEnd   VertexFlags = 2
	VertexLocalMax  VertexFlags = 4
	VertexLocalMin  VertexFlags = 8
)

func (f VertexFlags) has(flag VertexFlags) bool { return f&flag != 0 }

// OutRecState classifies an output ring while/after it is built.
type OutRecState int

const (
	StateUndefined OutRecState = iota
	StateOpen
	StateOuter
	StateInner
)

// PointInPolyResult is the three-way result of a point-in-polygon test.
type PointInPolyResult int

const (
	IsOutside PointInPolyResult = iota
	IsInside
	IsOn
)

// JoinType selects how the offset builder (C10) turns a convex vertex.
type JoinType int

const (
	JoinSquare JoinType = iota
	JoinRound
	JoinMiter
)

// EndType selects how the offset builder caps an open path, or whether a
// closed path is treated as a polygon (one-sided) or a joined loop
// (two-sided).
type EndType int

const (
	EndPolygon EndType = iota
	EndJoined
	EndButt
	EndSquare
	EndRound
)
