package clipper

// Clipper64 is the integer-coordinate public engine (spec §6's API
// surface). It embeds ClipperBase, which does all the work; this type
// exists only to expose the documented Add*/Execute method names.
type Clipper64 struct {
	*ClipperBase
}

// NewClipper64 returns a ready-to-use engine with default settings.
func NewClipper64() *Clipper64 {
	return &Clipper64{ClipperBase: NewClipperBase()}
}

func (c *Clipper64) AddSubject(paths Paths64)     { c.AddPaths(paths, Subject, false) }
func (c *Clipper64) AddOpenSubject(paths Paths64) { c.AddPaths(paths, Subject, true) }
func (c *Clipper64) AddClip(paths Paths64)        { c.AddPaths(paths, Clip, false) }

// ClipperD is the floating-point public engine: a thin scaling adapter
// over ClipperBase (spec §9's "floating-point variant is a thin scaling
// adapter at the boundary"). Precision selects the power-of-ten scale
// factor applied before converting to Point64.
type ClipperD struct {
	*ClipperBase
	scale float64
}

// NewClipperD returns a floating-point engine that scales by 10^precision
// before clipping and unscales results by the same factor.
func NewClipperD(precision int) *ClipperD {
	scale := 1.0
	for i := 0; i < precision; i++ {
		scale *= 10
	}
	for i := 0; i > precision; i-- {
		scale /= 10
	}
	return &ClipperD{ClipperBase: NewClipperBase(), scale: scale}
}

func (c *ClipperD) AddSubject(paths []PathD)     { c.AddPaths(ScalePaths(paths, c.scale), Subject, false) }
func (c *ClipperD) AddOpenSubject(paths []PathD) { c.AddPaths(ScalePaths(paths, c.scale), Subject, true) }
func (c *ClipperD) AddClip(paths []PathD)        { c.AddPaths(ScalePaths(paths, c.scale), Clip, false) }

// Execute is the floating-point analogue of Clipper64.Execute.
func (c *ClipperD) Execute(ct ClipType, fr FillRule) (closed, open []PathD, ok bool) {
	closed64, open64, ok := c.ClipperBase.Execute(ct, fr)
	if !ok {
		return nil, nil, false
	}
	return UnscalePaths(closed64, c.scale), UnscalePaths(open64, c.scale), true
}

// ExecuteTree is the floating-point analogue of Clipper64.ExecuteTree.
func (c *ClipperD) ExecuteTree(ct ClipType, fr FillRule) (tree *PolyPathD, open []PathD, ok bool) {
	tree64, open64, ok := c.ClipperBase.ExecuteTree(ct, fr)
	if !ok {
		return nil, nil, false
	}
	return scaleTreeToD(tree64, nil, c.scale), UnscalePaths(open64, c.scale), true
}

func scaleTreeToD(node *PolyPath64, parent *PolyPathD, scale float64) *PolyPathD {
	out := &PolyPathD{Polygon: UnscalePath(node.Polygon, scale), Parent: parent}
	for _, c := range node.Childs {
		out.Childs = append(out.Childs, scaleTreeToD(c, out, scale))
	}
	return out
}
