package clipper

import (
	"fmt"

	"github.com/ctessum/geom"
)

// This file adapts between this package's PathD/Paths-of-PathD
// representation and github.com/ctessum/geom's Polygon/MultiPolygon/
// LineString/MultiLineString types, the same dependency the teacher
// (ctessum/go.clipper) and its sibling geometry packages share. It lives
// at the public boundary per spec §9 — "input/output path containers...
// are out of scope for the core engine" — matching the adapter pattern in
// other_examples/spatialmodel-inmap__geom.go's convertToPolygon/
// toGeomPolygon pair.

// PathDFromLineString converts a geom.LineString to a PathD.
func PathDFromLineString(ls geom.LineString) PathD {
	out := make(PathD, len(ls))
	for i, p := range ls {
		out[i] = PointD{X: p.X, Y: p.Y}
	}
	return out
}

// LineStringFromPathD converts a PathD back to a geom.LineString.
func LineStringFromPathD(path PathD) geom.LineString {
	out := make(geom.LineString, len(path))
	for i, p := range path {
		out[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return out
}

// PathsDFromMultiLineString converts every component line of a
// geom.MultiLineString to a []PathD.
func PathsDFromMultiLineString(mls geom.MultiLineString) []PathD {
	out := make([]PathD, len(mls))
	for i, ls := range mls {
		out[i] = PathDFromLineString(ls)
	}
	return out
}

// MultiLineStringFromPathsD is the inverse of PathsDFromMultiLineString.
func MultiLineStringFromPathsD(paths []PathD) geom.MultiLineString {
	out := make(geom.MultiLineString, len(paths))
	for i, p := range paths {
		out[i] = LineStringFromPathD(p)
	}
	return out
}

// PathsDFromPolygon flattens a geom.Polygon (an outer ring followed by
// zero or more hole rings) into a []PathD, ready to feed AddSubject/
// AddClip on a ClipperD.
func PathsDFromPolygon(poly geom.Polygon) []PathD {
	out := make([]PathD, len(poly))
	for i, ring := range poly {
		p := make(PathD, len(ring))
		for j, pt := range ring {
			p[j] = PointD{X: pt.X, Y: pt.Y}
		}
		out[i] = p
	}
	return out
}

// PathsDFromMultiPolygon flattens every ring of every polygon in a
// geom.MultiPolygon into a single []PathD.
func PathsDFromMultiPolygon(mp geom.MultiPolygon) []PathD {
	var out []PathD
	for _, poly := range mp {
		out = append(out, PathsDFromPolygon(poly)...)
	}
	return out
}

// PolygonFromPolyPathD rebuilds a geom.Polygon from one ExecuteTree node:
// the node's own ring as the outer boundary, each hole child's ring as a
// hole. Grandchildren (nested outers) are dropped — callers wanting the
// full forest should walk PolyPathD.Childs themselves and call this once
// per outer node.
func PolygonFromPolyPathD(node *PolyPathD) geom.Polygon {
	poly := make(geom.Polygon, 0, 1+len(node.Childs))
	poly = append(poly, ringFromPathD(node.Polygon))
	for _, hole := range node.Childs {
		poly = append(poly, ringFromPathD(hole.Polygon))
	}
	return poly
}

// MultiPolygonFromPolyPathD walks an ExecuteTree result and emits one
// geom.Polygon per outer ring found at tree/hole-parent depth, each
// paired with its direct hole children — mirroring how PolyPath64.IsHole
// alternates outer/hole by nesting depth (spec §4.10).
func MultiPolygonFromPolyPathD(root *PolyPathD) geom.MultiPolygon {
	var mp geom.MultiPolygon
	var walk func(node *PolyPathD)
	walk = func(node *PolyPathD) {
		for _, outer := range node.Childs {
			mp = append(mp, PolygonFromPolyPathD(outer))
			for _, hole := range outer.Childs {
				walk(hole)
			}
		}
	}
	walk(root)
	return mp
}

// PathsDFromGeom dispatches on g's concrete type the way
// other_examples/spatialmodel-inmap__geom.go's convertToPolygon does,
// flattening any of the four supported geom types into a []PathD. Any
// other geom.Geom implementation (geom.Point, geom.MultiPoint, a custom
// type) is rejected with UnsupportedGeometryError rather than panicking.
func PathsDFromGeom(g geom.Geom) ([]PathD, error) {
	switch v := g.(type) {
	case geom.Polygon:
		return PathsDFromPolygon(v), nil
	case geom.MultiPolygon:
		return PathsDFromMultiPolygon(v), nil
	case geom.LineString:
		return []PathD{PathDFromLineString(v)}, nil
	case geom.MultiLineString:
		return PathsDFromMultiLineString(v), nil
	default:
		return nil, newUnsupportedGeometryError(fmt.Sprintf("%T", g))
	}
}

func ringFromPathD(path PathD) []geom.Point {
	ring := make([]geom.Point, len(path))
	for i, p := range path {
		ring[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return ring
}
