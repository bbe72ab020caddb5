package clipper

import (
	"testing"

	"github.com/ctessum/geom"
)

func TestPathsDFromGeomDispatch(t *testing.T) {
	poly := geom.Polygon{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	paths, err := PathsDFromGeom(poly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 || len(paths[0]) != 4 {
		t.Fatalf("unexpected paths: %+v", paths)
	}

	ls := geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}}
	paths, err = PathsDFromGeom(ls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 || len(paths[0]) != 2 {
		t.Fatalf("unexpected paths: %+v", paths)
	}
}

// unsupportedGeom satisfies geom.Geom only to exercise PathsDFromGeom's
// default case; ctessum/geom's actual unsupported types (geom.Point,
// geom.MultiPoint) would hit the same branch.
type unsupportedGeom struct{ geom.Geom }

func TestPathsDFromGeomRejectsUnsupportedType(t *testing.T) {
	_, err := PathsDFromGeom(unsupportedGeom{})
	if err == nil {
		t.Fatal("expected an UnsupportedGeometryError")
	}
	if _, ok := err.(*UnsupportedGeometryError); !ok {
		t.Fatalf("expected *UnsupportedGeometryError, got %T", err)
	}
}

func TestPolygonFromPolyPathDRoundTrip(t *testing.T) {
	outer := &PolyPathD{Polygon: PathD{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	hole := &PolyPathD{Polygon: PathD{{X: 2, Y: 2}, {X: 2, Y: 8}, {X: 8, Y: 8}, {X: 8, Y: 2}}, Parent: outer}
	outer.Childs = []*PolyPathD{hole}

	poly := PolygonFromPolyPathD(outer)
	if len(poly) != 2 {
		t.Fatalf("expected outer ring + 1 hole, got %d rings", len(poly))
	}
	if len(poly[0]) != 4 || len(poly[1]) != 4 {
		t.Fatalf("unexpected ring sizes: %v", poly)
	}
}
