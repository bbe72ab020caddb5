package clipper

import (
	"math"
	"testing"
)

func TestOffsetClosedSquareMiterGrowsArea(t *testing.T) {
	src := square(0, 0, 100, 100)

	co := NewClipperOffset()
	co.AddPath(src, JoinMiter, EndPolygon)
	result := co.Execute(10)

	if len(result) == 0 {
		t.Fatal("expected at least one output path")
	}
	area := math.Abs(AreaCombined(result))
	// a square grown by 10 on every side with square (mitered) corners is
	// exactly 120x120 = 14400.
	want := 14400.0
	if math.Abs(area-want) > 50 {
		t.Errorf("area = %v, want ~%v", area, want)
	}
}

func TestOffsetClosedSquareShrinks(t *testing.T) {
	src := square(0, 0, 100, 100)

	co := NewClipperOffset()
	co.AddPath(src, JoinMiter, EndPolygon)
	result := co.Execute(-10)

	if len(result) == 0 {
		t.Fatal("expected at least one output path")
	}
	area := math.Abs(AreaCombined(result))
	want := 80.0 * 80.0
	if math.Abs(area-want) > 50 {
		t.Errorf("area = %v, want ~%v", area, want)
	}
}

func TestOffsetOpenPathRoundJoinProducesBand(t *testing.T) {
	path := Path64{{X: 0, Y: 0}, {X: 100, Y: 0}}

	co := NewClipperOffset()
	co.AddPath(path, JoinRound, EndRound)
	result := co.Execute(10)

	if len(result) == 0 {
		t.Fatal("expected at least one output path")
	}
	area := math.Abs(AreaCombined(result))
	// a round-capped 100-long stroke offset 10 to each side (20 wide) is a
	// 100x20 rectangle plus
	// two end semicircles of radius 10, i.e. 100*20 + pi*10^2.
	want := 100.0*20.0 + math.Pi*100
	if math.Abs(area-want)/want > 0.1 {
		t.Errorf("area = %v, want ~%v (within 10%%)", area, want)
	}
}

func TestOffsetOpenPathSquareEnd(t *testing.T) {
	path := Path64{{X: 0, Y: 0}, {X: 100, Y: 0}}

	co := NewClipperOffset()
	co.AddPath(path, JoinSquare, EndSquare)
	result := co.Execute(10)

	if len(result) == 0 {
		t.Fatal("expected at least one output path")
	}
	area := math.Abs(AreaCombined(result))
	// square-capped stroke extends the rectangle by delta on each end too:
	// (100+20) x 20.
	want := 120.0 * 20.0
	if math.Abs(area-want)/want > 0.1 {
		t.Errorf("area = %v, want ~%v (within 10%%)", area, want)
	}
}

func TestOffsetMiterLimitFallsBackToSquare(t *testing.T) {
	// A very sharp spike: a plain miter join would shoot out past any
	// reasonable limit, so MiterLimit should force a squared-off corner
	// instead of an enormous one.
	spike := Path64{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100},
		{X: 60, Y: 100}, {X: 50, Y: 1000}, {X: 40, Y: 100}, {X: 0, Y: 100},
	}
	co := NewClipperOffset()
	co.MiterLimit = 2.0
	co.AddPath(spike, JoinMiter, EndPolygon)
	result := co.Execute(5)
	if len(result) == 0 {
		t.Fatal("expected at least one output path")
	}
	b := GetBoundsPaths(result)
	// the apex at y=1000 may reach at most MiterLimit*delta = 10 beyond it;
	// an unclamped miter there would reach about y=1450.
	if b.Top < -1000 || b.Bottom > 1010 {
		t.Errorf("unexpected unbounded offset result: %+v", b)
	}
}
