package clipper

import "testing"

func TestBuildPathVerticesClassifiesSquareCorners(t *testing.T) {
	path := square(0, 0, 10, 10)
	var minima []*LocalMinima
	first := buildPathVertices(path, Subject, false, &minima)
	if first == nil {
		t.Fatal("expected a non-nil vertex ring")
	}

	// A rectangle has exactly one local minimum (top-right (10,0), since Y
	// grows downward here) and one local maximum (bottom-left (0,10)).
	var maxCount, minCount int
	v := first
	for i := 0; i < 4; i++ {
		if v.Flags.has(VertexLocalMax) {
			maxCount++
		}
		if v.Flags.has(VertexLocalMin) {
			minCount++
		}
		v = v.Next
	}
	if v != first {
		t.Fatalf("ring did not close back to the first vertex after 4 steps")
	}
	if minCount != 1 {
		t.Errorf("minCount = %d, want 1", minCount)
	}
	if maxCount != 1 {
		t.Errorf("maxCount = %d, want 1", maxCount)
	}
	if len(minima) != 1 {
		t.Errorf("len(minima) = %d, want 1", len(minima))
	}
}

func TestBuildPathVerticesOpenPathFlags(t *testing.T) {
	path := Path64{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}}
	var minima []*LocalMinima
	first := buildPathVertices(path, Subject, true, &minima)
	if first == nil {
		t.Fatal("expected a non-nil vertex chain")
	}
	if !first.Flags.has(VertexOpenStart) {
		t.Error("first vertex should carry VertexOpenStart")
	}
	if first.Prev != nil {
		t.Error("open chain's first vertex should have a nil Prev")
	}
	last := first.Next.Next
	if !last.Flags.has(VertexOpenEnd) {
		t.Error("last vertex should carry VertexOpenEnd")
	}
	if last.Next != nil {
		t.Error("open chain's last vertex should have a nil Next")
	}
	if len(minima) != 1 {
		t.Fatalf("len(minima) = %d, want 1 (the open-start vertex)", len(minima))
	}
	if !minima[0].IsOpen {
		t.Error("the open path's local minimum should be flagged IsOpen")
	}
}

func TestVertexFlagsBitmask(t *testing.T) {
	f := VertexOpenStart | VertexLocalMax
	if !f.has(VertexOpenStart) || !f.has(VertexLocalMax) {
		t.Fatal("combined flags should report both bits set")
	}
	if f.has(VertexOpenEnd) || f.has(VertexLocalMin) {
		t.Fatal("combined flags should not report unset bits")
	}
}

func TestGetBoundsAndArea(t *testing.T) {
	path := square(0, 0, 10, 20)
	b := GetBounds(path)
	if b.Left != 0 || b.Top != 0 || b.Right != 10 || b.Bottom != 20 {
		t.Errorf("unexpected bounds: %+v", b)
	}
	if different(Area(path), 200) {
		t.Errorf("area = %v, want 200", Area(path))
	}
	if !IsPositive(path) {
		t.Error("clockwise-in-Y-down square should be positive orientation")
	}
	rev := ReversePath(path)
	if IsPositive(rev) {
		t.Error("reversed square should be negative orientation")
	}
}

func TestStripDuplicates(t *testing.T) {
	path := Path64{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}
	out := StripDuplicates(path, true)
	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3, got %v", len(out), out)
	}
}
