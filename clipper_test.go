package clipper

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func init() {
	rand.Seed(time.Now().UTC().UnixNano())
}

func square(left, top, right, bottom int64) Path64 {
	return Path64{
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
	}
}

func different(a, b float64) bool {
	return math.Abs(a-b) > 1e-6
}

func TestTwoSquaresBooleanAreas(t *testing.T) {
	// Two 10x10 squares overlapping in a 5x10 strip: areas are easy to
	// hand-check (subject and clip are each 100, intersection is 50).
	subj := Paths64{square(0, 0, 10, 10)}
	clip := Paths64{square(5, 0, 15, 10)}

	clipTypes := map[string]ClipType{
		"intersection": Intersection,
		"union":        Union,
		"difference":   Difference,
		"xor":          Xor,
	}
	areas := make(map[string]float64)
	for name, ct := range clipTypes {
		c := NewClipper64()
		c.AddSubject(subj)
		c.AddClip(clip)
		closed, _, ok := c.Execute(ct, NonZero)
		if !ok {
			t.Fatalf("%s: execute failed", name)
		}
		areas[name] = math.Abs(AreaCombined(closed))
	}

	if different(areas["intersection"], 50) {
		t.Errorf("intersection area = %v, want 50", areas["intersection"])
	}
	if different(areas["union"], 150) {
		t.Errorf("union area = %v, want 150", areas["union"])
	}
	if different(areas["difference"], 50) {
		t.Errorf("difference area = %v, want 50", areas["difference"])
	}
	if different(areas["xor"], 100) {
		t.Errorf("xor area = %v, want 100", areas["xor"])
	}

	// Union == Intersection + Xor always holds (spec §8).
	if different(areas["union"], areas["intersection"]+areas["xor"]) {
		t.Errorf("union (%v) != intersection+xor (%v)", areas["union"], areas["intersection"]+areas["xor"])
	}
}

func TestIntersectionIsCommutative(t *testing.T) {
	subj := Paths64{square(0, 0, 10, 10)}
	clip := Paths64{square(3, 3, 13, 13)}

	c1 := NewClipper64()
	c1.AddSubject(subj)
	c1.AddClip(clip)
	r1, _, ok1 := c1.Execute(Intersection, NonZero)

	c2 := NewClipper64()
	c2.AddSubject(clip)
	c2.AddClip(subj)
	r2, _, ok2 := c2.Execute(Intersection, NonZero)

	if !ok1 || !ok2 {
		t.Fatal("execute failed")
	}
	if different(math.Abs(AreaCombined(r1)), math.Abs(AreaCombined(r2))) {
		t.Errorf("areas differ: %v vs %v", AreaCombined(r1), AreaCombined(r2))
	}
}

// TestStarFillRules checks that a self-intersecting five-pointed star
// produces a smaller filled area under EvenOdd than under NonZero, the
// textbook demonstration of fill-rule divergence (spec §8).
func TestStarFillRules(t *testing.T) {
	// the five outer points visited in pentagram order, so the edges cross
	// and enclose a central pentagon twice.
	star := Path64{
		{X: 50, Y: 0}, {X: 79, Y: 91}, {X: 2, Y: 35}, {X: 98, Y: 35}, {X: 21, Y: 91},
	}

	runWith := func(fr FillRule) float64 {
		c := NewClipper64()
		c.AddSubject(Paths64{star})
		closed, _, ok := c.Execute(Union, fr)
		if !ok {
			t.Fatalf("execute failed for fill rule %v", fr)
		}
		return math.Abs(AreaCombined(closed))
	}

	evenOddArea := runWith(EvenOdd)
	nonZeroArea := runWith(NonZero)
	if evenOddArea <= 0 || nonZeroArea <= 0 {
		t.Fatalf("expected positive areas, got evenOdd=%v nonZero=%v", evenOddArea, nonZeroArea)
	}
	if nonZeroArea <= evenOddArea {
		t.Errorf("expected NonZero area (%v) > EvenOdd area (%v) for a self-intersecting star", nonZeroArea, evenOddArea)
	}
}

func TestExecuteTreeHoleNesting(t *testing.T) {
	outer := square(0, 0, 100, 100)
	hole := ReversePath(square(20, 20, 80, 80))

	c := NewClipper64()
	c.AddSubject(Paths64{outer, hole})
	tree, _, ok := c.ExecuteTree(Union, NonZero)
	if !ok {
		t.Fatal("execute failed")
	}
	if len(tree.Childs) != 1 {
		t.Fatalf("expected 1 top-level outer ring, got %d", len(tree.Childs))
	}
	top := tree.Childs[0]
	if top.IsHole() {
		t.Error("top-level ring should not be a hole")
	}
	if len(top.Childs) != 1 {
		t.Fatalf("expected 1 hole nested in the outer ring, got %d", len(top.Childs))
	}
	if !top.Childs[0].IsHole() {
		t.Error("nested ring should be classified as a hole")
	}
}

func TestClipperDRoundTrips(t *testing.T) {
	subj := []PathD{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	clip := []PathD{{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}}

	c := NewClipperD(2)
	c.AddSubject(subj)
	c.AddClip(clip)
	closed, _, ok := c.Execute(Intersection, NonZero)
	if !ok {
		t.Fatal("execute failed")
	}
	area := math.Abs(AreaD(closed[0]))
	if different(area, 25) {
		t.Errorf("area = %v, want 25", area)
	}
}

func randomPoly(maxWidth, maxHeight, vertCount int) Path64 {
	result := make(Path64, vertCount)
	for i := range result {
		result[i] = Point64{X: int64(rand.Intn(maxWidth)), Y: int64(rand.Intn(maxHeight))}
	}
	return result
}

// TestRandomUnionXorIdentity fuzzes the union/intersection/xor identity
// across random (often self-intersecting) polygons, in the teacher's own
// randomized-polygon style (ctessum-go.clipper's TestRandom).
func TestRandomUnionXorIdentity(t *testing.T) {
	for i := 0; i < 50; i++ {
		subj := Paths64{randomPoly(640, 480, 20)}
		clip := Paths64{randomPoly(640, 480, 20)}

		areas := make(map[string]float64)
		for name, ct := range map[string]ClipType{"union": Union, "intersection": Intersection, "xor": Xor} {
			c := NewClipper64()
			c.AddSubject(subj)
			c.AddClip(clip)
			closed, _, ok := c.Execute(ct, EvenOdd)
			if !ok {
				t.Fatalf("iteration %d: %s execute failed", i, name)
			}
			areas[name] = math.Abs(AreaCombined(closed))
		}

		if different(areas["union"], areas["intersection"]+areas["xor"]) {
			t.Errorf("iteration %d: union (%v) != intersection+xor (%v)", i, areas["union"], areas["intersection"]+areas["xor"])
		}
	}
}
