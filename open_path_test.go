package clipper

import "testing"

// TestOpenSubjectSimpleLineSurvivesUnion exercises the minimal case the
// reviewer flagged as crashing: a 2-point open subject with no clip path at
// all. Its single active edge must reach its own VertexOpenEnd and
// terminate there instead of dereferencing a nil VertexTop.Next.
func TestOpenSubjectSimpleLineSurvivesUnion(t *testing.T) {
	c := NewClipper64()
	c.AddOpenSubject(Paths64{{{X: 0, Y: 0}, {X: 10, Y: 10}}})

	closed, open, ok := c.Execute(Union, NonZero)
	if !ok {
		t.Fatalf("execute failed: %v", c.LastError())
	}
	if len(closed) != 0 {
		t.Errorf("expected no closed output, got %d paths", len(closed))
	}
	if len(open) != 1 {
		t.Fatalf("expected 1 open path, got %d", len(open))
	}
	if len(open[0]) != 2 {
		t.Fatalf("expected the 2-point line to survive intact, got %d points: %v", len(open[0]), open[0])
	}
}

// TestOpenSubjectInteriorBendSurvivesUnion exercises an open path that
// reverses direction partway through (ascends then descends, a "tent"
// shape). Before the fix, the bend vertex was flagged VertexLocalMax like a
// ring's local maximum, and doMaxima's no-maxima-pair branch deleted the
// edge right there, truncating the path before its real end.
func TestOpenSubjectInteriorBendSurvivesUnion(t *testing.T) {
	c := NewClipper64()
	c.AddOpenSubject(Paths64{{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}})

	_, open, ok := c.Execute(Union, NonZero)
	if !ok {
		t.Fatalf("execute failed: %v", c.LastError())
	}
	if len(open) != 1 {
		t.Fatalf("expected 1 open path, got %d", len(open))
	}
	got := open[0]
	if len(got) != 3 {
		t.Fatalf("expected all 3 points to survive the interior bend, got %d points: %v", len(got), got)
	}
	last := got[len(got)-1]
	if last.X != 20 || last.Y != 0 {
		t.Errorf("expected the path to reach its true end (20,0), last point was %v", last)
	}
}

// TestOpenSubjectIntersectionAgainstEnclosingClip clips an open subject
// against a clip polygon that fully encloses it, confirming Intersection's
// WindCnt2-driven contribution test (isContributingOpen) still finds the
// whole open path inside the clip and keeps it hot end to end.
func TestOpenSubjectIntersectionAgainstEnclosingClip(t *testing.T) {
	c := NewClipper64()
	c.AddOpenSubject(Paths64{{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}})
	c.AddClip(Paths64{square(-5, -5, 25, 15)})

	_, open, ok := c.Execute(Intersection, NonZero)
	if !ok {
		t.Fatalf("execute failed: %v", c.LastError())
	}
	if len(open) != 1 {
		t.Fatalf("expected the open path to survive wholly enclosed, got %d paths", len(open))
	}
	if len(open[0]) < 2 {
		t.Fatalf("expected a non-degenerate surviving path, got %v", open[0])
	}
}

// TestOpenSubjectIntersectionAgainstDisjointClip confirms an open subject
// entirely outside the clip polygon contributes nothing under Intersection.
func TestOpenSubjectIntersectionAgainstDisjointClip(t *testing.T) {
	c := NewClipper64()
	c.AddOpenSubject(Paths64{{{X: 100, Y: 100}, {X: 110, Y: 110}}})
	c.AddClip(Paths64{square(0, 0, 10, 10)})

	_, open, ok := c.Execute(Intersection, NonZero)
	if !ok {
		t.Fatalf("execute failed: %v", c.LastError())
	}
	if len(open) != 0 {
		t.Errorf("expected no open output for a disjoint subject, got %d paths", len(open))
	}
}
