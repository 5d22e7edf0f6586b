package crack

import (
	"image"
	"testing"
)

func TestCollisionBounds(t *testing.T) {
	c := NewCollisionChecker(openField(t, 10, 8))
	cases := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(0, 0), false},
		{image.Pt(1, 1), true},
		{image.Pt(8, 6), true},
		{image.Pt(9, 6), false},
		{image.Pt(8, 7), false},
	}
	for _, tc := range cases {
		if got := c.WithinBounds(tc.p); got != tc.want {
			t.Errorf("WithinBounds(%v)=%v, expected %v", tc.p, got, tc.want)
		}
		if c.InObject(tc.p) {
			t.Errorf("InObject(%v) on an open field", tc.p)
		}
	}
}

func TestLineCells(t *testing.T) {
	r := image.Rect(0, 0, 20, 20)
	cells := lineCells(image.Pt(0, 0), image.Pt(4, 2), r)
	if len(cells) != 5 {
		t.Fatalf("expected 5 cells, got %v", cells)
	}
	if cells[0] != image.Pt(0, 0) || cells[4] != image.Pt(4, 2) {
		t.Fatalf("endpoints missing: %v", cells)
	}

	back := lineCells(image.Pt(3, 9), image.Pt(3, 2), r)
	if len(back) != 8 {
		t.Fatalf("vertical line has %d cells, expected 8", len(back))
	}

	clipped := lineCells(image.Pt(-3, 1), image.Pt(2, 1), r)
	if len(clipped) != 3 {
		t.Fatalf("clipped line has %d cells, expected 3", len(clipped))
	}
}

func countSet(c *CollisionChecker) int {
	return c.Overlap().Count(func(v bool) bool { return v })
}

func TestZeroOverlapKeepsSegmentsDisjoint(t *testing.T) {
	c := NewCollisionChecker(openField(t, 12, 12))

	if !c.CheckAndMarkOverlap(image.Pt(5, 2), image.Pt(5, 8), 0) {
		t.Fatal("first segment rejected")
	}
	if c.CheckAndMarkOverlap(image.Pt(5, 8), image.Pt(5, 2), 0) {
		t.Fatal("identical segment accepted")
	}
	if c.CheckAndMarkOverlap(image.Pt(2, 5), image.Pt(8, 5), 0) {
		t.Fatal("crossing segment accepted")
	}
	if got := countSet(c); got != 7 {
		t.Fatalf("rejected segments mutated the mask: %d cells set", got)
	}
	if !c.CheckAndMarkOverlap(image.Pt(6, 2), image.Pt(6, 8), 0) {
		t.Fatal("disjoint parallel segment rejected")
	}
	if got := countSet(c); got != 14 {
		t.Fatalf("accepted segments do not partition the mask: %d cells set", got)
	}

	c.Reset()
	if countSet(c) != 0 {
		t.Fatal("Reset left cells set")
	}
}

func TestPartialOverlapTolerance(t *testing.T) {
	c := NewCollisionChecker(openField(t, 12, 12))
	c.CheckAndMarkOverlap(image.Pt(1, 5), image.Pt(3, 5), 0)

	// Three of seven cells are already claimed.
	if !c.CheckAndMarkOverlap(image.Pt(1, 5), image.Pt(7, 5), 0.5) {
		t.Fatal("segment within tolerance rejected")
	}
	if c.CheckAndMarkOverlap(image.Pt(1, 5), image.Pt(8, 5), 0.5) {
		t.Fatal("segment beyond tolerance accepted")
	}
}

func TestFullOverlapAcceptsEverything(t *testing.T) {
	c := NewCollisionChecker(openField(t, 12, 12))
	for i := 0; i < 3; i++ {
		if !c.CheckAndMarkOverlap(image.Pt(5, 2), image.Pt(5, 8), 1) {
			t.Fatalf("attempt %d rejected with allowed overlap 1", i)
		}
	}
}
