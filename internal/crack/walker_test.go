package crack

import (
	"image"
	"math"
	"testing"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// corridor returns a w by h mask that is solid everywhere except rows lo..hi.
func corridor(w, h, lo, hi int) *core.MaskGrid {
	mask := core.NewMaskGrid(w, h)
	for y := 0; y < h; y++ {
		if y >= lo && y <= hi {
			continue
		}
		for x := 0; x < w; x++ {
			mask.Set(x, y, true)
		}
	}
	return mask
}

func TestWalkFollowsGradientAlongCorridor(t *testing.T) {
	field := fieldWithAngle(t, corridor(220, 40, 10, 29), 0, surface.Dimensions{})
	params := quietPath()
	params.GradientInfluence = 1
	params.StepSize = 4
	params.MinDistance = 5

	tr := Trajectory{
		Start:  Point{Center: image.Pt(5, 20), Angle: 0, Width: 6},
		Pivots: []image.Point{{5, 20}, {210, 20}},
	}
	path := Walk(field, NewCollisionChecker(field), params, core.NewRNG(1), tr)
	if len(path) != 51 {
		t.Fatalf("expected 51 samples, got %d", len(path))
	}
	for i, pt := range path {
		if pt.Center.Y != 20 {
			t.Fatalf("sample %d left the corridor center: %v", i, pt.Center)
		}
		if pt.Width != 6 {
			t.Fatalf("sample %d changed width to %v", i, pt.Width)
		}
	}
	if last := path[len(path)-1].Center; last.X != 205 {
		t.Fatalf("walk ended at %v, expected x=205", last)
	}
}

func TestWalkBreaksThroughSolidMaterial(t *testing.T) {
	mask := core.NewMaskGrid(120, 40)
	mask.Fill(true)
	mask.Set(10, 20, false)
	mask.Set(100, 20, false)
	field := surface.New(mask, surface.Dimensions{})

	params := quietPath()
	params.BreakthroughChance = 1
	params.StepSize = 3
	params.MinDistance = 3
	params.MinWidth = 1

	tr := Trajectory{
		Start:  Point{Center: image.Pt(10, 20), Width: 2},
		Pivots: []image.Point{{10, 20}, {100, 20}},
	}
	path := Walk(field, NewCollisionChecker(field), params, core.NewRNG(3), tr)
	last := path[len(path)-1].Center
	if d := distance(last, image.Pt(100, 20)); d > params.MinDistance {
		t.Fatalf("breakthrough walk stopped %v away from the pivot at %v", d, last)
	}
	for i, pt := range path {
		if pt.Center.Y != 20 {
			t.Fatalf("sample %d strayed from the straight line: %v", i, pt.Center)
		}
	}
}

func TestWalkStopsAtOwnTrail(t *testing.T) {
	field := openField(t, 200, 100)
	pivots := []image.Point{{20, 50}, {150, 50}, {20, 50}}

	run := func(overlap float64, pivots []image.Point) Path {
		params := quietPath()
		params.StepSize = 5
		params.MinDistance = 10
		params.GradientInfluence = 0
		params.AllowedOverlap = overlap
		tr := Trajectory{Start: Point{Center: pivots[0], Width: 6}, Pivots: pivots}
		return Walk(field, NewCollisionChecker(field), params, core.NewRNG(9), tr)
	}

	if got := len(run(1, pivots)); got != 47 {
		t.Fatalf("unrestricted walk produced %d samples, expected 47", got)
	}
	if got := len(run(0, pivots)); got != 25 {
		t.Fatalf("overlap-restricted walk produced %d samples, expected 25", got)
	}
	extended := append(append([]image.Point(nil), pivots...), image.Pt(150, 80))
	if got := len(run(0, extended)); got != 25 {
		t.Fatalf("walk continued past an overlap rejection: %d samples", got)
	}
}

func TestWalkerHaltReported(t *testing.T) {
	field := openField(t, 200, 100)
	params := quietPath()
	params.StepSize = 5
	params.MinDistance = 10
	params.GradientInfluence = 0
	params.AllowedOverlap = 0

	w := NewWalker(field, NewCollisionChecker(field), params, core.NewRNG(1), Point{Center: image.Pt(20, 50), Width: 6})
	if seg := w.WalkTo(image.Pt(150, 50)); len(seg) != 24 || w.Halted() {
		t.Fatalf("outbound segment: %d samples, halted=%v", len(seg), w.Halted())
	}
	if seg := w.WalkTo(image.Pt(20, 50)); len(seg) != 0 || !w.Halted() {
		t.Fatalf("return segment: %d samples, halted=%v", len(seg), w.Halted())
	}
	if seg := w.WalkTo(image.Pt(150, 80)); len(seg) != 0 {
		t.Fatalf("halted walker produced %d samples", len(seg))
	}
	if math.Abs(w.Heading()) > 1e-9 || w.Position() != image.Pt(140, 50) {
		t.Fatalf("walker state changed after halt: heading %v at %v", w.Heading(), w.Position())
	}
}

func TestWalkWidensInOpenSpace(t *testing.T) {
	field := openField(t, 200, 100)
	params := quietPath()
	params.WidthUpdateChance = 1
	params.GradientInfluence = 0
	params.StepSize = 5

	tr := Trajectory{
		Start:  Point{Center: image.Pt(20, 50), Width: 6},
		Pivots: []image.Point{{20, 50}, {120, 50}},
	}
	path := Walk(field, NewCollisionChecker(field), params, core.NewRNG(2), tr)
	if len(path) < 3 {
		t.Fatalf("walk too short: %d samples", len(path))
	}
	for i := 1; i < len(path); i++ {
		if want := 6 + params.WidthGrow*float64(i-1); path[i].Width != want {
			t.Fatalf("sample %d width %v, expected %v", i, path[i].Width, want)
		}
	}
}

func TestWalkNarrowsUntilTooThin(t *testing.T) {
	field := fieldWithAngle(t, corridor(200, 40, 18, 22), 0, surface.Dimensions{})
	params := quietPath()
	params.WidthUpdateChance = 1
	params.GradientInfluence = 0
	params.StepSize = 5
	params.MinWidth = 5

	tr := Trajectory{
		Start:  Point{Center: image.Pt(10, 20), Width: 10},
		Pivots: []image.Point{{10, 20}, {190, 20}},
	}
	path := Walk(field, NewCollisionChecker(field), params, core.NewRNG(2), tr)
	if len(path) != 4 {
		t.Fatalf("expected the walk to end after 3 steps, got %d samples", len(path))
	}
	if w := path[len(path)-1].Width; w != 6 {
		t.Fatalf("last sample width %v, expected 6", w)
	}
	for i, pt := range path {
		if pt.Width < params.MinWidth {
			t.Fatalf("sample %d below the width floor: %v", i, pt.Width)
		}
	}
}

func TestWalkStartTooThin(t *testing.T) {
	field := openField(t, 50, 50)
	params := quietPath()
	tr := Trajectory{
		Start:  Point{Center: image.Pt(10, 10), Width: params.MinWidth / 2},
		Pivots: []image.Point{{10, 10}, {40, 40}},
	}
	if path := Walk(field, NewCollisionChecker(field), params, core.NewRNG(1), tr); len(path) != 0 {
		t.Fatalf("expected an empty path, got %d samples", len(path))
	}
}

func TestWalkAdvancesFromRasterEdges(t *testing.T) {
	params := quietPath()
	params.GradientInfluence = 0.5

	// Mortar band along the top edge: the distance peaks on row 0.
	top := surface.New(corridor(100, 100, 0, 5), surface.Dimensions{})
	// Mortar joint along the left edge: the distance peaks on column 0.
	leftMask := core.NewMaskGrid(100, 100)
	for y := 0; y < 100; y++ {
		for x := 6; x < 100; x++ {
			leftMask.Set(x, y, true)
		}
	}
	left := surface.New(leftMask, surface.Dimensions{})

	cases := []struct {
		name   string
		field  *surface.Field
		start  image.Point
		target image.Point
	}{
		{"top row", top, image.Pt(20, 0), image.Pt(80, 40)},
		{"left column", left, image.Pt(0, 20), image.Pt(60, 60)},
	}
	for _, c := range cases {
		tr := Trajectory{
			Start:  Point{Center: c.start, Width: 4},
			Pivots: []image.Point{c.start, c.target},
		}
		path := Walk(c.field, NewCollisionChecker(c.field), params, core.NewRNG(1), tr)
		if len(path) < 3 {
			t.Fatalf("%s: walk stalled with %d samples", c.name, len(path))
		}
		if !c.field.WithinBounds(path[1].Center) {
			t.Fatalf("%s: first step left the surface at %v", c.name, path[1].Center)
		}
		if d := distance(path[len(path)-1].Center, c.target); d > params.MinDistance {
			t.Fatalf("%s: walk ended %v from the target", c.name, d)
		}
	}
}

func TestWalkFromBorderStepsInside(t *testing.T) {
	// The angle field points off the left edge everywhere.
	field := fieldWithAngle(t, core.NewMaskGrid(100, 100), math.Pi, surface.Dimensions{})
	w := NewWalker(field, NewCollisionChecker(field), quietPath(), core.NewRNG(1), Point{Center: image.Pt(0, 50), Width: 4})

	seg := w.WalkTo(image.Pt(0, 90))
	if len(seg) != 1 || seg[0].Center != image.Pt(1, 61) {
		t.Fatalf("expected a single step to (1,61), got %v", seg)
	}
}
