package crack

import (
	"image"
	"testing"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
)

func pathOf(centers ...image.Point) Path {
	p := make(Path, len(centers))
	for i, c := range centers {
		p[i] = Point{Center: c, Width: 4}
	}
	return p
}

func xs(p Path) []int {
	out := make([]int, len(p))
	for i, pt := range p {
		out[i] = pt.Center.X
	}
	return out
}

func TestRemoveNonProgressingDropsBacktracking(t *testing.T) {
	var centers []image.Point
	for _, x := range []int{0, 5, 10, 8, 15, 14, 20} {
		centers = append(centers, image.Pt(x, 0))
	}
	got := xs(RemoveNonProgressing(pathOf(centers...), 0.1))
	want := []int{0, 5, 10, 15, 20}
	if len(got) != len(want) {
		t.Fatalf("filtered to %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("filtered to %v, expected %v", got, want)
		}
	}
}

func TestRemoveNonProgressingIsMonotone(t *testing.T) {
	rng := core.NewRNG(4)
	for trial := 0; trial < 20; trial++ {
		p := image.Pt(50, 50)
		var centers []image.Point
		for i := 0; i < 60; i++ {
			centers = append(centers, p)
			p = p.Add(image.Pt(rng.IntN(9)-3, rng.IntN(9)-4))
		}
		out := RemoveNonProgressing(pathOf(centers...), 0.5)
		if out[0].Center != centers[0] {
			t.Fatalf("first sample dropped")
		}
		for i := 1; i < len(out); i++ {
			prev := distance(out[0].Center, out[i-1].Center)
			cur := distance(out[0].Center, out[i].Center)
			if cur-prev <= 0.5 {
				t.Fatalf("trial %d: sample %d does not progress (%v -> %v)", trial, i, prev, cur)
			}
		}
	}
}

func TestRemoveNonProgressingKeepsShortPaths(t *testing.T) {
	in := pathOf(image.Pt(0, 0), image.Pt(5, 0), image.Pt(3, 0), image.Pt(1, 0))
	out := RemoveNonProgressing(in, 0.1)
	if len(out) != len(in) {
		t.Fatalf("short path altered: %v", xs(out))
	}
	out[0].Center.X = 99
	if in[0].Center.X == 99 {
		t.Fatalf("result aliases the input")
	}
}

func TestSmoothLeavesCollinearPathsUnchanged(t *testing.T) {
	var centers []image.Point
	for i := 0; i < 10; i++ {
		centers = append(centers, image.Pt(3*i, 2*i))
	}
	in := pathOf(centers...)
	for _, kind := range []SmoothingKind{SmoothingGaussian, SmoothingMovingAverage} {
		out := Smooth(in, kind, 2)
		for i := range in {
			if out[i].Center != in[i].Center {
				t.Fatalf("%s moved collinear sample %d from %v to %v", kind, i, in[i].Center, out[i].Center)
			}
		}
	}
}

func TestSmoothDampsZigzag(t *testing.T) {
	var centers []image.Point
	for i := 0; i < 9; i++ {
		centers = append(centers, image.Pt(2*i, 4*(i%2)))
	}
	in := pathOf(centers...)
	variation := func(p Path) int {
		v := 0
		for i := 1; i < len(p); i++ {
			v += abs(p[i].Center.Y - p[i-1].Center.Y)
		}
		return v
	}

	out := Smooth(in, SmoothingGaussian, 1)
	if out[0].Center != in[0].Center || out[8].Center != in[8].Center {
		t.Fatalf("end points moved: %v %v", out[0].Center, out[8].Center)
	}
	for i := 1; i < 8; i++ {
		if out[i].Center != image.Pt(2*i, 2) {
			t.Fatalf("sample %d smoothed to %v, expected (%d,2)", i, out[i].Center, 2*i)
		}
	}
	if variation(out) >= variation(in) {
		t.Fatalf("smoothing did not reduce variation")
	}
	if got := Smooth(in, SmoothingMovingAverage, 1); variation(got) >= variation(in) {
		t.Fatalf("moving average did not reduce variation")
	}
}

func TestSmoothNoop(t *testing.T) {
	in := pathOf(image.Pt(0, 0), image.Pt(2, 4), image.Pt(4, 0), image.Pt(6, 4))
	for _, out := range []Path{
		Smooth(in, SmoothingGaussian, 0),
		Smooth(in, SmoothingNone, 3),
		Smooth(in[:2], SmoothingGaussian, 3),
	} {
		for i := range out {
			if out[i] != in[i] {
				t.Fatalf("sample %d changed to %+v", i, out[i])
			}
		}
	}
}

func TestTaperNarrowsBothEnds(t *testing.T) {
	params := DefaultParams().Path
	params.StartPointiness = 3
	params.EndPointiness = 3
	params.WidthGrow = 2
	params.WidthGrowFactor = 0
	params.MinWidth = 2

	in := make(Path, 9)
	for i := range in {
		in[i] = Point{Center: image.Pt(i, 0), Width: 8}
	}
	out := Taper(in, params)
	want := []float64{2, 4, 6, 8, 8, 8, 6, 4, 2}
	for i, w := range want {
		if out[i].Width != w {
			t.Fatalf("sample %d width %v, expected %v", i, out[i].Width, w)
		}
	}
	if in[0].Width != 8 {
		t.Fatalf("taper modified its input")
	}
}

func TestTaperClampsToMinWidth(t *testing.T) {
	params := DefaultParams().Path
	params.StartPointiness = 5
	params.EndPointiness = 0
	params.WidthGrow = 2
	params.WidthGrowFactor = 0
	params.MinWidth = 2

	in := make(Path, 8)
	for i := range in {
		in[i] = Point{Center: image.Pt(i, 0), Width: 8}
	}
	out := Taper(in, params)
	want := []float64{2, 2, 2, 4, 6, 8, 8, 8}
	for i, w := range want {
		if out[i].Width != w {
			t.Fatalf("sample %d width %v, expected %v", i, out[i].Width, w)
		}
	}
}

func TestTaperScalesWithMaximumWidth(t *testing.T) {
	params := DefaultParams().Path
	params.StartPointiness = 2
	params.EndPointiness = 0
	params.WidthGrow = 1
	params.WidthGrowFactor = 0.25
	params.MinWidth = 1

	in := make(Path, 4)
	for i := range in {
		in[i] = Point{Center: image.Pt(i, 0), Width: 16}
	}
	out := Taper(in, params)
	if out[0].Width != 8 || out[1].Width != 12 || out[2].Width != 16 {
		t.Fatalf("unexpected widths %v %v %v", out[0].Width, out[1].Width, out[2].Width)
	}
}

func TestPostProcessKeepsWidthFloor(t *testing.T) {
	params := DefaultParams().Path
	var centers []image.Point
	for i := 0; i < 30; i++ {
		centers = append(centers, image.Pt(5*i, 20+(i%3)))
	}
	in := pathOf(centers...)
	for i := range in {
		in[i].Width = params.MinWidth + float64(i%4)
	}
	for i, pt := range PostProcess(in, params) {
		if pt.Width < params.MinWidth {
			t.Fatalf("sample %d width %v below floor", i, pt.Width)
		}
	}
}
