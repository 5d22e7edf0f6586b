package crack

import (
	"image"
	"math"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
)

// Point is one sample of a crack path.
type Point struct {
	Center image.Point
	Angle  float64
	Width  float64
}

// Sides returns the two cross-section end points, offset perpendicular to
// the heading by half the width and rounded to the grid.
func (p Point) Sides() (top, bot image.Point) {
	ox := -math.Sin(p.Angle) * p.Width / 2
	oy := math.Cos(p.Angle) * p.Width / 2
	cx, cy := float64(p.Center.X), float64(p.Center.Y)
	top = image.Pt(int(math.Round(cx+ox)), int(math.Round(cy+oy)))
	bot = image.Pt(int(math.Round(cx-ox)), int(math.Round(cy-oy)))
	return top, bot
}

// SidesWithin is Sides clamped to r.
func (p Point) SidesWithin(r image.Rectangle) (top, bot image.Point) {
	top, bot = p.Sides()
	return clampPoint(top, r), clampPoint(bot, r)
}

func clampPoint(p image.Point, r image.Rectangle) image.Point {
	if r.Empty() {
		return r.Min
	}
	return image.Pt(
		min(max(p.X, r.Min.X), r.Max.X-1),
		min(max(p.Y, r.Min.Y), r.Max.Y-1),
	)
}

// Path is an ordered sequence of samples from the start of the crack to its end.
type Path []Point

// Centers returns the center of every sample.
func (p Path) Centers() []image.Point {
	out := make([]image.Point, len(p))
	for i, pt := range p {
		out[i] = pt.Center
	}
	return out
}

// Outline returns the top and bottom side sequences clamped to r.
func (p Path) Outline(r image.Rectangle) (tops, bots []image.Point) {
	tops = make([]image.Point, len(p))
	bots = make([]image.Point, len(p))
	for i, pt := range p {
		tops[i], bots[i] = pt.SidesWithin(r)
	}
	return tops, bots
}

// MaxWidth returns the largest sample width, or 0 for an empty path.
func (p Path) MaxWidth() float64 {
	w := 0.0
	for _, pt := range p {
		w = max(w, pt.Width)
	}
	return w
}

// Crack is the result of one generation call.
type Crack struct {
	Path      Path
	Pivots    []image.Point
	HeightMap *core.FloatGrid
}

// ActivePixels counts the height map pixels covered by the crack.
func (c Crack) ActivePixels() int {
	if c.HeightMap == nil {
		return 0
	}
	return c.HeightMap.Count(func(v float64) bool { return v > 0 })
}
