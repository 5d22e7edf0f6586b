package crack

import (
	"image"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// CollisionChecker answers bounds and occupancy queries against a surface
// and tracks the cells a crack has already claimed. One checker belongs to
// one generation call.
type CollisionChecker struct {
	field   *surface.Field
	overlap *core.MaskGrid
}

// NewCollisionChecker allocates an empty overlap mask the size of field.
func NewCollisionChecker(field *surface.Field) *CollisionChecker {
	s := field.Size()
	return &CollisionChecker{field: field, overlap: core.NewMaskGrid(s.W, s.H)}
}

// WithinBounds reports whether p lies strictly inside the surface border.
func (c *CollisionChecker) WithinBounds(p image.Point) bool { return c.field.WithinBounds(p) }

// InObject reports whether p lies within bounds on solid material.
func (c *CollisionChecker) InObject(p image.Point) bool { return c.field.InObject(p) }

// Overlap exposes the overlap mask. Callers must not modify it.
func (c *CollisionChecker) Overlap() *core.MaskGrid { return c.overlap }

// Reset clears the overlap mask so the checker can serve another crack.
func (c *CollisionChecker) Reset() { c.overlap.Clear() }

// CheckAndMarkOverlap rasterizes the segment from top to bot and accepts it
// when the share of already claimed cells is at most allowed. Accepted
// segments are claimed; rejected segments leave the mask untouched.
func (c *CollisionChecker) CheckAndMarkOverlap(top, bot image.Point, allowed float64) bool {
	if allowed >= 1 {
		return true
	}
	cells := lineCells(top, bot, c.overlap.Bounds())
	if len(cells) == 0 {
		return true
	}
	claimed := 0
	for _, p := range cells {
		if c.overlap.At(p.X, p.Y) {
			claimed++
		}
	}
	if float64(claimed)/float64(len(cells)) > allowed {
		return false
	}
	for _, p := range cells {
		c.overlap.Set(p.X, p.Y, true)
	}
	return true
}

// lineCells returns the Bresenham rasterization of the segment a-b,
// endpoints included, restricted to cells inside r.
func lineCells(a, b image.Point, r image.Rectangle) []image.Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	cells := make([]image.Point, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	e := dx + dy
	for {
		if p := image.Pt(x, y); p.In(r) {
			cells = append(cells, p)
		}
		if x == b.X && y == b.Y {
			return cells
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
