package core

import "image"

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// MaskGrid marks cells as set or unset.
type MaskGrid = Grid[bool]

// FloatGrid holds a scalar field such as a distance transform or height map.
type FloatGrid = Grid[float64]

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// NewMaskGrid allocates an all-false mask.
func NewMaskGrid(w, h int) *MaskGrid { return NewGrid[bool](w, h) }

// NewFloatGrid allocates a zeroed scalar field.
func NewFloatGrid(w, h int) *FloatGrid { return NewGrid[float64](w, h) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Bounds returns the grid extent as an image rectangle.
func (g *Grid[T]) Bounds() image.Rectangle { return image.Rect(0, 0, g.W, g.H) }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }

// At returns the value at (x, y). Out-of-range coordinates yield the zero value.
func (g *Grid[T]) At(x, y int) T {
	if !g.Contains(x, y) {
		var zero T
		return zero
	}
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). Out-of-range coordinates are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.Contains(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zero values.
func (g *Grid[T]) Clear() {
	var zero T
	g.Fill(zero)
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{W: g.W, H: g.H, data: make([]T, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Count returns the number of cells for which keep reports true.
func (g *Grid[T]) Count(keep func(T) bool) int {
	n := 0
	for _, v := range g.data {
		if keep(v) {
			n++
		}
	}
	return n
}
