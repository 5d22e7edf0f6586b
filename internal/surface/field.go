// Package surface holds the read-only raster description of the surface a
// crack is grown on.
package surface

import (
	"errors"
	"fmt"
	"image"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
)

// ErrDimensionMismatch is returned when derived fields do not match the mask.
var ErrDimensionMismatch = errors.New("surface: field dimensions do not match mask")

// Dimensions are the average physical sizes of the surface elements in pixels.
type Dimensions struct {
	BrickWidth   float64
	BrickHeight  float64
	MortarWidth  float64
	MortarHeight float64
}

// Field is the immutable per-run surface description. A Field is safe to
// share between concurrent generation calls.
type Field struct {
	mask     *core.MaskGrid
	distance *core.FloatGrid
	angles   *core.FloatGrid
	dims     Dimensions
}

// New derives the distance transform and angle field from mask. Mask cells
// set to true are solid. The distance transform is signed: open cells hold
// their distance to the nearest solid cell, solid cells hold the negated
// distance to the nearest open cell.
func New(mask *core.MaskGrid, dims Dimensions) *Field {
	m := mask.Clone()
	dist := SignedDistance(m)
	return &Field{
		mask:     m,
		distance: dist,
		angles:   AngleField(dist),
		dims:     dims,
	}
}

// NewWithMaps wraps externally computed fields. The grids are copied.
func NewWithMaps(mask *core.MaskGrid, distance, angles *core.FloatGrid, dims Dimensions) (*Field, error) {
	if distance.W != mask.W || distance.H != mask.H || angles.W != mask.W || angles.H != mask.H {
		return nil, fmt.Errorf("%w: mask %dx%d, distance %dx%d, angles %dx%d", ErrDimensionMismatch,
			mask.W, mask.H, distance.W, distance.H, angles.W, angles.H)
	}
	return &Field{
		mask:     mask.Clone(),
		distance: distance.Clone(),
		angles:   angles.Clone(),
		dims:     dims,
	}, nil
}

// Size returns the raster dimensions.
func (f *Field) Size() core.Size { return f.mask.Size() }

// Bounds returns the raster extent.
func (f *Field) Bounds() image.Rectangle { return f.mask.Bounds() }

// Dimensions returns the physical element sizes.
func (f *Field) Dimensions() Dimensions { return f.dims }

// Mask exposes the solidity mask. Callers must not modify it.
func (f *Field) Mask() *core.MaskGrid { return f.mask }

// Distance exposes the distance transform. Callers must not modify it.
func (f *Field) Distance() *core.FloatGrid { return f.distance }

// Angles exposes the angle field. Callers must not modify it.
func (f *Field) Angles() *core.FloatGrid { return f.angles }

// Contains reports whether p addresses a cell of the raster.
func (f *Field) Contains(p image.Point) bool { return f.mask.Contains(p.X, p.Y) }

// WithinBounds reports whether p lies strictly inside the outermost border.
func (f *Field) WithinBounds(p image.Point) bool {
	return p.X > 0 && p.X < f.mask.W-1 && p.Y > 0 && p.Y < f.mask.H-1
}

// InObject reports whether p is within bounds and solid.
func (f *Field) InObject(p image.Point) bool {
	return f.WithinBounds(p) && f.mask.At(p.X, p.Y)
}

// DistanceAt returns the distance transform at p. It is positive in the
// channel and zero or negative on solid cells.
func (f *Field) DistanceAt(p image.Point) float64 { return f.distance.At(p.X, p.Y) }

// AngleAt returns the steepest-ascent direction of the distance transform at p.
func (f *Field) AngleAt(p image.Point) float64 { return f.angles.At(p.X, p.Y) }
