//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
)

// SurfacePainter keeps a single ebiten image in sync with a surface and its
// crack.
type SurfacePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewSurfacePainter allocates a painter for a surface of size w*h.
func NewSurfacePainter(w, h int) *SurfacePainter {
	sp := &SurfacePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	sp.img = ebiten.NewImage(w, h)
	return sp
}

// Update uploads a new composite. With depthOnly set the height map is shown
// without the surface underneath.
func (sp *SurfacePainter) Update(mask *core.MaskGrid, depth *core.FloatGrid, p Palette, depthOnly bool) {
	if mask.W != sp.w || mask.H != sp.h {
		return
	}
	var cells []float64
	if depth != nil && depth.W == sp.w && depth.H == sp.h {
		cells = depth.Cells()
	}
	if depthOnly {
		if cells == nil {
			cells = make([]float64, sp.w*sp.h)
		}
		fillDepthRGBA(sp.buf, cells)
	} else {
		fillSurfaceRGBA(sp.buf, mask.Cells(), cells, p)
	}
	sp.img.WritePixels(sp.buf)
}

// Blit draws the last uploaded composite scaled onto dst.
func (sp *SurfacePainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}

// Size returns the dimensions of the underlying image.
func (sp *SurfacePainter) Size() (int, int) { return sp.w, sp.h }
