package crack

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// coverageThreshold is the alpha at which a pixel counts as inside the outline.
const coverageThreshold = 0x80

// Outline returns the closed crack outline: the top sides in path order
// followed by the bottom sides in reverse.
func Outline(path Path, bounds image.Rectangle) []image.Point {
	tops, bots := path.Outline(bounds)
	poly := make([]image.Point, 0, len(tops)+len(bots))
	poly = append(poly, tops...)
	for i := len(bots) - 1; i >= 0; i-- {
		poly = append(poly, bots[i])
	}
	return poly
}

// FillPolygon rasterizes the polygon into a w by h mask. Vertices address
// pixel centers; a pixel is set when at least half of it is covered.
func FillPolygon(poly []image.Point, w, h int) *core.MaskGrid {
	mask := core.NewMaskGrid(w, h)
	if len(poly) < 3 {
		return mask
	}
	r := vector.NewRasterizer(mask.W, mask.H)
	r.MoveTo(float32(poly[0].X)+0.5, float32(poly[0].Y)+0.5)
	for _, p := range poly[1:] {
		r.LineTo(float32(p.X)+0.5, float32(p.Y)+0.5)
	}
	r.ClosePath()

	alpha := image.NewAlpha(image.Rect(0, 0, mask.W, mask.H))
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})
	cells := mask.Cells()
	for i, a := range alpha.Pix {
		cells[i] = a >= coverageThreshold
	}
	return mask
}

// SynthesizeHeightMap converts the crack footprint into a depth field in
// [0,1]. Interior pixels follow a Gaussian profile over their distance to
// the outline and never drop below DepthFloor; exterior pixels are 0.
// Degenerate paths produce an all-zero map.
func SynthesizeHeightMap(path Path, size core.Size, d DimensionParams) *core.FloatGrid {
	out := core.NewFloatGrid(size.W, size.H)
	if len(path) < 3 {
		return out
	}
	filled := FillPolygon(Outline(path, out.Bounds()), out.W, out.H)
	dist := surface.DistanceTransform(filled, false)

	vals := dist.Cells()
	inside := filled.Cells()
	peak := 0.0
	for i, in := range inside {
		if in {
			peak = max(peak, vals[i])
		}
	}
	if peak == 0 {
		return out
	}

	scale := d.Sigma * d.Sigma
	heights := out.Cells()
	top := 0.0
	for i, in := range inside {
		if !in {
			continue
		}
		z := (vals[i] - peak) * d.Sigma * d.WidthStdsOffset
		heights[i] = normalPDF(z, scale)
		top = max(top, heights[i])
	}
	if top == 0 {
		return out
	}
	for i, in := range inside {
		if !in {
			continue
		}
		heights[i] = min(max(heights[i]/top, d.DepthFloor), 1)
	}
	return out
}

func normalPDF(x, scale float64) float64 {
	return math.Exp(-0.5*(x/scale)*(x/scale)) / (scale * math.Sqrt(2*math.Pi))
}
