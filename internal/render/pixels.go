// Package render turns surfaces and height maps into images.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
)

// Palette holds the colors of a surface composite.
type Palette struct {
	Solid   color.RGBA
	Channel color.RGBA
	Crack   color.RGBA
}

// DefaultPalette returns a grey wall with a dark red crack.
func DefaultPalette() Palette {
	return Palette{
		Solid:   color.RGBA{R: 168, G: 160, B: 150, A: 255},
		Channel: color.RGBA{R: 96, G: 92, B: 88, A: 255},
		Crack:   color.RGBA{R: 120, G: 16, B: 12, A: 255},
	}
}

// fillSurfaceRGBA writes the mask colors into buf and blends the crack color
// over them proportionally to depth. depth may be nil.
func fillSurfaceRGBA(buf []byte, mask []bool, depth []float64, p Palette) {
	for i, solid := range mask {
		col := p.Channel
		if solid {
			col = p.Solid
		}
		if i < len(depth) && depth[i] > 0 {
			col = blend(col, p.Crack, depth[i])
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillDepthRGBA converts depth values in [0,1] into grey pixels, deepest
// darkest.
func fillDepthRGBA(buf []byte, depth []float64) {
	for i, d := range depth {
		v := 255 - uint8(math.Round(255*clamp01(d)))
		base := i * 4
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 0xff
	}
}

// Composite draws the surface mask with the height map blended on top. The
// result has the mask's size; a height map of a different size is ignored.
func Composite(mask *core.MaskGrid, depth *core.FloatGrid, p Palette) *image.RGBA {
	img := image.NewRGBA(mask.Bounds())
	var cells []float64
	if depth != nil && depth.W == mask.W && depth.H == mask.H {
		cells = depth.Cells()
	}
	fillSurfaceRGBA(img.Pix, mask.Cells(), cells, p)
	return img
}

// DepthImage renders a height map as an opaque grey image.
func DepthImage(depth *core.FloatGrid) *image.RGBA {
	img := image.NewRGBA(depth.Bounds())
	fillDepthRGBA(img.Pix, depth.Cells())
	return img
}

// HeightMap16 quantizes a height map to 16 bits, 0 meaning untouched and
// 0xffff the deepest point.
func HeightMap16(depth *core.FloatGrid) *image.Gray16 {
	img := image.NewGray16(depth.Bounds())
	for y := 0; y < depth.H; y++ {
		for x := 0; x < depth.W; x++ {
			v := uint16(math.Round(0xffff * clamp01(depth.At(x, y))))
			img.SetGray16(x, y, color.Gray16{Y: v})
		}
	}
	return img
}

// MarkPoints paints a small square around every point in pts.
func MarkPoints(img *image.RGBA, pts []image.Point, radius int, col color.RGBA) {
	for _, p := range pts {
		r := image.Rect(p.X-radius, p.Y-radius, p.X+radius+1, p.Y+radius+1).Intersect(img.Bounds())
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
