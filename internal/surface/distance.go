package surface

import (
	"math"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
)

const edtInf = 1e20

// DistanceTransform returns, for every cell, the Euclidean distance to the
// nearest cell whose mask value equals target. Cells equal to target get 0.
// When no cell matches target every distance is capped at the raster diagonal.
func DistanceTransform(mask *core.MaskGrid, target bool) *core.FloatGrid {
	w, h := mask.W, mask.H
	out := core.NewFloatGrid(w, h)
	sq := out.Cells()
	cells := mask.Cells()
	for i, v := range cells {
		if v == target {
			sq[i] = 0
		} else {
			sq[i] = edtInf
		}
	}

	n := max(w, h)
	f := make([]float64, n)
	d := make([]float64, n)
	v := make([]int, n)
	z := make([]float64, n+1)

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			f[y] = sq[y*w+x]
		}
		edt1d(f[:h], d[:h], v, z)
		for y := 0; y < h; y++ {
			sq[y*w+x] = d[y]
		}
	}
	for y := 0; y < h; y++ {
		row := sq[y*w : (y+1)*w]
		copy(f[:w], row)
		edt1d(f[:w], d[:w], v, z)
		copy(row, d[:w])
	}

	limit := math.Hypot(float64(w), float64(h))
	for i, s := range sq {
		if s >= edtInf/2 {
			sq[i] = limit
			continue
		}
		sq[i] = math.Sqrt(s)
	}
	return out
}

// SignedDistance combines both distance transforms of mask: positive
// distance to solid for open cells, negative distance to the channel for
// solid cells. Ascending it always leads towards the middle of the channel.
func SignedDistance(mask *core.MaskGrid) *core.FloatGrid {
	out := DistanceTransform(mask, true)
	inner := DistanceTransform(mask, false).Cells()
	for i, v := range out.Cells() {
		out.Cells()[i] = v - inner[i]
	}
	return out
}

// edt1d computes the squared distance transform of the sampled function f
// into d using the lower envelope of parabolas.
func edt1d(f, d []float64, v []int, z []float64) {
	n := len(f)
	if n == 0 {
		return
	}
	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)
	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}
	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the abscissa where the parabolas rooted at q and p meet.
func intersect(f []float64, q, p int) float64 {
	return ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*q-2*p)
}

// AngleField returns the direction of steepest ascent of dist at every cell,
// using central differences inside and one-sided differences on the border.
// Border angles never point off the raster: outward components are dropped
// and a border cell left without a gradient points straight inwards.
func AngleField(dist *core.FloatGrid) *core.FloatGrid {
	w, h := dist.W, dist.H
	out := core.NewFloatGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := inward(derivative(dist, x, y, 1, 0), x, w)
			gy := inward(derivative(dist, x, y, 0, 1), y, h)
			if gx == 0 && gy == 0 {
				gx, gy = normal(x, w), normal(y, h)
			}
			out.Set(x, y, math.Atan2(gy, gx))
		}
	}
	return out
}

// inward zeroes a gradient component at pos that leads off a raster axis of
// the given size.
func inward(g float64, pos, size int) float64 {
	if (pos == 0 && g < 0) || (pos == size-1 && g > 0) {
		return 0
	}
	return g
}

// normal is the inward unit component on a raster axis, 0 away from the edges.
func normal(pos, size int) float64 {
	switch {
	case size < 2:
		return 0
	case pos == 0:
		return 1
	case pos == size-1:
		return -1
	}
	return 0
}

func derivative(g *core.FloatGrid, x, y, dx, dy int) float64 {
	size := g.W
	pos := x
	if dy != 0 {
		size = g.H
		pos = y
	}
	switch {
	case size < 2:
		return 0
	case pos == 0:
		return g.At(x+dx, y+dy) - g.At(x, y)
	case pos == size-1:
		return g.At(x, y) - g.At(x-dx, y-dy)
	default:
		return (g.At(x+dx, y+dy) - g.At(x-dx, y-dy)) / 2
	}
}
