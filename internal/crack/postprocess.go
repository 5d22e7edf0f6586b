package crack

import (
	"image"
	"math"
)

// gaussianSigma is the standard deviation, in samples, of the smoothing kernel.
const gaussianSigma = 1.0

// minProgressLength is the shortest path RemoveNonProgressing will filter.
const minProgressLength = 5

// PostProcess removes backtracking samples, smooths the centerline and
// tapers both ends of path.
func PostProcess(path Path, p PathParams) Path {
	out := RemoveNonProgressing(path, p.DistanceImprovementThreshold)
	out = Smooth(out, p.Smoothing, p.SmoothingSize)
	return Taper(out, p)
}

// RemoveNonProgressing keeps the first sample and every later sample whose
// distance from the first sample exceeds that of the previously kept sample
// by more than threshold. Paths shorter than five samples are returned as is.
func RemoveNonProgressing(path Path, threshold float64) Path {
	if len(path) < minProgressLength {
		return append(Path(nil), path...)
	}
	origin := path[0].Center
	out := Path{path[0]}
	last := 0.0
	for _, pt := range path[1:] {
		d := distance(origin, pt.Center)
		if d-last <= threshold {
			continue
		}
		out = append(out, pt)
		last = d
	}
	return out
}

// Smooth filters the sample centers with the selected kernel. The window
// shrinks symmetrically towards the ends instead of padding them, so the
// first and last samples are left unsmoothed and evenly spaced collinear
// samples are left untouched. A size of 0 is a no-op.
func Smooth(path Path, kind SmoothingKind, size int) Path {
	out := append(Path(nil), path...)
	if size <= 0 || len(path) < 3 {
		return out
	}

	var weight func(k int) float64
	switch kind {
	case SmoothingGaussian:
		weight = func(k int) float64 {
			return math.Exp(-float64(k*k) / (2 * gaussianSigma * gaussianSigma))
		}
	case SmoothingMovingAverage:
		weight = func(int) float64 { return 1 }
	default:
		return out
	}

	n := len(path)
	for i := range path {
		r := min(size, i, n-1-i)
		var sx, sy, sw float64
		for k := -r; k <= r; k++ {
			wk := weight(k)
			c := path[i+k].Center
			sx += wk * float64(c.X)
			sy += wk * float64(c.Y)
			sw += wk
		}
		out[i].Center = image.Pt(int(math.Round(sx/sw)), int(math.Round(sy/sw)))
	}
	return out
}

// Taper narrows the first StartPointiness and last EndPointiness samples
// linearly towards MinWidth, never below it.
func Taper(path Path, p PathParams) Path {
	out := append(Path(nil), path...)
	n := len(out)
	if n == 0 {
		return out
	}
	inc := max(p.WidthGrow, p.WidthGrowFactor*out.MaxWidth())

	start := min(p.StartPointiness, n)
	for i := 0; i < start; i++ {
		narrowed := max(path[i].Width-float64(start-i)*inc, p.MinWidth)
		out[i].Width = min(out[i].Width, narrowed)
	}
	end := min(p.EndPointiness, n)
	for j := 0; j < end; j++ {
		i := n - 1 - j
		narrowed := max(path[i].Width-float64(end-j)*inc, p.MinWidth)
		out[i].Width = min(out[i].Width, narrowed)
	}
	return out
}

func distance(a, b image.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}
