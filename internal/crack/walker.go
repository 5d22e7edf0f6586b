package crack

import (
	"image"
	"math"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// Walker grows a crack path from pivot to pivot. Its position, heading,
// width and breakthrough latch carry over between WalkTo calls so the
// segments form one continuous path.
type Walker struct {
	field   *surface.Field
	checker *CollisionChecker
	params  PathParams
	rng     *core.RNG

	x, y     float64
	angle    float64
	width    float64
	breaking bool
	halted   bool
}

// NewWalker places a walker on start and claims the start cross-section.
func NewWalker(field *surface.Field, checker *CollisionChecker, params PathParams, rng *core.RNG, start Point) *Walker {
	w := &Walker{
		field:    field,
		checker:  checker,
		params:   params,
		rng:      rng,
		x:        float64(start.Center.X),
		y:        float64(start.Center.Y),
		angle:    start.Angle,
		width:    start.Width,
		breaking: checker.InObject(start.Center),
	}
	top, bot := start.SidesWithin(field.Bounds())
	checker.CheckAndMarkOverlap(top, bot, params.AllowedOverlap)
	return w
}

// Halted reports whether the walk ran into its own trail and must not be
// continued.
func (w *Walker) Halted() bool { return w.halted }

// Heading returns the direction of the last step in radians.
func (w *Walker) Heading() float64 { return w.angle }

// Width returns the current crack width.
func (w *Walker) Width() float64 { return w.width }

// Position returns the current rounded position.
func (w *Walker) Position() image.Point { return w.center() }

func (w *Walker) center() image.Point {
	return image.Pt(int(math.Round(w.x)), int(math.Round(w.y)))
}

// WalkTo advances towards target until the crack gets too thin, comes
// within MinDistance of target, or would leave the surface. A walker sitting
// on the raster border first steps inside. It returns the samples added,
// excluding the current position.
func (w *Walker) WalkTo(target image.Point) Path {
	var path Path
	if w.halted {
		return path
	}
	p := w.params
	tx, ty := float64(target.X), float64(target.Y)

	for w.width >= p.MinWidth && w.field.Contains(w.center()) {
		rx, ry := tx-w.x, ty-w.y
		remaining := math.Hypot(rx, ry)
		if remaining <= p.MinDistance || remaining == 0 {
			break
		}
		rx, ry = rx/remaining, ry/remaining

		g := w.field.AngleAt(w.center())
		gx, gy := math.Cos(g), math.Sin(g)

		if !w.breaking && w.rng.Chance(p.BreakthroughChance) {
			w.breaking = true
		}
		factor := p.GradientInfluence
		if w.breaking {
			factor = 0
		}

		dx := factor*gx + (1-factor)*rx
		dy := factor*gy + (1-factor)*ry
		if n := math.Hypot(dx, dy); n > 1e-12 {
			dx, dy = dx/n, dy/n
		} else {
			// Gradient and target cancel out; head for the target.
			dx, dy = rx, ry
		}

		nx, ny := w.x+p.StepSize*dx, w.y+p.StepSize*dy
		next := image.Pt(int(math.Round(nx)), int(math.Round(ny)))
		if !w.checker.WithinBounds(w.center()) {
			// Starts on the border step into the interior.
			next = clampPoint(next, w.field.Bounds().Inset(1))
			nx, ny = float64(next.X), float64(next.Y)
			if n := math.Hypot(nx-w.x, ny-w.y); n > 0 {
				dx, dy = (nx-w.x)/n, (ny-w.y)/n
			}
		}
		if !w.checker.WithinBounds(next) {
			break
		}

		sample := Point{Center: next, Angle: math.Atan2(dy, dx), Width: w.width}
		top, bot := sample.SidesWithin(w.field.Bounds())
		if !w.checker.CheckAndMarkOverlap(top, bot, p.AllowedOverlap) {
			w.halted = true
			core.Logger().Debug("walk halted by overlap", "at", next, "points", len(path))
			break
		}

		w.x, w.y = nx, ny
		w.angle = sample.Angle
		w.breaking = w.checker.InObject(next)

		if w.rng.Chance(p.WidthUpdateChance) {
			if w.field.DistanceAt(next) > w.width/2 {
				w.width += p.WidthGrow
			} else {
				w.width -= p.WidthGrow
			}
		}
		path = append(path, sample)
	}
	return path
}

// Walk runs a walker along every consecutive pivot pair of t and returns the
// concatenated path, starting with the start sample. A start narrower than
// MinWidth yields an empty path.
func Walk(field *surface.Field, checker *CollisionChecker, params PathParams, rng *core.RNG, t Trajectory) Path {
	if t.Start.Width < params.MinWidth {
		return nil
	}
	w := NewWalker(field, checker, params, rng, t.Start)
	path := Path{t.Start}
	if len(t.Pivots) < 2 {
		return path
	}
	for _, target := range t.Pivots[1:] {
		path = append(path, w.WalkTo(target)...)
		if w.Halted() {
			break
		}
	}
	return path
}
