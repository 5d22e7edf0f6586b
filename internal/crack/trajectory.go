package crack

import (
	"cmp"
	"image"
	"math"
	"slices"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// Direction is the horizontal sense in which a crack travels.
type Direction int

const (
	RightToLeft Direction = -1
	LeftToRight Direction = 1
)

// Trajectory is the macroscopic plan of a crack: a start sample and the
// pivots the walk aims for in order. Pivots[0] is the start center.
type Trajectory struct {
	Start     Point
	Pivots    []image.Point
	Direction Direction
}

// pivot displacement branches
const (
	alongBottom = iota
	alongDiagonal
	alongSide
)

// TrajectoryPlanner picks start points and pivots on one surface.
type TrajectoryPlanner struct {
	field  *surface.Field
	params Params
	rng    *core.RNG
}

// NewTrajectoryPlanner returns a planner drawing from rng.
func NewTrajectoryPlanner(field *surface.Field, params Params, rng *core.RNG) *TrajectoryPlanner {
	return &TrajectoryPlanner{field: field, params: params, rng: rng}
}

// Plan chooses a direction, a start sample and up to MaxPivotPoints-1
// further pivots. It never fails; the worst case is a trajectory holding
// only the start.
func (tp *TrajectoryPlanner) Plan() Trajectory {
	dir := RightToLeft
	if tp.rng.Bool() {
		dir = LeftToRight
	}
	start := tp.StartCenter(dir)

	pivots := []image.Point{start}
	extra := 0
	if n := tp.params.Trajectory.MaxPivotPoints; n > 1 {
		extra = 1 + tp.rng.IntN(n-1)
	}
	for i := 0; i < extra; i++ {
		next, ok := tp.NextPivot(pivots[len(pivots)-1], dir)
		if !ok {
			break
		}
		pivots = append(pivots, next)
	}

	var next *image.Point
	if len(pivots) > 1 {
		next = &pivots[1]
	}
	angle := tp.InitialHeading(start, next)
	width := tp.InitialWidth(angle)

	if width > tp.field.DistanceAt(start) {
		shift := image.Pt(
			int(math.Round(width/2*math.Cos(angle))),
			int(math.Round(width/2*math.Sin(angle))),
		)
		start = clampPoint(start.Add(shift), tp.field.Bounds())
		pivots[0] = start
	}

	return Trajectory{
		Start:     Point{Center: start, Angle: angle, Width: width},
		Pivots:    pivots,
		Direction: dir,
	}
}

// StartCenter picks a start cell along the top edge or the side edge the
// crack departs from, favouring the most open cells.
func (tp *TrajectoryPlanner) StartCenter(dir Direction) image.Point {
	s := tp.field.Size()
	t := tp.params.Trajectory
	rows := min(s.H, max(1, int(math.Round(float64(s.H)*t.RowSearchSpacePercent))))
	cols := min(s.W, max(1, int(math.Round(float64(s.W)*t.ColumnSearchSpacePercent))))

	colMin, colMax, sideX := 0, cols, 0
	if dir == RightToLeft {
		colMin, colMax, sideX = s.W-cols, s.W, s.W-1
	}

	candidates := make([]image.Point, 0, rows+cols)
	for y := 1; y < rows; y++ {
		candidates = append(candidates, image.Pt(sideX, y))
	}
	for x := colMin; x < colMax; x++ {
		candidates = append(candidates, image.Pt(x, 0))
	}
	slices.SortStableFunc(candidates, func(a, b image.Point) int {
		return cmp.Compare(tp.field.DistanceAt(b), tp.field.DistanceAt(a))
	})

	n := max(1, int(float64(len(candidates))*t.StartCandidateFraction))
	return candidates[tp.rng.IntN(n)]
}

// NextPivot displaces prev by a random multiple of the brick size and moves
// the result out of solid material. It reports false when the pivot leaves
// the surface or cannot be freed.
func (tp *TrajectoryPlanner) NextPivot(prev image.Point, dir Direction) (image.Point, bool) {
	t := tp.params.Trajectory
	dims := tp.field.Dimensions()
	bw, bh := unitOr(dims.BrickWidth), unitOr(dims.BrickHeight)

	uw := float64(1+tp.rng.IntN(max(1, t.MaxPivotBrickWidths))) * bw
	uh := float64(1+tp.rng.IntN(max(1, t.MaxPivotBrickHeights))) * bh
	branches := [3][3]float64{
		alongBottom:   {0, 0, uw},
		alongDiagonal: {0, uw, uw + uh},
		alongSide:     {uw, uw, uw + uh},
	}
	b := branches[tp.rng.Choice([]float64{t.AlongBottomChance, t.AlongDiagonalChance, t.AlongSideChance})]

	d := math.Round(tp.rng.Triangular(b[0], b[1], b[2]))
	dx := math.Round(min(d, uw)/bw) * bw
	dy := math.Round((uh-max(d-uw, 0))/bh) * bh

	p := prev.Add(image.Pt(int(dir)*int(dx), int(dy)))
	return tp.Decollide(p)
}

// Decollide walks p up the distance gradient two cells at a time while it
// sits on solid material inside the surface.
func (tp *TrajectoryPlanner) Decollide(p image.Point) (image.Point, bool) {
	s := tp.field.Size()
	limit := s.W + s.H
	for i := 0; tp.field.InObject(p); i++ {
		if i >= limit {
			return p, false
		}
		a := tp.field.AngleAt(p)
		p = p.Add(image.Pt(int(math.Round(2*math.Cos(a))), int(math.Round(2*math.Sin(a)))))
	}
	return p, tp.field.WithinBounds(p)
}

// InitialHeading is the circular midpoint between a reference direction and
// the direction towards next. The reference is straight down for starts on
// the top row and the local gradient otherwise.
func (tp *TrajectoryPlanner) InitialHeading(start image.Point, next *image.Point) float64 {
	ref := tp.field.AngleAt(start)
	if start.Y == 0 {
		ref = math.Pi / 2
	}
	if next == nil || *next == start {
		return ref
	}
	toward := math.Atan2(float64(next.Y-start.Y), float64(next.X-start.X))
	return midAngle(ref, toward)
}

// InitialWidth caps the configured width by the mortar joint the heading
// runs along, minus a one pixel margin.
func (tp *TrajectoryPlanner) InitialWidth(angle float64) float64 {
	dims := tp.field.Dimensions()
	limit := dims.MortarHeight
	if a := math.Abs(math.Remainder(angle, math.Pi)); a > math.Pi/4 {
		limit = dims.MortarWidth
	}
	w := tp.params.Dimension.Width
	if limit > 0 {
		w = min(w, limit)
	}
	return w - 1
}

func midAngle(a, b float64) float64 {
	x := math.Cos(a) + math.Cos(b)
	y := math.Sin(a) + math.Sin(b)
	if math.Hypot(x, y) < 1e-9 {
		return b
	}
	return math.Atan2(y, x)
}

func unitOr(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
