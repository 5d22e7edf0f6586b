package crack

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("crack: invalid parameters")

// SmoothingKind selects the path smoothing strategy.
type SmoothingKind string

const (
	SmoothingNone          SmoothingKind = "none"
	SmoothingGaussian      SmoothingKind = "gaussian"
	SmoothingMovingAverage SmoothingKind = "moving_average"
)

// DimensionParams determine the size and depth profile of a crack.
type DimensionParams struct {
	Width float64
	Depth float64

	// Sigma and WidthStdsOffset shape the Gaussian depth profile.
	Sigma           float64
	WidthStdsOffset float64

	// DepthFloor is the smallest value an interior height map pixel may take.
	DepthFloor float64
}

// PathParams control the walk and its post-processing.
type PathParams struct {
	StepSize          float64
	GradientInfluence float64

	WidthUpdateChance  float64
	BreakthroughChance float64

	// MinDistance is the distance to a pivot at which the walk moves on.
	MinDistance float64

	MinWidth        float64
	WidthGrow       float64
	WidthGrowFactor float64

	// AllowedOverlap is the fraction of a cross-section that may cover
	// cells already claimed by the crack.
	AllowedOverlap float64

	StartPointiness int
	EndPointiness   int

	Smoothing                    SmoothingKind
	SmoothingSize                int
	DistanceImprovementThreshold float64
}

// TrajectoryParams control start point selection and pivot placement.
type TrajectoryParams struct {
	AlongBottomChance   float64
	AlongDiagonalChance float64
	AlongSideChance     float64

	MaxPivotBrickWidths  int
	MaxPivotBrickHeights int
	MaxPivotPoints       int

	RowSearchSpacePercent    float64
	ColumnSearchSpacePercent float64

	// StartCandidateFraction is the share of the most open edge cells the
	// start point is drawn from.
	StartCandidateFraction float64
}

// Params bundles everything a Generator needs.
type Params struct {
	Dimension  DimensionParams
	Path       PathParams
	Trajectory TrajectoryParams
}

// DefaultParams returns the standard parameter set.
func DefaultParams() Params {
	return Params{
		Dimension: DimensionParams{
			Width:           15,
			Depth:           5,
			Sigma:           5,
			WidthStdsOffset: 1.5,
			DepthFloor:      1. / 255.,
		},
		Path: PathParams{
			StepSize:                     15,
			GradientInfluence:            0.5,
			WidthUpdateChance:            0.02,
			BreakthroughChance:           0.1,
			MinDistance:                  10,
			MinWidth:                     2,
			WidthGrow:                    2,
			WidthGrowFactor:              0.05,
			AllowedOverlap:               0.25,
			StartPointiness:              3,
			EndPointiness:                3,
			Smoothing:                    SmoothingGaussian,
			SmoothingSize:                1,
			DistanceImprovementThreshold: 0.1,
		},
		Trajectory: TrajectoryParams{
			AlongBottomChance:        2. / 12.,
			AlongDiagonalChance:      9. / 12.,
			AlongSideChance:          1. / 12.,
			MaxPivotBrickWidths:      5,
			MaxPivotBrickHeights:     7,
			MaxPivotPoints:           6,
			RowSearchSpacePercent:    0.2,
			ColumnSearchSpacePercent: 0.2,
			StartCandidateFraction:   0.2,
		},
	}
}

// FromMap overlays snake_case keys from cfg onto the defaults. Values that do
// not parse are ignored.
func FromMap(cfg map[string]string) Params {
	return DefaultParams().Apply(cfg)
}

// Apply returns a copy of p with the snake_case keys from cfg overlaid.
// Unknown keys and values that do not parse are ignored.
func (p Params) Apply(cfg map[string]string) Params {
	if cfg == nil {
		return p
	}
	floats := map[string]*float64{
		"width":                          &p.Dimension.Width,
		"depth":                          &p.Dimension.Depth,
		"sigma":                          &p.Dimension.Sigma,
		"width_stds_offset":              &p.Dimension.WidthStdsOffset,
		"depth_floor":                    &p.Dimension.DepthFloor,
		"step_size":                      &p.Path.StepSize,
		"gradient_influence":             &p.Path.GradientInfluence,
		"width_update_chance":            &p.Path.WidthUpdateChance,
		"breakthrough_chance":            &p.Path.BreakthroughChance,
		"min_distance":                   &p.Path.MinDistance,
		"min_width":                      &p.Path.MinWidth,
		"max_width_grow":                 &p.Path.WidthGrow,
		"max_width_grow_factor":          &p.Path.WidthGrowFactor,
		"allowed_overlap":                &p.Path.AllowedOverlap,
		"distance_improvement_threshold": &p.Path.DistanceImprovementThreshold,
		"along_bottom_chance":            &p.Trajectory.AlongBottomChance,
		"along_diagonal_chance":          &p.Trajectory.AlongDiagonalChance,
		"along_side_chance":              &p.Trajectory.AlongSideChance,
		"row_search_space_percent":       &p.Trajectory.RowSearchSpacePercent,
		"column_search_space_percent":    &p.Trajectory.ColumnSearchSpacePercent,
		"start_candidate_fraction":       &p.Trajectory.StartCandidateFraction,
	}
	ints := map[string]*int{
		"start_pointiness":        &p.Path.StartPointiness,
		"end_pointiness":          &p.Path.EndPointiness,
		"smoothing":               &p.Path.SmoothingSize,
		"max_pivot_brick_widths":  &p.Trajectory.MaxPivotBrickWidths,
		"max_pivot_brick_heights": &p.Trajectory.MaxPivotBrickHeights,
		"max_pivot_points":        &p.Trajectory.MaxPivotPoints,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["smoothing_type"]; ok {
		p.Path.Smoothing = SmoothingKind(v)
	}
	return p
}

// Validate checks the range invariants the generator relies on.
func (p Params) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	chance := func(v float64) bool { return v >= 0 && v <= 1 }

	check(p.Dimension.Width > 0, "width must be positive, got %v", p.Dimension.Width)
	check(p.Dimension.Sigma > 0, "sigma must be positive, got %v", p.Dimension.Sigma)
	check(p.Dimension.WidthStdsOffset > 0, "width_stds_offset must be positive, got %v", p.Dimension.WidthStdsOffset)
	check(p.Dimension.DepthFloor > 0 && p.Dimension.DepthFloor <= 1, "depth_floor must be in (0,1], got %v", p.Dimension.DepthFloor)

	check(p.Path.StepSize > 0, "step_size must be positive, got %v", p.Path.StepSize)
	check(chance(p.Path.GradientInfluence), "gradient_influence must be in [0,1], got %v", p.Path.GradientInfluence)
	check(chance(p.Path.WidthUpdateChance), "width_update_chance must be in [0,1], got %v", p.Path.WidthUpdateChance)
	check(chance(p.Path.BreakthroughChance), "breakthrough_chance must be in [0,1], got %v", p.Path.BreakthroughChance)
	check(chance(p.Path.AllowedOverlap), "allowed_overlap must be in [0,1], got %v", p.Path.AllowedOverlap)
	check(p.Path.MinDistance >= 0, "min_distance must not be negative, got %v", p.Path.MinDistance)
	check(p.Path.MinWidth > 0, "min_width must be positive, got %v", p.Path.MinWidth)
	check(p.Path.WidthGrow >= 0, "max_width_grow must not be negative, got %v", p.Path.WidthGrow)
	check(p.Path.WidthGrowFactor >= 0, "max_width_grow_factor must not be negative, got %v", p.Path.WidthGrowFactor)
	check(p.Path.StartPointiness >= 0 && p.Path.EndPointiness >= 0, "pointiness must not be negative")
	check(p.Path.SmoothingSize >= 0, "smoothing must not be negative, got %d", p.Path.SmoothingSize)
	switch p.Path.Smoothing {
	case SmoothingNone, SmoothingGaussian, SmoothingMovingAverage:
	default:
		errs = append(errs, fmt.Errorf("unknown smoothing_type %q", p.Path.Smoothing))
	}

	t := p.Trajectory
	check(chance(t.AlongBottomChance) && chance(t.AlongDiagonalChance) && chance(t.AlongSideChance), "pivot chances must be in [0,1]")
	check(t.AlongBottomChance+t.AlongDiagonalChance+t.AlongSideChance > 0, "pivot chances must not all be zero")
	check(t.MaxPivotBrickWidths >= 1 && t.MaxPivotBrickHeights >= 1, "pivot brick bounds must be at least 1")
	check(t.MaxPivotPoints >= 1, "max_pivot_points must be at least 1, got %d", t.MaxPivotPoints)
	check(t.RowSearchSpacePercent > 0 && t.RowSearchSpacePercent <= 1, "row_search_space_percent must be in (0,1], got %v", t.RowSearchSpacePercent)
	check(t.ColumnSearchSpacePercent > 0 && t.ColumnSearchSpacePercent <= 1, "column_search_space_percent must be in (0,1], got %v", t.ColumnSearchSpacePercent)
	check(t.StartCandidateFraction > 0 && t.StartCandidateFraction <= 1, "start_candidate_fraction must be in (0,1], got %v", t.StartCandidateFraction)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
	}
	return nil
}
