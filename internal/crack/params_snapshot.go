package crack

import (
	"strconv"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
)

// Parameters returns the parameter set grouped for display.
func (p Params) Parameters() core.ParameterSnapshot {
	d, path, t := p.Dimension, p.Path, p.Trajectory
	groups := []core.ParameterGroup{
		{
			Name: "Dimensions",
			Params: []core.Parameter{
				floatParam("width", "Width", d.Width),
				floatParam("depth", "Depth", d.Depth),
				floatParam("sigma", "Sigma", d.Sigma),
				floatParam("width_stds_offset", "Width std offset", d.WidthStdsOffset),
				floatParam("depth_floor", "Depth floor", d.DepthFloor),
			},
		},
		{
			Name: "Walk",
			Params: []core.Parameter{
				floatParam("step_size", "Step size", path.StepSize),
				floatParam("gradient_influence", "Gradient influence", path.GradientInfluence),
				floatParam("width_update_chance", "Width update chance", path.WidthUpdateChance),
				floatParam("breakthrough_chance", "Breakthrough chance", path.BreakthroughChance),
				floatParam("min_distance", "Min pivot distance", path.MinDistance),
				floatParam("min_width", "Min width", path.MinWidth),
				floatParam("max_width_grow", "Width grow", path.WidthGrow),
				floatParam("max_width_grow_factor", "Width grow factor", path.WidthGrowFactor),
				floatParam("allowed_overlap", "Allowed overlap", path.AllowedOverlap),
			},
		},
		{
			Name: "Post-processing",
			Params: []core.Parameter{
				intParam("start_pointiness", "Start pointiness", path.StartPointiness),
				intParam("end_pointiness", "End pointiness", path.EndPointiness),
				stringParam("smoothing_type", "Smoothing", string(path.Smoothing)),
				intParam("smoothing", "Smoothing size", path.SmoothingSize),
				floatParam("distance_improvement_threshold", "Distance improvement threshold", path.DistanceImprovementThreshold),
			},
		},
		{
			Name: "Trajectory",
			Params: []core.Parameter{
				floatParam("along_bottom_chance", "Along bottom chance", t.AlongBottomChance),
				floatParam("along_diagonal_chance", "Along diagonal chance", t.AlongDiagonalChance),
				floatParam("along_side_chance", "Along side chance", t.AlongSideChance),
				intParam("max_pivot_brick_widths", "Max pivot brick widths", t.MaxPivotBrickWidths),
				intParam("max_pivot_brick_heights", "Max pivot brick heights", t.MaxPivotBrickHeights),
				intParam("max_pivot_points", "Max pivot points", t.MaxPivotPoints),
				floatParam("row_search_space_percent", "Row search space", t.RowSearchSpacePercent),
				floatParam("column_search_space_percent", "Column search space", t.ColumnSearchSpacePercent),
				floatParam("start_candidate_fraction", "Start candidate fraction", t.StartCandidateFraction),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters worth tuning interactively.
func (p Params) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "width", Label: "Width", Type: core.ParamTypeFloat, Step: 1, Min: 1, HasMin: true},
		{Key: "step_size", Label: "Step size", Type: core.ParamTypeFloat, Step: 1, Min: 1, HasMin: true},
		{Key: "gradient_influence", Label: "Gradient influence", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "breakthrough_chance", Label: "Breakthrough", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "width_update_chance", Label: "Width update", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "allowed_overlap", Label: "Allowed overlap", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "max_pivot_points", Label: "Pivot points", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 20, HasMin: true, HasMax: true},
		{Key: "smoothing", Label: "Smoothing", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 8, HasMin: true, HasMax: true},
		{Key: "sigma", Label: "Sigma", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, HasMin: true},
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
