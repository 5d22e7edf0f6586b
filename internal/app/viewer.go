package app

import (
	"fmt"
	"strconv"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/crack"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// Viewer holds the interactive state of the crack viewer: the surface, the
// active parameters and the crack generated for the current seed.
type Viewer struct {
	field  *surface.Field
	params crack.Params
	seed   int64
	crack  crack.Crack

	depthOnly bool
	version   uint64
}

// NewViewer generates the first crack for seed.
func NewViewer(field *surface.Field, params crack.Params, seed int64) *Viewer {
	v := &Viewer{field: field, params: params}
	v.Reseed(seed)
	return v
}

// Reseed switches to seed and regenerates.
func (v *Viewer) Reseed(seed int64) {
	v.seed = seed
	v.Regenerate()
}

// Next advances to the following seed.
func (v *Viewer) Next() { v.Reseed(v.seed + 1) }

// Regenerate rebuilds the crack for the current seed and parameters.
func (v *Viewer) Regenerate() {
	v.crack = crack.NewGenerator(v.params).Generate(v.field, core.NewRNG(v.seed))
	v.version++
}

// ToggleDepthView switches between the composite and the bare height map.
func (v *Viewer) ToggleDepthView() {
	v.depthOnly = !v.depthOnly
	v.version++
}

// DepthOnly reports whether the bare height map is shown.
func (v *Viewer) DepthOnly() bool { return v.depthOnly }

// Version changes whenever the displayed image must be redrawn.
func (v *Viewer) Version() uint64 { return v.version }

// Seed returns the seed of the displayed crack.
func (v *Viewer) Seed() int64 { return v.seed }

// Field returns the surface the viewer grows cracks on.
func (v *Viewer) Field() *surface.Field { return v.field }

// Crack returns the most recently generated crack.
func (v *Viewer) Crack() crack.Crack { return v.crack }

// Params returns the active generation parameters.
func (v *Viewer) Params() crack.Params { return v.params }

// Size returns the surface raster dimensions.
func (v *Viewer) Size() core.Size { return v.field.Size() }

// Name labels the HUD panel.
func (v *Viewer) Name() string { return "crack" }

// Status is the one-line summary shown in the corner of the window.
func (v *Viewer) Status() string {
	view := "surface"
	if v.depthOnly {
		view = "height map"
	}
	return fmt.Sprintf("seed %d  points %d  pivots %d  pixels %d  [%s]\nR redo  N next  S random  H view  Q quit",
		v.seed, len(v.crack.Path), len(v.crack.Pivots), v.crack.ActivePixels(), view)
}

// Parameters implements core.ParameterProvider.
func (v *Viewer) Parameters() core.ParameterSnapshot { return v.params.Parameters() }

// ParameterControls implements core.ParameterControlsProvider.
func (v *Viewer) ParameterControls() []core.ParameterControl { return v.params.ParameterControls() }

// SetIntParameter implements core.IntParameterSetter.
func (v *Viewer) SetIntParameter(key string, value int) bool {
	return v.apply(key, strconv.Itoa(value))
}

// SetFloatParameter implements core.FloatParameterSetter.
func (v *Viewer) SetFloatParameter(key string, value float64) bool {
	return v.apply(key, strconv.FormatFloat(value, 'f', -1, 64))
}

func (v *Viewer) apply(key, value string) bool {
	next := v.params.Apply(map[string]string{key: value})
	if next == v.params {
		return false
	}
	if err := next.Validate(); err != nil {
		core.Logger().Debug("parameter rejected", "key", key, "value", value, "err", err)
		return false
	}
	v.params = next
	v.Regenerate()
	return true
}
