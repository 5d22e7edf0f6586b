// Package crack grows randomized crack paths over a surface and turns them
// into depth maps.
//
// Generation is synchronous and single-threaded. A surface.Field may be
// shared between concurrent calls; every call needs its own core.RNG.
package crack

import (
	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// Generator produces cracks with a fixed parameter set.
type Generator struct {
	params Params
}

// NewGenerator returns a generator using params. Params are assumed valid;
// see Params.Validate.
func NewGenerator(params Params) *Generator {
	return &Generator{params: params}
}

// Params returns the generator's parameter set.
func (g *Generator) Params() Params { return g.params }

// Generate plans a trajectory, walks it, post-processes the path and
// synthesizes the height map. It always returns a structurally valid Crack,
// possibly with an empty path and an all-zero height map.
func (g *Generator) Generate(field *surface.Field, rng *core.RNG) Crack {
	t := NewTrajectoryPlanner(field, g.params, rng).Plan()
	checker := NewCollisionChecker(field)

	raw := Walk(field, checker, g.params.Path, rng, t)
	path := PostProcess(raw, g.params.Path)
	hm := SynthesizeHeightMap(path, field.Size(), g.params.Dimension)

	core.Logger().Debug("crack generated",
		"direction", int(t.Direction),
		"pivots", len(t.Pivots),
		"raw_points", len(raw),
		"points", len(path),
	)
	return Crack{Path: path, Pivots: t.Pivots, HeightMap: hm}
}
