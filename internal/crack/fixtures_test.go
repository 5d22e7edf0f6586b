package crack

import (
	"testing"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// fieldWithAngle wraps mask with its signed distance and a constant angle field.
func fieldWithAngle(t *testing.T, mask *core.MaskGrid, angle float64, dims surface.Dimensions) *surface.Field {
	t.Helper()
	angles := core.NewFloatGrid(mask.W, mask.H)
	angles.Fill(angle)
	field, err := surface.NewWithMaps(mask, surface.SignedDistance(mask), angles, dims)
	if err != nil {
		t.Fatalf("NewWithMaps: %v", err)
	}
	return field
}

func openField(t *testing.T, w, h int) *surface.Field {
	t.Helper()
	return fieldWithAngle(t, core.NewMaskGrid(w, h), 0, surface.Dimensions{})
}

// quietPath returns walk parameters without randomness in width or heading.
func quietPath() PathParams {
	p := DefaultParams().Path
	p.BreakthroughChance = 0
	p.WidthUpdateChance = 0
	p.AllowedOverlap = 1
	return p
}
