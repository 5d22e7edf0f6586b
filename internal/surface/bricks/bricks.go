// Package bricks generates running-bond brick wall masks.
package bricks

import (
	"strconv"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// Config controls the wall layout. All sizes are in pixels.
type Config struct {
	Width  int
	Height int

	BrickWidth  int
	BrickHeight int
	Mortar      int

	// Offset is the horizontal shift of every other course as a fraction of
	// the brick pitch.
	Offset float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       512,
		Height:      512,
		BrickWidth:  60,
		BrickHeight: 20,
		Mortar:      6,
		Offset:      0.5,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 2 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 2 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["brick_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BrickWidth = parsed
		}
	}
	if v, ok := cfg["brick_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BrickHeight = parsed
		}
	}
	if v, ok := cfg["mortar"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Mortar = parsed
		}
	}
	if v, ok := cfg["offset"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Offset = parsed
		}
	}
	return c
}

// Mask rasterizes the wall. Brick cells are solid, mortar joints are not.
func Mask(c Config) *core.MaskGrid {
	m := core.NewMaskGrid(c.Width, c.Height)
	pitchX := c.BrickWidth + c.Mortar
	pitchY := c.BrickHeight + c.Mortar
	shift := int(c.Offset * float64(pitchX))
	for y := 0; y < m.H; y++ {
		course := y / pitchY
		if y%pitchY < c.Mortar {
			continue
		}
		offset := 0
		if course%2 == 1 {
			offset = shift
		}
		for x := 0; x < m.W; x++ {
			if (x+offset)%pitchX >= c.Mortar {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Dimensions reports the element sizes of the wall.
func Dimensions(c Config) surface.Dimensions {
	return surface.Dimensions{
		BrickWidth:   float64(c.BrickWidth + c.Mortar),
		BrickHeight:  float64(c.BrickHeight + c.Mortar),
		MortarWidth:  float64(c.Mortar),
		MortarHeight: float64(c.Mortar),
	}
}

// New builds the surface field for the wall.
func New(c Config) *surface.Field {
	return surface.New(Mask(c), Dimensions(c))
}

func init() {
	surface.Register("bricks", func(cfg map[string]string) (*surface.Field, error) {
		return New(FromMap(cfg)), nil
	})
}
