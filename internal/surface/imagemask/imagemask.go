// Package imagemask derives a surface mask by thresholding a grayscale image.
package imagemask

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// Config controls how an image is turned into a mask.
type Config struct {
	Path string

	// Threshold splits gray levels; values at or above it are solid unless
	// Invert is set.
	Threshold uint8
	Invert    bool

	Dimensions surface.Dimensions
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Threshold: 128,
		Dimensions: surface.Dimensions{
			BrickWidth:   66,
			BrickHeight:  26,
			MortarWidth:  6,
			MortarHeight: 6,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["path"]; ok {
		c.Path = v
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Threshold = uint8(parsed)
		}
	}
	if v, ok := cfg["invert"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Invert = parsed
		}
	}
	floats := map[string]*float64{
		"brick_w":  &c.Dimensions.BrickWidth,
		"brick_h":  &c.Dimensions.BrickHeight,
		"mortar_w": &c.Dimensions.MortarWidth,
		"mortar_h": &c.Dimensions.MortarHeight,
	}
	for key, dst := range floats {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	return c
}

// Mask thresholds img into a solidity mask.
func Mask(img image.Image, threshold uint8, invert bool) *core.MaskGrid {
	b := img.Bounds()
	gray, ok := img.(*image.Gray)
	if !ok || gray.Rect.Min != (image.Point{}) {
		gray = image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	}
	m := core.NewMaskGrid(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			solid := gray.GrayAt(x, y).Y >= threshold
			m.Set(x, y, solid != invert)
		}
	}
	return m
}

// Load reads the image at c.Path and builds its surface field.
func Load(c Config) (*surface.Field, error) {
	if c.Path == "" {
		return nil, fmt.Errorf("imagemask: no image path configured")
	}
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("imagemask: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imagemask: decode %s: %w", c.Path, err)
	}
	return surface.New(Mask(img, c.Threshold, c.Invert), c.Dimensions), nil
}

func init() {
	surface.Register("image", func(cfg map[string]string) (*surface.Field, error) {
		return Load(FromMap(cfg))
	})
}
