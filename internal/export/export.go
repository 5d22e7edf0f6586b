// Package export writes generated cracks to disk.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/crack"
	"github.com/DavidHidde/cracked-surface-generation/internal/render"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
)

// ErrUnknownFormat is returned for height map formats other than png and tiff.
var ErrUnknownFormat = errors.New("export: unknown image format")

// Format names a height map encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatTIFF Format = "tiff"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatPNG, FormatTIFF:
		return f, nil
	case "tif":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// WriteHeightMap encodes depth as a 16-bit greyscale image.
func WriteHeightMap(w io.Writer, depth *core.FloatGrid, f Format) error {
	img := render.HeightMap16(depth)
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WritePreview encodes img as PNG, enlarged by scale with nearest neighbour
// sampling when scale is above 1.
func WritePreview(w io.Writer, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}

// WritePathCSV writes one row per sample: index, x, y, angle and width.
func WritePathCSV(w io.Writer, path crack.Path) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "x", "y", "angle", "width"}); err != nil {
		return err
	}
	for i, pt := range path {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(pt.Center.X),
			strconv.Itoa(pt.Center.Y),
			strconv.FormatFloat(pt.Angle, 'f', 6, 64),
			strconv.FormatFloat(pt.Width, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Writer saves cracks into a directory.
type Writer struct {
	Dir     string
	Format  Format
	Preview bool
	Scale   int
	CSV     bool
	Palette render.Palette
}

// Save writes the height map of c, plus the optional preview and path files,
// under names derived from name. It returns the paths written.
func (wr Writer) Save(name string, field *surface.Field, c crack.Crack) ([]string, error) {
	if err := os.MkdirAll(wr.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	var written []string
	save := func(file string, encode func(io.Writer) error) error {
		p := filepath.Join(wr.Dir, file)
		if err := writeFile(p, encode); err != nil {
			return err
		}
		written = append(written, p)
		return nil
	}

	err := save(name+wr.Format.Ext(), func(w io.Writer) error {
		return WriteHeightMap(w, c.HeightMap, wr.Format)
	})
	if err == nil && wr.Preview {
		err = save(name+"_preview.png", func(w io.Writer) error {
			img := render.Composite(field.Mask(), c.HeightMap, wr.Palette)
			return WritePreview(w, img, wr.Scale)
		})
	}
	if err == nil && wr.CSV {
		err = save(name+"_path.csv", func(w io.Writer) error {
			return WritePathCSV(w, c.Path)
		})
	}
	return written, err
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := encode(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
