//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/DavidHidde/cracked-surface-generation/internal/crack"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type crackProvider interface {
	Crack() crack.Crack
}

// Overlay draws optional debugging visuals on top of the surface view.
type Overlay struct {
	source     crackProvider
	scale      int
	showPivots bool
	showPath   bool
	showSides  bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(source crackProvider, scale int) *Overlay {
	o := &Overlay{source: source, scale: max(scale, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 pivots, 2 centerline, 3 cross-section ends.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPivots = !o.showPivots
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showPath = !o.showPath
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showSides = !o.showSides
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	c := o.source.Crack()
	s := float64(o.scale)
	center := func(p image.Point) (float64, float64) {
		return (float64(p.X) + 0.5) * s, (float64(p.Y) + 0.5) * s
	}

	if o.showPath {
		col := color.RGBA{R: 64, G: 164, B: 223, A: 200}
		for i := 1; i < len(c.Path); i++ {
			x1, y1 := center(c.Path[i-1].Center)
			x2, y2 := center(c.Path[i].Center)
			o.drawLine(screen, x1, y1, x2, y2, math.Max(1, s*0.5), col)
		}
	}
	if o.showSides {
		col := color.RGBA{R: 240, G: 200, B: 60, A: 220}
		for _, pt := range c.Path {
			top, bot := pt.Sides()
			x1, y1 := center(top)
			x2, y2 := center(bot)
			o.drawLine(screen, x1, y1, x2, y2, 1, col)
		}
	}
	if o.showPivots {
		for i, p := range c.Pivots {
			col := color.RGBA{R: 255, G: 120, B: 40, A: 230}
			if i == 0 {
				col = color.RGBA{R: 90, G: 220, B: 120, A: 230}
			}
			x, y := center(p)
			o.drawPoint(screen, x, y, math.Max(4, 3*s), col)
		}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
