//go:build ebiten

package app

import (
	"time"

	"github.com/DavidHidde/cracked-surface-generation/internal/render"
	"github.com/DavidHidde/cracked-surface-generation/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Viewer to the ebiten.Game interface.
type Game struct {
	viewer  *Viewer
	painter *render.SurfacePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette render.Palette

	scale    int
	uploaded uint64
	fresh    bool
}

// New constructs a Game for the provided viewer.
func New(v *Viewer, scale, hudWidth int) *Game {
	size := v.Size()
	return &Game{
		viewer:  v,
		painter: render.NewSurfacePainter(size.W, size.H),
		hud:     ui.NewHUD(v, "Crack parameters", hudWidth),
		overlay: ui.NewOverlay(v, scale),
		palette: render.DefaultPalette(),
		scale:   scale,
	}
}

// Update handles key presses and HUD input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.viewer.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.viewer.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.viewer.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.viewer.ToggleDepthView()
	}
	g.overlay.Update()
	g.hud.Update(g.viewer.Size().W * g.scale)
	return nil
}

// Draw renders the surface, the crack and the panels.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.fresh || g.uploaded != g.viewer.Version() {
		c := g.viewer.Crack()
		g.painter.Update(g.viewer.Field().Mask(), c.HeightMap, g.palette, g.viewer.DepthOnly())
		g.uploaded = g.viewer.Version()
		g.fresh = true
	}
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)

	size := g.viewer.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
	ebitenutil.DebugPrint(screen, g.viewer.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.viewer.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
