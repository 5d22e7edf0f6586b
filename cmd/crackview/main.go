//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/DavidHidde/cracked-surface-generation/internal/app"
	"github.com/DavidHidde/cracked-surface-generation/internal/crack"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
	_ "github.com/DavidHidde/cracked-surface-generation/internal/surface/bricks"
	_ "github.com/DavidHidde/cracked-surface-generation/internal/surface/imagemask"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params := crack.FromMap(cfg.Params.Map())
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}
	field, err := surface.Open(cfg.Surface, cfg.SurfaceParams.Map())
	if err != nil {
		log.Fatalf("open surface: %v", err)
	}

	viewer := app.NewViewer(field, params, cfg.Seed)
	game := app.New(viewer, cfg.Scale, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("crackview: %s", cfg.Surface))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
