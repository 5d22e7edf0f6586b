package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DavidHidde/cracked-surface-generation/internal/app"
	"github.com/DavidHidde/cracked-surface-generation/internal/core"
	"github.com/DavidHidde/cracked-surface-generation/internal/crack"
	"github.com/DavidHidde/cracked-surface-generation/internal/export"
	"github.com/DavidHidde/cracked-surface-generation/internal/render"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface"
	_ "github.com/DavidHidde/cracked-surface-generation/internal/surface/bricks"
	_ "github.com/DavidHidde/cracked-surface-generation/internal/surface/imagemask"
)

type result struct {
	index  int
	seed   int64
	points int
	pivots int
	pixels int
	files  []string
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	count := flag.Int("count", 1, "number of cracks to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	out := flag.String("out", "out", "output directory")
	format := flag.String("format", "png", "height map format (png or tiff)")
	preview := flag.Bool("preview", false, "also write a colored preview image")
	previewScale := flag.Int("preview-scale", 1, "preview pixel scale multiplier")
	paths := flag.Bool("csv", false, "also write the crack path as CSV")
	showParams := flag.Bool("params", false, "print the effective parameters and exit")
	verbose := flag.Bool("v", false, "log generation details")
	flag.Parse()

	if *verbose {
		core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	params := crack.FromMap(cfg.Params.Map())
	if *showParams {
		printParams(params.Parameters())
		return
	}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}
	f, err := export.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	field, err := surface.Open(cfg.Surface, cfg.SurfaceParams.Map())
	if err != nil {
		log.Fatalf("open surface: %v", err)
	}

	wr := export.Writer{
		Dir:     *out,
		Format:  f,
		Preview: *preview,
		Scale:   *previewScale,
		CSV:     *paths,
		Palette: render.DefaultPalette(),
	}
	gen := crack.NewGenerator(params)
	size := field.Size()
	fmt.Printf("Generating %d cracks on %s %dx%d (%d workers, seed %d)\n", *count, cfg.Surface, size.W, size.H, *workers, cfg.Seed)

	start := time.Now()
	results := make([]result, *count)
	var g errgroup.Group
	g.SetLimit(max(1, *workers))
	for i := 0; i < *count; i++ {
		g.Go(func() error {
			seed := cfg.Seed + int64(i)
			c := gen.Generate(field, core.NewRNG(seed))
			files, err := wr.Save(fmt.Sprintf("crack_%04d", i), field, c)
			if err != nil {
				return fmt.Errorf("crack %d: %w", i, err)
			}
			results[i] = result{
				index:  i,
				seed:   seed,
				points: len(c.Path),
				pivots: len(c.Pivots),
				pixels: c.ActivePixels(),
				files:  files,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	empty := 0
	for _, r := range results {
		if r.points == 0 {
			empty++
		}
		fmt.Printf("#%04d seed=%d points=%d pivots=%d pixels=%d -> %v\n", r.index, r.seed, r.points, r.pivots, r.pixels, r.files)
	}
	if len(results) > 0 {
		sorted := append([]result(nil), results...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].pixels > sorted[j].pixels })
		fmt.Printf("Largest crack: #%04d (%d pixels); %d empty\n", sorted[0].index, sorted[0].pixels, empty)
	}
	fmt.Printf("Done in %s\n", time.Since(start).Round(time.Millisecond))
}

func printParams(snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		fmt.Printf("[%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Printf("  %-32s %s\n", p.Key, p.Value)
		}
	}
}
