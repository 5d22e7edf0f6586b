package app

import (
	"flag"
	"slices"
	"testing"

	"github.com/DavidHidde/cracked-surface-generation/internal/crack"
	"github.com/DavidHidde/cracked-surface-generation/internal/surface/bricks"
)

func testViewer() *Viewer {
	c := bricks.DefaultConfig()
	c.Width, c.Height = 256, 256
	return NewViewer(bricks.New(c), crack.DefaultParams(), 5)
}

func TestViewerSeeds(t *testing.T) {
	v := testViewer()
	first := v.Crack()
	ver := v.Version()

	v.Regenerate()
	if !slices.Equal(first.Path, v.Crack().Path) {
		t.Fatalf("regenerating the same seed changed the crack")
	}
	if v.Version() == ver {
		t.Fatalf("version not bumped")
	}
	v.Next()
	if v.Seed() != 6 {
		t.Fatalf("next seed %d", v.Seed())
	}
}

func TestViewerParameterSetters(t *testing.T) {
	v := testViewer()
	if !v.SetFloatParameter("allowed_overlap", 0.5) || v.Params().Path.AllowedOverlap != 0.5 {
		t.Fatalf("float parameter not applied")
	}
	if !v.SetIntParameter("max_pivot_points", 3) || v.Params().Trajectory.MaxPivotPoints != 3 {
		t.Fatalf("int parameter not applied")
	}
	if v.SetFloatParameter("allowed_overlap", 2) {
		t.Fatalf("invalid value accepted")
	}
	if v.SetFloatParameter("no_such_key", 1) {
		t.Fatalf("unknown key accepted")
	}
	if v.Params().Path.AllowedOverlap != 0.5 {
		t.Fatalf("rejected value leaked into the parameters")
	}
}

func TestViewerDepthToggle(t *testing.T) {
	v := testViewer()
	v.ToggleDepthView()
	if !v.DepthOnly() {
		t.Fatalf("depth view not enabled")
	}
	if v.Status() == "" {
		t.Fatalf("empty status")
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-surface", "image", "-seed", "9", "-set", "width=7", "-set", "bogus", "-surface-set", "path=wall.png"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Surface != "image" || cfg.Seed != 9 {
		t.Fatalf("flags not bound: %+v", cfg)
	}
	params := cfg.Params.Map()
	if len(params) != 1 || params["width"] != "7" {
		t.Fatalf("params %v", params)
	}
	if cfg.SurfaceParams.Map()["path"] != "wall.png" {
		t.Fatalf("surface params %v", cfg.SurfaceParams.Map())
	}
}
