// Package app holds the interactive crack viewer and the flags shared by the
// command line tools.
package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Surface  string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	// Params and SurfaceParams hold key=value overrides for the crack
	// parameters and the surface source.
	Params        KVList
	SurfaceParams KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Surface: "bricks", Scale: 2, TPS: 30, Seed: 42, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Surface, "surface", c.Surface, "surface source (bricks or image)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed of the first crack")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels, 0 hides it")
	fs.Var(&c.Params, "set", "crack parameter override in key=value form (repeatable)")
	fs.Var(&c.SurfaceParams, "surface-set", "surface parameter override in key=value form (repeatable)")
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map. Entries without '=' are skipped and later
// keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
