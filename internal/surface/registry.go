package surface

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSource is returned by Open for unregistered source names.
var ErrUnknownSource = errors.New("surface: unknown source")

// Factory constructs a Field using an optional configuration map.
type Factory func(cfg map[string]string) (*Field, error)

var sources = map[string]Factory{}

// Register adds a surface source under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources lists the registered source names in sorted order.
func Sources() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open builds a Field from the named source.
func Open(name string, cfg map[string]string) (*Field, error) {
	f, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSource, name)
	}
	field, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("surface %s: %w", name, err)
	}
	return field, nil
}
