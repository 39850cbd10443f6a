package renderer

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"mazegen/pkg/engine/world"
)

var (
	// ErrUnsupported indicates a renderer that cannot draw the given topology.
	ErrUnsupported = errors.New("renderer: unsupported topology")
	// ErrUnknown indicates a renderer name that was never registered.
	ErrUnknown = errors.New("renderer: unknown renderer")
)

// Renderer defines the interface for maze output backends.
// Implementations read only wall flags, solution flags and dimensions.
type Renderer interface {
	// Name is the key the renderer is registered under
	Name() string

	// Render writes t to w
	Render(w io.Writer, t world.Topology) error
}

var registry = map[string]Renderer{}

// Register makes r available to Lookup under r.Name(). Registering the
// same name twice replaces the earlier renderer.
func Register(r Renderer) {
	registry[strings.ToLower(r.Name())] = r
}

// Lookup returns the renderer registered under name
func Lookup(name string) (Renderer, error) {
	r, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return r, nil
}

// Names returns the registered renderer names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
