// Package setup validates a maze configuration and runs the whole pipeline:
// topology construction, room carving, generation, entrance and exit, and
// the optional solve.
package setup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"mazegen/pkg/engine/logging"
	"mazegen/pkg/engine/random"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/solver"
)

// ErrUnknownShape indicates a shape name that ParseShape does not recognize.
var ErrUnknownShape = errors.New("setup: unknown shape")

// Shape selects the topology and generator pair
type Shape int

// Shape constants
const (
	ShapeRect Shape = iota
	ShapeRadial
	ShapeDungeon
)

// String returns the string representation of a shape
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeRadial:
		return "radial"
	case ShapeDungeon:
		return "dungeon"
	default:
		return "unknown"
	}
}

// ParseShape parses "rect", "radial" or "dungeon" (case-insensitive)
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rect", "rectangle", "grid":
		return ShapeRect, nil
	case "radial", "circle", "circular":
		return ShapeRadial, nil
	case "dungeon":
		return ShapeDungeon, nil
	}
	return ShapeRect, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Config holds everything needed to build one maze
type Config struct {
	Shape Shape

	// Width and Height apply to rect and dungeon shapes
	Width  int
	Height int
	// Rings and Spokes apply to the radial shape
	Rings  int
	Spokes int

	Weights generator.Weights
	Rooms   generator.RoomSettings // dungeon only

	// Seed for the shared random source. Zero seeds from the clock.
	Seed int64

	Solve     bool
	SolveMode solver.Mode

	Logger logrus.FieldLogger
}

// DefaultConfig returns a solved 10x10 rectangular maze with uniform weights
func DefaultConfig() Config {
	return Config{
		Shape:     ShapeRect,
		Width:     10,
		Height:    10,
		Rings:     4,
		Spokes:    8,
		Weights:   generator.DefaultWeights(),
		Rooms:     generator.DefaultRoomSettings(),
		Solve:     true,
		SolveMode: solver.Predecessor,
	}
}

// Validate reports configuration errors before any cell is touched
func (c Config) Validate() error {
	switch c.Shape {
	case ShapeRect, ShapeDungeon:
		if c.Width < 1 || c.Height < 1 {
			return fmt.Errorf("%w: grid %dx%d", world.ErrInvalidDimensions, c.Width, c.Height)
		}
	case ShapeRadial:
		if c.Rings < 1 || c.Spokes < world.MinSpokes {
			return fmt.Errorf("%w: radial %d rings x %d spokes", world.ErrInvalidDimensions, c.Rings, c.Spokes)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownShape, int(c.Shape))
	}

	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.Shape == ShapeDungeon {
		if err := c.Rooms.Validate(c.Width, c.Height); err != nil {
			return err
		}
	}
	return nil
}

// Topology creates the empty, fully walled topology for the configured shape
func (c Config) Topology() (world.Topology, error) {
	if c.Shape == ShapeRadial {
		return world.NewRadialGrid(c.Rings, c.Spokes)
	}
	return world.NewGrid(c.Width, c.Height)
}

// Generator returns the generator for the configured shape
func (c Config) Generator(opts ...generator.Option) generator.MazeGenerator {
	opts = append([]generator.Option{generator.WithWeights(c.Weights)}, opts...)
	if c.Shape == ShapeDungeon {
		return generator.NewDungeon(c.Rooms, opts...)
	}
	return generator.NewBacktracker(opts...)
}

// Build validates cfg and produces a carved maze with its entrance and exit
// opened. When cfg.Solve is set the path from entrance to exit is computed
// and marked.
func Build(cfg Config) (*Maze, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}

	t, err := cfg.Topology()
	if err != nil {
		return nil, err
	}
	rng := random.New(cfg.Seed)

	gen := cfg.Generator(generator.WithSource(rng), generator.WithLogger(log))
	stats, err := gen.Generate(t)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", cfg.Shape, err)
	}
	world.OpenStartAndEnd(t)

	m := &Maze{
		Topology: t,
		Shape:    cfg.Shape,
		Stats:    stats,
		Seed:     rng.Seed(),
	}

	if cfg.Solve {
		start, _ := t.Entrance()
		stop, _ := t.Exit()
		m.Path, err = solver.Solve(t, start, stop,
			solver.WithSource(rng),
			solver.WithLogger(log),
			solver.WithMode(cfg.SolveMode),
		)
		if err != nil {
			return nil, fmt.Errorf("solve %s: %w", cfg.Shape, err)
		}
	}

	log.WithFields(logrus.Fields{
		"shape":     cfg.Shape.String(),
		"generator": gen.Name(),
		"cells":     t.Len(),
		"rooms":     len(stats.Rooms),
		"path":      len(m.Path),
		"seed":      m.Seed,
	}).Info("maze built")

	return m, nil
}
