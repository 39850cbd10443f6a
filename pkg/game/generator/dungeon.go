package generator

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"mazegen/pkg/engine/world"
)

// ErrUnsupportedTopology indicates a generator that cannot run on the given topology.
var ErrUnsupportedTopology = errors.New("generator: unsupported topology")

// DungeonGenerator opens rooms in a rectangular grid and then runs the
// backtracker over the whole grid. Room cells are not pre-marked visited,
// so the carve also walks through rooms and joins them to the corridors.
type DungeonGenerator struct {
	Rooms RoomSettings
	opts  []Option
}

// NewDungeon creates a dungeon generator
func NewDungeon(rooms RoomSettings, opts ...Option) *DungeonGenerator {
	return &DungeonGenerator{Rooms: rooms, opts: opts}
}

// Name returns the name of this generator
func (g *DungeonGenerator) Name() string {
	return "Dungeon"
}

// Generate resets t, carves rooms and then the maze. t must be a *world.Grid.
func (g *DungeonGenerator) Generate(t world.Topology) (Stats, error) {
	grid, ok := t.(*world.Grid)
	if !ok {
		return Stats{}, fmt.Errorf("%w: %s needs a rect grid, got %s", ErrUnsupportedTopology, g.Name(), t.Kind())
	}

	o := buildOptions(g.opts)
	if err := o.weights.Validate(); err != nil {
		return Stats{}, err
	}
	if err := g.Rooms.Validate(grid.Width(), grid.Height()); err != nil {
		return Stats{}, err
	}
	if !grid.Contains(o.origin) {
		return Stats{}, fmt.Errorf("%w: origin %v", world.ErrOutOfBounds, o.origin)
	}

	grid.Reset()
	rooms, err := CarveRooms(grid, g.Rooms, o.rng)
	if err != nil {
		return Stats{}, err
	}

	stats := carve(grid, o)
	stats.Rooms = rooms

	o.log.WithFields(logrus.Fields{
		"generator": g.Name(),
		"rooms":     len(rooms),
		"layout":    g.Rooms.Layout.String(),
		"cells":     grid.Len(),
		"passages":  stats.Passages,
		"deadEnds":  stats.DeadEnds,
		"seed":      o.rng.Seed(),
	}).Debug("dungeon carved")

	return stats, nil
}
