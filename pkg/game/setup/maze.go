package setup

import (
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/solver"
)

// Maze is the result of Build
type Maze struct {
	Topology world.Topology
	Shape    Shape
	Stats    generator.Stats
	Path     solver.Path // nil when the maze was not solved
	Seed     int64       // seed actually used, useful when Config.Seed was zero
}

// Rooms returns the rooms carved into a dungeon maze
func (m *Maze) Rooms() []generator.Room {
	return m.Stats.Rooms
}

// Solved reports whether a path was computed
func (m *Maze) Solved() bool {
	return len(m.Path) > 0
}
