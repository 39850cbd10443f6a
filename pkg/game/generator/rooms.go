package generator

import (
	"errors"
	"fmt"
	"strings"

	"mazegen/pkg/engine/random"
	"mazegen/pkg/engine/world"
)

// ErrInvalidRoomBounds indicates room settings that cannot fit the grid.
var ErrInvalidRoomBounds = errors.New("generator: invalid room bounds")

// roomMargin is the number of cells kept free between a room and every grid edge
const roomMargin = 1

// Layout selects how room rectangles are placed
type Layout int

// Layout constants
const (
	// LayoutScatter draws every room independently; rooms may overlap
	LayoutScatter Layout = iota
	// LayoutBSP partitions the grid and places at most one room per leaf
	LayoutBSP
)

// String returns the string representation of a layout
func (l Layout) String() string {
	switch l {
	case LayoutScatter:
		return "scatter"
	case LayoutBSP:
		return "bsp"
	default:
		return "unknown"
	}
}

// ParseLayout parses "scatter" or "bsp"
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scatter", "":
		return LayoutScatter, nil
	case "bsp":
		return LayoutBSP, nil
	}
	return LayoutScatter, fmt.Errorf("%w: unknown layout %q", ErrInvalidRoomBounds, name)
}

// RoomSettings configures room carving. Sizes are drawn inclusively from
// [Min, Max].
type RoomSettings struct {
	Count     int
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
	Layout    Layout
}

// DefaultRoomSettings returns a single small room
func DefaultRoomSettings() RoomSettings {
	return RoomSettings{
		Count:     1,
		MinWidth:  1,
		MaxWidth:  2,
		MinHeight: 1,
		MaxHeight: 2,
		Layout:    LayoutScatter,
	}
}

// Validate checks that rooms of the configured sizes fit inside a
// width x height grid with the edge margin
func (s RoomSettings) Validate(width, height int) error {
	switch {
	case s.Count < 0:
		return fmt.Errorf("%w: negative room count %d", ErrInvalidRoomBounds, s.Count)
	case s.Count == 0:
		return nil
	case s.MinWidth < 1 || s.MinHeight < 1:
		return fmt.Errorf("%w: minimum size %dx%d", ErrInvalidRoomBounds, s.MinWidth, s.MinHeight)
	case s.MinWidth > s.MaxWidth || s.MinHeight > s.MaxHeight:
		return fmt.Errorf("%w: minimum %dx%d exceeds maximum %dx%d",
			ErrInvalidRoomBounds, s.MinWidth, s.MinHeight, s.MaxWidth, s.MaxHeight)
	case s.MaxWidth > width-2*roomMargin || s.MaxHeight > height-2*roomMargin:
		return fmt.Errorf("%w: maximum %dx%d does not fit a %dx%d grid",
			ErrInvalidRoomBounds, s.MaxWidth, s.MaxHeight, width, height)
	}
	return nil
}

// Room is an axis-aligned rectangle of cells opened before generation
type Room struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether c lies inside the room
func (r Room) Contains(c world.Coord) bool {
	return c.Col >= r.X && c.Col < r.X+r.Width && c.Row >= r.Y && c.Row < r.Y+r.Height
}

// Cells returns every coordinate of the room in row-major order
func (r Room) Cells() []world.Coord {
	cells := make([]world.Coord, 0, r.Width*r.Height)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			cells = append(cells, world.At(x, y))
		}
	}
	return cells
}

// CarveRooms places rooms according to s and opens every wall inside each
// of them. The room perimeters are left closed.
func CarveRooms(g *world.Grid, s RoomSettings, rng *random.Source) ([]Room, error) {
	if err := s.Validate(g.Width(), g.Height()); err != nil {
		return nil, err
	}
	if s.Count == 0 {
		return nil, nil
	}

	var rooms []Room
	switch s.Layout {
	case LayoutBSP:
		rooms = placeBSP(g.Width(), g.Height(), s, rng)
	default:
		rooms = placeScatter(g.Width(), g.Height(), s, rng)
	}

	for _, r := range rooms {
		openRoom(g, r)
	}
	return rooms, nil
}

// placeScatter draws Count rooms independently
func placeScatter(width, height int, s RoomSettings, rng *random.Source) []Room {
	rooms := make([]Room, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		w := rng.Between(s.MinWidth, s.MaxWidth)
		h := rng.Between(s.MinHeight, s.MaxHeight)
		rooms = append(rooms, Room{
			X:      rng.Between(roomMargin, width-roomMargin-w),
			Y:      rng.Between(roomMargin, height-roomMargin-h),
			Width:  w,
			Height: h,
		})
	}
	return rooms
}

// openRoom removes every internal wall of r
func openRoom(g *world.Grid, r Room) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if x < r.X+r.Width-1 {
				g.Open(world.At(x, y), world.Right)
			}
			if y < r.Y+r.Height-1 {
				g.Open(world.At(x, y), world.Down)
			}
		}
	}
}
