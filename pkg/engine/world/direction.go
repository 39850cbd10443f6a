package world

// Direction represents one of the four local wall slots of a cell
type Direction int

// Direction constants
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Radial names for the Up/Down slots. Ring 0 is the outermost ring,
// so Out moves towards ring 0 and In moves towards the centre.
const (
	Out = Up
	In  = Down
)

// Axis groups directions into the two traversal axes of a topology
type Axis int

// Axis constants
const (
	// AxisRow is traversal along a row: Left/Right (angular on the radial grid)
	AxisRow Axis = iota
	// AxisColumn is traversal along a column: Up/Down (radial on the radial grid)
	AxisColumn
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// RadialString returns the radial grid name of a direction
func (d Direction) RadialString() string {
	switch d {
	case Out:
		return "Out"
	case In:
		return "In"
	default:
		return d.String()
	}
}

// IsValid returns true if the direction is one of the four wall slots
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Axis returns the traversal axis the direction belongs to
func (d Direction) Axis() Axis {
	if d == Left || d == Right {
		return AxisRow
	}
	return AxisColumn
}

// Favored reports whether the direction is the one of its axis pair that
// receives the length bias during generation (Up/Out and Left).
func (d Direction) Favored() bool {
	return d == Up || d == Left
}

// bit returns the wall bit for this direction
func (d Direction) bit() Walls {
	return Walls(1) << uint(d)
}
