package world

import "errors"

var (
	// ErrInvalidDimensions indicates zero or degenerate topology dimensions.
	ErrInvalidDimensions = errors.New("world: invalid topology dimensions")
	// ErrOutOfBounds indicates a coordinate outside the addressable space.
	ErrOutOfBounds = errors.New("world: coordinate out of bounds")
)
