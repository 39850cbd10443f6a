package generator

import (
	"errors"
	"fmt"

	"mazegen/pkg/engine/world"
)

// ErrInvalidBias indicates a bias outside [0, 1].
var ErrInvalidBias = errors.New("generator: bias must be within [0, 1]")

// Weights holds the two tunable biases of the carve.
//
// Bias splits weight between the axes: row-axis directions (Left/Right,
// angular on the radial grid) weigh 1-Bias and column-axis directions
// (Up/Down, radial) weigh Bias. LengthBias is added to the favored
// direction of each axis pair (Up/Out and Left), producing longer straight
// runs as it grows. Bias 0.5 with LengthBias 0 is a uniform draw.
type Weights struct {
	Bias       float64
	LengthBias float64
}

// DefaultWeights returns the uniform weighting
func DefaultWeights() Weights {
	return Weights{Bias: 0.5, LengthBias: 0}
}

// Validate checks both biases are within [0, 1]
func (w Weights) Validate() error {
	if w.Bias < 0 || w.Bias > 1 {
		return fmt.Errorf("%w: bias %v", ErrInvalidBias, w.Bias)
	}
	if w.LengthBias < 0 || w.LengthBias > 1 {
		return fmt.Errorf("%w: length bias %v", ErrInvalidBias, w.LengthBias)
	}
	return nil
}

// For returns the draw weight of direction d
func (w Weights) For(d world.Direction) float64 {
	weight := w.Bias
	if d.Axis() == world.AxisRow {
		weight = 1 - w.Bias
	}
	if d.Favored() {
		weight += w.LengthBias
	}
	return weight
}
