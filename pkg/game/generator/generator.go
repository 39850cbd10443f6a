// Package generator carves perfect mazes into a world.Topology using a
// randomized, stack-based depth-first backtracker with weighted direction
// selection, optionally after pre-opening rectangular rooms.
package generator

import (
	"github.com/sirupsen/logrus"

	"mazegen/pkg/engine/logging"
	"mazegen/pkg/engine/random"
	"mazegen/pkg/engine/world"
)

// MazeGenerator is an interface for maze carving algorithms
type MazeGenerator interface {
	// Generate resets t and carves a maze into it in place
	Generate(t world.Topology) (Stats, error)
	Name() string
}

// Stats summarizes one generation run
type Stats struct {
	Visited       int // cells reached by the carve
	Passages      int // walls opened by the carve (rooms excluded)
	DeadEnds      int // cells with exactly one open wall after the carve
	MaxStackDepth int
	Rooms         []Room
}

// Option configures a generator
type Option func(*options)

type options struct {
	weights Weights
	rng     *random.Source
	log     logrus.FieldLogger
	origin  world.Coord
}

func defaultOptions() options {
	return options{
		weights: DefaultWeights(),
		log:     logging.Discard(),
	}
}

// WithWeights sets the axis and length biases
func WithWeights(w Weights) Option {
	return func(o *options) { o.weights = w }
}

// WithSource sets the random source. Without it a time-seeded source is used.
func WithSource(rng *random.Source) Option {
	return func(o *options) { o.rng = rng }
}

// WithLogger sets the logger used for run summaries
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// WithOrigin sets the cell the carve starts from. Defaults to (0,0).
func WithOrigin(c world.Coord) Option {
	return func(o *options) { o.origin = c }
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = random.New(0)
	}
	return o
}
