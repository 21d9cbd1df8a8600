package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve.
var (
	// ErrInvalidNodeCount indicates n < 1 was supplied to Solve.
	ErrInvalidNodeCount = errors.New("dijkstra: node count must be >= 1")

	// ErrSourceOutOfRange indicates source is not in [0, n).
	ErrSourceOutOfRange = errors.New("dijkstra: source out of range")

	// ErrAdjacencyLength indicates adj does not have exactly n rows.
	ErrAdjacencyLength = errors.New("dijkstra: adjacency length must equal node count")

	// ErrNegativeWeight indicates an edge with a negative weight was supplied.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Solve call.
//
// MaxDistance caps exploration: nodes whose shortest distance exceeds the
// cap are left at +Inf. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold; nodes farther than max
// from the source are not explored and retain +Inf. Negative values panic
// with ErrBadMaxDistance: a negative distance cap has no meaning over
// non-negative weights.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance)
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the Options Solve starts from before applying
// functional overrides.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
