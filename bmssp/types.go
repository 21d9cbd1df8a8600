package bmssp

import "errors"

// Sentinel errors returned by Solve and its collaborators.
var (
	// ErrInvalidNodeCount indicates n < 1 was supplied to Solve.
	ErrInvalidNodeCount = errors.New("bmssp: node count must be >= 1")

	// ErrSourceOutOfRange indicates source is not in [0, n).
	ErrSourceOutOfRange = errors.New("bmssp: source out of range")

	// ErrNegativeWeight indicates an edge with a negative weight was supplied;
	// the algorithm requires non-negative weights.
	ErrNegativeWeight = errors.New("bmssp: negative edge weight encountered")

	// ErrAdjacencyLength indicates adj does not have exactly n rows.
	ErrAdjacencyLength = errors.New("bmssp: adjacency length must equal node count")
)

// Option configures a Solve call. Omitting every option leaves Solve with
// its plain defaults: no tracing, no side channels.
type Option func(*config)

type config struct {
	tracer Tracer
}

func newConfig() config {
	return config{tracer: noopTracer{}}
}

// WithTracer attaches a Tracer that observes BlockList/pivot-finder events
// as Solve runs. Passing nil is equivalent to omitting the option. The
// recursion never depends on a non-nil tracer for correctness; tracing is
// purely an observability side channel.
func WithTracer(t Tracer) Option {
	return func(c *config) {
		if t == nil {
			t = noopTracer{}
		}
		c.tracer = t
	}
}
