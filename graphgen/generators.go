package graphgen

import (
	"fmt"

	"github.com/katalvlaran/bmssp/bmssp"
)

// Shape parameter minima, per generator.
const (
	minPathNodes   = 2
	minCycleNodes  = 3
	minStarNodes   = 2
	minGridSide    = 1
	minSparseNodes = 1
)

// Path builds the simple path 0 -> 1 -> ... -> n-1.
func Path(n int, opts ...Option) ([][]bmssp.Edge, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts)

	adj := make([][]bmssp.Edge, n)
	for i := 1; i < n; i++ {
		adj[i-1] = append(adj[i-1], bmssp.Edge{To: i, Weight: cfg.weightFn(cfg.rng)})
	}

	return adj, nil
}

// Cycle builds the directed cycle 0 -> 1 -> ... -> n-1 -> 0.
func Cycle(n int, opts ...Option) ([][]bmssp.Edge, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts)

	adj := make([][]bmssp.Edge, n)
	for i := 1; i < n; i++ {
		adj[i-1] = append(adj[i-1], bmssp.Edge{To: i, Weight: cfg.weightFn(cfg.rng)})
	}
	adj[n-1] = append(adj[n-1], bmssp.Edge{To: 0, Weight: cfg.weightFn(cfg.rng)})

	return adj, nil
}

// Star builds edges 0 -> i for every i in 1..n-1.
func Star(n int, opts ...Option) ([][]bmssp.Edge, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts)

	adj := make([][]bmssp.Edge, n)
	for i := 1; i < n; i++ {
		adj[0] = append(adj[0], bmssp.Edge{To: i, Weight: cfg.weightFn(cfg.rng)})
	}

	return adj, nil
}

// Grid builds a rows x cols lattice with right and down edges. Node (r, c)
// has index r*cols + c; edge emission order is row-major, right before
// down, so the graph is identical across runs for a fixed seed.
func Grid(rows, cols int, opts ...Option) ([][]bmssp.Edge, error) {
	if rows < minGridSide || cols < minGridSide {
		return nil, fmt.Errorf("Grid: %dx%d below min side %d: %w", rows, cols, minGridSide, ErrTooFewNodes)
	}
	cfg := newConfig(opts)

	n := rows * cols
	adj := make([][]bmssp.Edge, n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				adj[u] = append(adj[u], bmssp.Edge{To: u + 1, Weight: cfg.weightFn(cfg.rng)})
			}
			if r+1 < rows {
				adj[u] = append(adj[u], bmssp.Edge{To: u + cols, Weight: cfg.weightFn(cfg.rng)})
			}
		}
	}

	return adj, nil
}

// RandomSparse samples an Erdos-Renyi-like directed graph on n nodes:
// every ordered pair (i, j) with i != j is included independently with
// probability p. Trial order is i asc then j asc, so outcomes are
// deterministic for a fixed seed.
func RandomSparse(n int, p float64, opts ...Option) ([][]bmssp.Edge, error) {
	if n < minSparseNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minSparseNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
	}
	cfg := newConfig(opts)

	adj := make([][]bmssp.Edge, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if cfg.rng.Float64() < p {
				adj[i] = append(adj[i], bmssp.Edge{To: j, Weight: cfg.weightFn(cfg.rng)})
			}
		}
	}

	return adj, nil
}
