// Package bmssp (the module root) ties together a single-source
// shortest-path toolkit built around the recursive bounded multi-source
// shortest path algorithm.
//
// Subpackages:
//
//	bmssp/     — the BMSSP solver: recursion, pivot finder, base kernel
//	blocklist/ — the partitioned priority structure driving the recursion
//	dijkstra/  — classic binary-heap Dijkstra over the same adjacency,
//	             used as the baseline comparator and as a test oracle
//	graphgen/  — deterministic graph generators for tests and benchmarks
//	cmd/       — the two stdin/stdout driver binaries
//
// Quick example:
//
//	adj := [][]bmssp.Edge{
//	    {{To: 1, Weight: 1}, {To: 2, Weight: 5}},
//	    {{To: 2, Weight: 2}},
//	    {},
//	}
//	dist, err := bmssp.Solve(3, adj, 0)
//	// dist == []float64{0, 1, 3}
package bmssp
