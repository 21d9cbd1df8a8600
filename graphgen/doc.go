// Package graphgen builds deterministic directed test graphs over the
// integer-indexed adjacency representation consumed by the bmssp and
// dijkstra packages.
//
// Every generator emits vertices 0..n-1 and edges in a fixed, documented
// order, and draws weights from a configurable WeightFn seeded through a
// configurable RNG, so any graph is fully reproducible from (shape
// parameters, seed, weight function). That reproducibility is the whole
// point: the randomized solver-versus-oracle tests need to replay a
// failing graph from nothing but its seed.
//
// Generators:
//
//   - Path(n): edges (i-1)->i for i in 1..n-1.
//   - Cycle(n): Path(n) plus the closing edge (n-1)->0.
//   - Grid(rows, cols): right and down edges on a rows x cols lattice.
//   - Star(n): edges 0->i for i in 1..n-1.
//   - RandomSparse(n, p): each ordered pair (i, j), i != j, independently
//     with probability p, trials in (i asc, j asc) order.
//
// Errors (sentinel): ErrTooFewNodes, ErrInvalidProbability.
package graphgen
