// Package dijkstra implements the classic single-source shortest-path
// algorithm on a directed graph with non-negative edge weights, over the
// same integer-indexed adjacency representation the bmssp package consumes.
//
// It exists for two reasons:
//
//   - As the baseline comparator: cmd/dijkstra-baseline runs it over the
//     same stdin graph format as cmd/bmssp so the two outputs (and
//     timings) can be diffed directly.
//   - As the correctness oracle in tests: bmssp's randomized tests compare
//     Solve's output against this package's on many generated graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a binary heap and lazy decrease-key
//     (duplicates are pushed; stale pops are skipped).
//   - Space: O(V + E) worst case for the distance vector plus heap entries.
//
// Errors (sentinel):
//
//   - ErrInvalidNodeCount if n < 1.
//   - ErrSourceOutOfRange if source is not in [0, n).
//   - ErrAdjacencyLength  if adj does not have exactly n rows.
//   - ErrNegativeWeight   if any edge weight is negative.
//
// ErrBadMaxDistance is not returned: it is the value WithMaxDistance panics
// with when given a negative cap.
package dijkstra
