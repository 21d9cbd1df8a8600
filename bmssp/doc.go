// Package bmssp computes single-source shortest paths on a directed graph
// with non-negative real-valued edge weights using the recursive bounded
// multi-source shortest path algorithm (BMSSP).
//
// BMSSP interleaves frontier expansion (find_pivots) with a partitioned
// priority structure (see the sibling blocklist package) to schedule work
// in value-bounded chunks, recursing over O(log n) levels instead of
// draining a single global heap. On sufficiently sparse graphs this beats
// the O((V+E) log V) bound of a plain Dijkstra run.
//
// Complexity:
//
//   - Time:  sub-Dijkstra on sparse graphs; degrades gracefully to
//     Dijkstra-like behavior on dense graphs (see base.go).
//   - Space: O(V) for the distance vector plus O(M) per active recursion
//     frame's BlockList, where M shrinks geometrically with recursion depth.
//
// Out of scope: negative weights, dynamic graph updates, persistence,
// parallel or distributed execution, streaming output. The solver never
// logs, never blocks, and never retains state across calls to Solve.
package bmssp
