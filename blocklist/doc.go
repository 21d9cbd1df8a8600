// Package blocklist implements the partitioned priority structure used by
// the bmssp recursion to schedule work in value-bounded chunks.
//
// A BlockList is a specialized bounded-range multiset over (node, distance)
// pairs. It supports three operations (Insert, BatchPrepend, and Pull)
// with amortized bounds better than a generic binary heap by exploiting the
// a-priori ordering of batch-prepended values: BatchPrepend's caller always
// supplies values smaller than everything currently held, so those values
// can be spliced onto the front of an ordered block sequence in
// O(L log(L/M)) via recursive median partition, rather than sorted in full.
//
// Internally the structure partitions the value axis into two ordered
// sequences of bounded-size Blocks:
//
//   - D1 (the "insert list"): Blocks with strictly increasing upper bounds,
//     indexed by a github.com/google/btree ordered map keyed by
//     (upperBound, blockID) so Insert can find the right Block in
//     O(log n) via "smallest key >= (d, -inf)".
//   - D0 (the "batch-prepend list"): Blocks whose values are globally
//     smaller than D1's, ordered front-to-back by value, maintained purely
//     by insertion discipline (BatchPrepend always installs at the front
//     in the correct order, so no index over D0 is needed).
//
// Blocks live in a small arena (blocks map keyed by a monotonically
// increasing blockID) rather than behind raw list iterators, so there is no
// iterator-invalidation hazard when a Block is split or emptied. A single
// Locator (node id -> block/element location) guarantees each node appears
// at most once across D0 union D1 and supports O(1) membership/removal.
//
// A BlockList is created with parameters (M, B) at the start of one BMSSP
// recursion frame and dropped when the frame exits; it is not safe for
// concurrent use. The whole algorithm is strictly single-threaded.
package blocklist
