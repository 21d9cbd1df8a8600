package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/bmssp/bmssp"
)

// state is one heap entry: a node together with the tentative distance it
// was pushed at. Under lazy decrease-key the same node may appear several
// times; only the first (cheapest) pop matters.
type state struct {
	node int
	cost float64
}

// nodePQ is a min-heap of states ordered by cost ascending, ties broken by
// node id so pop order is fully deterministic.
type nodePQ []state

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].node < pq[j].node
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(state)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Solve computes shortest distances from source to every node of the graph
// described by adj (adj[u] lists u's outgoing edges), returning a length-n
// vector where unreachable nodes hold +Inf.
//
// Validation, in order: n >= 1 (ErrInvalidNodeCount), len(adj) == n
// (ErrAdjacencyLength), source in [0, n) (ErrSourceOutOfRange), and an
// upfront scan rejecting any negative weight (ErrNegativeWeight, wrapped
// with the offending edge for context).
func Solve(n int, adj [][]bmssp.Edge, source int, opts ...Option) ([]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 1 {
		return nil, ErrInvalidNodeCount
	}
	if len(adj) != n {
		return nil, ErrAdjacencyLength
	}
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}
	for u, edges := range adj {
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	pq := nodePQ{{node: source, cost: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(state)
		if cur.cost > dist[cur.node] {
			continue // stale entry
		}
		if cur.cost > cfg.MaxDistance {
			break
		}

		for _, e := range adj[cur.node] {
			next := cur.cost + e.Weight
			if next < dist[e.To] && next <= cfg.MaxDistance {
				dist[e.To] = next
				heap.Push(&pq, state{node: e.To, cost: next})
			}
		}
	}

	return dist, nil
}
