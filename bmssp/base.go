package bmssp

import "container/heap"

// baseItem pairs a node with its tentative distance at the time it was
// pushed; the base kernel uses a lazy-decrease-key strategy (push
// duplicates, skip stale pops on visited).
type baseItem struct {
	node int
	dist float64
}

// baseHeap is a min-heap of baseItem ordered by dist ascending.
type baseHeap []baseItem

func (h baseHeap) Len() int            { return len(h) }
func (h baseHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h baseHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *baseHeap) Push(x interface{}) { *h = append(*h, x.(baseItem)) }
func (h *baseHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// base runs a small-scope, single-source bounded Dijkstra used as the
// recursion base (level 0). It relaxes only edges whose tentative value is
// strictly less than B, and stops once either the heap empties or k+1
// distinct nodes have been settled.
//
// Returns (B, settled) if at most k nodes settled; otherwise returns
// (maxCost, filtered) where maxCost is the largest settled distance and
// filtered drops nodes whose distance ties maxCost, preserving the
// invariant that the returned bound strictly exceeds every distance in the
// returned set.
func base(g *graph, ds *distances, B float64, s int, k int) (float64, []int) {
	var h baseHeap
	heap.Push(&h, baseItem{node: s, dist: ds.get(s)})

	visited := make(map[int]bool)
	var settled []int
	maxCost := ds.get(s)

	for h.Len() > 0 && len(settled) < k+1 {
		top := heap.Pop(&h).(baseItem)
		if visited[top.node] {
			continue
		}
		visited[top.node] = true
		settled = append(settled, top.node)
		if top.dist > maxCost {
			maxCost = top.dist
		}

		for _, e := range g.edges(top.node) {
			d := top.dist + e.Weight
			if d <= ds.get(e.To) && d < B {
				ds.relax(e.To, d)
				heap.Push(&h, baseItem{node: e.To, dist: d})
			}
		}
	}

	if len(settled) <= k {
		return B, settled
	}

	filtered := make([]int, 0, len(settled))
	for _, v := range settled {
		if ds.get(v) < maxCost {
			filtered = append(filtered, v)
		}
	}
	return maxCost, filtered
}
