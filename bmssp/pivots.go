package bmssp

// findPivots performs k rounds of synchronous relaxation starting from
// frontier, then selects pivots: frontier nodes that root a discovered
// relaxation subtree of size >= k, i.e. nodes whose expansion is proven
// locally productive.
//
// Each round relaxes every outgoing edge of the previous layer; a node is
// appended to the next layer (and its parent recorded) only if its
// relaxed distance is strictly less than bound. If the accumulated visited
// set ever exceeds k * len(frontier), the routine short-circuits and
// returns the frontier itself as pivots; expanding it further has already
// proven unproductive.
//
// Parent assignment is last-writer-wins within a round: deterministic
// given a fixed adjacency iteration order, but not independent of that
// order.
func findPivots(g *graph, ds *distances, bound float64, frontier []int, k int) (pivots []int, visited []int) {
	parent := make(map[int]int)

	visited = append(visited, frontier...)
	lastLayer := frontier

	for round := 0; round < k; round++ {
		var nextLayer []int
		for _, u := range lastLayer {
			for _, e := range g.edges(u) {
				d := ds.get(u) + e.Weight
				if d <= ds.get(e.To) {
					ds.relax(e.To, d)
					if d < bound {
						nextLayer = append(nextLayer, e.To)
						parent[e.To] = u
					}
				}
			}
		}
		visited = append(visited, nextLayer...)
		lastLayer = nextLayer

		if len(visited) > k*len(frontier) {
			return frontier, visited
		}
	}

	treeSize := make(map[int]int)
	pivotSet := make(map[int]bool)
	for _, leaf := range lastLayer {
		cur := leaf
		count := 0
		for {
			p, ok := parent[cur]
			if !ok {
				break
			}
			cur = p
			count++
		}
		treeSize[cur] += count
		if treeSize[cur] >= k {
			pivotSet[cur] = true
		}
	}

	// Emit pivots in frontier order so the caller's BlockList insertions
	// are reproducible run to run.
	for _, root := range frontier {
		if pivotSet[root] {
			pivots = append(pivots, root)
		}
	}
	return pivots, visited
}
