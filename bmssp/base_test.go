package bmssp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainGraph builds 0 -> 1 -> ... -> n-1 with unit weights.
func chainGraph(n int) *graph {
	adj := make([][]Edge, n)
	for i := 0; i+1 < n; i++ {
		adj[i] = []Edge{{To: i + 1, Weight: 1}}
	}

	return newGraph(adj)
}

// TestBase_SettlesAllWithinBudget: when the reachable set fits inside k,
// base returns the original bound and everything it settled.
func TestBase_SettlesAllWithinBudget(t *testing.T) {
	g := chainGraph(3)
	ds := newDistances(3, 0)

	bound, settled := base(g, ds, math.Inf(1), 0, 5)

	assert.True(t, math.IsInf(bound, 1))
	assert.ElementsMatch(t, []int{0, 1, 2}, settled)
	assert.Equal(t, []float64{0, 1, 2}, ds.snapshot())
}

// TestBase_BudgetExceeded: with k+1 nodes settled, base returns the max
// settled distance as the new bound and drops nodes that tie it.
func TestBase_BudgetExceeded(t *testing.T) {
	g := chainGraph(10)
	ds := newDistances(10, 0)

	bound, settled := base(g, ds, math.Inf(1), 0, 2)

	// Settles 0, 1, 2 (three = k+1), maxCost = 2; node 2 ties and is dropped.
	assert.Equal(t, 2.0, bound)
	assert.ElementsMatch(t, []int{0, 1}, settled)
}

// TestBase_RespectsBound: edges whose tentative value reaches B are never
// relaxed, so distant nodes stay untouched.
func TestBase_RespectsBound(t *testing.T) {
	g := chainGraph(5)
	ds := newDistances(5, 0)

	bound, settled := base(g, ds, 2.0, 0, 10)

	assert.Equal(t, 2.0, bound)
	assert.ElementsMatch(t, []int{0, 1}, settled)
	assert.True(t, math.IsInf(ds.get(3), 1))
	assert.True(t, math.IsInf(ds.get(4), 1))
}

// TestBase_StartsFromStoredDistance: the kernel seeds its heap with the
// node's current stored distance, not zero.
func TestBase_StartsFromStoredDistance(t *testing.T) {
	g := chainGraph(3)
	ds := newDistances(3, 0)
	ds.relax(1, 5)

	_, settled := base(g, ds, math.Inf(1), 1, 4)

	require.Contains(t, settled, 1)
	assert.Equal(t, 6.0, ds.get(2))
}
