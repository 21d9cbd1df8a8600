package blocklist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmssp/blocklist"
)

func TestNew_InvalidCapacity(t *testing.T) {
	_, err := blocklist.New(0, 100)
	require.ErrorIs(t, err, blocklist.ErrInvalidCapacity)
}

func TestPull_Empty(t *testing.T) {
	bl, err := blocklist.New(3, 100)
	require.NoError(t, err)

	assert.True(t, bl.IsEmpty())
	frontier, bound := bl.Pull()
	assert.Empty(t, frontier)
	assert.Equal(t, 100.0, bound)
}

// TestMixedInsertPrepend interleaves inserts with a batch-prepend of
// smaller values and checks the first pull favors the prepended front.
func TestMixedInsertPrepend(t *testing.T) {
	bl, err := blocklist.New(3, 100)
	require.NoError(t, err)

	bl.Insert(1, 50)
	bl.Insert(2, 30)
	bl.BatchPrepend([]blocklist.Element{{Node: 3, Dist: 10}, {Node: 4, Dist: 5}})
	bl.Insert(5, 25)
	require.Equal(t, 5, bl.Len())

	frontier, _ := bl.Pull()
	require.NotEmpty(t, frontier)
	require.LessOrEqual(t, len(frontier), 3)
	for _, e := range frontier {
		assert.LessOrEqual(t, e.Dist, 25.0, "first pull must only return the small end")
	}

	pulled := map[int]bool{}
	for _, e := range frontier {
		require.False(t, pulled[e.Node])
		pulled[e.Node] = true
	}
	for !bl.IsEmpty() {
		more, _ := bl.Pull()
		for _, e := range more {
			require.False(t, pulled[e.Node], "node %d pulled twice", e.Node)
			pulled[e.Node] = true
		}
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}, pulled)
}

// TestDrainAfterSplits inserts descending keys to force block splits, then
// drains and checks the pulled batches ascend: for consecutive pulls
// (S1, x1) then (S2, x2), max d(S1) <= x1 <= min d(S2).
func TestDrainAfterSplits(t *testing.T) {
	bl, err := blocklist.New(4, 100)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		bl.Insert(i, float64(10-i))
	}
	require.Equal(t, 10, bl.Len())

	seen := map[int]bool{}
	prevBound := 0.0
	havePrev := false
	for !bl.IsEmpty() {
		frontier, bound := bl.Pull()
		require.NotEmpty(t, frontier, "pull on a non-empty list must make progress")
		for _, e := range frontier {
			require.False(t, seen[e.Node])
			seen[e.Node] = true
			if bound < 100 {
				assert.LessOrEqual(t, e.Dist, bound)
			}
			if havePrev {
				assert.GreaterOrEqual(t, e.Dist, prevBound, "later pulls may not dip below an earlier bound")
			}
		}
		if bound < 100 {
			prevBound = bound
			havePrev = true
		}
	}
	assert.Len(t, seen, 10)
}

// TestInsert_DedupSemantics: a later insert with an equal or larger
// distance is a no-op; a smaller one replaces the stored value.
func TestInsert_DedupSemantics(t *testing.T) {
	bl, err := blocklist.New(3, 100)
	require.NoError(t, err)

	bl.Insert(7, 40)
	bl.Insert(7, 60) // larger: ignored
	bl.Insert(7, 40) // equal: ignored
	require.Equal(t, 1, bl.Len())

	frontier, _ := bl.Pull()
	require.Len(t, frontier, 1)
	assert.Equal(t, blocklist.Element{Node: 7, Dist: 40}, frontier[0])

	bl.Insert(7, 40)
	bl.Insert(7, 15) // smaller: replaces
	frontier, _ = bl.Pull()
	require.Len(t, frontier, 1)
	assert.Equal(t, blocklist.Element{Node: 7, Dist: 15}, frontier[0])
}

// TestBatchPrepend_Dedup covers both within-batch duplicates (minimum per
// node wins) and collisions with already-present nodes.
func TestBatchPrepend_Dedup(t *testing.T) {
	bl, err := blocklist.New(3, 100)
	require.NoError(t, err)

	bl.Insert(1, 20)
	bl.BatchPrepend([]blocklist.Element{
		{Node: 2, Dist: 9},
		{Node: 2, Dist: 4},  // same node, smaller: wins
		{Node: 1, Dist: 50}, // present with 20: dropped
	})
	require.Equal(t, 2, bl.Len())

	got := map[int]float64{}
	for !bl.IsEmpty() {
		frontier, _ := bl.Pull()
		for _, e := range frontier {
			got[e.Node] = e.Dist
		}
	}
	assert.Equal(t, map[int]float64{1: 20, 2: 4}, got)
}

// TestBatchPrepend_LargeBatch pushes a batch far larger than M so the
// recursive median partition path runs, then verifies drain order.
func TestBatchPrepend_LargeBatch(t *testing.T) {
	bl, err := blocklist.New(4, 1000)
	require.NoError(t, err)

	batch := make([]blocklist.Element, 50)
	for i := range batch {
		batch[i] = blocklist.Element{Node: i, Dist: float64((i * 37) % 503)}
	}
	bl.BatchPrepend(batch)
	require.Equal(t, 50, bl.Len())

	var last float64
	haveLast := false
	count := 0
	for !bl.IsEmpty() {
		frontier, bound := bl.Pull()
		for _, e := range frontier {
			if haveLast {
				assert.GreaterOrEqual(t, e.Dist, last)
			}
			count++
		}
		if bound < 1000 {
			last = bound
			haveLast = true
		}
	}
	assert.Equal(t, 50, count)
}
