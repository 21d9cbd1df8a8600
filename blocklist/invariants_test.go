package blocklist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the structural health of a BlockList from the
// inside: element counts agree with the Locator, every Locator entry
// matches physical placement, D1 bounds dominate their elements and rise
// strictly along the list, and no block is empty or over capacity.
func checkInvariants(t *testing.T, bl *BlockList) {
	t.Helper()

	total := 0
	seen := make(map[int]bool)

	walk := func(l *dlist, tag listTag) {
		for n := l.head; n != nil; n = n.next {
			b, ok := bl.blocks[n.blockID]
			require.True(t, ok, "list references unknown block %d", n.blockID)
			require.Equal(t, tag, b.tag)
			require.NotEmpty(t, b.elems, "empty block %d survived an operation", b.id)
			require.LessOrEqual(t, len(b.elems), bl.m, "block %d over capacity", b.id)
			for i, e := range b.elems {
				require.False(t, seen[e.Node], "node %d appears twice", e.Node)
				seen[e.Node] = true
				loc, ok := bl.locator[e.Node]
				require.True(t, ok, "node %d missing from locator", e.Node)
				assert.Equal(t, locEntry{tag: tag, blockID: b.id, index: i}, loc)
			}
			total += len(b.elems)
		}
	}

	walk(&bl.d0, tagD0)

	prevUB := 0.0
	first := true
	for n := bl.d1.head; n != nil; n = n.next {
		b := bl.blocks[n.blockID]
		for _, e := range b.elems {
			assert.LessOrEqual(t, e.Dist, b.upperBound, "element above block bound")
		}
		assert.LessOrEqual(t, b.upperBound, bl.bGlobal)
		if !first {
			assert.Greater(t, b.upperBound, prevUB, "D1 bounds must rise along the list")
		}
		prevUB = b.upperBound
		first = false
	}
	walk(&bl.d1, tagD1)

	require.Equal(t, len(bl.locator), total, "locator size disagrees with element count")
	require.Equal(t, bl.d1.length, bl.d1Idx.len(), "D1 index out of sync with list")
}

// TestInvariants_RandomOperations hammers one BlockList with a seeded mix
// of Insert, BatchPrepend, and Pull, checking structural invariants after
// every operation.
func TestInvariants_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bl, err := New(4, 1000)
	require.NoError(t, err)

	for step := 0; step < 500; step++ {
		switch rng.Intn(10) {
		case 0, 1, 2, 3, 4, 5:
			bl.Insert(rng.Intn(60), rng.Float64()*999)
		case 6, 7:
			batch := make([]Element, rng.Intn(12))
			for i := range batch {
				batch[i] = Element{Node: rng.Intn(60), Dist: rng.Float64() * 999}
			}
			bl.BatchPrepend(batch)
		default:
			frontier, bound := bl.Pull()
			for _, e := range frontier {
				assert.LessOrEqual(t, e.Dist, bound)
				_, present := bl.locator[e.Node]
				assert.False(t, present, "pulled node %d still present", e.Node)
			}
		}
		checkInvariants(t, bl)
	}
}

// TestSplit_PreservesMultiset inserts past capacity so a split must fire,
// then drains and verifies nothing was lost or duplicated.
func TestSplit_PreservesMultiset(t *testing.T) {
	bl, err := New(4, 100)
	require.NoError(t, err)

	want := map[int]float64{}
	for i := 0; i < 9; i++ {
		d := float64(90 - 10*i)
		bl.Insert(i, d)
		want[i] = d
		checkInvariants(t, bl)
	}
	require.Greater(t, bl.d1.length, 1, "9 inserts at M=4 must have split")

	got := map[int]float64{}
	for !bl.IsEmpty() {
		frontier, _ := bl.Pull()
		for _, e := range frontier {
			_, dup := got[e.Node]
			require.False(t, dup)
			got[e.Node] = e.Dist
		}
		checkInvariants(t, bl)
	}
	assert.Equal(t, want, got)
}

func TestNthElement_PlacesKth(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(30)
		s := make([]Element, n)
		for i := range s {
			s[i] = Element{Node: i, Dist: float64(rng.Intn(100))}
		}
		k := rng.Intn(n)
		nthElement(s, k)
		for i := 0; i < k; i++ {
			assert.LessOrEqual(t, s[i].Dist, s[k].Dist)
		}
		for i := k + 1; i < n; i++ {
			assert.GreaterOrEqual(t, s[i].Dist, s[k].Dist)
		}
	}
}

func TestSplitByMedian_ChunksAscending(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	elems := make([]Element, 37)
	for i := range elems {
		elems[i] = Element{Node: i, Dist: float64(rng.Intn(200))}
	}

	chunks := splitByMedian(elems, 4)

	count := 0
	prevMax := -1.0
	for _, chunk := range chunks {
		require.NotEmpty(t, chunk)
		require.LessOrEqual(t, len(chunk), 4)
		lo, hi := chunk[0].Dist, chunk[0].Dist
		for _, e := range chunk {
			if e.Dist < lo {
				lo = e.Dist
			}
			if e.Dist > hi {
				hi = e.Dist
			}
		}
		assert.GreaterOrEqual(t, lo, prevMax, "chunks must ascend by value")
		prevMax = hi
		count += len(chunk)
	}
	assert.Equal(t, len(elems), count)
}
