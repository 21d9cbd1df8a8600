package blocklist

import "github.com/google/btree"

// d1IndexItem is the (upperBound, blockID) composite key of the D1 index:
// an ordered map supporting "smallest entry with key >= (d, -inf)"
// queries on D1 Blocks. blockID breaks ties between Blocks
// that momentarily share an upperBound (e.g. immediately after a split,
// before the right half's bound is known to differ).
type d1IndexItem struct {
	upperBound float64
	blockID    uint64
}

// Less implements btree.Item, ordering by upperBound then blockID.
func (a d1IndexItem) Less(than btree.Item) bool {
	b := than.(d1IndexItem)
	if a.upperBound != b.upperBound {
		return a.upperBound < b.upperBound
	}
	return a.blockID < b.blockID
}

// d1Index wraps a *btree.BTree restricted to the one query D1 routing
// needs: find the block with the smallest upperBound that is still >= a
// given distance, breaking ties toward the lowest blockID.
type d1Index struct {
	tree *btree.BTree
}

// btreeDegree is the google/btree degree of the D1 index: small enough to
// keep node rebalancing cheap for the handful of Blocks a single BMSSP
// recursion frame ever holds.
const btreeDegree = 4

func newD1Index() *d1Index {
	return &d1Index{tree: btree.New(btreeDegree)}
}

func (idx *d1Index) insert(upperBound float64, blockID uint64) {
	idx.tree.ReplaceOrInsert(d1IndexItem{upperBound: upperBound, blockID: blockID})
}

func (idx *d1Index) remove(upperBound float64, blockID uint64) {
	idx.tree.Delete(d1IndexItem{upperBound: upperBound, blockID: blockID})
}

// ceiling returns the blockID of the smallest indexed entry with key
// >= (d, -inf), and false if none exists (d exceeds every Block's bound).
func (idx *d1Index) ceiling(d float64) (uint64, bool) {
	var found uint64
	ok := false
	idx.tree.AscendGreaterOrEqual(d1IndexItem{upperBound: d, blockID: 0}, func(item btree.Item) bool {
		found = item.(d1IndexItem).blockID
		ok = true
		return false // stop after the first hit
	})
	return found, ok
}

func (idx *d1Index) len() int { return idx.tree.Len() }
