package blocklist

// BlockList is a partitioned priority structure supporting Insert,
// BatchPrepend, and Pull over (node, distance) Elements, bounded by a
// per-Block capacity M and a global upper bound B. See the package doc
// comment for the full operation contracts.
type BlockList struct {
	m           int
	bGlobal     float64
	blocks      map[uint64]*block
	nextBlockID uint64
	d0          dlist
	d1          dlist
	d1Idx       *d1Index
	locator     map[int]locEntry
}

// New creates a BlockList with per-Block capacity m and global bound
// bGlobal. A BlockList is owned by exactly one BMSSP recursion frame and
// should be discarded when that frame returns.
func New(m int, bGlobal float64) (*BlockList, error) {
	if m < 1 {
		return nil, ErrInvalidCapacity
	}
	return &BlockList{
		m:           m,
		bGlobal:     bGlobal,
		blocks:      make(map[uint64]*block),
		nextBlockID: 1, // 0 is reserved as the d1Index "-inf" tie-break sentinel
		d1Idx:       newD1Index(),
		locator:     make(map[int]locEntry),
	}, nil
}

// IsEmpty reports whether the BlockList holds no elements at all.
func (bl *BlockList) IsEmpty() bool {
	return len(bl.locator) == 0
}

// Len returns the total number of elements currently held, across D0 and
// D1 combined; exposed for testing invariant P3 (sum of block sizes equals
// locator size).
func (bl *BlockList) Len() int {
	return len(bl.locator)
}

// Insert adds (u, d), or updates u's stored distance if d improves on it.
// If u is already present with a distance <= d, this is a no-op.
func (bl *BlockList) Insert(u int, d float64) {
	if loc, ok := bl.locator[u]; ok {
		cur := bl.blocks[loc.blockID].elems[loc.index].Dist
		if cur <= d {
			return
		}
		bl.removeElement(u)
	}

	if bl.d1.empty() {
		bl.newD1Block(bl.bGlobal)
	}

	target := bl.findD1Target(d)
	bl.appendToBlock(target, Element{Node: u, Dist: d})

	if len(target.elems) > bl.m {
		bl.splitBlockD1(target)
	}
}

// findD1Target returns the D1 block with the smallest upperBound >= d,
// defaulting to the last D1 block if none qualifies. In that case the last
// block's upperBound is raised back to bGlobal (it drops below bGlobal once
// the block that held bGlobal is emptied), so d stays within its bound.
func (bl *BlockList) findD1Target(d float64) *block {
	if id, ok := bl.d1Idx.ceiling(d); ok {
		return bl.blocks[id]
	}
	tail := bl.blocks[bl.d1.tail.blockID]
	bl.d1Idx.remove(tail.upperBound, tail.id)
	tail.upperBound = bl.bGlobal
	bl.d1Idx.insert(tail.upperBound, tail.id)
	return tail
}

func (bl *BlockList) newD1Block(upperBound float64) *block {
	id := bl.nextBlockID
	bl.nextBlockID++
	node := bl.d1.pushBack(id)
	b := &block{id: id, tag: tagD1, upperBound: upperBound, node: node}
	bl.blocks[id] = b
	bl.d1Idx.insert(upperBound, id)
	return b
}

func (bl *BlockList) appendToBlock(b *block, e Element) {
	b.elems = append(b.elems, e)
	bl.locator[e.Node] = locEntry{tag: b.tag, blockID: b.id, index: len(b.elems) - 1}
}

// splitBlockD1 partitions an overfull D1 block around its median distance:
// the left half keeps the block's identity and position but shrinks its
// upperBound to the left half's max, and the right half becomes a new block
// spliced in immediately after, inheriting the original upperBound.
func (bl *BlockList) splitBlockD1(b *block) {
	mid := len(b.elems) / 2
	nthElement(b.elems, mid)
	left := b.elems[:mid]
	right := append([]Element(nil), b.elems[mid:]...)

	oldUpperBound := b.upperBound
	leftMax := left[0].Dist
	for _, e := range left {
		if e.Dist > leftMax {
			leftMax = e.Dist
		}
	}

	bl.d1Idx.remove(oldUpperBound, b.id)
	b.elems = append([]Element(nil), left...)
	b.upperBound = leftMax
	bl.d1Idx.insert(b.upperBound, b.id)
	for i, e := range b.elems {
		bl.locator[e.Node] = locEntry{tag: tagD1, blockID: b.id, index: i}
	}

	rid := bl.nextBlockID
	bl.nextBlockID++
	rnode := bl.d1.insertAfter(b.node, rid)
	rb := &block{id: rid, tag: tagD1, upperBound: oldUpperBound, elems: right, node: rnode}
	bl.blocks[rid] = rb
	bl.d1Idx.insert(rb.upperBound, rid)
	for i, e := range rb.elems {
		bl.locator[e.Node] = locEntry{tag: tagD1, blockID: rid, index: i}
	}
}

// BatchPrepend merges a batch of Elements whose distances are all (the
// caller is expected to ensure) at most the current smallest distance
// held, so they belong at the front of D0. BlockList itself does not check
// this precondition; values simply merge at the front even if violated.
func (bl *BlockList) BatchPrepend(elements []Element) {
	if len(elements) == 0 {
		return
	}

	best := make(map[int]float64, len(elements))
	order := make([]int, 0, len(elements))
	for _, e := range elements {
		if cur, ok := best[e.Node]; !ok || e.Dist < cur {
			if !ok {
				order = append(order, e.Node)
			}
			best[e.Node] = e.Dist
		}
	}

	remaining := make([]Element, 0, len(order))
	for _, u := range order {
		d := best[u]
		if loc, ok := bl.locator[u]; ok {
			cur := bl.blocks[loc.blockID].elems[loc.index].Dist
			if cur <= d {
				continue
			}
			bl.removeElement(u)
		}
		remaining = append(remaining, Element{Node: u, Dist: d})
	}

	if len(remaining) == 0 {
		return
	}

	maxChunk := bl.m
	if len(remaining) > bl.m {
		maxChunk = (bl.m + 1) / 2
	}
	chunks := splitByMedian(remaining, maxChunk)

	for i := len(chunks) - 1; i >= 0; i-- {
		id := bl.nextBlockID
		bl.nextBlockID++
		node := bl.d0.pushFront(id)
		b := &block{id: id, tag: tagD0, elems: chunks[i], node: node}
		bl.blocks[id] = b
		for idx, e := range b.elems {
			bl.locator[e.Node] = locEntry{tag: tagD0, blockID: id, index: idx}
		}
	}
}

// Pull removes and returns up to M elements with the smallest distances,
// plus a bound such that every remaining element's distance is >= bound.
// Returns (nil, B) if the BlockList is empty.
func (bl *BlockList) Pull() ([]Element, float64) {
	collected := bl.collect()
	if len(collected) == 0 {
		return nil, bl.bGlobal
	}

	var frontier []Element
	if len(collected) <= bl.m {
		frontier = collected
	} else {
		nthElement(collected, bl.m)
		x := collected[bl.m].Dist
		window := collected[:bl.m]
		for _, e := range window {
			if e.Dist < x {
				frontier = append(frontier, e)
			}
		}
		if len(frontier) == 0 {
			frontier = window
		}
	}

	for _, e := range frontier {
		bl.removeElement(e.Node)
	}

	return frontier, bl.nextBound()
}

// collect walks D0 from the front, adding whole Blocks to a snapshot slice
// until it has taken at least M elements from D0, then does the same over
// D1. Since no Block holds more than M elements, each list contributes at
// most 2M-1, so the union holds under 4M candidates. It does not mutate the
// BlockList: elements that end up outside the final frontier remain
// exactly where they were.
func (bl *BlockList) collect() []Element {
	var out []Element
	walk := func(l *dlist) {
		count := 0
		for n := l.head; n != nil && count < bl.m; n = n.next {
			elems := bl.blocks[n.blockID].elems
			out = append(out, elems...)
			count += len(elems)
		}
	}
	walk(&bl.d0)
	walk(&bl.d1)
	return out
}

// nextBound computes the bound returned alongside a non-empty pull result:
// B if nothing remains, otherwise the minimum distance across the first
// non-empty Block of D0 and the first non-empty Block of D1.
func (bl *BlockList) nextBound() float64 {
	if bl.IsEmpty() {
		return bl.bGlobal
	}

	best := bl.bGlobal
	haveBest := false
	consider := func(l *dlist) {
		if n := l.head; n != nil {
			b := bl.blocks[n.blockID]
			m := blockMin(b)
			if !haveBest || m < best {
				best = m
				haveBest = true
			}
		}
	}
	consider(&bl.d0)
	consider(&bl.d1)
	return best
}

func blockMin(b *block) float64 {
	m := b.elems[0].Dist
	for _, e := range b.elems[1:] {
		if e.Dist < m {
			m = e.Dist
		}
	}
	return m
}

// removeElement deletes u from its physical Block and the Locator, removing
// the Block itself (and its D1 index entry) if it becomes empty.
func (bl *BlockList) removeElement(u int) {
	loc, ok := bl.locator[u]
	if !ok {
		return
	}
	b := bl.blocks[loc.blockID]
	last := len(b.elems) - 1
	if loc.index != last {
		b.elems[loc.index] = b.elems[last]
		moved := b.elems[loc.index]
		bl.locator[moved.Node] = locEntry{tag: loc.tag, blockID: loc.blockID, index: loc.index}
	}
	b.elems = b.elems[:last]
	delete(bl.locator, u)

	if len(b.elems) == 0 {
		bl.removeBlock(b)
	}
}

func (bl *BlockList) removeBlock(b *block) {
	switch b.tag {
	case tagD0:
		bl.d0.remove(b.node)
	case tagD1:
		bl.d1.remove(b.node)
		bl.d1Idx.remove(b.upperBound, b.id)
	}
	delete(bl.blocks, b.id)
}
