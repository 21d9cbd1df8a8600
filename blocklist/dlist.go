package blocklist

// dlistNode is one link in an intrusive doubly linked sequence of blocks.
// Locators never store these directly; they record (tag, blockID, index)
// instead, avoiding dangling-pointer hazards when blocks split or empty;
// only the owning block holds its node, so a block can be spliced out in
// O(1) once looked up by id through the arena map.
type dlistNode struct {
	blockID    uint64
	prev, next *dlistNode
}

// dlist is a minimal doubly linked list of block ids, used for both D0 and
// D1's front-to-back order. It supports O(1) push-front, push-back,
// insert-after, and remove given a node pointer.
type dlist struct {
	head, tail *dlistNode
	length     int
}

func (l *dlist) pushFront(blockID uint64) *dlistNode {
	n := &dlistNode{blockID: blockID, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
	return n
}

func (l *dlist) pushBack(blockID uint64) *dlistNode {
	n := &dlistNode{blockID: blockID, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
	return n
}

// insertAfter splices a new node holding blockID immediately after anchor.
func (l *dlist) insertAfter(anchor *dlistNode, blockID uint64) *dlistNode {
	n := &dlistNode{blockID: blockID, prev: anchor, next: anchor.next}
	if anchor.next != nil {
		anchor.next.prev = n
	} else {
		l.tail = n
	}
	anchor.next = n
	l.length++
	return n
}

// remove splices n out of the list.
func (l *dlist) remove(n *dlistNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.length--
}

func (l *dlist) empty() bool { return l.length == 0 }
