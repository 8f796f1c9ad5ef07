package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"math"
)

// NodeID is a handle for a node of a tree. Handles are valid until the key
// they have been issued for is deleted from the tree. Accessors panic on a
// handle whose slot has been released, but released slots are reused by
// later insertions: once that happens, an old handle denotes the new node.
type NodeID uint32

// NIL is the handle of the sentinel. It stands in for every absent child,
// for the parent of the root and for the root of an empty tree.
const NIL NodeID = 0

const maxSlots = math.MaxUint32

// Color is the color of a tree node.
type Color uint8

// Nodes are either black or red. The zero value is black.
const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	}
	return "color?"
}

type node[K cmp.Ordered] struct {
	key                 K
	color               Color
	live                bool // false for the sentinel and for released slots
	left, right, parent NodeID
}

// arena owns the node records of a tree. Slot 0 is the sentinel; released
// slots are kept on a free list and reused by later allocations.
type arena[K cmp.Ordered] struct {
	slots []node[K]
	free  []NodeID
}

func (a *arena[K]) init(capacity int) {
	a.slots = make([]node[K], 1, capacity+1)
	a.slots[NIL] = node[K]{color: Black}
	a.free = nil
}

func (a *arena[K]) ready() bool {
	return len(a.slots) > 0
}

func (a *arena[K]) alloc(key K) NodeID {
	if !a.ready() {
		a.init(DefaultCapacity)
	}
	var id NodeID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		assert(uint64(len(a.slots)) < maxSlots, "node arena exhausted")
		if len(a.slots) == cap(a.slots) {
			T().Debugf("rbtree: node arena grows beyond %d slots", cap(a.slots))
		}
		a.slots = append(a.slots, node[K]{})
		id = NodeID(len(a.slots) - 1)
	}
	a.slots[id] = node[K]{
		key:    key,
		color:  Red,
		live:   true,
		left:   NIL,
		right:  NIL,
		parent: NIL,
	}
	return id
}

func (a *arena[K]) release(id NodeID) {
	assert(id != NIL, "cannot release the sentinel")
	assert(a.slots[id].live, "double release of node slot")
	a.slots[id] = node[K]{} // drop the key for the GC
	a.free = append(a.free, id)
}

// reset drops all nodes but keeps the allocated capacity.
func (a *arena[K]) reset() {
	if !a.ready() {
		return
	}
	clear(a.slots)
	a.slots = a.slots[:1]
	a.slots[NIL] = node[K]{color: Black}
	a.free = a.free[:0]
}

func (a *arena[K]) valid(id NodeID) bool {
	return int(id) < len(a.slots) && a.slots[id].live
}
