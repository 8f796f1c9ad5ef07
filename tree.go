package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// Tree is a red-black tree holding keys of an ordered type K.
//
// A tree created by
//
//	var tree Tree[string]
//
// is a valid, empty tree. Keys may occur more than once.
//
//	Operation     |   Time
//	--------------+-----------
//	Insert        |   O(log n)
//	Delete        |   O(log n)
//	Search        |   O(log n)
//	Traverse      |   O(n)
//
// All operations but traversal use O(1) auxiliary space; traversal uses
// stack space proportional to the tree's height.
type Tree[K cmp.Ordered] struct {
	nodes arena[K]
	root  NodeID
	size  int
	stats counters
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[K]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == NIL
}

// Root returns the root node, or NIL for an empty tree.
func (t *Tree[K]) Root() NodeID {
	return t.root
}

// Clear removes all keys from the tree. The node arena keeps its capacity.
func (t *Tree[K]) Clear() {
	t.nodes.reset()
	t.root = NIL
	t.size = 0
}

// --- Node accessors --------------------------------------------------------

// Key returns the key stored at node n.
// n must be a live node; calling Key with NIL or a stale handle panics.
func (t *Tree[K]) Key(n NodeID) K {
	t.mustBeLive(n)
	return t.key(n)
}

// Color returns the color of node n. The sentinel NIL is always black.
func (t *Tree[K]) Color(n NodeID) Color {
	if n == NIL {
		return Black
	}
	t.mustBeLive(n)
	return t.color(n)
}

// Left returns the left child of n, which may be NIL.
func (t *Tree[K]) Left(n NodeID) NodeID {
	t.mustBeLive(n)
	return t.left(n)
}

// Right returns the right child of n, which may be NIL.
func (t *Tree[K]) Right(n NodeID) NodeID {
	t.mustBeLive(n)
	return t.right(n)
}

// Parent returns the parent of n, or NIL if n is the root.
func (t *Tree[K]) Parent(n NodeID) NodeID {
	t.mustBeLive(n)
	return t.parent(n)
}

func (t *Tree[K]) mustBeLive(n NodeID) {
	assert(n != NIL, "sentinel has no key or links")
	assert(t.nodes.valid(n), "stale or foreign node handle")
}

// --- Search ----------------------------------------------------------------

// Search locates a node holding key. If key is not present, NIL is returned.
// For duplicate keys the first equal node met on the way down is returned.
func (t *Tree[K]) Search(key K) NodeID {
	current := t.root
	for current != NIL {
		c := cmp.Compare(key, t.key(current))
		if c == 0 {
			return current
		} else if c < 0 {
			current = t.left(current)
		} else {
			current = t.right(current)
		}
	}
	return NIL
}

// Contains reports whether key is present in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.Search(key) != NIL
}

// Minimum returns the node with the smallest key in the subtree rooted at n.
// n must not be NIL.
func (t *Tree[K]) Minimum(n NodeID) NodeID {
	assert(n != NIL, "minimum of an empty subtree")
	t.mustBeLive(n)
	return t.minimum(n)
}

// Maximum returns the node with the largest key in the subtree rooted at n.
// n must not be NIL.
func (t *Tree[K]) Maximum(n NodeID) NodeID {
	assert(n != NIL, "maximum of an empty subtree")
	t.mustBeLive(n)
	return t.maximum(n)
}

// Min returns the smallest key of the tree. ok is false for an empty tree.
func (t *Tree[K]) Min() (key K, ok bool) {
	if t.root == NIL {
		return key, false
	}
	return t.key(t.minimum(t.root)), true
}

// Max returns the largest key of the tree. ok is false for an empty tree.
func (t *Tree[K]) Max() (key K, ok bool) {
	if t.root == NIL {
		return key, false
	}
	return t.key(t.maximum(t.root)), true
}

// Successor returns the in-order successor of n, or NIL if n is the last node.
func (t *Tree[K]) Successor(n NodeID) NodeID {
	t.mustBeLive(n)
	return t.next(n)
}

// Predecessor returns the in-order predecessor of n, or NIL if n is the
// first node.
func (t *Tree[K]) Predecessor(n NodeID) NodeID {
	t.mustBeLive(n)
	return t.prev(n)
}

func (t *Tree[K]) minimum(x NodeID) NodeID {
	for t.left(x) != NIL {
		x = t.left(x)
	}
	return x
}

func (t *Tree[K]) maximum(x NodeID) NodeID {
	for t.right(x) != NIL {
		x = t.right(x)
	}
	return x
}

func (t *Tree[K]) next(x NodeID) NodeID {
	if t.right(x) != NIL {
		return t.minimum(t.right(x))
	}
	p := t.parent(x)
	for p != NIL && x == t.right(p) {
		x = p
		p = t.parent(p)
	}
	return p
}

func (t *Tree[K]) prev(x NodeID) NodeID {
	if t.left(x) != NIL {
		return t.maximum(t.left(x))
	}
	p := t.parent(x)
	for p != NIL && x == t.left(p) {
		x = p
		p = t.parent(p)
	}
	return p
}

// --- Raw links ---------------------------------------------------------------

// The following helpers do not check their arguments. They operate on the
// sentinel as on any other slot, which is what keeps the balancing code free
// of boundary checks.

func (t *Tree[K]) key(x NodeID) K { return t.nodes.slots[x].key }
func (t *Tree[K]) color(x NodeID) Color { return t.nodes.slots[x].color }
func (t *Tree[K]) left(x NodeID) NodeID { return t.nodes.slots[x].left }
func (t *Tree[K]) right(x NodeID) NodeID { return t.nodes.slots[x].right }
func (t *Tree[K]) parent(x NodeID) NodeID { return t.nodes.slots[x].parent }
func (t *Tree[K]) setLeft(x, y NodeID) { t.nodes.slots[x].left = y }
func (t *Tree[K]) setRight(x, y NodeID) { t.nodes.slots[x].right = y }
func (t *Tree[K]) setParent(x, y NodeID) { t.nodes.slots[x].parent = y }
func (t *Tree[K]) isRed(x NodeID) bool { return t.color(x) == Red }
func (t *Tree[K]) isBlack(x NodeID) bool { return t.color(x) == Black }
func (t *Tree[K]) isLeftChild(x NodeID) bool { return x == t.left(t.parent(x)) }

func (t *Tree[K]) setColor(x NodeID, c Color) {
	assert(x != NIL || c == Black, "sentinel must stay black")
	t.nodes.slots[x].color = c
}
