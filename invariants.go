package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"math"
)

// Check validates the structural invariants of the tree:
//
//   - the sentinel is black and carries neither key nor children,
//   - the root is black and has no parent,
//   - parent and child links agree with each other,
//   - no red node has a red child,
//   - every path from a node to a descendant sentinel has the same number
//     of black nodes,
//   - keys are in non-decreasing in-order sequence,
//   - the key count matches the number of reachable nodes,
//   - the height does not exceed 2·log₂(n+1).
//
// Check runs in O(n) and is meant for tests and debugging.
func (t *Tree[K]) Check() error {
	if !t.nodes.ready() {
		if t.root != NIL || t.size != 0 {
			return violation("tree without arena has root %d and size %d", t.root, t.size)
		}
		return nil
	}
	var zero K
	sentinel := t.nodes.slots[NIL]
	if sentinel.color != Black {
		return violation("sentinel is %s", sentinel.color)
	}
	if sentinel.live || sentinel.left != NIL || sentinel.right != NIL || sentinel.key != zero {
		return violation("sentinel carries a key or children")
	}
	if t.root == NIL {
		if t.size != 0 {
			return violation("empty tree reports size %d", t.size)
		}
		return nil
	}
	if !t.nodes.valid(t.root) {
		return violation("root %d is not a live node", t.root)
	}
	if t.color(t.root) != Black {
		return violation("root %d is red", t.root)
	}
	if t.parent(t.root) != NIL {
		return violation("root %d has parent %d", t.root, t.parent(t.root))
	}
	count, _, err := t.checkNode(t.root, 1)
	if err != nil {
		return err
	}
	if count != t.size {
		return violation("%d reachable nodes, size is %d", count, t.size)
	}
	if h, bound := t.Height(), 2*math.Log2(float64(t.size+1)); float64(h) > bound {
		return violation("height %d exceeds bound %.2f for %d keys", h, bound, t.size)
	}
	first := true
	var prev K
	for key := range t.Ascend() {
		if !first && cmp.Less(key, prev) {
			return violation("key %v follows key %v in order", key, prev)
		}
		prev, first = key, false
	}
	return nil
}

// checkNode returns the number of nodes and the black height of the subtree
// at n, counting the sentinel as one black node.
func (t *Tree[K]) checkNode(n NodeID, depth int) (count int, blackHeight int, err error) {
	if n == NIL {
		return 0, 1, nil
	}
	if depth > len(t.nodes.slots) {
		return 0, 0, violation("cycle detected at node %d", n)
	}
	for _, child := range [2]NodeID{t.left(n), t.right(n)} {
		if child == NIL {
			continue
		}
		if !t.nodes.valid(child) {
			return 0, 0, violation("node %d links to dead slot %d", n, child)
		}
		if t.parent(child) != n {
			return 0, 0, violation("node %d has child %d with parent %d", n, child, t.parent(child))
		}
		if t.isRed(n) && t.isRed(child) {
			return 0, 0, violation("red node %d has red child %d", n, child)
		}
	}
	lcount, lheight, err := t.checkNode(t.left(n), depth+1)
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := t.checkNode(t.right(n), depth+1)
	if err != nil {
		return 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, violation("node %d has black heights %d/%d", n, lheight, rheight)
	}
	if t.isBlack(n) {
		lheight++
	}
	return lcount + rcount + 1, lheight, nil
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariantViolated}, args...)...)
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0.
func (t *Tree[K]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K]) height(n NodeID) int {
	if n == NIL {
		return 0
	}
	return 1 + max(t.height(t.left(n)), t.height(t.right(n)))
}

// BlackHeight returns the number of black nodes on any path from the root
// down to a sentinel, not counting the sentinel. For an empty tree it is 0.
// The result is meaningful for trees passing Check only.
func (t *Tree[K]) BlackHeight() int {
	bh := 0
	for n := t.root; n != NIL; n = t.left(n) {
		if t.isBlack(n) {
			bh++
		}
	}
	return bh
}
