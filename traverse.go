package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"
)

// Order selects a depth-first traversal order.
type Order int

// Traversal orders
const (
	InOrder   Order = iota // left subtree, node, right subtree
	PreOrder               // node, left subtree, right subtree
	PostOrder              // left subtree, right subtree, node
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "order?"
}

// Traverse returns an iterator over all (key, color) pairs of the tree in
// the given order. The sequence is computed lazily and may be ranged over
// any number of times; it must not be used while the tree is being mutated.
//
//	for key, color := range tree.Traverse(rbtree.PreOrder) {
//	    fmt.Printf("%v (%s) ", key, color)
//	}
func (t *Tree[K]) Traverse(order Order) iter.Seq2[K, Color] {
	var visit func(NodeID, func(K, Color) bool) bool
	switch order {
	case InOrder:
		visit = t.inorder
	case PreOrder:
		visit = t.preorder
	case PostOrder:
		visit = t.postorder
	default:
		assert(false, "unknown traversal order "+order.String())
	}
	return func(yield func(K, Color) bool) {
		if t.root == NIL {
			return
		}
		visit(t.root, yield)
	}
}

// InOrder is a shortcut for Traverse(InOrder). Keys are produced in
// non-decreasing order.
func (t *Tree[K]) InOrder() iter.Seq2[K, Color] {
	return t.Traverse(InOrder)
}

// PreOrder is a shortcut for Traverse(PreOrder).
func (t *Tree[K]) PreOrder() iter.Seq2[K, Color] {
	return t.Traverse(PreOrder)
}

// PostOrder is a shortcut for Traverse(PostOrder).
func (t *Tree[K]) PostOrder() iter.Seq2[K, Color] {
	return t.Traverse(PostOrder)
}

func (t *Tree[K]) inorder(n NodeID, yield func(K, Color) bool) bool {
	if n == NIL {
		return true
	}
	return t.inorder(t.left(n), yield) &&
		yield(t.key(n), t.color(n)) &&
		t.inorder(t.right(n), yield)
}

func (t *Tree[K]) preorder(n NodeID, yield func(K, Color) bool) bool {
	if n == NIL {
		return true
	}
	return yield(t.key(n), t.color(n)) &&
		t.preorder(t.left(n), yield) &&
		t.preorder(t.right(n), yield)
}

func (t *Tree[K]) postorder(n NodeID, yield func(K, Color) bool) bool {
	if n == NIL {
		return true
	}
	return t.postorder(t.left(n), yield) &&
		t.postorder(t.right(n), yield) &&
		yield(t.key(n), t.color(n))
}

// --- Ordered iteration -----------------------------------------------------

// Ascend returns an iterator over all keys in ascending order.
func (t *Tree[K]) Ascend() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.root == NIL {
			return
		}
		for n := t.minimum(t.root); n != NIL; n = t.next(n) {
			if !yield(t.key(n)) {
				return
			}
		}
	}
}

// Descend returns an iterator over all keys in descending order.
func (t *Tree[K]) Descend() iter.Seq[K] {
	return func(yield func(K) bool) {
		if t.root == NIL {
			return
		}
		for n := t.maximum(t.root); n != NIL; n = t.prev(n) {
			if !yield(t.key(n)) {
				return
			}
		}
	}
}

// Range returns an iterator over the keys k with lo <= k < hi, in ascending
// order. Finding the first key takes O(log n).
func (t *Tree[K]) Range(lo, hi K) iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := t.lowerBound(lo); n != NIL; n = t.next(n) {
			if !cmp.Less(t.key(n), hi) {
				return
			}
			if !yield(t.key(n)) {
				return
			}
		}
	}
}

// lowerBound finds the leftmost node with a key not less than key.
func (t *Tree[K]) lowerBound(key K) NodeID {
	found := NIL
	current := t.root
	for current != NIL {
		if cmp.Less(t.key(current), key) {
			current = t.right(current)
		} else {
			found = current
			current = t.left(current)
		}
	}
	return found
}
