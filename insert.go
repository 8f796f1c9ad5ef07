package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// Insert adds key to the tree while maintaining the red-black properties.
// If key is already present, another occurrence is added to the right of
// the existing ones. Insert never fails.
func (t *Tree[K]) Insert(key K) NodeID {
	t.stats.begin()
	z := t.nodes.alloc(key)

	parent := NIL
	current := t.root
	for current != NIL {
		parent = current
		if cmp.Less(key, t.key(current)) {
			current = t.left(current)
		} else {
			current = t.right(current)
		}
	}

	t.setParent(z, parent)
	if parent == NIL {
		t.root = z
	} else if cmp.Less(key, t.key(parent)) {
		t.setLeft(parent, z)
	} else {
		t.setRight(parent, z)
	}
	t.size++

	t.fixInsert(z)
	t.stats.inserted()
	return z
}

// fixInsert resolves a red-red conflict between z and its parent, walking
// upwards. The root's parent is the sentinel, which is black and therefore
// terminates the loop at the top.
func (t *Tree[K]) fixInsert(z NodeID) {
	for t.isRed(t.parent(z)) {
		p := t.parent(z)
		g := t.parent(p)
		if p == t.left(g) {
			uncle := t.right(g)
			if t.isRed(uncle) { // case 1: recolor and move up
				t.setColor(p, Black)
				t.setColor(uncle, Black)
				t.setColor(g, Red)
				z = g
				continue
			}
			if z == t.right(p) { // case 2: triangle, turn into a line
				z = p
				t.rotateLeft(z)
			}
			// case 3: line
			t.setColor(t.parent(z), Black)
			t.setColor(t.parent(t.parent(z)), Red)
			t.rotateRight(t.parent(t.parent(z)))
		} else {
			uncle := t.left(g)
			if t.isRed(uncle) {
				t.setColor(p, Black)
				t.setColor(uncle, Black)
				t.setColor(g, Red)
				z = g
				continue
			}
			if z == t.left(p) {
				z = p
				t.rotateRight(z)
			}
			t.setColor(t.parent(z), Black)
			t.setColor(t.parent(t.parent(z)), Red)
			t.rotateLeft(t.parent(t.parent(z)))
		}
	}
	t.setColor(t.root, Black)
}
