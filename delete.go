package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Delete removes one occurrence of key from the tree while maintaining the
// red-black properties. If key is not present, the tree is left untouched
// and Delete returns false.
func (t *Tree[K]) Delete(key K) bool {
	t.stats.begin()
	z := t.Search(key)
	if z == NIL {
		T().Debugf("rbtree: delete: key %v not found", key)
		t.stats.missed()
		return false
	}

	var x NodeID
	y := z
	yOriginalColor := t.color(y)

	if t.left(z) == NIL {
		x = t.right(z)
		t.transplant(z, t.right(z))
	} else if t.right(z) == NIL {
		x = t.left(z)
		t.transplant(z, t.left(z))
	} else {
		y = t.minimum(t.right(z))
		yOriginalColor = t.color(y)
		x = t.right(y)
		if t.parent(y) == z {
			t.setParent(x, y) // x may be the sentinel
		} else {
			t.transplant(y, t.right(y))
			t.setRight(y, t.right(z))
			t.setParent(t.right(y), y)
		}
		t.transplant(z, y)
		t.setLeft(y, t.left(z))
		t.setParent(t.left(y), y)
		t.setColor(y, t.color(z))
	}

	if yOriginalColor == Black {
		t.fixDelete(x)
	}
	t.nodes.release(z)
	t.size--
	t.stats.deleted()
	return true
}

// transplant replaces the subtree rooted at u by the subtree rooted at v.
// v's parent link is set even if v is the sentinel.
func (t *Tree[K]) transplant(u, v NodeID) {
	if t.parent(u) == NIL {
		t.root = v
	} else if u == t.left(t.parent(u)) {
		t.setLeft(t.parent(u), v)
	} else {
		t.setRight(t.parent(u), v)
	}
	t.setParent(v, t.parent(u))
}

// fixDelete pushes the extra black carried by x upwards until it can be
// absorbed by a red node, by a rotation, or by the root.
func (t *Tree[K]) fixDelete(x NodeID) {
	for x != t.root && t.isBlack(x) {
		if t.isLeftChild(x) {
			w := t.right(t.parent(x))
			if t.isRed(w) { // case 1: red sibling
				t.setColor(w, Black)
				t.setColor(t.parent(x), Red)
				t.rotateLeft(t.parent(x))
				w = t.right(t.parent(x))
			}
			if t.isBlack(t.left(w)) && t.isBlack(t.right(w)) { // case 2
				t.setColor(w, Red)
				x = t.parent(x)
				continue
			}
			if t.isBlack(t.right(w)) { // case 3: near nephew red
				t.setColor(t.left(w), Black)
				t.setColor(w, Red)
				t.rotateRight(w)
				w = t.right(t.parent(x))
			}
			// case 4: far nephew red
			t.setColor(w, t.color(t.parent(x)))
			t.setColor(t.parent(x), Black)
			t.setColor(t.right(w), Black)
			t.rotateLeft(t.parent(x))
			x = t.root
		} else {
			w := t.left(t.parent(x))
			if t.isRed(w) {
				t.setColor(w, Black)
				t.setColor(t.parent(x), Red)
				t.rotateRight(t.parent(x))
				w = t.left(t.parent(x))
			}
			if t.isBlack(t.right(w)) && t.isBlack(t.left(w)) {
				t.setColor(w, Red)
				x = t.parent(x)
				continue
			}
			if t.isBlack(t.left(w)) {
				t.setColor(t.right(w), Black)
				t.setColor(w, Red)
				t.rotateLeft(w)
				w = t.left(t.parent(x))
			}
			t.setColor(w, t.color(t.parent(x)))
			t.setColor(t.parent(x), Black)
			t.setColor(t.left(w), Black)
			t.rotateRight(t.parent(x))
			x = t.root
		}
	}
	t.setColor(x, Black)
}
