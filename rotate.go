package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

func (t *Tree[K]) rotateLeft(x NodeID) {
	/*
		Left rotation around node x:
			    Before:               After:
		          P                    P
		          |                    |
		          x                    y
		         / \                  / \
		        A   y       →        x   C
		           / \              / \
		          B   C            A   B
	*/
	y := t.right(x)
	assert(x != NIL && y != NIL, "left rotation needs a right child")
	t.setRight(x, t.left(y))
	if t.left(y) != NIL {
		t.setParent(t.left(y), x)
	}
	t.setParent(y, t.parent(x))
	if t.parent(x) == NIL {
		t.root = y
	} else if x == t.left(t.parent(x)) {
		t.setLeft(t.parent(x), y)
	} else {
		t.setRight(t.parent(x), y)
	}
	t.setLeft(y, x)
	t.setParent(x, y)
	t.stats.rotated()
}

func (t *Tree[K]) rotateRight(y NodeID) {
	/*
		Right rotation around node y:
		    Before:               After:
		       P                    P
		       |                    |
		       y                    x
		      / \                  / \
		     x   C       →        A   y
		    / \                      / \
		   A   B                    B   C
	*/
	x := t.left(y)
	assert(y != NIL && x != NIL, "right rotation needs a left child")
	t.setLeft(y, t.right(x))
	if t.right(x) != NIL {
		t.setParent(t.right(x), y)
	}
	t.setParent(x, t.parent(y))
	if t.parent(y) == NIL {
		t.root = x
	} else if y == t.right(t.parent(y)) {
		t.setRight(t.parent(y), x)
	} else {
		t.setLeft(t.parent(y), x)
	}
	t.setRight(x, y)
	t.setParent(y, x)
	t.stats.rotated()
}
