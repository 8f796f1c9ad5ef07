package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"io"

	"github.com/npillmayer/rbtree"
)

// branch tells how a node is attached to its parent.
type branch int

const (
	atRoot branch = iota
	atLeft
	atRight
)

// Sketch draws an ASCII picture of a tree to w, rotated by 90 degrees:
// the root is at the left margin and right subtrees are printed above their
// parents. Keys are colored by c; a nil console prints plain keys.
//
// Sketch returns the height of the tree. Drawing stops at the first error
// returned by w, which is returned together with the height.
func Sketch[K cmp.Ordered](w io.Writer, tree *rbtree.Tree[K], c *Console) (int, error) {
	if c == nil {
		c = &Console{}
	}
	s := &sketcher[K]{w: w, tree: tree, console: c}
	depth := s.draw(tree.Root(), "", atRoot)
	return depth, s.err
}

type sketcher[K cmp.Ordered] struct {
	w       io.Writer
	tree    *rbtree.Tree[K]
	console *Console
	err     error // first write error
}

// draw returns the depth of the subtree at n.
func (s *sketcher[K]) draw(n rbtree.NodeID, prefix string, br branch) int {
	if n == rbtree.NIL {
		return 0
	}
	rd, ld := 0, 0
	if r := s.tree.Right(n); r != rbtree.NIL {
		t := "       "
		if br == atLeft {
			t = "|      "
		}
		rd = s.draw(r, prefix+t, atRight)
	}
	switch br {
	case atRoot:
		s.print(prefix + "|------+ ")
	case atLeft:
		s.print(prefix + "\\------+ ")
	case atRight:
		s.print(prefix + "/------+ ")
	}
	if s.err == nil {
		col := s.tree.Color(n)
		s.err = s.console.write(s.w, Token(fmt.Sprint(s.tree.Key(n)), col), col)
	}
	s.print("\n")
	if l := s.tree.Left(n); l != rbtree.NIL {
		t := "       "
		if br == atRight {
			t = "|      "
		}
		ld = s.draw(l, prefix+t, atLeft)
	}
	return 1 + max(ld, rd)
}

func (s *sketcher[K]) print(str string) {
	if s.err == nil {
		_, s.err = io.WriteString(s.w, str)
	}
}
