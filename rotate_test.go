package rbtree

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// checkLinks verifies parent/child consistency only; colors may be off
// after manual rotations.
func checkLinks(t *testing.T, tree *Tree[int]) {
	t.Helper()
	if tree.parent(tree.root) != NIL {
		t.Errorf("root %d has parent %d", tree.root, tree.parent(tree.root))
	}
	var walk func(NodeID)
	walk = func(n NodeID) {
		for _, c := range [2]NodeID{tree.left(n), tree.right(n)} {
			if c == NIL {
				continue
			}
			if tree.parent(c) != n {
				t.Errorf("child %d of %d has parent %d", c, n, tree.parent(c))
			}
			walk(c)
		}
	}
	if tree.root != NIL {
		walk(tree.root)
	}
}

func TestRotateLeftRight(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, roundTripKeys...)
	before := keysOf(collect(tree.InOrder()))
	x := tree.Root()
	y := tree.Right(x)
	tree.stats.begin()
	tree.rotateLeft(x)
	if tree.Root() != y || tree.Left(y) != x {
		t.Fatalf("left rotation did not lift right child to root")
	}
	checkLinks(t, tree)
	after := keysOf(collect(tree.InOrder()))
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("rotation changed in-order sequence: %v → %v", before, after)
		}
	}
	tree.rotateRight(y)
	if tree.Root() != x || tree.Right(x) != y {
		t.Fatalf("right rotation did not restore the root")
	}
	checkLinks(t, tree)
	if err := tree.Check(); err != nil {
		t.Errorf("tree not restored after rotating back: %v", err)
	}
	if tree.stats.current != 2 {
		t.Errorf("expected 2 counted rotations, have %d", tree.stats.current)
	}
}

func TestRotateInnerNode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, roundTripKeys...)
	n := tree.Search(10) // left child of root, children 2 and 15
	p := tree.Parent(n)
	l := tree.Left(n)
	tree.rotateRight(n)
	if tree.Left(p) != l || tree.Parent(l) != p || tree.Right(l) != n {
		t.Fatalf("right rotation of inner node did not relink parent")
	}
	checkLinks(t, tree)
	in := keysOf(collect(tree.InOrder()))
	for i := 1; i < len(in); i++ {
		if in[i-1] > in[i] {
			t.Fatalf("in-order broken after rotation: %v", in)
		}
	}
}

func TestRotateRequiresChild(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 1)
	mustPanic(t, "rotateLeft without right child", func() { tree.rotateLeft(tree.Root()) })
	mustPanic(t, "rotateRight without left child", func() { tree.rotateRight(tree.Root()) })
	mustPanic(t, "rotateLeft on sentinel", func() { tree.rotateLeft(NIL) })
}
