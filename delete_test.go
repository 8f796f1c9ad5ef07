package rbtree

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDeleteLargeDataset(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	r := rand.New(rand.NewSource(testSource))
	keys := r.Perm(testSize)
	var tree Tree[int]
	for _, k := range keys {
		tree.Insert(k)
	}
	r.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	for i, k := range keys {
		if !tree.Delete(k) {
			t.Fatalf("key %d not found for deletion (iteration %d)", k, i)
		}
		if tree.Contains(k) {
			t.Fatalf("key %d still exists after deletion (iteration %d)", k, i)
		}
		if st := tree.Stats(); st.LastRotations > 3 {
			t.Fatalf("deletion of %d took %d rotations", k, st.LastRotations)
		}
		if i%97 == 0 || tree.Len() < 64 {
			if err := tree.Check(); err != nil {
				t.Fatalf("after deleting %d (iteration %d): %v", k, i, err)
			}
		}
	}
	if !tree.IsEmpty() {
		t.Errorf("tree should be empty, has %d keys", tree.Len())
	}
	if st := tree.Stats(); st.MaxDeleteRotations > 3 || st.Deletes != testSize {
		t.Errorf("unexpected stats after deletion: %s", st)
	}
}

func TestDeleteCases(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		name   string
		keys   []int
		delete int
		pre    []entry[int]
	}{
		{"RedLeaf", []int{2, 1, 3}, 3,
			[]entry[int]{{2, Black}, {1, Red}}},
		{"OnlyRightChild", []int{2, 1, 3, 4}, 3,
			[]entry[int]{{2, Black}, {1, Black}, {4, Black}}},
		{"OnlyLeftChild", []int{3, 2, 4, 1}, 2,
			[]entry[int]{{3, Black}, {1, Black}, {4, Black}}},
		{"TwoChildrenDirectSuccessor", []int{2, 1, 3}, 2,
			[]entry[int]{{3, Black}, {1, Red}}},
		{"TwoChildrenDeepSuccessor", []int{4, 2, 6, 5, 7}, 4,
			[]entry[int]{{5, Black}, {2, Black}, {6, Black}, {7, Red}}},
		{"BlackLeafRedSibling", []int{2, 1, 4, 3, 5, 6}, 1,
			[]entry[int]{{4, Black}, {2, Black}, {3, Red}, {5, Black}, {6, Red}}},
		{"Root", []int{1}, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := buildTree(t, tt.keys...)
			if !tree.Delete(tt.delete) {
				t.Fatalf("key %d not found", tt.delete)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("after deleting %d: %v", tt.delete, err)
			}
			if pre := collect(tree.PreOrder()); !equalEntries(pre, tt.pre) {
				t.Errorf("pre-order = %v, want %v", pre, tt.pre)
			}
			if tree.nodes.slots[NIL].color != Black {
				t.Errorf("sentinel changed color")
			}
		})
	}
}

func TestDeleteAbsentKeyIsNoOp(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, roundTripKeys...)
	var before, after bytes.Buffer
	tree.ToDot(&before)
	pre := collect(tree.PreOrder())
	slots := append([]node[int](nil), tree.nodes.slots[1:]...)
	if tree.Delete(11) {
		t.Fatalf("delete of absent key reported success")
	}
	tree.ToDot(&after)
	if !bytes.Equal(before.Bytes(), after.Bytes()) {
		t.Errorf("structure changed by no-op delete")
	}
	if !equalEntries(pre, collect(tree.PreOrder())) {
		t.Errorf("traversal changed by no-op delete")
	}
	for i, n := range tree.nodes.slots[1:] {
		if n != slots[i] {
			t.Errorf("slot %d changed by no-op delete", i+1)
		}
	}
	st := tree.Stats()
	if st.Misses != 1 || st.LastRotations != 0 || st.Len != len(roundTripKeys) {
		t.Errorf("unexpected stats after no-op delete: %s", st)
	}
}

func TestDeleteReusesSlots(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, 1, 2, 3, 4, 5)
	slots := len(tree.nodes.slots)
	tree.Delete(2)
	tree.Delete(4)
	if st := tree.Stats(); st.Free != 2 {
		t.Fatalf("expected 2 free slots, have %d", st.Free)
	}
	tree.Insert(6)
	tree.Insert(7)
	if len(tree.nodes.slots) != slots {
		t.Errorf("arena grew from %d to %d slots despite free slots", slots, len(tree.nodes.slots))
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteKeepsSuccessorHandle(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildTree(t, roundTripKeys...)
	succ := tree.Search(18) // in-order successor of 16, the root
	tree.Delete(16)
	if tree.Root() != succ {
		t.Errorf("successor node should take the root position")
	}
	if tree.Key(succ) != 18 || tree.Color(succ) != Black {
		t.Errorf("successor handle now holds %d (%s)", tree.Key(succ), tree.Color(succ))
	}
}
