package rbtree

import "testing"

func TestIteratorForwardWalk(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.InsertUnique(k, "")
	}
	want := 1
	for it := tree.Begin(); !it.Equal(tree.End()); it = it.Next() {
		if it.Key() != want {
			t.Fatalf("forward walk out of order: got %d want %d", it.Key(), want)
		}
		want++
	}
	if want != 8 {
		t.Fatalf("forward walk visited %d nodes, want 7", want-1)
	}
}

func TestIteratorBackwardWalk(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.InsertUnique(k, "")
	}
	want := 7
	it := tree.End()
	for !it.Equal(tree.Begin()) {
		it = it.Prev()
		if it.Key() != want {
			t.Fatalf("backward walk out of order: got %d want %d", it.Key(), want)
		}
		want--
	}
	if want != 0 {
		t.Fatalf("backward walk visited %d nodes, want 7", 7-want)
	}
}

func TestIteratorSurvivesUnrelatedMutation(t *testing.T) {
	tree := newIntTree(t)
	it, _ := tree.InsertUnique(500, "pivot")
	// Rebalancing rotations relink nodes; the iterator must keep following
	// its node through all of them.
	for k := range 200 {
		tree.InsertUnique(k, "")
		tree.InsertUnique(1000+k, "")
	}
	if it.Key() != 500 || it.Value() != "pivot" {
		t.Fatalf("iterator lost its node across insertions")
	}
	for k := range 200 {
		tree.Erase(k)
	}
	if it.Key() != 500 {
		t.Fatalf("iterator lost its node across unrelated erasures")
	}
	mustCheck(t, tree)
}

func TestIteratorToSuccessorSurvivesTwoChildErase(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{10, 5, 20, 15, 30} {
		tree.InsertUnique(k, "")
	}
	succ := tree.Find(15) // in-order successor of 10
	victim := tree.Find(10)
	// 10 has two children here; erasing it relinks the successor into its
	// structural position instead of copying payloads, so succ stays valid.
	tree.EraseAt(victim)
	if succ.Key() != 15 {
		t.Fatalf("successor iterator invalidated by two-child erase")
	}
	mustCheck(t, tree)
}

func TestSetValueAndValueRef(t *testing.T) {
	tree := newIntTree(t)
	it, _ := tree.InsertUnique(1, "old")
	it.SetValue("new")
	if tree.Find(1).Value() != "new" {
		t.Fatalf("SetValue did not stick")
	}
	*it.ValueRef() = "newer"
	if it.Value() != "newer" {
		t.Fatalf("ValueRef write did not stick")
	}
}

func TestIteratorAuditRejectsForeignIterator(t *testing.T) {
	a := newIntTree(t)
	b := newIntTree(t)
	a.EnableAudit(true)
	b.InsertUnique(1, "")
	foreign := b.Begin()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected audit panic for foreign iterator")
		}
	}()
	a.EraseAt(foreign)
}

func TestPrevFromEndOnSingleNode(t *testing.T) {
	tree := newIntTree(t)
	tree.InsertUnique(9, "")
	it := tree.End().Prev()
	if it.Key() != 9 {
		t.Fatalf("Prev from End must yield the maximum")
	}
	if !it.Equal(tree.Begin()) {
		t.Fatalf("single-node tree: maximum must equal Begin")
	}
}
