package rbtree

import (
	"errors"
	"testing"
)

func intLess(a, b int) bool { return a < b }

func strLess(a, b string) bool { return a < b }

func newIntTree(t *testing.T) *Tree[int, string] {
	t.Helper()
	tree, err := New(Config[int, string]{Less: intLess})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func newStrTree(t *testing.T) *Tree[string, int] {
	t.Helper()
	tree, err := New(Config[string, int]{Less: strLess})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func collectKeys[K, V any](tree *Tree[K, V]) []K {
	var keys []K
	tree.ForEach(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func mustCheck[K, V any](t *testing.T, tree *Tree[K, V]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invariants failed: %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int, string]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing predicate, got %v", err)
	}
}

func TestCheckEmptyTree(t *testing.T) {
	tree := newIntTree(t)
	mustCheck(t, tree)
	if tree.Len() != 0 || !tree.IsEmpty() {
		t.Fatalf("unexpected empty tree state len=%d", tree.Len())
	}
	if !tree.Begin().Equal(tree.End()) {
		t.Fatalf("expected Begin == End for empty tree")
	}
}

func TestInsertUniqueSortsKeys(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		it, ok := tree.InsertUnique(k, "")
		if !ok {
			t.Fatalf("insert of fresh key %d refused", k)
		}
		if it.Key() != k {
			t.Fatalf("insert iterator references key %d, want %d", it.Key(), k)
		}
		mustCheck(t, tree)
	}
	want := []int{1, 3, 4, 5, 7, 8, 9}
	got := collectKeys(tree)
	if len(got) != len(want) {
		t.Fatalf("key count mismatch: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("in-order walk differs at %d: got=%v want=%v", i, got, want)
		}
	}
}

func TestInsertUniqueRefusesDuplicates(t *testing.T) {
	tree := newIntTree(t)
	tree.InsertUnique(7, "first")
	it, ok := tree.InsertUnique(7, "second")
	if ok {
		t.Fatalf("duplicate insert must be refused")
	}
	if it.Value() != "first" {
		t.Fatalf("refusal iterator must reference the existing node, got %q", it.Value())
	}
	if tree.Len() != 1 {
		t.Fatalf("refused insert mutated the tree, len=%d", tree.Len())
	}
	mustCheck(t, tree)
}

func TestEraseByKey(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.InsertUnique(k, "")
	}
	if n := tree.Erase(5); n != 1 {
		t.Fatalf("expected removal count 1, got %d", n)
	}
	mustCheck(t, tree)
	want := []int{1, 3, 4, 7, 8, 9}
	got := collectKeys(tree)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("in-order walk after erase: got=%v want=%v", got, want)
		}
	}
	if n := tree.Erase(5); n != 0 {
		t.Fatalf("erase of absent key must report 0, got %d", n)
	}
}

func TestFindRoundTrip(t *testing.T) {
	tree := newIntTree(t)
	tree.InsertUnique(42, "answer")
	it := tree.Find(42)
	if it.IsEnd() || it.Value() != "answer" {
		t.Fatalf("Find after insert must yield the inserted value")
	}
	tree.EraseAt(it)
	if !tree.Find(42).IsEnd() {
		t.Fatalf("Find after erase must yield End")
	}
	mustCheck(t, tree)
}

func TestBoundsBetweenElements(t *testing.T) {
	tree := newStrTree(t)
	for i, k := range []string{"u", "v", "w", "y", "z"} {
		tree.InsertUnique(k, i)
	}
	lower, upper := tree.EqualRange("x")
	if !lower.Equal(upper) {
		t.Fatalf("equal range of absent key must be empty")
	}
	if lower.IsEnd() || lower.Key() != "y" {
		t.Fatalf("bounds of absent key must point at the next greater node")
	}
	if tree.Count("x") != 0 || tree.Count("y") != 1 {
		t.Fatalf("unexpected counts: x=%d y=%d", tree.Count("x"), tree.Count("y"))
	}
	if lb := tree.LowerBound("a"); lb.Key() != "u" {
		t.Fatalf("LowerBound below minimum must yield Begin")
	}
	if !tree.UpperBound("z").IsEnd() {
		t.Fatalf("UpperBound above maximum must yield End")
	}
}

func TestEraseRange(t *testing.T) {
	tree := newStrTree(t)
	for i, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		tree.InsertUnique(k, i)
	}
	tree.EraseRange(tree.LowerBound("c"), tree.UpperBound("f"))
	mustCheck(t, tree)
	want := []string{"a", "b", "g"}
	got := collectKeys(tree)
	if len(got) != len(want) {
		t.Fatalf("unexpected keys after range erase: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected keys after range erase: %v", got)
		}
	}
}

func TestEraseFullRangeClearsTree(t *testing.T) {
	tree := newIntTree(t)
	for k := range 20 {
		tree.InsertUnique(k, "")
	}
	tree.EraseRange(tree.Begin(), tree.End())
	if !tree.IsEmpty() {
		t.Fatalf("erasing [Begin, End) must empty the tree, len=%d", tree.Len())
	}
	mustCheck(t, tree)
}

func TestInsertEqualKeepsDuplicates(t *testing.T) {
	tree := newIntTree(t)
	tree.InsertEqual(1, "a")
	tree.InsertEqual(2, "x")
	tree.InsertEqual(1, "b")
	tree.InsertEqual(1, "c")
	mustCheck(t, tree)
	if tree.Len() != 4 {
		t.Fatalf("expected 4 nodes, got %d", tree.Len())
	}
	if tree.Count(1) != 3 {
		t.Fatalf("expected equal run of 3, got %d", tree.Count(1))
	}
	// Equal keys keep insertion order within the run.
	var run []string
	lower, upper := tree.EqualRange(1)
	for it := lower; !it.Equal(upper); it = it.Next() {
		run = append(run, it.Value())
	}
	if len(run) != 3 || run[0] != "a" || run[1] != "b" || run[2] != "c" {
		t.Fatalf("unexpected equal-run order: %v", run)
	}
	if n := tree.Erase(1); n != 3 {
		t.Fatalf("expected erase count 3, got %d", n)
	}
	mustCheck(t, tree)
}

func TestMinMaxCache(t *testing.T) {
	tree := newIntTree(t)
	for _, k := range []int{10, 5, 15, 1, 20} {
		tree.InsertUnique(k, "")
	}
	if tree.Begin().Key() != 1 {
		t.Fatalf("Begin must reference the minimum, got %d", tree.Begin().Key())
	}
	if tree.End().Prev().Key() != 20 {
		t.Fatalf("Prev of End must reference the maximum, got %d", tree.End().Prev().Key())
	}
	tree.Erase(1)
	tree.Erase(20)
	if tree.Begin().Key() != 5 || tree.End().Prev().Key() != 15 {
		t.Fatalf("min/max caches stale after erase: min=%d max=%d",
			tree.Begin().Key(), tree.End().Prev().Key())
	}
	mustCheck(t, tree)
}

func TestReleaseHooksFireOncePerNode(t *testing.T) {
	releasedKeys := map[int]int{}
	releasedValues := 0
	tree, err := New(Config[int, int]{
		Less:         intLess,
		ReleaseKey:   func(k int) { releasedKeys[k]++ },
		ReleaseValue: func(int) { releasedValues++ },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k := range 10 {
		tree.InsertUnique(k, k*k)
	}
	tree.Erase(3)
	tree.EraseAt(tree.Find(7))
	tree.Clear()
	if releasedValues != 10 {
		t.Fatalf("expected 10 value releases, got %d", releasedValues)
	}
	for k := range 10 {
		if releasedKeys[k] != 1 {
			t.Fatalf("key %d released %d times", k, releasedKeys[k])
		}
	}
}

func TestSwapExchangesContents(t *testing.T) {
	a := newIntTree(t)
	b := newIntTree(t)
	a.InsertUnique(1, "one")
	b.InsertUnique(2, "two")
	b.InsertUnique(3, "three")
	a.Swap(b)
	if a.Len() != 2 || b.Len() != 1 {
		t.Fatalf("unexpected sizes after swap: a=%d b=%d", a.Len(), b.Len())
	}
	if a.Find(2).IsEnd() || b.Find(1).IsEnd() {
		t.Fatalf("contents did not travel with the swap")
	}
	mustCheck(t, a)
	mustCheck(t, b)
}

func TestClearResetsTree(t *testing.T) {
	tree := newIntTree(t)
	for k := range 100 {
		tree.InsertUnique(k, "")
	}
	tree.Clear()
	if !tree.IsEmpty() || tree.Len() != 0 {
		t.Fatalf("tree not empty after Clear")
	}
	mustCheck(t, tree)
	tree.InsertUnique(1, "again")
	mustCheck(t, tree)
}

func TestMaxLenIsLarge(t *testing.T) {
	tree := newIntTree(t)
	if tree.MaxLen() < 1<<31 {
		t.Fatalf("implausible MaxLen %d", tree.MaxLen())
	}
}
