package rbtree

import "math"

// Tree is a mutable red-black search tree with cached minimum and maximum.
//
// K is the key type, V the value type stored alongside each key. Ordering is
// defined exclusively by the Config's Less predicate; the tree never compares
// keys any other way. A Tree is not safe for concurrent use: callers must
// serialize mutation against any other access.
type Tree[K, V any] struct {
	cfg   Config[K, V]
	root  *node[K, V]
	min   *node[K, V] // leftmost node, nil iff tree is empty
	max   *node[K, V] // rightmost node, nil iff tree is empty
	count int
	audit bool
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K, V] {
	return t.cfg
}

// Less exposes the tree's ordering predicate.
func (t *Tree[K, V]) Less() func(a, b K) bool {
	return t.cfg.Less
}

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// MaxLen returns the largest number of nodes a tree can hold in principle.
func (t *Tree[K, V]) MaxLen() int {
	return math.MaxInt
}

// EnableAudit switches O(log n) iterator-ownership revalidation on or off.
//
// Auditing changes the asymptotic cost of iterator-taking mutations and is
// meant for test builds only; it is off by default.
func (t *Tree[K, V]) EnableAudit(on bool) {
	t.audit = on
}

// auditIterator revalidates that it references a live node of this tree by
// walking the parent chain up to the root. Only active with EnableAudit.
func (t *Tree[K, V]) auditIterator(it Iterator[K, V]) {
	if !t.audit || it.node == nil {
		return
	}
	n := it.node
	for n.parent != nil {
		n = n.parent
	}
	assert(it.tree == t, "iterator does not belong to this tree")
	assert(n == t.root, "iterator references a node outside this tree")
}

// lowerBoundNode returns the first node whose key is not less than key,
// or nil when every key compares less.
func (t *Tree[K, V]) lowerBoundNode(key K) *node[K, V] {
	var best *node[K, V]
	n := t.root
	for n != nil {
		if t.cfg.Less(n.key, key) {
			n = n.right
		} else {
			best = n
			n = n.left
		}
	}
	return best
}

// upperBoundNode returns the first node whose key is greater than key,
// or nil when no key compares greater.
func (t *Tree[K, V]) upperBoundNode(key K) *node[K, V] {
	var best *node[K, V]
	n := t.root
	for n != nil {
		if t.cfg.Less(key, n.key) {
			best = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return best
}

// Find returns an iterator to a node comparing equal to key, or End.
//
// With duplicate keys (InsertEqual) the result is the first node of the
// equal run.
func (t *Tree[K, V]) Find(key K) Iterator[K, V] {
	n := t.lowerBoundNode(key)
	if n == nil || t.cfg.Less(key, n.key) {
		return t.End()
	}
	return Iterator[K, V]{tree: t, node: n}
}

// LowerBound returns an iterator to the first node with key >= key, or End.
func (t *Tree[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{tree: t, node: t.lowerBoundNode(key)}
}

// UpperBound returns an iterator to the first node with key > key, or End.
func (t *Tree[K, V]) UpperBound(key K) Iterator[K, V] {
	return Iterator[K, V]{tree: t, node: t.upperBoundNode(key)}
}

// EqualRange returns the [lower, upper) span of nodes comparing equal to key.
//
// For trees populated through InsertUnique the span holds at most one node.
// An empty span has both bounds equal, positioned where key would insert.
func (t *Tree[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	return t.LowerBound(key), t.UpperBound(key)
}

// Count returns the number of nodes comparing equal to key.
func (t *Tree[K, V]) Count(key K) int {
	lower, upper := t.EqualRange(key)
	n := 0
	for it := lower; !it.Equal(upper); it = it.Next() {
		n++
	}
	return n
}

// Swap exchanges the complete contents of two trees in O(1).
//
// Configurations travel with the node graphs, so both trees stay consistent
// with their own ordering predicate. No node is touched; iterators keep
// following their nodes into the other tree.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	assert(other != nil, "Swap called with nil tree")
	t.cfg, other.cfg = other.cfg, t.cfg
	t.root, other.root = other.root, t.root
	t.min, other.min = other.min, t.min
	t.max, other.max = other.max, t.max
	t.count, other.count = other.count, t.count
}

// Clear erases every node, firing release hooks, and resets the tree to the
// empty state.
//
// The teardown walk is iterative with an explicit stack, so arbitrarily deep
// (or deliberately corrupted) trees cannot overflow the call stack.
func (t *Tree[K, V]) Clear() {
	if t.root == nil {
		return
	}
	stack := make([]*node[K, V], 0, 32)
	stack = append(stack, t.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		t.releaseNode(n)
	}
	t.root = nil
	t.min = nil
	t.max = nil
	t.count = 0
}

// releaseNode fires the configured release hooks and unlinks n.
func (t *Tree[K, V]) releaseNode(n *node[K, V]) {
	if t.cfg.ReleaseKey != nil {
		t.cfg.ReleaseKey(n.key)
	}
	if t.cfg.ReleaseValue != nil {
		t.cfg.ReleaseValue(n.value)
	}
	n.left, n.right, n.parent = nil, nil, nil
}
