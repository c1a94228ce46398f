package rbtree

// Iterator is a stable position inside a tree.
//
// An iterator references a node directly; it stays valid across insertions
// anywhere in the tree and across erasures of other nodes, because
// rebalancing rotations relink nodes instead of copying them. Erasing the
// referenced node invalidates the iterator: it must then neither be
// dereferenced nor stepped. The end position references no node.
//
// Iterator misuse (stepping past End, dereferencing End) is a programming
// error and trips an assertion rather than returning an error.
type Iterator[K, V any] struct {
	tree *Tree[K, V]
	node *node[K, V]
}

// Begin returns an iterator to the minimum node, or End for an empty tree.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{tree: t, node: t.min}
}

// End returns the distinguished one-past-the-maximum position.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: t}
}

// IsEnd reports whether the iterator sits at the end position.
func (it Iterator[K, V]) IsEnd() bool {
	return it.node == nil
}

// Equal reports whether two iterators reference the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// Key returns the key at the iterator's position.
func (it Iterator[K, V]) Key() K {
	assert(it.node != nil, "Key called on end iterator")
	return it.node.key
}

// Value returns the value at the iterator's position.
func (it Iterator[K, V]) Value() V {
	assert(it.node != nil, "Value called on end iterator")
	return it.node.value
}

// ValueRef returns a pointer to the value slot at the iterator's position.
//
// The pointer stays valid as long as the node is not erased; writing through
// it is equivalent to SetValue.
func (it Iterator[K, V]) ValueRef() *V {
	assert(it.node != nil, "ValueRef called on end iterator")
	return &it.node.value
}

// SetValue overwrites the value at the iterator's position.
//
// Keys are deliberately not assignable through the iterator: mutating a key
// in place would corrupt the search order.
func (it Iterator[K, V]) SetValue(v V) {
	assert(it.node != nil, "SetValue called on end iterator")
	it.node.value = v
}

// Next returns an iterator to the in-order successor.
//
// Stepping past the maximum yields End. Next must not be called on End.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	assert(it.node != nil, "Next called on end iterator")
	return Iterator[K, V]{tree: it.tree, node: successor(it.node)}
}

// Prev returns an iterator to the in-order predecessor.
//
// Stepping backward from End yields the cached maximum directly. Prev must
// not be called on Begin of a non-empty tree or on End of an empty one.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if it.node == nil {
		assert(it.tree != nil && it.tree.max != nil, "Prev called on end iterator of empty tree")
		return Iterator[K, V]{tree: it.tree, node: it.tree.max}
	}
	p := predecessor(it.node)
	assert(p != nil, "Prev called on begin iterator")
	return Iterator[K, V]{tree: it.tree, node: p}
}
