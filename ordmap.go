package ordmap

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordmap/rbtree"
)

// Map stores key/value pairs sorted by key, with at most one entry per key.
//
// Every operation delegates to an rbtree.Tree restricted to unique-key
// insertion. The zero Map is not usable; create maps with New or NewOrdered.
type Map[K, V any] struct {
	tree *rbtree.Tree[K, V]
}

// New creates an empty map ordered by a strict less-than predicate.
//
// The predicate is required and must define a strict total order over keys.
func New[K, V any](less func(a, b K) bool) *Map[K, V] {
	tree, err := rbtree.New(rbtree.Config[K, V]{Less: less})
	assert(err == nil, "ordmap.New requires a less-than predicate")
	return &Map[K, V]{tree: tree}
}

// NewOrdered creates an empty map over a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](func(a, b K) bool { return a < b })
}

// Tree exposes the underlying balancing engine, e.g. for iterator plumbing
// or invariant checking. Mutating the tree through InsertEqual would break
// the map's uniqueness guarantee.
func (m *Map[K, V]) Tree() *rbtree.Tree[K, V] {
	return m.tree
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Get returns a pointer to the value slot for key.
//
// If key is absent, Get inserts it with the zero value first — a read access
// with an insertion side effect, enabling lazy default construction:
//
//	*m.Get("hits")++    // works for a Map[string, int], absent or not
//
// Use Lookup for a side-effect-free read.
func (m *Map[K, V]) Get(key K) *V {
	it, created := m.tree.InsertUnique(key, *new(V))
	if created {
		T().Debugf("ordmap: Get inserted default for absent key %v", key)
	}
	return it.ValueRef()
}

// Lookup returns the value stored under key, or the zero value and false.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	it := m.tree.Find(key)
	if it.IsEnd() {
		var zero V
		return zero, false
	}
	return it.Value(), true
}

// Put stores value under key, inserting or overwriting as needed.
//
// It returns the previous value and true when an entry was overwritten, or
// the zero value and false when the key was fresh.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	it, created := m.tree.InsertUnique(key, value)
	if created {
		var zero V
		return zero, false
	}
	old = it.Value()
	it.SetValue(value)
	return old, true
}

// Contains reports whether key has an entry.
func (m *Map[K, V]) Contains(key K) bool {
	return !m.tree.Find(key).IsEnd()
}

// Count returns 0 or 1, the number of entries stored under key.
func (m *Map[K, V]) Count(key K) int {
	return m.tree.Count(key)
}

// Delete removes the entry stored under key, reporting whether one existed.
func (m *Map[K, V]) Delete(key K) bool {
	return m.tree.Erase(key) > 0
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Swap exchanges the contents of two maps in O(1).
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	assert(other != nil, "Swap called with nil map")
	m.tree.Swap(other.tree)
}

// First returns the smallest key and its value, or false for an empty map.
func (m *Map[K, V]) First() (K, V, bool) {
	if m.tree.IsEmpty() {
		var k K
		var v V
		return k, v, false
	}
	it := m.tree.Begin()
	return it.Key(), it.Value(), true
}

// Last returns the largest key and its value, or false for an empty map.
func (m *Map[K, V]) Last() (K, V, bool) {
	if m.tree.IsEmpty() {
		var k K
		var v V
		return k, v, false
	}
	it := m.tree.End().Prev()
	return it.Key(), it.Value(), true
}

// ForEach walks entries in ascending key order until fn returns false.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) {
	m.tree.ForEach(fn)
}

// All returns an in-order iterator over all entries, usable in range-over-func
// loops.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.ForEach(yield)
	}
}
