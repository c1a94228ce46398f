package rbtree

// ForEach walks key/value pairs in ascending key order.
//
// Iteration stops early if the callback returns false. The callback must not
// mutate the tree.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	for n := t.min; n != nil; n = successor(n) {
		if !fn(n.key, n.value) {
			return
		}
	}
}

// EachNode walks nodes in ascending key order, exposing color and depth.
//
// This is a debugging surface for renderers (DOT, console dumps); depth is
// the number of edges from the root. Ordinary traversal should use ForEach
// or iterators.
func (t *Tree[K, V]) EachNode(fn func(key K, value V, isRed bool, depth int) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	for n := t.min; n != nil; n = successor(n) {
		depth := 0
		for p := n.parent; p != nil; p = p.parent {
			depth++
		}
		if !fn(n.key, n.value, isRed(n), depth) {
			return
		}
	}
}
