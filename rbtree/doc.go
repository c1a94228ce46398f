/*
Package rbtree provides the red-black tree engine backing ordered maps.

The package is intentionally not a convenience API. It is the balancing
engine: a mutable binary search tree with red-black coloring, stable
pointer-based iterators, and range primitives. Clients normally use the
ordmap root package, which layers unique-key map semantics on top.

Design points:
  - nodes are linked through left/right/parent pointers and are never moved
    or reused across logical identities; rotations relink nodes, so a live
    iterator stays valid as long as its node is not erased,
  - root, minimum and maximum are cached explicitly on the tree; the end
    position is a distinct iterator state rather than a sentinel node,
  - key ordering comes from a strict less-than predicate in the Config;
    the tree itself knows nothing about key or value types,
  - optional release hooks fire exactly once for every erased node,
  - `Check` validates all structural invariants and is meant for tests,
  - benign misses (find/erase on an absent key) are not errors; iterator
    misuse is a programming error and trips an assertion.

# BSD License

Please refer to the License file for details.
*/
package rbtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
