/*
Package ordmap offers a sorted key/value map with stable positions.

# Ordered maps

An ordered map keeps its entries sorted by key at all times. Entries live in
a self-balancing binary search tree (red-black discipline), so point
operations — lookup, insertion, deletion — cost O(log n) and a full in-order
traversal costs O(n). The map enforces unique keys: putting an existing key
overwrites its value instead of creating a duplicate.

	m := ordmap.NewOrdered[int, string]()
	m.Put(3, "three")
	m.Put(1, "one")
	m.Put(2, "two")
	for k, v := range m.All() {
	    fmt.Println(k, v) // 1 one, 2 two, 3 three
	}

Keys need not be ordered types: ordmap.New accepts an arbitrary strict
less-than predicate. The predicate must define a strict total order; that is
a caller obligation the map cannot verify.

Positions in the map are pointer-stable: rebalancing relinks tree nodes
rather than copying them, so an iterator obtained from the underlying
rbtree.Tree stays valid across unrelated insertions and deletions. Map and
tree are not safe for concurrent use; callers serialize access themselves.

The balancing engine lives in the rbtree subpackage and can be used directly
when duplicate keys (InsertEqual) or explicit iterator plumbing are needed.
The root package is the convenience surface.

_________________________________________________________________________

BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package ordmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
