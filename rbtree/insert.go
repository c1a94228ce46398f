package rbtree

// InsertEqual inserts key/value unconditionally and returns an iterator to
// the new node. Duplicate keys are allowed; a new equal key lands behind the
// existing run of equal keys.
func (t *Tree[K, V]) InsertEqual(key K, value V) Iterator[K, V] {
	parent := t.root
	goLeft := false
	for n := t.root; n != nil; {
		parent = n
		goLeft = t.cfg.Less(key, n.key)
		if goLeft {
			n = n.left
		} else {
			n = n.right
		}
	}
	return Iterator[K, V]{tree: t, node: t.linkNode(parent, goLeft, key, value)}
}

// InsertUnique inserts key/value unless an equal key already exists.
//
// On success it returns an iterator to the new node and true. When an equal
// key is present the tree is left untouched and the iterator references the
// existing node.
func (t *Tree[K, V]) InsertUnique(key K, value V) (Iterator[K, V], bool) {
	parent := t.root
	goLeft := true
	for n := t.root; n != nil; {
		parent = n
		goLeft = t.cfg.Less(key, n.key)
		if goLeft {
			n = n.left
		} else {
			n = n.right
		}
	}
	// The candidate for an equal key is the node immediately preceding the
	// insertion point: the parent itself after descending left, otherwise
	// the parent's predecessor.
	prev := parent
	if goLeft && parent != nil {
		if parent == t.min {
			prev = nil
		} else {
			prev = predecessor(parent)
		}
	}
	if prev != nil && !t.cfg.Less(prev.key, key) {
		return Iterator[K, V]{tree: t, node: prev}, false
	}
	return Iterator[K, V]{tree: t, node: t.linkNode(parent, goLeft, key, value)}, true
}

// linkNode attaches a fresh red node below parent and rebalances.
//
// A nil parent means the tree is empty and the node becomes the root.
func (t *Tree[K, V]) linkNode(parent *node[K, V], asLeft bool, key K, value V) *node[K, V] {
	n := &node[K, V]{key: key, value: value, color: red, parent: parent}
	switch {
	case parent == nil:
		t.root = n
		t.min = n
		t.max = n
	case asLeft:
		parent.left = n
		if parent == t.min {
			t.min = n
		}
	default:
		parent.right = n
		if parent == t.max {
			t.max = n
		}
	}
	t.count++
	t.fixAfterInsert(n)
	return n
}

// fixAfterInsert restores red-black coloring after attaching a red leaf.
//
// The loop walks up as long as a red-red violation exists, resolving one of
// the classic cases per level: recolor when the uncle is red, otherwise one
// or two rotations keyed on the zig-zag shape. At most O(log n) steps.
func (t *Tree[K, V]) fixAfterInsert(n *node[K, V]) {
	for n != t.root && isRed(n.parent) {
		gp := n.parent.parent
		assert(gp != nil, "red node at root level during insert fix-up")
		if n.parent == gp.left {
			uncle := gp.right
			if isRed(uncle) {
				n.parent.color = black
				uncle.color = black
				gp.color = red
				n = gp
				continue
			}
			if n == n.parent.right {
				n = n.parent
				t.rotateLeft(n)
			}
			n.parent.color = black
			gp.color = red
			t.rotateRight(gp)
		} else {
			uncle := gp.left
			if isRed(uncle) {
				n.parent.color = black
				uncle.color = black
				gp.color = red
				n = gp
				continue
			}
			if n == n.parent.left {
				n = n.parent
				t.rotateRight(n)
			}
			n.parent.color = black
			gp.color = red
			t.rotateLeft(gp)
		}
	}
	t.root.color = black
}

/*
	  x                y
	a   y     =>     x   c
	   b c          a b
*/
func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	assert(y != nil, "rotateLeft without right child")
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

/*
	    y            x
	  x   c   =>   a   y
	 a b              b c
*/
func (t *Tree[K, V]) rotateRight(y *node[K, V]) {
	x := y.left
	assert(x != nil, "rotateRight without left child")
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	switch {
	case y.parent == nil:
		t.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}
	x.right = y
	y.parent = x
}
