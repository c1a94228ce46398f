package rbtree

// EraseAt removes exactly the node referenced by it and fires release hooks
// for its key and value. The iterator is invalidated; every other live
// iterator stays valid.
//
// When the node has two children its in-order successor is relinked into the
// node's structural position (no payload is copied), so iterators to the
// successor survive. Which physical node object is deallocated after a
// two-child erase is an implementation detail, not a guarantee.
func (t *Tree[K, V]) EraseAt(it Iterator[K, V]) {
	assert(it.node != nil, "EraseAt called with end iterator")
	t.auditIterator(it)
	z := t.detachNode(it.node)
	t.count--
	t.releaseNode(z)
}

// EraseRange erases all nodes in [begin, end), capturing each successor
// before erasing the current node so the cursor never steps from a dead node.
func (t *Tree[K, V]) EraseRange(begin, end Iterator[K, V]) {
	if begin.Equal(t.Begin()) && end.Equal(t.End()) {
		t.Clear()
		return
	}
	for it := begin; !it.Equal(end); {
		next := it.Next()
		t.EraseAt(it)
		it = next
	}
}

// Erase removes the entire run of nodes comparing equal to key and returns
// how many nodes were removed (0 or 1 for unique-key trees). A miss is not
// an error.
func (t *Tree[K, V]) Erase(key K) int {
	lower, upper := t.EqualRange(key)
	n := 0
	for it := lower; !it.Equal(upper); {
		next := it.Next()
		t.EraseAt(it)
		it = next
		n++
	}
	return n
}

// detachNode unlinks z from the tree and restores the red-black invariants.
// It returns the node object that was actually removed from the structure;
// the caller is responsible for count bookkeeping and release hooks.
func (t *Tree[K, V]) detachNode(z *node[K, V]) *node[K, V] {
	y := z
	var x, xParent *node[K, V]
	switch {
	case y.left == nil:
		x = y.right
	case y.right == nil:
		x = y.left
	default:
		// Two children: splice out the in-order successor instead and relink
		// it into z's position below.
		y = subtreeMin(z.right)
		x = y.right
	}

	if y != z {
		z.left.parent = y
		y.left = z.left
		if y != z.right {
			xParent = y.parent
			if x != nil {
				x.parent = y.parent
			}
			y.parent.left = x // y is the minimum of z.right, hence a left child
			y.right = z.right
			z.right.parent = y
		} else {
			xParent = y
		}
		switch {
		case t.root == z:
			t.root = y
		case z.parent.left == z:
			z.parent.left = y
		default:
			z.parent.right = y
		}
		y.parent = z.parent
		y.color, z.color = z.color, y.color
		y = z
	} else {
		xParent = y.parent
		if x != nil {
			x.parent = y.parent
		}
		switch {
		case t.root == z:
			t.root = x
		case z.parent.left == z:
			z.parent.left = x
		default:
			z.parent.right = x
		}
		// A node with a left child is never the minimum and one with a right
		// child never the maximum, so both caches resolve locally.
		if t.min == z {
			if z.right == nil {
				t.min = z.parent
			} else {
				t.min = subtreeMin(x)
			}
		}
		if t.max == z {
			if z.left == nil {
				t.max = z.parent
			} else {
				t.max = subtreeMax(x)
			}
		}
	}

	if y.color == black {
		t.fixAfterDetach(x, xParent)
	}
	return y
}

// fixAfterDetach repairs the black-height deficit left by splicing out a
// black node. x is the child that moved into the spliced slot (possibly nil,
// which counts as black), xParent its parent.
//
// Per level at most three sibling cases apply: red sibling (rotate to get a
// black one), black sibling with black children (recolor, move deficit up),
// black sibling with a red child (one or two rotations, done). Terminates in
// O(log n) steps or as soon as x is red and can absorb the deficit.
func (t *Tree[K, V]) fixAfterDetach(x, xParent *node[K, V]) {
	for x != t.root && isBlack(x) {
		if x == xParent.left {
			w := xParent.right
			assert(w != nil, "black-height deficit without sibling")
			if isRed(w) {
				w.color = black
				xParent.color = red
				t.rotateLeft(xParent)
				w = xParent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x = xParent
				xParent = xParent.parent
				continue
			}
			if isBlack(w.right) {
				if w.left != nil {
					w.left.color = black
				}
				w.color = red
				t.rotateRight(w)
				w = xParent.right
			}
			w.color = xParent.color
			xParent.color = black
			if w.right != nil {
				w.right.color = black
			}
			t.rotateLeft(xParent)
			break
		} else {
			w := xParent.left
			assert(w != nil, "black-height deficit without sibling")
			if isRed(w) {
				w.color = black
				xParent.color = red
				t.rotateRight(xParent)
				w = xParent.left
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = red
				x = xParent
				xParent = xParent.parent
				continue
			}
			if isBlack(w.left) {
				if w.right != nil {
					w.right.color = black
				}
				w.color = red
				t.rotateLeft(w)
				w = xParent.left
			}
			w.color = xParent.color
			xParent.color = black
			if w.left != nil {
				w.left.color = black
			}
			t.rotateRight(xParent)
			break
		}
	}
	if x != nil {
		x.color = black
	}
}
