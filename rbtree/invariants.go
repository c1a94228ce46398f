package rbtree

import "fmt"

// Check validates structural tree invariants.
//
// It confirms binary-search ordering under the configured predicate,
// red-black coloring (black root, no red-red edge, uniform black-height),
// parent-link consistency, the cached minimum/maximum and the node count.
// This checker is intentionally strict and meant for tests; it walks the
// whole tree.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with count=%d", ErrInvariant, t.count)
		}
		if t.min != nil || t.max != nil {
			return fmt.Errorf("%w: empty tree with cached min/max", ErrInvariant)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	if isRed(t.root) {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	count, _, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: count mismatch (reachable=%d cached=%d)", ErrInvariant, count, t.count)
	}
	if t.min != subtreeMin(t.root) {
		return fmt.Errorf("%w: stale minimum cache", ErrInvariant)
	}
	if t.max != subtreeMax(t.root) {
		return fmt.Errorf("%w: stale maximum cache", ErrInvariant)
	}
	// The local parent/child checks above do not cover ordering across
	// subtree seams; a full in-order walk does.
	prev := t.min
	for n := successor(t.min); n != nil; n = successor(n) {
		if t.cfg.Less(n.key, prev.key) {
			return fmt.Errorf("%w: in-order walk not sorted", ErrInvariant)
		}
		prev = n
	}
	if prev != t.max {
		return fmt.Errorf("%w: in-order walk does not end at maximum", ErrInvariant)
	}
	return nil
}

// checkNode validates the subtree rooted at n and returns its node count and
// black-height (counting nil leaves as one black level).
func (t *Tree[K, V]) checkNode(n *node[K, V]) (count int, blackHeight int, err error) {
	if n == nil {
		return 0, 1, nil
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, 0, fmt.Errorf("%w: red node with red child", ErrInvariant)
	}
	if n.left != nil {
		if n.left.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link (left)", ErrInvariant)
		}
		if t.cfg.Less(n.key, n.left.key) {
			return 0, 0, fmt.Errorf("%w: left child out of order", ErrInvariant)
		}
	}
	if n.right != nil {
		if n.right.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link (right)", ErrInvariant)
		}
		if t.cfg.Less(n.right.key, n.key) {
			return 0, 0, fmt.Errorf("%w: right child out of order", ErrInvariant)
		}
	}
	leftCount, leftBlack, err := t.checkNode(n.left)
	if err != nil {
		return 0, 0, err
	}
	rightCount, rightBlack, err := t.checkNode(n.right)
	if err != nil {
		return 0, 0, err
	}
	if leftBlack != rightBlack {
		return 0, 0, fmt.Errorf("%w: black-height mismatch (%d != %d)", ErrInvariant, leftBlack, rightBlack)
	}
	if isBlack(n) {
		leftBlack++
	}
	return leftCount + rightCount + 1, leftBlack, nil
}
