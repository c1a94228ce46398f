package rbtree

type nodeColor bool

const (
	red   nodeColor = true
	black nodeColor = false
)

type node[K, V any] struct {
	key    K
	value  V
	color  nodeColor
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// isRed treats nil as black, matching the convention that every leaf
// position (nil link) carries black color.
func isRed[K, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

func isBlack[K, V any](n *node[K, V]) bool {
	return !isRed(n)
}

// subtreeMin descends along left links.
func subtreeMin[K, V any](n *node[K, V]) *node[K, V] {
	assert(n != nil, "subtreeMin called with nil node")
	for n.left != nil {
		n = n.left
	}
	return n
}

// subtreeMax descends along right links.
func subtreeMax[K, V any](n *node[K, V]) *node[K, V] {
	assert(n != nil, "subtreeMax called with nil node")
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the next node in key order, or nil past the maximum.
//
// With a right subtree the successor is that subtree's minimum. Otherwise it
// is the first ancestor of which n lies in the left subtree.
func successor[K, V any](n *node[K, V]) *node[K, V] {
	assert(n != nil, "successor called with nil node")
	if n.right != nil {
		return subtreeMin(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// predecessor mirrors successor, returning nil before the minimum.
func predecessor[K, V any](n *node[K, V]) *node[K, V] {
	assert(n != nil, "predecessor called with nil node")
	if n.left != nil {
		return subtreeMax(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}
