package rbtree

import (
	"fmt"
	"io"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// WriteDOT outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes). Red and black nodes are drawn in their color.
func (t *Tree[K, V]) WriteDOT(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,style=filled,fontcolor=white];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	nilid := 10000
	t.eachPreOrder(t.root, func(n *node[K, V]) {
		id := ids.alloc(n)
		fill := "black"
		if isRed(n) {
			fill = "red"
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v\" fillcolor=%s];\n", id, n.key, fill)
		for _, child := range []*node[K, V]{n.left, n.right} {
			if child == nil {
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, nilid)
				nilid++
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, ids.alloc(child))
		}
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func (t *Tree[K, V]) eachPreOrder(n *node[K, V], fn func(*node[K, V])) {
	if n == nil {
		return
	}
	fn(n)
	t.eachPreOrder(n.left, fn)
	t.eachPreOrder(n.right, fn)
}

func emptyNode() string {
	return "[label=\"\",color=gray,shape=circle,fixedsize=true,width=.2]"
}
