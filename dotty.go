package rbtree

import (
	"fmt"
	"io"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Sentinel children are drawn as small black boxes.
func (t *Tree[K]) ToDot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	nilcnt := 0
	var walk func(NodeID)
	walk = func(n NodeID) {
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v\" %s];\n", n, t.key(n), nodeDotStyles(t.color(n)))
		for _, child := range [2]NodeID{t.left(n), t.right(n)} {
			if child == NIL {
				nilcnt++
				nilid := fmt.Sprintf("nil%d", nilcnt)
				nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%s\";\n", n, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", n, child)
			walk(child)
		}
	}
	if t.root != NIL {
		walk(t.root)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.2]"
}

func nodeDotStyles(c Color) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == Red {
		s += ",color=\"#aa0000\",fillcolor=\"#dd2222\""
	} else {
		s += ",color=black,fillcolor=\"#222222\""
	}
	return s
}
