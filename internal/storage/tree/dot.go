package tree

import (
	"fmt"
	"io"
)

// WriteDot - Writes a DOT description (see www.graphviz.org) of the tree with its connections and colors.
// A viewable graph is created with for instance: dot -Tpdf < graphfile.dot > graphfile.pdf
func (T *Tree) WriteDot(w io.Writer) (err error) {
	_, err = fmt.Fprint(w, "digraph tree {\nnode [shape = Mrecord, penwidth = 2];\n")
	if err != nil {
		return
	}

	err = T.writeDotNode(w, T.root)
	if err != nil {
		return
	}

	_, err = fmt.Fprint(w, "}\n")

	return
}

// writeDotNode - Writes the node, then each subtree followed by the edge leading to it
func (T *Tree) writeDotNode(w io.Writer, n *node) (err error) {
	if n == nil {
		return
	}

	color := Black
	if T.kind == RBT {
		color = n.color
	}

	_, err = fmt.Fprintf(w, "\"%s\"[label=\"{<f0>%s:%d|{<f1>|<f2>}}\"color=%s];\n", n.key, n.key, n.frequency, color)
	if err != nil {
		return
	}

	if n.left != nil {
		err = T.writeDotNode(w, n.left)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "\"%s\":f1 -> \"%s\":f0;\n", n.key, n.left.key)
		if err != nil {
			return
		}
	}

	if n.right != nil {
		err = T.writeDotNode(w, n.right)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "\"%s\":f2 -> \"%s\":f0;\n", n.key, n.right.key)
	}

	return
}
