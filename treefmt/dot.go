package treefmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arbor/tree"
)

// Dot outputs the tree rooted at root in Graphviz DOT format (for debugging
// purposes). Nodes with a single child get an empty placeholder node for the
// missing child, so left and right children can be told apart.
func Dot(w io.Writer, root tree.VirtualAccessor, cfg *Config) error {
	c := cfg.normalized()
	var nodelist, edgelist strings.Builder
	if root != nil && root.Valid() {
		var ids []int        // ids[d] is the id of the most recent node at depth d
		var kids [][2]string // kids[id-1] are the edge targets of node id
		for n, depth := range tree.Walk(root, tree.PreOrder, tree.Left) {
			id := len(kids) + 1
			kids = append(kids, [2]string{})
			ids = append(ids[:depth], id)
			label := truncate(n.Label(), c.MaxLabelWidth, c.Context)
			fmt.Fprintf(&nodelist, "\t\"%d\" [label=%q%s];\n", id, label, nodeDotStyles(n))
			if depth > 0 {
				s := tree.Left
				if n.IsSide(tree.Right) {
					s = tree.Right
				}
				kids[ids[depth-1]-1][s] = fmt.Sprintf("%d", id)
			}
			if l, r := n.HasChild(tree.Left), n.HasChild(tree.Right); l != r {
				nilid := fmt.Sprintf("nil%d", id)
				fmt.Fprintf(&nodelist, "\t\"%s\" %s;\n", nilid, emptyNode())
				missing := tree.Left
				if l {
					missing = tree.Right
				}
				kids[id-1][missing] = nilid
			}
		}
		for i, k := range kids {
			for _, target := range k {
				if target != "" {
					fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%s\";\n", i+1, target)
				}
			}
		}
	}
	ew := &errWriter{w: w}
	ew.WriteString("strict digraph {\n")
	ew.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ew.WriteString(nodelist.String())
	ew.WriteString(edgelist.String())
	ew.WriteString("}\n")
	if ew.err != nil {
		tracer().Errorf("tree DOT: %s", ew.err.Error())
	}
	return ew.err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(n tree.VirtualAccessor) string {
	s := ",style=filled"
	if !n.HasChild(tree.Left) && !n.HasChild(tree.Right) {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}
