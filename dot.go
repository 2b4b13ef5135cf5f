package redfa

import (
	"fmt"
	"io"
)

// ExportDOT writes a Graphviz rendering of an *NFA or *DFA to w.
func ExportDOT(w io.Writer, g any) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	switch t := g.(type) {

	case *DFA:
		for _, s := range t.states {
			shape := "circle"
			if s.accept {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    q%d [shape=%s];\n", s.id, shape)
			for ch, to := range s.trans {
				fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", s.id, to, string(ch))
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", t.Start)

	case *NFA:
		for id := 0; id < t.states; id++ {
			shape := "circle"
			if id == t.Accept {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    n%d [shape=%s];\n", id, shape)
			for ch, tos := range t.trans[id] {
				for _, to := range tos {
					fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", id, to, string(ch))
				}
			}
			for _, to := range t.eps[id] {
				fmt.Fprintf(w, "    n%d -> n%d [label=\"ε\"];\n", id, to)
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", t.Start)

	default:
		fmt.Fprintln(w, "    /* unknown graph type */")
	}

	fmt.Fprintln(w, "}")
}
