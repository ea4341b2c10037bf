package kleeners

import (
	"fmt"
	"io"
)

// Read-only Graphviz export of any pipeline stage. The automaton value is
// never touched beyond iterating its states, transitions and accept set.

// WriteDot writes the automaton as a Graphviz digraph.
func (e *ENFA) WriteDot(w io.Writer) {
	dotHeader(w, "ENFA")
	dotStart(w, e.start)
	for s, out := range e.edges {
		dotState(w, s, e.IsAccept(s))
		for _, t := range out {
			label := "ε"
			if t.Label != Epsilon {
				label = dotEscape(t.Label)
			}
			fmt.Fprintf(w, "  q%d -> q%d [label=\"%s\"];\n", s, t.To, label)
		}
	}
	fmt.Fprintln(w, "}")
}

// WriteDot writes the automaton as a Graphviz digraph.
func (n *NFA) WriteDot(w io.Writer) {
	dotHeader(w, "NFA")
	dotStart(w, n.start)
	for s, out := range n.edges {
		dotState(w, s, n.IsAccept(s))
		for _, t := range out {
			fmt.Fprintf(w, "  q%d -> q%d [label=\"%s\"];\n", s, t.To, dotEscape(t.Label))
		}
	}
	fmt.Fprintln(w, "}")
}

// WriteDot writes the automaton as a Graphviz digraph.
func (d *DFA) WriteDot(w io.Writer) {
	dotHeader(w, "DFA")
	dotStart(w, d.start)
	symbols := d.Symbols()
	for s := range d.trans {
		dotState(w, s, d.IsAccept(s))
		for _, sym := range symbols {
			if to, ok := d.trans[s][sym]; ok {
				fmt.Fprintf(w, "  q%d -> q%d [label=\"%s\"];\n", s, to, dotEscape(sym))
			}
		}
	}
	fmt.Fprintln(w, "}")
}

func dotHeader(w io.Writer, name string) {
	fmt.Fprintf(w, "digraph %s {\n  rankdir=LR;\n  node [shape=circle];\n", name)
}

func dotStart(w io.Writer, start int) {
	fmt.Fprintf(w, "  _start [shape=point];\n  _start -> q%d;\n", start)
}

func dotState(w io.Writer, s int, accept bool) {
	if accept {
		fmt.Fprintf(w, "  q%d [shape=doublecircle];\n", s)
	}
}

func dotEscape(r rune) string {
	if r == '"' {
		return `\"`
	}
	return string(r)
}
