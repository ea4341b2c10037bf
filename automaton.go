package kleeners

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the silent transition label. It is only ever present inside an
// ENFA; elimination guarantees every later stage carries concrete symbols.
const Epsilon rune = 0

// edge is one outgoing transition: a label and a destination state. States
// are dense non-negative ints scoped to a single automaton value, so
// adjacency is indexed by state id.
type edge struct {
	Label rune
	To    int
}

// ENFA is an automaton with epsilon transitions, as produced by Thompson
// construction. Immutable once built.
type ENFA struct {
	start  int
	accept *bitset.BitSet
	edges  [][]edge
}

// NFA is an epsilon-free, possibly nondeterministic automaton. A state may
// carry several edges with the same symbol. Immutable once built.
type NFA struct {
	start  int
	accept *bitset.BitSet
	edges  [][]edge
}

// DFA is a deterministic automaton: at most one outgoing edge per symbol
// per state. A missing entry means reject, not an implicit sink state.
// Immutable once built.
type DFA struct {
	start  int
	accept *bitset.BitSet
	trans  []map[rune]int
}

// Start returns the initial state.
func (e *ENFA) Start() int { return e.start }

// NumStates reports how many states this automaton has.
func (e *ENFA) NumStates() int { return len(e.edges) }

// IsAccept reports whether state is an accept state.
func (e *ENFA) IsAccept(state int) bool { return e.accept.Test(uint(state)) }

// Symbols returns the sorted alphabet discovered from the automaton's
// non-epsilon transitions.
func (e *ENFA) Symbols() []rune { return alphabetOf(e.edges) }

// Start returns the initial state.
func (n *NFA) Start() int { return n.start }

// NumStates reports how many states this automaton has.
func (n *NFA) NumStates() int { return len(n.edges) }

// IsAccept reports whether state is an accept state.
func (n *NFA) IsAccept(state int) bool { return n.accept.Test(uint(state)) }

// Symbols returns the sorted alphabet used by the automaton.
func (n *NFA) Symbols() []rune { return alphabetOf(n.edges) }

// Start returns the initial state.
func (d *DFA) Start() int { return d.start }

// NumStates reports how many states this automaton has.
func (d *DFA) NumStates() int { return len(d.trans) }

// IsAccept reports whether state is an accept state.
func (d *DFA) IsAccept(state int) bool { return d.accept.Test(uint(state)) }

// Step performs one transition lookup. Returns -1 if no matching outgoing
// transition exists.
func (d *DFA) Step(state int, symbol rune) int {
	if to, ok := d.trans[state][symbol]; ok {
		return to
	}
	return -1
}

// Symbols returns the sorted alphabet used by the automaton.
func (d *DFA) Symbols() []rune {
	seen := make(map[rune]struct{})
	for _, m := range d.trans {
		for sym := range m {
			seen[sym] = struct{}{}
		}
	}
	return sortedRunes(seen)
}

func alphabetOf(edges [][]edge) []rune {
	seen := make(map[rune]struct{})
	for _, out := range edges {
		for _, t := range out {
			if t.Label != Epsilon {
				seen[t.Label] = struct{}{}
			}
		}
	}
	return sortedRunes(seen)
}

func sortedRunes(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
