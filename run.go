package kleeners

import "github.com/bits-and-blooms/bitset"

// Accepts reports whether the automaton accepts input: a straight-line
// fold over the transition function, rejecting immediately when a symbol
// has no recorded transition.
func (d *DFA) Accepts(input string) bool {
	state := d.start
	for _, sym := range input {
		state = d.Step(state, sym)
		if state < 0 {
			return false
		}
	}
	return d.IsAccept(state)
}

// Accepts simulates the nondeterministic automaton on input by stepping
// the full set of active states. Useful for diagnostics and for checking
// that determinization preserved the language.
func (n *NFA) Accepts(input string) bool {
	current := newStateSet(n.NumStates())
	current.Add(n.start)
	for _, sym := range input {
		next := newStateSet(n.NumStates())
		for _, s := range current.IDs() {
			for _, t := range n.edges[s] {
				if t.Label == sym {
					next.Add(t.To)
				}
			}
		}
		if next.Empty() {
			return false
		}
		current = next
	}
	return current.Intersects(n.accept)
}

// Accepts simulates the epsilon automaton on input, augmenting every step
// with epsilon closures.
func (e *ENFA) Accepts(input string) bool {
	current := e.closure(e.start)
	for _, sym := range input {
		moved := e.move(current, sym)
		if moved.Empty() {
			return false
		}
		current = e.closure(moved.IDs()...)
	}
	return current.Intersects(e.accept)
}

// Trim returns a copy holding only the states reachable from start,
// renumbered in breadth-first discovery order. Minimize keeps unreachable
// states as their own classes, so trimming first is what makes the final
// machine strictly minimal.
func (d *DFA) Trim() *DFA {
	n := d.NumStates()
	oldToNew := make([]int, n)
	for i := range oldToNew {
		oldToNew[i] = -1
	}

	order := []int{d.start}
	oldToNew[d.start] = 0
	seen := bitset.New(uint(n))
	seen.Set(uint(d.start))
	symbols := d.Symbols()
	for i := 0; i < len(order); i++ {
		// Visit in sorted symbol order so the numbering is stable.
		for _, sym := range symbols {
			to, ok := d.trans[order[i]][sym]
			if !ok {
				continue
			}
			if !seen.Test(uint(to)) {
				seen.Set(uint(to))
				oldToNew[to] = len(order)
				order = append(order, to)
			}
		}
	}

	accept := bitset.New(uint(len(order)))
	trans := make([]map[rune]int, len(order))
	for id, old := range order {
		if d.IsAccept(old) {
			accept.Set(uint(id))
		}
		trans[id] = make(map[rune]int, len(d.trans[old]))
		for sym, to := range d.trans[old] {
			trans[id][sym] = oldToNew[to]
		}
	}
	return &DFA{start: 0, accept: accept, trans: trans}
}
