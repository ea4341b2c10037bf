package kleeners

import "github.com/bits-and-blooms/bitset"

// Determinize runs the subset construction, producing a deterministic
// automaton whose states are the sets of NFA states reachable by consuming
// some string. Subsets are deduplicated by their canonical key, a new id is
// allocated only the first time a subset is seen, and traversal is
// breadth-first in discovery order so ids form a stable numbering. An empty
// target subset yields no transition at all: rejection stays implicit.
// Determinism is a property of the construction, not a separate check.
func (n *NFA) Determinize() *DFA {
	symbols := n.Symbols()

	startSubset := newStateSet(n.NumStates())
	startSubset.Add(n.start)

	ids := map[string]int{startSubset.Key(): 0}
	subsets := []*stateSet{startSubset}
	trans := []map[rune]int{{}}

	for current := 0; current < len(subsets); current++ {
		subset := subsets[current]
		for _, sym := range symbols {
			target := newStateSet(n.NumStates())
			for _, s := range subset.IDs() {
				for _, t := range n.edges[s] {
					if t.Label == sym {
						target.Add(t.To)
					}
				}
			}
			if target.Empty() {
				continue
			}
			key := target.Key()
			id, ok := ids[key]
			if !ok {
				id = len(subsets)
				ids[key] = id
				subsets = append(subsets, target)
				trans = append(trans, map[rune]int{})
			}
			trans[current][sym] = id
		}
	}

	accept := bitset.New(uint(len(subsets)))
	for id, subset := range subsets {
		if subset.Intersects(n.accept) {
			accept.Set(uint(id))
		}
	}
	return &DFA{start: 0, accept: accept, trans: trans}
}
