package kleeners

import "github.com/bits-and-blooms/bitset"

// Closure returns the epsilon closure of a single state: every state
// reachable through zero or more epsilon edges, always including the state
// itself.
func (e *ENFA) Closure(state int) []int {
	return e.closure(state).IDs()
}

// closure runs a breadth-first traversal restricted to epsilon edges,
// seeded with the given states. The visited set is shared for the whole
// traversal, so closures of already-seen states are never recomputed.
func (e *ENFA) closure(seed ...int) *stateSet {
	set := newStateSet(e.NumStates())
	queue := make([]int, 0, len(seed))
	for _, s := range seed {
		if set.Add(s) {
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range e.edges[s] {
			if t.Label == Epsilon && set.Add(t.To) {
				queue = append(queue, t.To)
			}
		}
	}
	return set
}

// move returns the states reachable from set via exactly one edge labelled
// symbol. Epsilon edges never participate.
func (e *ENFA) move(set *stateSet, symbol rune) *stateSet {
	res := newStateSet(e.NumStates())
	for _, s := range set.IDs() {
		for _, t := range e.edges[s] {
			if t.Label == symbol {
				res.Add(t.To)
			}
		}
	}
	return res
}

// EliminateEpsilon rewrites the automaton into an equivalent one with only
// symbol transitions. Each reachable epsilon-closure set becomes one new
// state; closures discovered along different paths but holding the same
// underlying states collapse onto a single id, keeping the result no
// larger than necessary. A new state accepts iff its closure intersects
// the original accept set.
func (e *ENFA) EliminateEpsilon() *NFA {
	symbols := e.Symbols()

	startClosure := e.closure(e.start)
	ids := map[string]int{startClosure.Key(): 0}
	closures := []*stateSet{startClosure}
	edges := [][]edge{nil}

	// Breadth-first over composite states. Terminates because distinct
	// closure sets are bounded by the power set of the original states and
	// each is enqueued exactly once.
	for current := 0; current < len(closures); current++ {
		closure := closures[current]
		for _, sym := range symbols {
			moved := e.move(closure, sym)
			if moved.Empty() {
				continue
			}
			target := e.closure(moved.IDs()...)
			key := target.Key()
			id, ok := ids[key]
			if !ok {
				id = len(closures)
				ids[key] = id
				closures = append(closures, target)
				edges = append(edges, nil)
			}
			if !hasEdge(edges[current], sym, id) {
				edges[current] = append(edges[current], edge{Label: sym, To: id})
			}
		}
	}

	accept := bitset.New(uint(len(closures)))
	for id, closure := range closures {
		if closure.Intersects(e.accept) {
			accept.Set(uint(id))
		}
	}
	return &NFA{start: 0, accept: accept, edges: edges}
}

func hasEdge(out []edge, label rune, to int) bool {
	for _, t := range out {
		if t.Label == label && t.To == to {
			return true
		}
	}
	return false
}
