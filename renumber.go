package kleeners

import "github.com/bits-and-blooms/bitset"

// Renumber returns a copy whose states are renumbered in depth-first order
// from the start state, which becomes 0. The new ids follow the natural
// flow of the pattern, which reads better in visualizations; states
// unreachable from start are dropped. Renumbering never changes the
// language: the transition relation and accept set are remapped
// consistently.
func (e *ENFA) Renumber() *ENFA {
	oldToNew := make([]int, e.NumStates())
	for i := range oldToNew {
		oldToNew[i] = -1
	}

	stack := []int{e.start}
	oldToNew[e.start] = 0
	next := 1

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// Push in reverse so the first edge is explored first.
		out := e.edges[current]
		for i := len(out) - 1; i >= 0; i-- {
			to := out[i].To
			if oldToNew[to] == -1 {
				oldToNew[to] = next
				next++
				stack = append(stack, to)
			}
		}
	}

	edges := make([][]edge, next)
	accept := bitset.New(uint(next))
	for old, id := range oldToNew {
		if id == -1 {
			continue
		}
		for _, t := range e.edges[old] {
			edges[id] = append(edges[id], edge{Label: t.Label, To: oldToNew[t.To]})
		}
		if e.IsAccept(old) {
			accept.Set(uint(id))
		}
	}
	return &ENFA{start: 0, accept: accept, edges: edges}
}
