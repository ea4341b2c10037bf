package kleeners

import "github.com/bits-and-blooms/bitset"

// Hand-built automaton fixtures, shaped like the source automata the
// pipeline stages consume.

func buildNFA(numStates, start int, accepts []int, adj map[int][]edge) *NFA {
	accept := bitset.New(uint(numStates))
	for _, a := range accepts {
		accept.Set(uint(a))
	}
	edges := make([][]edge, numStates)
	for s, out := range adj {
		edges[s] = out
	}
	return &NFA{start: start, accept: accept, edges: edges}
}

func buildDFA(numStates, start int, accepts []int, adj map[int]map[rune]int) *DFA {
	accept := bitset.New(uint(numStates))
	for _, a := range accepts {
		accept.Set(uint(a))
	}
	trans := make([]map[rune]int, numStates)
	for s := range trans {
		trans[s] = map[rune]int{}
	}
	for s, m := range adj {
		trans[s] = m
	}
	return &DFA{start: start, accept: accept, trans: trans}
}

// reachableStates counts the states reachable from start.
func reachableStates(d *DFA) int {
	seen := bitset.New(uint(d.NumStates()))
	seen.Set(uint(d.start))
	queue := []int{d.start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, to := range d.trans[s] {
			if !seen.Test(uint(to)) {
				seen.Set(uint(to))
				queue = append(queue, to)
			}
		}
	}
	return int(seen.Count())
}
