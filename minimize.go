package kleeners

import "github.com/bits-and-blooms/bitset"

// Minimize collapses indistinguishable states via partition refinement,
// producing the coarsest automaton consistent with acceptance and
// transition behavior (the Myhill-Nerode equivalence, refined
// Hopcroft-style). States unreachable from start are not pruned here; they
// survive as their own classes unless behaviorally identical to a
// reachable one. Callers wanting a strictly minimal machine should Trim
// first.
func (d *DFA) Minimize() *DFA {
	n := d.NumStates()
	if n == 0 {
		return &DFA{start: d.start, accept: bitset.New(0), trans: nil}
	}

	p := &partitioner{dfa: d, symbols: d.Symbols()}

	// Initial partition: accepting vs non-accepting, empty halves omitted.
	acc := bitset.New(uint(n))
	non := bitset.New(uint(n))
	for s := 0; s < n; s++ {
		if d.IsAccept(s) {
			acc.Set(uint(s))
		} else {
			non.Set(uint(s))
		}
	}
	for _, half := range []*bitset.BitSet{non, acc} {
		if half.Any() {
			p.classes = append(p.classes, half)
			p.queue = append(p.queue, half.Clone())
		}
	}

	// Drain the splitter queue, then verify the fixpoint with a full sweep
	// over the surviving classes. Queue exhaustion alone is not the
	// termination witness: rebuilding from a partially refined partition
	// would make representatives non-interchangeable.
	for {
		for len(p.queue) > 0 {
			splitter := p.queue[0]
			p.queue = p.queue[1:]
			p.refine(splitter)
		}
		changed := false
		for _, class := range snapshot(p.classes) {
			if p.refine(class) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return p.rebuild()
}

type partitioner struct {
	dfa     *DFA
	symbols []rune
	classes []*bitset.BitSet
	queue   []*bitset.BitSet
}

// refine splits every class against the splitter's predecessor sets and
// reports whether any class was split. The smaller half of each split is
// queued as a further splitter.
func (p *partitioner) refine(splitter *bitset.BitSet) bool {
	n := p.dfa.NumStates()
	split := false

	for _, sym := range p.symbols {
		// Predecessor set: states whose sym-transition lands in splitter.
		pred := bitset.New(uint(n))
		for s := 0; s < n; s++ {
			if to, ok := p.dfa.trans[s][sym]; ok && splitter.Test(uint(to)) {
				pred.Set(uint(s))
			}
		}
		if pred.None() {
			continue
		}

		for i := 0; i < len(p.classes); i++ {
			class := p.classes[i]
			in := class.IntersectionCardinality(pred)
			if in == 0 || in == class.Count() {
				continue
			}
			inter := class.Intersection(pred)
			diff := class.Difference(pred)
			p.classes[i] = inter
			p.classes = append(p.classes, diff)
			if inter.Count() <= diff.Count() {
				p.queue = append(p.queue, inter.Clone())
			} else {
				p.queue = append(p.queue, diff.Clone())
			}
			split = true
		}
	}
	return split
}

// rebuild maps each class to one state of the minimized automaton.
// Transitions are copied from an arbitrary representative, which is sound
// only at the refinement fixpoint: every member of a class then has
// identical class-mapped behavior for every symbol.
func (p *partitioner) rebuild() *DFA {
	classOf := make([]int, p.dfa.NumStates())
	for idx, class := range p.classes {
		for s, ok := class.NextSet(0); ok; s, ok = class.NextSet(s + 1) {
			classOf[s] = idx
		}
	}

	accept := bitset.New(uint(len(p.classes)))
	trans := make([]map[rune]int, len(p.classes))
	for idx, class := range p.classes {
		rep, _ := class.NextSet(0)
		if p.dfa.IsAccept(int(rep)) {
			accept.Set(uint(idx))
		}
		trans[idx] = make(map[rune]int, len(p.dfa.trans[rep]))
		for sym, to := range p.dfa.trans[rep] {
			trans[idx][sym] = classOf[to]
		}
	}

	return &DFA{start: classOf[p.dfa.start], accept: accept, trans: trans}
}

func snapshot(classes []*bitset.BitSet) []*bitset.BitSet {
	out := make([]*bitset.BitSet, len(classes))
	for i, c := range classes {
		out[i] = c.Clone()
	}
	return out
}
