package kleeners

import "github.com/bits-and-blooms/bitset"

// fragment is a sub-automaton under construction, with exactly one start
// state that has no incoming edges from outside it and exactly one accept
// state that has no outgoing edges from inside it. The composition rules
// below only ever splice fragments through those two dangling states, so
// finished fragments are never corrupted by later construction.
type fragment struct {
	start, accept int
}

// epsilonBuilder owns the growing automaton and its state allocator while
// Thompson construction runs. Ids are handed out monotonically, so no two
// fragments ever share a state.
type epsilonBuilder struct {
	next  int
	edges [][]edge
}

func (b *epsilonBuilder) state() int {
	id := b.next
	b.next++
	b.edges = append(b.edges, nil)
	return id
}

func (b *epsilonBuilder) edge(from, to int, label rune) {
	b.edges[from] = append(b.edges[from], edge{Label: label, To: to})
}

// BuildEpsilon compiles a syntax tree into an epsilon automaton using
// Thompson's fragment composition. Construction never fails: every
// well-formed Node compiles.
func BuildEpsilon(root Node) *ENFA {
	b := &epsilonBuilder{}
	frag := b.build(root)

	accept := bitset.New(uint(b.next))
	accept.Set(uint(frag.accept))
	return &ENFA{start: frag.start, accept: accept, edges: b.edges}
}

func (b *epsilonBuilder) build(n Node) fragment {
	switch n := n.(type) {
	case Literal:
		s := b.state()
		t := b.state()
		b.edge(s, t, n.Symbol)
		return fragment{start: s, accept: t}

	case Concat:
		left := b.build(n.Left)
		right := b.build(n.Right)
		b.edge(left.accept, right.start, Epsilon)
		return fragment{start: left.start, accept: right.accept}

	case Union:
		left := b.build(n.Left)
		right := b.build(n.Right)
		s := b.state()
		t := b.state()
		b.edge(s, left.start, Epsilon)
		b.edge(s, right.start, Epsilon)
		b.edge(left.accept, t, Epsilon)
		b.edge(right.accept, t, Epsilon)
		return fragment{start: s, accept: t}

	case Star:
		inner := b.build(n.Inner)
		s := b.state()
		t := b.state()
		b.edge(s, inner.start, Epsilon)
		b.edge(inner.accept, inner.start, Epsilon)
		b.edge(s, t, Epsilon) // zero repetitions
		b.edge(inner.accept, t, Epsilon)
		return fragment{start: s, accept: t}
	}
	// The Node interface is sealed; no other type reaches here.
	panic("kleeners: unknown syntax node")
}
