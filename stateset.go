package kleeners

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// stateSet is a set of state ids from a source automaton, used while
// exploring composite states (epsilon closures, determinization subsets).
// Plain Go sets cannot serve as map keys, so identity is the canonical
// sorted-id rendering from Key: two sets holding the same states always
// produce the same key, however they were discovered.
type stateSet struct {
	bits *bitset.BitSet
}

func newStateSet(numStates int) *stateSet {
	return &stateSet{bits: bitset.New(uint(numStates))}
}

// Add inserts state and reports whether it was newly added.
func (s *stateSet) Add(state int) bool {
	if s.bits.Test(uint(state)) {
		return false
	}
	s.bits.Set(uint(state))
	return true
}

func (s *stateSet) Contains(state int) bool { return s.bits.Test(uint(state)) }

func (s *stateSet) Empty() bool { return s.bits.None() }

func (s *stateSet) Len() int { return int(s.bits.Count()) }

// IDs returns the member states in ascending order.
func (s *stateSet) IDs() []int {
	ids := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		ids = append(ids, int(i))
	}
	return ids
}

// Key renders the canonical map key for this set.
func (s *stateSet) Key() string {
	var b strings.Builder
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	return b.String()
}

// Intersects reports whether the set shares any state with accept.
func (s *stateSet) Intersects(accept *bitset.BitSet) bool {
	return s.bits.IntersectionCardinality(accept) > 0
}
