package kleeners

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDFAAcceptsShortCircuit(t *testing.T) {
	d := buildDFA(2, 0, []int{1}, map[int]map[rune]int{
		0: {'a': 1},
	})

	assert.True(t, d.Accepts("a"))
	assert.False(t, d.Accepts("b"))
	assert.False(t, d.Accepts("ab")) // dies after 'a' consumed the accept
	assert.False(t, d.Accepts(""))
}

func TestNFAAcceptsDeadSet(t *testing.T) {
	n := buildNFA(2, 0, []int{1}, map[int][]edge{
		0: {{Label: 'a', To: 1}},
	})

	assert.True(t, n.Accepts("a"))
	assert.False(t, n.Accepts("b"))
	assert.False(t, n.Accepts("aa"))
}

func TestTrimDropsUnreachable(t *testing.T) {
	// 2 and 3 are unreachable from start.
	d := buildDFA(4, 0, []int{1, 3}, map[int]map[rune]int{
		0: {'a': 1},
		2: {'b': 3},
	})
	trimmed := d.Trim()

	assert.Equal(t, 2, trimmed.NumStates())
	assert.Equal(t, 0, trimmed.Start())
	assert.True(t, trimmed.Accepts("a"))
	assert.False(t, trimmed.Accepts("b"))
}

func TestTrimPreservesLanguage(t *testing.T) {
	d := BuildEpsilon(mustAST(t, "(a+b)*c")).EliminateEpsilon().Determinize()
	trimmed := d.Trim()

	for _, input := range []string{"", "c", "ac", "bc", "abac", "cab", "cc"} {
		assert.Equal(t, d.Accepts(input), trimmed.Accepts(input), "input %q", input)
	}
	assert.Equal(t, reachableStates(d), trimmed.NumStates())
}
