package kleeners

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{
			pattern: "a",
			accept:  []string{"a"},
			reject:  []string{"", "b", "aa"},
		},
		{
			pattern: "a+b",
			accept:  []string{"a", "b"},
			reject:  []string{"", "ab", "ba"},
		},
		{
			pattern: "ab",
			accept:  []string{"ab"},
			reject:  []string{"", "a", "b", "aba"},
		},
		{
			pattern: "a*",
			accept:  []string{"", "a", "aa", "aaa"},
			reject:  []string{"b", "ab"},
		},
		{
			pattern: "(a+b)*c",
			accept:  []string{"c", "ac", "bc", "abac", "bbbbc"},
			reject:  []string{"", "a", "cc", "cab"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			m, err := Compile(tt.pattern)
			require.NoError(t, err)
			for _, input := range tt.accept {
				assert.True(t, m.Accepts(input), "should accept %q", input)
			}
			for _, input := range tt.reject {
				assert.False(t, m.Accepts(input), "should reject %q", input)
			}
		})
	}
}

// Minimization never changes the verdict of the raw DFA and never grows
// the reachable state count.
func TestCompileMinimalAgreesWithRaw(t *testing.T) {
	inputs := []string{"", "a", "b", "c", "ac", "bc", "cc", "cab", "abac", "bbbbc", "aa"}
	for _, pattern := range []string{"a", "a+b", "ab", "a*", "(a+b)*c", "ab+ac"} {
		t.Run(pattern, func(t *testing.T) {
			m := MustCompile(pattern)
			for _, input := range inputs {
				assert.Equal(t, m.RawDFA().Accepts(input), m.DFA().Accepts(input), "input %q", input)
			}
			assert.LessOrEqual(t, reachableStates(m.DFA()), reachableStates(m.RawDFA()))
		})
	}
}

func TestCompileStagesAgree(t *testing.T) {
	inputs := []string{"", "a", "b", "c", "ab", "ac", "abc", "abac", "ba"}
	for _, pattern := range []string{"a", "ab", "a+b", "a*", "(a+b)*c"} {
		t.Run(pattern, func(t *testing.T) {
			m := MustCompile(pattern)
			for _, input := range inputs {
				want := m.ENFA().Accepts(input)
				assert.Equal(t, want, m.NFA().Accepts(input), "NFA on %q", input)
				assert.Equal(t, want, m.RawDFA().Accepts(input), "raw DFA on %q", input)
				assert.Equal(t, want, m.Accepts(input), "minimal DFA on %q", input)
			}
		})
	}
}

func TestCompileParseError(t *testing.T) {
	_, err := Compile("(a+b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(a+b")

	assert.Panics(t, func() { MustCompile(")") })
}

func TestCompileConcurrentUse(t *testing.T) {
	// Compiled machines are immutable; concurrent membership tests need
	// no synchronization.
	m := MustCompile("(a+b)*c")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.True(t, m.Accepts("abac"))
				assert.False(t, m.Accepts("cab"))
			}
		}()
	}
	wg.Wait()
}

func TestMachinePattern(t *testing.T) {
	assert.Equal(t, "a*", MustCompile("a*").Pattern())
}
