// Package kleeners compiles regular-expression syntax trees into minimal
// deterministic finite automata through the classical four-stage pipeline:
// Thompson construction, epsilon elimination, subset construction and
// partition-refinement minimization. Every stage is a pure function from
// one immutable automaton value to the next, so compiled machines are safe
// for concurrent reuse.
package kleeners

import "fmt"

// Machine holds the artifacts of one full compile. The intermediate stages
// are retained for diagnostics and visualization; membership testing runs
// on the minimal DFA.
type Machine struct {
	pattern string
	enfa    *ENFA
	nfa     *NFA
	raw     *DFA
	min     *DFA
}

// Compile parses pattern and runs the full pipeline. Parsing is the only
// fallible step; past it, every stage is total over well-formed input.
func Compile(pattern string) (*Machine, error) {
	ast, err := Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	return CompileAST(ast, pattern), nil
}

// CompileAST runs the pipeline over an already-built syntax tree.
func CompileAST(ast Node, pattern string) *Machine {
	enfa := BuildEpsilon(ast).Renumber()
	nfa := enfa.EliminateEpsilon()
	raw := nfa.Determinize()
	min := raw.Trim().Minimize()
	return &Machine{pattern: pattern, enfa: enfa, nfa: nfa, raw: raw, min: min}
}

// MustCompile is Compile, panicking on a parse error.
func MustCompile(pattern string) *Machine {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Accepts reports whether input is in the pattern's language.
func (m *Machine) Accepts(input string) bool { return m.min.Accepts(input) }

// Pattern returns the pattern this machine was compiled from.
func (m *Machine) Pattern() string { return m.pattern }

// ENFA returns the Thompson construction stage.
func (m *Machine) ENFA() *ENFA { return m.enfa }

// NFA returns the epsilon-elimination stage.
func (m *Machine) NFA() *NFA { return m.nfa }

// RawDFA returns the subset-construction stage, before minimization.
func (m *Machine) RawDFA() *DFA { return m.raw }

// DFA returns the minimal automaton.
func (m *Machine) DFA() *DFA { return m.min }
