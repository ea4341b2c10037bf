package kleeners

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Surface grammar, precedence low to high:
//
//	union    := concat ( '+' concat )*
//	concat   := factor+
//	factor   := atom '*'*
//	atom     := Char | '(' union ')'
//
// Literals are alphanumeric runes; whitespace between tokens is ignored;
// any other character is a lex error.
type patUnion struct {
	First *patConcat   `parser:"@@"`
	Rest  []*patConcat `parser:"( '+' @@ )*"`
}

type patConcat struct {
	Factors []*patFactor `parser:"@@+"`
}

type patFactor struct {
	Atom  *patAtom `parser:"@@"`
	Stars []string `parser:"( @'*' )*"`
}

type patAtom struct {
	Symbol *string   `parser:"@Char"`
	Group  *patUnion `parser:"| '(' @@ ')'"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Char", Pattern: `[0-9A-Za-z]`},
	{Name: "Punct", Pattern: `[+*()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var patternParser = participle.MustBuild[patUnion](
	participle.Lexer(patternLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a textual pattern into its syntax tree. All fallibility of
// the compiler lives here: once a Node comes back, every later stage is
// total.
func Parse(pattern string) (Node, error) {
	root, err := patternParser.ParseString("", pattern)
	if err != nil {
		return nil, err
	}
	return root.lower(), nil
}

func (u *patUnion) lower() Node {
	node := u.First.lower()
	for _, alt := range u.Rest {
		node = Union{Left: node, Right: alt.lower()}
	}
	return node
}

func (c *patConcat) lower() Node {
	node := c.Factors[0].lower()
	for _, f := range c.Factors[1:] {
		node = Concat{Left: node, Right: f.lower()}
	}
	return node
}

func (f *patFactor) lower() Node {
	node := f.Atom.lower()
	for range f.Stars {
		node = Star{Inner: node}
	}
	return node
}

func (a *patAtom) lower() Node {
	if a.Group != nil {
		return a.Group.lower()
	}
	return Literal{Symbol: []rune(*a.Symbol)[0]}
}
