package kleeners

// Node is a node of a regular-expression syntax tree. The grammar is
// deliberately small: single-symbol literals, concatenation, union and
// Kleene star. Any value of one of the four concrete types below is a
// well-formed input to BuildEpsilon.
type Node interface {
	node()
}

// Literal matches exactly one input symbol.
type Literal struct {
	Symbol rune
}

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Node
}

// Union matches either Left or Right.
type Union struct {
	Left, Right Node
}

// Star matches zero or more repetitions of Inner.
type Star struct {
	Inner Node
}

func (Literal) node() {}
func (Concat) node()  {}
func (Union) node()   {}
func (Star) node()    {}
