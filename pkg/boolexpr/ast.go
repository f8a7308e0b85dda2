package boolexpr

// Node is the interface implemented by all expression tree nodes.
// Trees are immutable after parsing: a Comparison or Logical node owns
// exactly two fully-formed children, and no partial tree ever escapes
// the parser.
type Node interface {
	node() // marker method
}

// NumberLiteral is a numeric leaf.
type NumberLiteral struct {
	Value float64
}

func (NumberLiteral) node() {}

// StringLiteral is a string leaf. Value holds the content without the
// surrounding quotes.
type StringLiteral struct {
	Value string
}

func (StringLiteral) node() {}

// VariableRef is a variable lookup. Negated is true when the name in
// source carried a leading '!'; the marker is stripped from Name.
type VariableRef struct {
	Name    string
	Negated bool
}

func (VariableRef) node() {}

// Comparison applies a comparison operator to two terminals.
type Comparison struct {
	Op    TokenKind // TokenGT, TokenGTE, TokenLT, TokenLTE, TokenEQ, TokenNEQ, or TokenHasPrefix
	Left  Node
	Right Node
}

func (Comparison) node() {}

// Logical combines two subtrees with and/or.
type Logical struct {
	Op    TokenKind // TokenAnd or TokenOr
	Left  Node
	Right Node
}

func (Logical) node() {}
