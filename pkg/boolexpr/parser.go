package boolexpr

import (
	"strconv"
	"strings"
)

// parser is a forward cursor over an immutable token slice. One token
// of lookahead is enough: the grammar is LL(1) at every nonterminal,
// so the cursor only ever advances.
type parser struct {
	tokens []Token
	pos    int
}

// parse consumes the token sequence and returns the root node.
//
// Grammar, highest to lowest binding strength:
//
//	Expression := AndTerm ( "or" AndTerm )*
//	AndTerm    := Condition ( "and" Condition )*
//	Condition  := "(" Expression ")"
//	            | Terminal [ CompareOp Terminal ]
//	Terminal   := number | string | variable
func parse(tokens []Token) (Node, error) {
	if len(tokens) == 0 {
		return nil, &SyntaxError{Err: ErrEmptyExpression}
	}
	p := &parser{tokens: tokens}
	return p.parseExpression()
}

func (p *parser) hasNext() bool { return p.pos < len(p.tokens) }
func (p *parser) peek() Token   { return p.tokens[p.pos] }

func (p *parser) next() Token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

// errHere builds a SyntaxError for the token under the cursor, or for
// end of input when the tokens are exhausted.
func (p *parser) errHere(cause error) error {
	if !p.hasNext() {
		return &SyntaxError{Pos: len(p.tokens), Err: cause}
	}
	return &SyntaxError{Token: p.peek().Text, Pos: p.pos, Err: cause}
}

// parseExpression handles "or" chains, folding left-associatively:
// a or b or c becomes ((a or b) or c).
func (p *parser) parseExpression() (Node, error) {
	left, err := p.parseAndTerm()
	if err != nil {
		return nil, err
	}
	for p.hasNext() && p.peek().Kind == TokenOr {
		p.next()
		right, err := p.parseAndTerm()
		if err != nil {
			return nil, err
		}
		left = Logical{Op: TokenOr, Left: left, Right: right}
	}
	return left, nil
}

// parseAndTerm handles "and" chains, which bind tighter than "or".
func (p *parser) parseAndTerm() (Node, error) {
	left, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	for p.hasNext() && p.peek().Kind == TokenAnd {
		p.next()
		right, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		left = Logical{Op: TokenAnd, Left: left, Right: right}
	}
	return left, nil
}

// parseCondition handles a parenthesized group or a terminal with an
// optional comparison. A bare terminal is a legal condition, so
// boolean-valued variables can stand alone.
func (p *parser) parseCondition() (Node, error) {
	if p.hasNext() && p.peek().Kind == TokenLParen {
		p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.hasNext() || p.peek().Kind != TokenRParen {
			return nil, p.errHere(ErrUnterminatedGroup)
		}
		p.next()
		return expr, nil
	}

	left, err := p.parseTerminal()
	if err != nil {
		return nil, err
	}
	if p.hasNext() && p.peek().Kind.isComparison() {
		op := p.next().Kind
		right, err := p.parseTerminal()
		if err != nil {
			return nil, err
		}
		return Comparison{Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

// parseTerminal consumes a number, string, or variable leaf.
func (p *parser) parseTerminal() (Node, error) {
	if !p.hasNext() {
		return nil, p.errHere(ErrTerminalExpected)
	}
	tok := p.next()
	switch tok.Kind {
	case TokenNumber:
		// Already validated by the tokenizer.
		f, _ := strconv.ParseFloat(tok.Text, 64)
		return NumberLiteral{Value: f}, nil
	case TokenString:
		return StringLiteral{Value: tok.Text}, nil
	case TokenVariable:
		name := tok.Text
		negated := strings.HasPrefix(name, "!")
		if negated {
			name = name[1:]
		}
		return VariableRef{Name: name, Negated: negated}, nil
	case TokenInvalid:
		return nil, &SyntaxError{Token: tok.Text, Pos: p.pos - 1, Err: ErrInvalidToken}
	default:
		return nil, &SyntaxError{Token: tok.Text, Pos: p.pos - 1, Err: ErrTerminalExpected}
	}
}
