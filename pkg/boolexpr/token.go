package boolexpr

// TokenKind classifies a lexical token.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenString
	TokenVariable
	TokenGT
	TokenGTE
	TokenLT
	TokenLTE
	TokenEQ
	TokenNEQ
	TokenHasPrefix // the ".*" starts-with operator
	TokenLParen
	TokenRParen
	TokenAnd
	TokenOr
	TokenInvalid // fragment that matched no known shape
)

// String returns the source form of operator kinds and a descriptive
// name for the rest.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenVariable:
		return "variable"
	case TokenGT:
		return ">"
	case TokenGTE:
		return ">="
	case TokenLT:
		return "<"
	case TokenLTE:
		return "<="
	case TokenEQ:
		return "=="
	case TokenNEQ:
		return "!="
	case TokenHasPrefix:
		return ".*"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenAnd:
		return "and"
	case TokenOr:
		return "or"
	case TokenInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// isComparison reports whether the kind is one of the binary
// comparison operators accepted between two terminals.
func (k TokenKind) isComparison() bool {
	switch k {
	case TokenGT, TokenGTE, TokenLT, TokenLTE, TokenEQ, TokenNEQ, TokenHasPrefix:
		return true
	default:
		return false
	}
}

// Token is one classified lexical unit. For string tokens Text holds
// the content without the surrounding quotes.
type Token struct {
	Kind TokenKind
	Text string
}
