package boolexpr

import (
	"regexp"
	"strconv"
	"strings"
)

// operatorPattern drives the tokenizing split. Two-character operators
// are listed before their one-character prefixes so the longer match
// wins; and/or are word-boundary matched so they never split
// identifiers like "android".
var operatorPattern = regexp.MustCompile(`\band\b|\bor\b|!=|==|<=|>=|<|>|\(|\)|\.\*`)

// variablePattern is the identifier shape extended with a leading '!'
// negation marker, interior '-', and digits.
var variablePattern = regexp.MustCompile(`^[-!A-Za-z0-9_]+$`)

// Tokenize splits the expression into classified tokens in source
// order. The split preserves operator delimiters as tokens; the
// fragments between them are trimmed, and whitespace-only fragments
// dropped. Tokenize never fails: fragments that match no known shape
// are tagged TokenInvalid and rejected by the parser only if they are
// actually consumed.
func Tokenize(input string) []Token {
	var tokens []Token
	last := 0
	for _, loc := range operatorPattern.FindAllStringIndex(input, -1) {
		if frag := strings.TrimSpace(input[last:loc[0]]); frag != "" {
			tokens = append(tokens, classify(frag))
		}
		tokens = append(tokens, operatorToken(input[loc[0]:loc[1]]))
		last = loc[1]
	}
	if frag := strings.TrimSpace(input[last:]); frag != "" {
		tokens = append(tokens, classify(frag))
	}
	return tokens
}

// operatorToken maps a matched delimiter to its token.
func operatorToken(text string) Token {
	var kind TokenKind
	switch text {
	case "and":
		kind = TokenAnd
	case "or":
		kind = TokenOr
	case "!=":
		kind = TokenNEQ
	case "==":
		kind = TokenEQ
	case "<=":
		kind = TokenLTE
	case ">=":
		kind = TokenGTE
	case "<":
		kind = TokenLT
	case ">":
		kind = TokenGT
	case "(":
		kind = TokenLParen
	case ")":
		kind = TokenRParen
	case ".*":
		kind = TokenHasPrefix
	default:
		kind = TokenInvalid
	}
	return Token{Kind: kind, Text: text}
}

// classify tags a non-operator fragment as a string, number, or
// variable, in that priority order.
func classify(frag string) Token {
	if len(frag) >= 2 {
		first, last := frag[0], frag[len(frag)-1]
		if first == last && (first == '"' || first == '\'') {
			return Token{Kind: TokenString, Text: frag[1 : len(frag)-1]}
		}
	}
	if _, err := strconv.ParseFloat(frag, 64); err == nil {
		return Token{Kind: TokenNumber, Text: frag}
	}
	if variablePattern.MatchString(frag) {
		return Token{Kind: TokenVariable, Text: frag}
	}
	return Token{Kind: TokenInvalid, Text: frag}
}
