package boolexpr

import (
	"errors"
	"fmt"
)

// Sentinel errors for compilation.
var (
	// ErrEmptyExpression indicates the input contained no tokens.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrUnterminatedGroup indicates a '(' without a matching ')'.
	ErrUnterminatedGroup = errors.New("expected closing parenthesis")

	// ErrTerminalExpected indicates a number, string, or variable was
	// required but the input ended or held a different token.
	ErrTerminalExpected = errors.New("expected number, string, or variable")

	// ErrInvalidToken indicates a fragment that matched no known token
	// shape was consumed.
	ErrInvalidToken = errors.New("unrecognized token")
)

// SyntaxError reports a grammar violation found during compilation.
// A failed compile returns no tree and will fail identically on every
// retry; the expression text itself must be fixed.
type SyntaxError struct {
	// Token is the offending token text, empty when the input ended.
	Token string
	// Pos is the index of the offending token in the token sequence.
	Pos int
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("syntax error at end of expression: %v", e.Err)
	}
	return fmt.Sprintf("syntax error at %q (token %d): %v", e.Token, e.Pos, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *SyntaxError) Unwrap() error { return e.Err }

// TypeError reports an operator applied to operand kinds it cannot
// compare. It fails the single Evaluate call that produced it; the
// parsed tree stays valid for later calls with other bindings.
type TypeError struct {
	// Op is the source form of the operator.
	Op string
	// Left and Right are the evaluated operand kinds.
	Left  ValueKind
	Right ValueKind
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot apply %q to %s and %s", e.Op, e.Left, e.Right)
}

// BindingError reports a binding value of a Go type the evaluator
// cannot represent as a boolean, number, or string.
type BindingError struct {
	// Name is the variable whose binding was rejected.
	Name string
	// Value is the rejected binding value.
	Value any
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	return fmt.Sprintf("variable %q bound to unsupported type %T", e.Name, e.Value)
}
