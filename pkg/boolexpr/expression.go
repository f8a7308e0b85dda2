package boolexpr

// Expression is a compiled boolean expression. It is immutable after
// Compile and safe for concurrent evaluation: the tree is read-only
// and every Evaluate call is independent.
type Expression struct {
	source string
	root   Node
}

// Compile tokenizes and parses the expression eagerly, so syntax
// errors surface here rather than at evaluation time. The returned
// Expression can be evaluated any number of times, with different
// bindings, without re-parsing.
func Compile(input string) (*Expression, error) {
	root, err := parse(Tokenize(input))
	if err != nil {
		return nil, err
	}
	return &Expression{source: input, root: root}, nil
}

// MustCompile is like Compile but panics on error. Use for expressions
// known valid at program start.
func MustCompile(input string) *Expression {
	expr, err := Compile(input)
	if err != nil {
		panic("boolexpr: " + err.Error())
	}
	return expr
}

// Evaluate walks the tree against the bindings and returns the raw
// result. A well-formed predicate yields a boolean Value, but a bare
// terminal at the root yields its number or string unchanged.
func (e *Expression) Evaluate(vars map[string]any) (Value, error) {
	return evalNode(e.root, vars)
}

// EvaluateBool evaluates the expression and reduces the result to its
// truthiness.
func (e *Expression) EvaluateBool(vars map[string]any) (bool, error) {
	val, err := e.Evaluate(vars)
	if err != nil {
		return false, err
	}
	return val.Truthy(), nil
}

// Root returns the root of the parsed tree.
func (e *Expression) Root() Node { return e.root }

// String returns the original expression source.
func (e *Expression) String() string { return e.source }

// Eval compiles and evaluates an expression in one step. Prefer
// Compile when the same expression is evaluated repeatedly.
func Eval(input string, vars map[string]any) (bool, error) {
	expr, err := Compile(input)
	if err != nil {
		return false, err
	}
	return expr.EvaluateBool(vars)
}
