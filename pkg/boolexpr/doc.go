/*
Package boolexpr is an embeddable boolean-expression engine: it parses
a restricted expression language into an immutable tree and evaluates
the tree against caller-supplied variable bindings. It is intended for
rule evaluation in filter and policy layers, not as a general-purpose
language.

# Expression Syntax

	Expression := AndTerm ( 'or' AndTerm )*
	AndTerm    := Condition ( 'and' Condition )*
	Condition  := '(' Expression ')'
	            | Terminal [ CompareOp Terminal ]
	Terminal   := number | string | variable
	CompareOp  := '>' | '>=' | '<' | '<=' | '==' | '!=' | '.*'

'and' binds tighter than 'or', comparisons bind tighter than 'and',
and repeated operators at the same level fold left-associatively.
Parentheses override precedence.

# Operators

Comparison operators:

	==    Equal (structural; values of different kinds are unequal)
	!=    Not equal
	<     Less than (numeric or lexicographic)
	>     Greater than
	<=    Less than or equal
	>=    Greater than or equal
	.*    String starts-with (both operands must be strings)

Logical operators:

	and   Logical AND over truthiness
	or    Logical OR over truthiness
	!     Negation prefix on a variable name: !disabled

Both sides of 'and'/'or' are always evaluated; there is no
short-circuiting.

# Values

Terminals can be:

  - Quoted strings: 'hello' or "hello"
  - Numbers: 42, 3.14, -1
  - Variables: names drawn from [-!A-Za-z0-9_]+, resolved from the
    bindings map; a leading '!' negates the looked-up value

Evaluation produces a closed Value variant: bool, number (float64), or
string. A variable missing from the bindings reads as false. Ordering
comparisons across different kinds are a TypeError, never a silent
false.

# Usage

Compile once, evaluate many times:

	expr, err := boolexpr.Compile(`age >= 18 and country == "SE"`)
	if err != nil {
		log.Fatal(err)
	}
	ok, err := expr.EvaluateBool(map[string]any{"age": 21, "country": "SE"})

Compilation is eager: tokenize and parse run inside Compile, so a
malformed expression fails there and no partial tree escapes. The
compiled Expression is immutable and safe for concurrent evaluation
against independent bindings.

Bare variables work as whole conditions:

	ok, _ := boolexpr.Eval("is_active", map[string]any{"is_active": true})

A bare terminal at the root yields its raw value from Evaluate; use
EvaluateBool to reduce any result to its truthiness.

# Observability

An Engine wraps Compile and Evaluate with slog logging, OpenTelemetry
metrics, and tracing:

	engine := boolexpr.New(
		boolexpr.WithLogger(slog.Default()),
		boolexpr.WithMetrics(observability.NewMetricsRecorder()),
		boolexpr.WithSpanManager(observability.NewSpanManager()),
	)
	expr, err := engine.Compile(ctx, "score > 0.5")

# Errors

Compile returns *SyntaxError wrapping a sentinel cause
(ErrUnterminatedGroup, ErrTerminalExpected, ErrInvalidToken,
ErrEmptyExpression). Evaluate returns *TypeError for operand kinds an
operator cannot compare and *BindingError for binding values outside
bool/number/string. Evaluation errors are per-call: the compiled tree
stays valid for later calls with other bindings.
*/
package boolexpr
