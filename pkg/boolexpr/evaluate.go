package boolexpr

import (
	"fmt"
	"strings"
)

// evalNode walks the tree against the bindings. The walk is pure: no
// tree mutation, no memoization, no shared state, so one parsed tree
// can be evaluated concurrently against independent bindings.
func evalNode(n Node, vars map[string]any) (Value, error) {
	switch node := n.(type) {
	case NumberLiteral:
		return NumberValue(node.Value), nil
	case StringLiteral:
		return StringValue(node.Value), nil
	case VariableRef:
		return evalVariable(node, vars)
	case Comparison:
		return evalComparison(node, vars)
	case Logical:
		return evalLogical(node, vars)
	default:
		return Value{}, fmt.Errorf("unexpected node type %T", n)
	}
}

// evalVariable resolves a variable from the bindings. A missing
// variable is not an error: it reads as false.
func evalVariable(ref VariableRef, vars map[string]any) (Value, error) {
	raw, ok := vars[ref.Name]
	if !ok {
		return BoolValue(ref.Negated), nil
	}
	val, ok := valueOf(raw)
	if !ok {
		return Value{}, &BindingError{Name: ref.Name, Value: raw}
	}
	if ref.Negated {
		return BoolValue(!val.Truthy()), nil
	}
	return val, nil
}

func evalComparison(cmp Comparison, vars map[string]any) (Value, error) {
	left, err := evalNode(cmp.Left, vars)
	if err != nil {
		return Value{}, err
	}
	right, err := evalNode(cmp.Right, vars)
	if err != nil {
		return Value{}, err
	}

	switch cmp.Op {
	case TokenEQ:
		return BoolValue(left.Equal(right)), nil
	case TokenNEQ:
		return BoolValue(!left.Equal(right)), nil
	case TokenHasPrefix:
		if left.Kind() != ValueString || right.Kind() != ValueString {
			return Value{}, &TypeError{Op: cmp.Op.String(), Left: left.Kind(), Right: right.Kind()}
		}
		return BoolValue(strings.HasPrefix(left.Str(), right.Str())), nil
	default:
		return compareOrdered(cmp.Op, left, right)
	}
}

// compareOrdered applies >, >=, <, <= over an enumerated set of legal
// operand pairs: numbers compare numerically, strings
// lexicographically. Every other pairing is a TypeError rather than a
// silent false.
func compareOrdered(op TokenKind, left, right Value) (Value, error) {
	if left.Kind() != right.Kind() || left.Kind() == ValueBool {
		return Value{}, &TypeError{Op: op.String(), Left: left.Kind(), Right: right.Kind()}
	}

	var c int
	switch left.Kind() {
	case ValueNumber:
		switch {
		case left.Number() < right.Number():
			c = -1
		case left.Number() > right.Number():
			c = 1
		}
	case ValueString:
		c = strings.Compare(left.Str(), right.Str())
	}

	switch op {
	case TokenGT:
		return BoolValue(c > 0), nil
	case TokenGTE:
		return BoolValue(c >= 0), nil
	case TokenLT:
		return BoolValue(c < 0), nil
	case TokenLTE:
		return BoolValue(c <= 0), nil
	default:
		return Value{}, fmt.Errorf("unexpected comparison operator %v", op)
	}
}

// evalLogical combines the truthiness of both subtrees. Both sides are
// always evaluated; an error on either side fails the call even when
// the other side would decide the result.
func evalLogical(lg Logical, vars map[string]any) (Value, error) {
	left, err := evalNode(lg.Left, vars)
	if err != nil {
		return Value{}, err
	}
	right, err := evalNode(lg.Right, vars)
	if err != nil {
		return Value{}, err
	}
	if lg.Op == TokenAnd {
		return BoolValue(left.Truthy() && right.Truthy()), nil
	}
	return BoolValue(left.Truthy() || right.Truthy()), nil
}
