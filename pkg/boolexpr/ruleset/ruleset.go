// Package ruleset groups named boolean expressions compiled eagerly
// from YAML or JSON documents, so malformed rules fail at load time
// rather than during evaluation.
package ruleset

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/randalmurphal/boolexpr/pkg/boolexpr"
)

// Sentinel errors for rule sets.
var (
	// ErrRuleNotFound indicates an evaluation referenced an unknown rule name.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrDuplicateRule indicates two rules share a name.
	ErrDuplicateRule = errors.New("duplicate rule name")

	// ErrEmptyRule indicates a rule with a missing name or expression.
	ErrEmptyRule = errors.New("rule name and expression are required")
)

// Rule pairs a name with a compiled expression.
type Rule struct {
	// ID is a unique identifier assigned when the rule is added.
	ID string
	// Name is the caller-facing rule name, unique within a set.
	Name string
	// Source is the expression text.
	Source string

	expr *boolexpr.Expression
}

// Eval evaluates the rule against the bindings.
func (r *Rule) Eval(vars map[string]any) (bool, error) {
	return r.expr.EvaluateBool(vars)
}

// Expression returns the compiled expression.
func (r *Rule) Expression() *boolexpr.Expression {
	return r.expr
}

// Set holds named rules in declaration order. A Set is built once
// (Add or the loaders) and is then safe for concurrent evaluation.
type Set struct {
	rules  []*Rule
	byName map[string]*Rule
}

// New creates an empty rule set.
func New() *Set {
	return &Set{byName: make(map[string]*Rule)}
}

// Add compiles the expression and appends it under the given name.
// Compilation is eager: a malformed expression fails here and the set
// is left unchanged.
func (s *Set) Add(name, source string) (*Rule, error) {
	if name == "" || source == "" {
		return nil, ErrEmptyRule
	}
	if _, exists := s.byName[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateRule, name)
	}

	expr, err := boolexpr.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile rule %q: %w", name, err)
	}

	rule := &Rule{
		ID:     uuid.NewString(),
		Name:   name,
		Source: source,
		expr:   expr,
	}
	s.rules = append(s.rules, rule)
	s.byName[name] = rule
	return rule, nil
}

// Get returns the rule with the given name.
func (s *Set) Get(name string) (*Rule, bool) {
	r, ok := s.byName[name]
	return r, ok
}

// Len returns the number of rules.
func (s *Set) Len() int { return len(s.rules) }

// Rules returns the rules in declaration order.
func (s *Set) Rules() []*Rule {
	out := make([]*Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Eval evaluates one rule by name.
func (s *Set) Eval(name string, vars map[string]any) (bool, error) {
	r, ok := s.byName[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrRuleNotFound, name)
	}
	return r.Eval(vars)
}

// EvalAll evaluates every rule against the same bindings and returns
// the results by rule name. The first evaluation error aborts the pass.
func (s *Set) EvalAll(vars map[string]any) (map[string]bool, error) {
	results := make(map[string]bool, len(s.rules))
	for _, r := range s.rules {
		ok, err := r.Eval(vars)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		results[r.Name] = ok
	}
	return results, nil
}
