package benchmarks

import (
	"testing"

	"github.com/randalmurphal/boolexpr/pkg/boolexpr"
)

// BenchmarkCompile_Simple compiles a single comparison.
func BenchmarkCompile_Simple(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = boolexpr.Compile("age >= 18")
	}
}

// BenchmarkCompile_Nested compiles a grouped multi-operator predicate.
func BenchmarkCompile_Nested(b *testing.B) {
	const src = `(age >= 18 and country == "SE") or (admin and !suspended)`
	for i := 0; i < b.N; i++ {
		_, _ = boolexpr.Compile(src)
	}
}

// BenchmarkEvaluate_Comparison evaluates a precompiled comparison.
func BenchmarkEvaluate_Comparison(b *testing.B) {
	expr := boolexpr.MustCompile("age >= 18")
	vars := map[string]any{"age": 21}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = expr.EvaluateBool(vars)
	}
}

// BenchmarkEvaluate_Logical evaluates a precompiled multi-clause predicate.
func BenchmarkEvaluate_Logical(b *testing.B) {
	expr := boolexpr.MustCompile(`(age >= 18 and country == "SE") or admin`)
	vars := map[string]any{"age": 21, "country": "NO", "admin": true}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = expr.EvaluateBool(vars)
	}
}

// BenchmarkEvaluate_StringPrefix evaluates the starts-with operator.
func BenchmarkEvaluate_StringPrefix(b *testing.B) {
	expr := boolexpr.MustCompile(`account .* "abc"`)
	vars := map[string]any{"account": "abc123"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = expr.EvaluateBool(vars)
	}
}

// BenchmarkEvalUncached compiles and evaluates on every iteration, for
// comparison against the precompiled paths.
func BenchmarkEvalUncached(b *testing.B) {
	vars := map[string]any{"age": 21}
	for i := 0; i < b.N; i++ {
		_, _ = boolexpr.Eval("age >= 18", vars)
	}
}
