package boolexpr

import (
	"context"
	"log/slog"
	"time"

	"github.com/randalmurphal/boolexpr/pkg/boolexpr/observability"
)

// Engine wraps Compile and Evaluate with structured logging, metrics,
// and tracing. The plain Compile/Expression API carries none of this;
// use an Engine when the surrounding service wants the engine
// instrumented like its other components.
type Engine struct {
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates an Engine. Without options every hook is a no-op.
func New(opts ...Option) *Engine {
	e := &Engine{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compile compiles an expression, recording the outcome.
func (e *Engine) Compile(ctx context.Context, input string) (*Expression, error) {
	ctx, span := e.spans.StartCompileSpan(ctx, input)
	done := observability.TimedOperation()

	expr, err := Compile(input)

	elapsed := done()
	e.spans.EndSpanWithError(span, err)
	e.metrics.RecordCompile(ctx, time.Duration(elapsed*float64(time.Millisecond)), err)
	if err != nil {
		observability.LogCompileError(e.logger, input, err)
		return nil, err
	}
	observability.LogCompile(e.logger, input, elapsed)
	return expr, nil
}

// Evaluate evaluates a compiled expression, recording the outcome.
func (e *Engine) Evaluate(ctx context.Context, expr *Expression, vars map[string]any) (Value, error) {
	ctx, span := e.spans.StartEvaluateSpan(ctx, expr.String())
	done := observability.TimedOperation()

	val, err := expr.Evaluate(vars)

	elapsed := done()
	e.spans.EndSpanWithError(span, err)
	e.metrics.RecordEvaluation(ctx, time.Duration(elapsed*float64(time.Millisecond)), err)
	if err != nil {
		observability.LogEvaluateError(e.logger, expr.String(), err)
		return Value{}, err
	}
	observability.LogEvaluate(e.logger, expr.String(), val.Any(), elapsed)
	return val, nil
}

// EvaluateBool evaluates a compiled expression and reduces the result
// to its truthiness, recording the outcome.
func (e *Engine) EvaluateBool(ctx context.Context, expr *Expression, vars map[string]any) (bool, error) {
	val, err := e.Evaluate(ctx, expr, vars)
	if err != nil {
		return false, err
	}
	return val.Truthy(), nil
}
