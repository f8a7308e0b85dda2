package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the boolexpr tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("boolexpr")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartCompileSpan starts a span for an expression compilation.
	StartCompileSpan(ctx context.Context, source string) (context.Context, trace.Span)

	// StartEvaluateSpan starts a span for an expression evaluation.
	StartEvaluateSpan(ctx context.Context, source string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartCompileSpan starts a span for an expression compilation.
func (m *otelSpanManager) StartCompileSpan(ctx context.Context, source string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "boolexpr.compile",
		trace.WithAttributes(
			attribute.String("expression.source", source),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartEvaluateSpan starts a span for an expression evaluation.
func (m *otelSpanManager) StartEvaluateSpan(ctx context.Context, source string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "boolexpr.evaluate",
		trace.WithAttributes(
			attribute.String("expression.source", source),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
