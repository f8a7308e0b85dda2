package boolexpr

import (
	"log/slog"

	"github.com/randalmurphal/boolexpr/pkg/boolexpr/observability"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger. Compilations log at Debug,
// failures at Error. A nil logger disables logging (the default).
//
// Example:
//
//	engine := boolexpr.New(boolexpr.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics attaches a metrics recorder. Use
// observability.NewMetricsRecorder() for OpenTelemetry metrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithSpanManager attaches a span manager for distributed tracing.
// Use observability.NewSpanManager() for OpenTelemetry spans.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(e *Engine) {
		if sm != nil {
			e.spans = sm
		}
	}
}
