// Package observability provides structured logging, metrics, and
// distributed tracing for boolexpr engines.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// LogCompile logs a successful expression compilation.
func LogCompile(logger *slog.Logger, source string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("expression compiled",
		slog.String("expression", source),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCompileError logs a failed compilation.
func LogCompileError(logger *slog.Logger, source string, err error) {
	if logger == nil {
		return
	}
	logger.Error("expression compile failed",
		slog.String("expression", source),
		slog.String("error", err.Error()),
	)
}

// LogEvaluate logs a completed evaluation.
func LogEvaluate(logger *slog.Logger, source string, result any, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("expression evaluated",
		slog.String("expression", source),
		slog.Any("result", result),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEvaluateError logs an evaluation failure. Evaluation failures are
// per-call: the compiled expression stays valid for other bindings.
func LogEvaluateError(logger *slog.Logger, source string, err error) {
	if logger == nil {
		return
	}
	logger.Error("expression evaluation failed",
		slog.String("expression", source),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000.0
	}
}
