package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a logger writing JSON records to buf at Debug level.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// lastRecord decodes the last log line in buf.
func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func TestLogCompile(t *testing.T) {
	var buf bytes.Buffer
	LogCompile(newTestLogger(&buf), "age >= 18", 0.42)

	rec := lastRecord(t, &buf)
	assert.Equal(t, "expression compiled", rec["msg"])
	assert.Equal(t, "age >= 18", rec["expression"])
	assert.Equal(t, 0.42, rec["duration_ms"])
}

func TestLogCompileError(t *testing.T) {
	var buf bytes.Buffer
	LogCompileError(newTestLogger(&buf), "a ==", errors.New("expected number, string, or variable"))

	rec := lastRecord(t, &buf)
	assert.Equal(t, "expression compile failed", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
	assert.Contains(t, rec["error"], "expected number")
}

func TestLogEvaluate(t *testing.T) {
	var buf bytes.Buffer
	LogEvaluate(newTestLogger(&buf), "is_active", true, 0.03)

	rec := lastRecord(t, &buf)
	assert.Equal(t, "expression evaluated", rec["msg"])
	assert.Equal(t, true, rec["result"])
}

func TestLogEvaluateError(t *testing.T) {
	var buf bytes.Buffer
	LogEvaluateError(newTestLogger(&buf), "a < b", errors.New("cannot apply"))

	rec := lastRecord(t, &buf)
	assert.Equal(t, "expression evaluation failed", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
}

func TestLogHelpers_NilLogger(t *testing.T) {
	// All helpers must tolerate a nil logger.
	LogCompile(nil, "a", 0)
	LogCompileError(nil, "a", errors.New("err"))
	LogEvaluate(nil, "a", true, 0)
	LogEvaluateError(nil, "a", errors.New("err"))
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(5 * time.Millisecond)
	elapsed := done()
	assert.GreaterOrEqual(t, elapsed, 4.0)
}
