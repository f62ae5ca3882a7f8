package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var row map[string]any
		require.NoError(t, sonic.Unmarshal(line, &row))
		out = append(out, row)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
	}
	for raw, want := range tests {
		got, err := ParseLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLogger_KeyValuesAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).With("service", "league-stats")

	logger.Debug("hidden")
	logger.Warn("events skipped", "season_id", "s1", "skipped", 2, "error", errors.New("bad row"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "events skipped", lines[0]["msg"])
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "league-stats", lines[0]["service"])
	assert.Equal(t, "s1", lines[0]["season_id"])
	assert.Equal(t, float64(2), lines[0]["skipped"])
	assert.Equal(t, "bad row", lines[0]["error"])
}

func TestLogger_ContextAddsTraceFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelDebug)

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "standings computed", "teams", 4)
	logger.InfoContext(context.Background(), "untraced")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, traceID.String(), lines[0]["trace_id"])
	assert.Equal(t, spanID.String(), lines[0]["span_id"])
	assert.NotContains(t, lines[1], "trace_id")
}

func TestDefault_FallsBackToNop(t *testing.T) {
	SetDefault(nil)
	assert.NotNil(t, Default())

	var nilLogger *Logger
	nilLogger.Info("must not panic")
}
