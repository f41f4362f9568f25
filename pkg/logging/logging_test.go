package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestParseTimeFormat(t *testing.T) {
	assert.Equal(t, time.Kitchen, parseTimeFormat("kitchen"))
	assert.Equal(t, time.RFC3339, parseTimeFormat("RFC3339"))
	assert.Equal(t, "", parseTimeFormat("unix"))
	assert.Equal(t, "2006-01-02", parseTimeFormat("2006-01-02"))
	assert.Equal(t, time.Kitchen, parseTimeFormat("nonsense"))
}

func TestParseFields(t *testing.T) {
	fields := ParseFields("service=aitools, env = test,broken")
	assert.Equal(t, map[string]any{"service": "aitools", "env": "test"}, fields)
	assert.Empty(t, ParseFields(""))
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("discard output", func(t *testing.T) {
		logger := NewLoggerFromConfig(&Config{Level: "warn", Output: "discard", Format: "json"})
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Info().Int("tool_id", 3).Msg("favorite added")

	assert.Contains(t, buf.String(), `"tool_id":3`)
	assert.Contains(t, buf.String(), `"message":"favorite added"`)
}

func TestContextLogger(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithOperation(ctx, "add_favorite")
	ctx = WithTool(ctx, 5)
	ctx = WithFields(ctx, map[string]any{"category": "Code Assistant", "err": errors.New("boom")})

	FromContext(ctx).Info().Msg("done")

	require.Equal(t, 1, tl.Count())
	assert.True(t, tl.Contains(`"operation":"add_favorite"`))
	assert.True(t, tl.Contains(`"tool_id":5`))
	assert.True(t, tl.Contains(`"category":"Code Assistant"`))
	assert.True(t, tl.Contains(`"error":"boom"`))
}

func TestFromContextDefault(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, Default(), FromContext(nil))
	assert.Same(t, Default(), FromContext(context.Background()))
}

func TestCaptureLoggingForTest(t *testing.T) {
	tl := CaptureLoggingForTest(t)
	Info().Str("view", "analytics").Msg("rendered")

	assert.True(t, tl.Contains("analytics"))
	assert.Equal(t, []string{tl.Lines()[0]}, tl.Lines())
}
