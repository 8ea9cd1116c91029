package ctxlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/ctxlog"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))

	var buf bytes.Buffer
	logger := ctxlog.New("debug", "json", &buf)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	require.Same(t, logger, ctxlog.FromContext(ctx))

	ctxlog.FromContext(ctx).Debug("solved", "puzzle", "crucible")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "solved", rec["msg"])
	assert.Equal(t, "crucible", rec["puzzle"])
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.New("warn", "text", &buf)
	logger.Info("hidden")
	assert.Empty(t, buf.String())
	logger.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")

	_, ok := ctxlog.ParseLevel("verbose")
	assert.False(t, ok)
	lvl, ok := ctxlog.ParseLevel("ERROR")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelError, lvl)
}
