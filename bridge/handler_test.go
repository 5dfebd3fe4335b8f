package bridge

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/fastlog"
	"dirpx.dev/fastlog/appender/console"
	"dirpx.dev/fastlog/level"
)

func TestHandlerRoutesThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := fastlog.Init(fastlog.New().Custom(console.NewWriter(&buf)))
	require.NoError(t, err)

	logger := slog.New(New(l, "app"))
	logger.Info("started", slog.String("mode", "test"))
	require.NoError(t, l.Exit())

	out := buf.String()
	assert.Contains(t, out, "started")
	assert.Contains(t, out, "mode=test")
	assert.Contains(t, out, "app")
}

func TestHandlerWithGroupNamespacesTarget(t *testing.T) {
	var buf bytes.Buffer
	l, err := fastlog.Init(fastlog.New().Custom(console.NewWriter(&buf)))
	require.NoError(t, err)

	logger := slog.New(New(l, "app")).WithGroup("db")
	logger.Warn("slow query")
	require.NoError(t, l.Exit())

	assert.Contains(t, buf.String(), "app.db")
}

func TestHandlerEnabledRespectsLevel(t *testing.T) {
	l, err := fastlog.Init(fastlog.New().Level(level.Warn).Custom(console.New()))
	require.NoError(t, err)
	defer l.Exit()

	h := New(l, "app")
	assert.False(t, h.Enabled(nil, slog.LevelDebug))
	assert.True(t, h.Enabled(nil, slog.LevelError))
}
