package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNilBindsDefault(t *testing.T) {
	l := New(nil)
	require.NotNil(t, l)
	require.NotNil(t, l.With("k", "v"))
}

func TestLoggerWritesThroughHandler(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.With("archive", "test.agc").Debug(context.Background(), "opened archive", "prefetch", true)

	out := buf.String()
	assert.Contains(t, out, "opened archive")
	assert.Contains(t, out, "test.agc")
	assert.Contains(t, out, "prefetch")
}
