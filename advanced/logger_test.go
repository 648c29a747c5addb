package advanced

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLogger_DefaultIsSilent(t *testing.T) {
	assert.False(t, debugEnabled())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestLogger_Recovery(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	assert.True(t, debugEnabled())

	// A bowtie leaves a lobe that can never be clipped
	indices, err := Earcut([]float64{0, 0, 10, 10, 10, 0, 0, 10}, nil, 2)
	require.NoError(t, err)
	assert.Len(t, indices, 3)

	logs := buf.String()
	assert.Contains(t, logs, `msg="no ear found" phase=clipping`)
	assert.Contains(t, logs, "phase=recovering")
	assert.Contains(t, logs, "phase=curing")
	assert.Contains(t, logs, `msg="ring exhausted, keeping partial result"`)
	assert.Contains(t, logs, "remaining=3")
}

func TestLogger_QuietForCleanInput(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	_, err := Earcut([]float64{0, 0, 10, 0, 10, 10, 0, 10}, nil, 2)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestLogger_LevelFiltering(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)
	assert.False(t, debugEnabled())
	_, err := Earcut([]float64{0, 0, 10, 10, 10, 0, 0, 10}, nil, 2)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(buf.String()))
}
