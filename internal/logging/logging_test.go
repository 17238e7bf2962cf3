package logging

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("defaults to info on bad level", func(t *testing.T) {
		result := NewLoggerWithPath(Config{Level: "verbose"})
		assert.Equal(t, zerolog.InfoLevel, result.Logger.GetLevel())
		assert.False(t, result.UsingFile)
		assert.NoError(t, result.Close())
	})

	t.Run("parses level", func(t *testing.T) {
		result := NewLoggerWithPath(Config{Level: "DEBUG"})
		assert.Equal(t, zerolog.DebugLevel, result.Logger.GetLevel())
	})

	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "fleettco.log")
		result := NewLoggerWithPath(Config{Level: "info", Output: OutputFile, File: path})
		t.Cleanup(func() { _ = result.Close() })

		require.True(t, result.UsingFile)
		assert.Equal(t, path, result.FilePath)
		assert.False(t, result.FallbackUsed)
	})

	t.Run("falls back when file path missing", func(t *testing.T) {
		result := NewLoggerWithPath(Config{Level: "info", Output: OutputFile})
		assert.False(t, result.UsingFile)
		assert.True(t, result.FallbackUsed)
		assert.NotEmpty(t, result.FallbackReason)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := zerolog.New(&buf)
		ctx := l.WithContext(context.Background())

		FromContext(ctx).Info().Msg("hello")
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("falls back to global logger", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
		assert.NotNil(t, FromContext(nil)) //nolint:staticcheck // nil context is handled explicitly
	})
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	l := ComponentLogger(zerolog.New(&buf), "engine")
	l.Info().Msg("x")
	assert.Contains(t, buf.String(), `"component":"engine"`)
}

func TestTraceID(t *testing.T) {
	id := NewTraceID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx := ContextWithTraceID(context.Background(), id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))

	generated := GetOrGenerateTraceID(context.Background())
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, id, generated)
	assert.Empty(t, TraceIDFromContext(context.Background()))
}
