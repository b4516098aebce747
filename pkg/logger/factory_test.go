package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "INFO")
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("level name option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("unknown level name keeps default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("loud"))
		log.Info("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("development adds component and debug level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithDevelopment("form"), logger.WithOutput(buf), logger.WithJSONFormatter())
		log.Debug("debug msg")
		entry := decode(t, buf)
		assert.Equal(t, "DEBUG", entry["level"])
		assert.Equal(t, "form", entry["component"])
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test")))
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("extracts form name from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(logger.FormNameExtractor(), nil),
		)
		ctx := logger.WithFormName(context.Background(), "vacation")
		log.InfoContext(ctx, "context msg")
		assert.Equal(t, "vacation", decode(t, buf)["form"])
	})

	t.Run("context value option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("id", key("id")))
		ctx := context.WithValue(context.Background(), key("id"), "42")
		log.InfoContext(ctx, "msg")
		assert.Equal(t, "42", decode(t, buf)["id"])
	})
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestDiscard(t *testing.T) {
	log := logger.OrDiscard(nil)
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Error("dropped", logger.Field("x")) })

	custom := logger.New(logger.WithOutput(&bytes.Buffer{}))
	assert.Same(t, custom, logger.OrDiscard(custom))
}

func TestFormName(t *testing.T) {
	_, ok := logger.FormName(context.Background())
	assert.False(t, ok)

	_, ok = logger.FormName(logger.WithFormName(context.Background(), ""))
	assert.False(t, ok)

	name, ok := logger.FormName(logger.WithFormName(context.Background(), "profile"))
	assert.True(t, ok)
	assert.Equal(t, "profile", name)
}
