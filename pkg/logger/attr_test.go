package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("g", slog.String("a", "b"))
	assert.Equal(t, "g", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	assert.Len(t, attr.Value.Group(), 1)
}

func TestErrors(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))

	attr := logger.Errors(nil, errors.New("x"))
	assert.Equal(t, "errors", attr.Key)
	require.Len(t, attr.Value.Group(), 1)
	assert.Equal(t, "1", attr.Value.Group()[0].Key)
}

func TestError(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, slog.String("field", "email"), logger.Field("email"))
	assert.Equal(t, slog.String("constraint", "minDate"), logger.Constraint("minDate"))
	assert.Equal(t, slog.String("hook", "onValueChange"), logger.Hook("onValueChange"))
	assert.Equal(t, slog.Uint64("version", 3), logger.Version(3))
	assert.Equal(t, slog.String("query", "ber"), logger.Query("ber"))
	assert.Equal(t, slog.Int("count", 2), logger.Count(2))
	assert.Equal(t, slog.String("component", "form"), logger.Component("form"))
	assert.Equal(t, slog.String("event", "options_loaded"), logger.Event("options_loaded"))
	assert.Equal(t, "panic", logger.Panic("boom").Key)
	assert.Equal(t, "duration", logger.Duration(1).Key)
}
