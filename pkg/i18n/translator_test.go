package i18n_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.NewMapAdapter(map[string]map[string]any{
		"en": {
			"hello":   "Hello",
			"welcome": "Welcome, %{name}!",
			"nested":  map[string]any{"greeting": "Hi %{name}, until %{date}"},
		},
		"de": {
			"hello": "Hallo",
		},
	}), opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), i18n.NewMapAdapter(map[string]map[string]any{
			"": {"a": "b"},
		}))
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("languages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"de", "en"}, newTranslator(t).SupportedLanguages())
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	assert.Equal(t, "Hello", tr.T("en", "hello"))
	assert.Equal(t, "Hallo", tr.T("de", "hello"))
	assert.Equal(t, "Welcome, John!", tr.T("en", "welcome", "name", "John"))
	assert.Equal(t, "Welcome, %{name}!", tr.T("en", "welcome"), "unknown placeholders are kept")
	assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
	assert.Equal(t, "nested", tr.T("en", "nested"), "maps are not messages")
	assert.Equal(t, "welcome", tr.T("fr", "welcome"))

	strict := newTranslator(t, i18n.WithFallbackToKey(false))
	assert.Empty(t, strict.T("en", "missing"))
	assert.Equal(t, "fallback Ann", strict.Td("en", "missing", "fallback %{who}", "who", "Ann"))
}

func TestTranslator_Tm(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	got := tr.Tm("en", "nested.greeting", map[string]any{
		"name": 7,
		"date": time.Date(2025, 7, 1, 15, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, "Hi 7, until 2025-07-01", got)
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	assert.True(t, tr.HasTranslation("en", "nested.greeting"))
	assert.False(t, tr.HasTranslation("en", "nested"))
	assert.False(t, tr.HasTranslation("de", "welcome"))
	assert.False(t, tr.HasTranslation("xx", "hello"))
}

func TestTranslator_Tc(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	assert.Equal(t, "Hello", tr.Tc(context.Background(), "hello"))
	assert.Equal(t, "Hallo", tr.Tc(i18n.WithLocale(context.Background(), "de"), "hello"))
}

func TestTranslator_Match(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	tests := []struct {
		name string
		tags []string
		want string
	}{
		{name: "exact", tags: []string{"de"}, want: "de"},
		{name: "region falls back to base", tags: []string{"de-AT"}, want: "de"},
		{name: "first preference wins", tags: []string{"en-GB", "de"}, want: "en"},
		{name: "malformed tags are skipped", tags: []string{"!!", "de"}, want: "de"},
		{name: "nothing given", tags: nil, want: "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.tags...))
		})
	}

	assert.Equal(t, "de", tr.MatchAcceptLanguage("de-CH,de;q=0.9,en;q=0.5"))
	assert.Equal(t, "en", tr.MatchAcceptLanguage(""))
}

func TestDefaultMessages(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), i18n.DefaultAdapter())
	require.NoError(t, err)

	for _, kind := range validator.Kinds {
		assert.True(t, tr.HasTranslation(i18n.DefaultLanguage, validator.TranslationKey(kind)), kind)
	}
	assert.Equal(t, "Must be at least 3 characters",
		tr.Tm("en", validator.TranslationKey(validator.KindMinLength), map[string]any{"expected": 3}))
}
