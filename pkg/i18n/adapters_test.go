package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/a_en.yaml":  {Data: []byte("en:\n  validation:\n    required: Fill me\n    min: Too small\n")},
		"locales/b_en.json":  {Data: []byte(`{"en": {"validation": {"min": "At least %{expected}"}}}`)},
		"locales/de.yml":     {Data: []byte("de:\n  validation:\n    required: Pflichtfeld\n")},
		"locales/README.md":  {Data: []byte("# ignored")},
		"single/fr.json":     {Data: []byte(`{"fr": {"hello": "Bonjour"}}`)},
		"broken/bad.json":    {Data: []byte(`{"fr": `)},
		"broken/scalar.yaml": {Data: []byte("fr: hello\n")},
	}

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		data, err := i18n.NewFileAdapter(fsys, "locales").Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"required": "Fill me",
			"min":      "At least %{expected}",
		}, data["en"]["validation"], "later files override single keys")
		assert.Contains(t, data, "de")
	})

	t.Run("files", func(t *testing.T) {
		t.Parallel()

		data, err := i18n.NewFileAdapter(fsys, "single/fr.json", "locales/de.yml").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bonjour", data["fr"]["hello"])
		assert.Len(t, data, 2)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.NewFileAdapter(fsys, "broken/bad.json").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("scalar language", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.NewFileAdapter(fsys, "broken/scalar.yaml").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("unsupported file", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.NewFileAdapter(fsys, "locales/README.md").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrUnsupportedFile)
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.NewFileAdapter(fsys, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFileAdapter(fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestMultiAdapter(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), i18n.MultiAdapter{
		i18n.DefaultAdapter(),
		i18n.NewMapAdapter(map[string]map[string]any{
			"en": {"validation": map[string]any{"required": "Please fill in %{field}"}},
		}),
		nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "Please fill in email", tr.T("en", "validation.required", "field", "email"))
	assert.Equal(t, "Has an invalid format", tr.T("en", "validation.pattern"))
	assert.Equal(t, "Has an invalid format", i18n.DefaultMessages["en"]["validation"].(map[string]any)["pattern"],
		"defaults are not mutated by layering")
}

func TestParsers(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("x.JSON"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("dir/x.yml"))
	assert.Nil(t, i18n.NewParserForFile("x.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := i18n.NewYAMLParser().Parse(ctx, []byte("en: {}"))
	assert.ErrorIs(t, err, i18n.ErrParsingCancelled)

	_, err = i18n.NewJSONParser().Parse(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)
}
