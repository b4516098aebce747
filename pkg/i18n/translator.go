package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Translator renders messages by language and dot-separated key.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	adapter        TranslationAdapter

	mu      sync.RWMutex
	matcher language.Matcher
	tags    []language.Tag
	langs   []string
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reads the adapter again and swaps the translations in.
func (t *Translator) Reload(ctx context.Context) error {
	trans, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	for lang, keys := range trans {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if keys == nil {
			return fmt.Errorf("i18n: nil translations for language %q", lang)
		}
	}
	if len(trans) == 0 {
		t.logger.WarnContext(ctx, "no translations provided", logger.Component("i18n"))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.translations = trans
	t.buildMatcher()

	t.logger.DebugContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.langs),
	)
	return nil
}

// buildMatcher prepares language negotiation. The default language goes
// first so it wins when nothing matches.
func (t *Translator) buildMatcher() {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	if i := slices.Index(langs, t.defaultLang); i > 0 {
		langs = slices.Delete(langs, i, i+1)
		langs = slices.Insert(langs, 0, t.defaultLang)
	}

	t.langs = langs
	t.tags = make([]language.Tag, len(langs))
	for i, lang := range langs {
		t.tags[i] = language.Make(lang)
	}
	t.matcher = language.NewMatcher(t.tags)
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := slices.Clone(t.langs)
	slices.Sort(out)
	return out
}

// DefaultLanguage returns the fallback language code.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// lookup traverses the nested key map.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		if current, ok = val.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

func (t *Translator) get(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}
	val, ok := lookup(keys, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	if t.missingLogMode {
		t.logger.Warn("translation is not a string",
			slog.String("lang", lang),
			slog.String("key", key),
			slog.String("type", fmt.Sprintf("%T", val)),
		)
	}
	return "", false
}

// HasTranslation reports whether lang has a string under key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys, ok := t.translations[lang]
	if !ok {
		return false
	}
	val, ok := lookup(keys, key)
	if !ok {
		return false
	}
	_, isMap := val.(map[string]any)
	return !isMap
}

// T translates key, substituting %{name} placeholders from key/value pairs:
//
//	tr.T("en", "welcome", "name", "John") // "Hello, John!"
//
// A missing translation yields the key when fallback to key is on, else "".
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Tm(lang, key, pairs(args))
}

// Tm is T with a parameter map. Values are rendered with fmt.Sprint, times
// as dates.
func (t *Translator) Tm(lang, key string, params map[string]any) string {
	tmpl, ok := t.get(lang, key)
	if !ok {
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return substitute(tmpl, params)
}

// Td is T with an explicit fallback template.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.get(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return substitute(tmpl, pairs(args))
}

// Tc translates in the language stored in ctx, else the default language.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	lang := Locale(ctx)
	if lang == "" {
		lang = t.defaultLang
	}
	return t.T(lang, key, args...)
}

func pairs(args []string) map[string]any {
	params := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders. Unknown names are kept.
func substitute(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		val, ok := params[match[2:len(match)-1]]
		if !ok {
			return match
		}
		return render(val)
	})
}

func render(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.Format(time.DateOnly)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
