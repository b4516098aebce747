package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the fallback language code.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds header parsing work.
const maxAcceptLanguageLength = 4096

// Match negotiates the best loaded language for the preferred tags, e.g.
// "de-AT" matches a loaded "de". Unknown or malformed tags are skipped; the
// default language is returned when nothing matches.
func (t *Translator) Match(tags ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.tags) == 0 {
		return t.defaultLang
	}

	prefs := make([]language.Tag, 0, len(tags))
	for _, s := range tags {
		if tag, err := language.Parse(s); err == nil {
			prefs = append(prefs, tag)
		}
	}
	if len(prefs) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// MatchAcceptLanguage negotiates against an Accept-Language header value.
func (t *Translator) MatchAcceptLanguage(header string) string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return t.defaultLang
	}
	tags := make([]string, len(prefs))
	for i, p := range prefs {
		tags[i] = p.String()
	}
	return t.Match(tags...)
}
