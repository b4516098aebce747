package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser decodes a translation file into language → nested key map.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by file extension, nil if none fits.
func NewParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	for _, p := range []Parser{NewJSONParser(), NewYAMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// normalize converts decoded documents into the translator layout. Nested
// maps decoded as map[any]any are converted recursively.
func normalize(data map[string]any) (map[string]map[string]any, bool) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := toStringMap(val)
		if !ok {
			return nil, false
		}
		result[lang] = m
	}
	return result, true
}

func toStringMap(v any) (map[string]any, bool) {
	var out map[string]any
	switch m := v.(type) {
	case map[string]any:
		out = make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}
	case map[any]any:
		out = make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
	default:
		return nil, false
	}

	for k, val := range out {
		if nested, ok := toStringMap(val); ok {
			out[k] = nested
		}
	}
	return out, true
}
