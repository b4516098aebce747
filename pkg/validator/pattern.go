package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/config"
)

var (
	patterns     *cache.LRUCache[string, *regexp.Regexp]
	patternsOnce sync.Once
)

func patternCache() *cache.LRUCache[string, *regexp.Regexp] {
	patternsOnce.Do(func() {
		size := config.Current().PatternCacheSize
		if size <= 0 {
			size = 1
		}
		patterns = cache.NewLRUCache[string, *regexp.Regexp](size)
	})
	return patterns
}

// CompilePattern compiles a pattern anchored to the whole value. Compiled
// patterns are cached.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	anchored := anchor(pattern)
	re, err := patternCache().GetOrCompute(anchored, func() (*regexp.Regexp, error) {
		return regexp.Compile(anchored)
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return re, nil
}

func anchor(pattern string) string {
	pattern = strings.TrimPrefix(pattern, "^")
	if strings.HasSuffix(pattern, "$") && !strings.HasSuffix(pattern, `\$`) {
		pattern = pattern[:len(pattern)-1]
	}
	return "^(?:" + pattern + ")$"
}

// Pattern fails when a non-empty string does not match the whole pattern.
// An uncompilable pattern always fails.
func Pattern(field string, value any, pattern string) Rule {
	return Rule{
		Check: func() bool {
			if IsEmpty(value) {
				return true
			}
			re, err := CompilePattern(pattern)
			if err != nil {
				return false
			}
			return re.MatchString(fmt.Sprint(indirect(value).Interface()))
		},
		Error: newError(field, KindPattern, "has invalid format",
			map[string]any{"pattern": pattern}),
	}
}
