package config

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Settings holds process-wide defaults used by fields and forms when the
// caller leaves the corresponding option at its zero value.
type Settings struct {
	SearchDebounce         time.Duration `env:"FORMKIT_SEARCH_DEBOUNCE" envDefault:"300ms"`
	AsyncValidationTimeout time.Duration `env:"FORMKIT_ASYNC_VALIDATION_TIMEOUT" envDefault:"10s"`
	PatternCacheSize       int           `env:"FORMKIT_PATTERN_CACHE_SIZE" envDefault:"256"`
	SearchCacheSize        int           `env:"FORMKIT_SEARCH_CACHE_SIZE" envDefault:"128"`
	LogLevel               string        `env:"FORMKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat              string        `env:"FORMKIT_LOG_FORMAT" envDefault:"json"`
}

var defaults = func() Settings {
	var s Settings
	// Parsing against an empty environment only applies envDefault tags.
	if err := env.ParseWithOptions(&s, env.Options{Environment: map[string]string{}}); err != nil {
		panic(err)
	}
	return s
}()

// Defaults returns the built-in settings without reading the environment.
func Defaults() Settings {
	return defaults
}

var current atomic.Pointer[Settings]

// Current returns the settings installed with Use or UseEnvironment, or
// Defaults when none were installed. Fields, forms, pattern and search caches
// fall back to it for options left at their zero value.
func Current() Settings {
	if s := current.Load(); s != nil {
		return *s
	}
	return defaults
}

// Use installs s as the process-wide settings returned by Current.
func Use(s Settings) {
	current.Store(&s)
}

// UseEnvironment loads Settings from the environment and installs them.
// On failure the defaults stay installed and the error is returned.
func UseEnvironment() error {
	s, err := LoadSettings()
	Use(s)
	return err
}

// LoadSettings reads Settings from the environment (cached per process).
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Defaults(), err
	}
	return s, nil
}

// Logger builds a logger configured by the LogLevel and LogFormat settings.
func (s Settings) Logger(opts ...logger.Option) *slog.Logger {
	base := []logger.Option{logger.WithLevelName(s.LogLevel)}
	if s.LogFormat == string(logger.FormatText) {
		base = append(base, logger.WithTextFormatter())
	} else {
		base = append(base, logger.WithJSONFormatter())
	}
	return logger.New(append(base, opts...)...)
}
