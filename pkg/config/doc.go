// Package config provides a type-safe, generic and cached way to load
// configuration from environment variables, plus the Settings struct holding
// formkit's process-wide defaults.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - Load parses the environment into any struct using field tags and caches
//     the result per type; MustLoad panics on failure.
//   - LoadEnv reads explicit .env files; Reset clears the cache in tests.
//   - Defaults returns Settings built from envDefault tags only.
//   - Current is what library code falls back to. It returns Defaults until
//     the application installs settings with Use or UseEnvironment, so the
//     process environment is only read when asked to.
//
// # Usage
//
//	if err := config.UseEnvironment(); err != nil {
//		// the defaults stay in effect
//	}
//	log := config.Current().Logger(logger.WithAttr(logger.Component("checkout")))
//
// Recognised variables: FORMKIT_SEARCH_DEBOUNCE, FORMKIT_ASYNC_VALIDATION_TIMEOUT,
// FORMKIT_PATTERN_CACHE_SIZE, FORMKIT_SEARCH_CACHE_SIZE, FORMKIT_LOG_LEVEL,
// FORMKIT_LOG_FORMAT.
package config
