package optionsource

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// CacheOption configures the cache decorators.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	logger *slog.Logger
	ttl    time.Duration
}

// WithLogger logs cache failures. They never fail the search itself.
func WithLogger(l *slog.Logger) CacheOption {
	return func(o *cacheOptions) { o.logger = l }
}

// WithTTL expires memory cache entries. Redis entries always use the ttl
// passed to RedisCache.
func WithTTL(d time.Duration) CacheOption {
	return func(o *cacheOptions) { o.ttl = d }
}

func resolveCacheOptions(opts []CacheOption) cacheOptions {
	var o cacheOptions
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logger.OrDiscard(o.logger).With(logger.Component("optionsource"))
	return o
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// MemoryCache memoizes provider results per normalized query in an LRU of
// size entries. Size zero uses config.Current().SearchCacheSize. Failed
// lookups are not cached.
func MemoryCache[O any](size int, provider field.OptionsProvider[O], opts ...CacheOption) field.OptionsProvider[O] {
	if size <= 0 {
		size = config.Current().SearchCacheSize
	}
	o := resolveCacheOptions(opts)
	lru := cache.NewLRUCache(size, cache.WithTTL[string, []O](o.ttl))

	return func(ctx context.Context, query string) ([]O, error) {
		if provider == nil {
			return nil, ErrNilClient
		}
		return lru.GetOrCompute(normalizeQuery(query), func() ([]O, error) {
			return provider(ctx, query)
		})
	}
}

// RedisCache memoizes provider results in Redis as JSON under
// prefix + normalized query for ttl. Redis errors are logged and the
// provider is called directly.
func RedisCache[O any](client redis.Cmdable, prefix string, ttl time.Duration, provider field.OptionsProvider[O], opts ...CacheOption) field.OptionsProvider[O] {
	o := resolveCacheOptions(opts)

	return func(ctx context.Context, query string) ([]O, error) {
		if client == nil || provider == nil {
			return nil, ErrNilClient
		}
		key := prefix + normalizeQuery(query)

		raw, err := client.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var cached []O
			uerr := json.Unmarshal(raw, &cached)
			if uerr == nil {
				return cached, nil
			}
			o.logger.WarnContext(ctx, "corrupt cached options", slog.String("key", key), logger.Error(uerr))
		case !errors.Is(err, redis.Nil):
			o.logger.WarnContext(ctx, "options cache read failed", slog.String("key", key), logger.Error(err))
		}

		opts, err := provider(ctx, query)
		if err != nil {
			return nil, err
		}

		payload, err := json.Marshal(opts)
		if err == nil {
			err = client.Set(ctx, key, payload, ttl).Err()
		}
		if err != nil {
			o.logger.WarnContext(ctx, "options cache write failed", slog.String("key", key), logger.Error(err))
		}
		return opts, nil
	}
}
