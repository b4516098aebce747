package optionsource_test

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/optionsource"
	"github.com/dmitrymomot/formkit/pkg/scheduler"
)

func countingProvider(calls *atomic.Int32, err error) field.OptionsProvider[country] {
	return func(_ context.Context, query string) ([]country, error) {
		calls.Add(1)
		if err != nil {
			return nil, err
		}
		return []country{{Code: query, Name: "Result for " + query}}, nil
	}
}

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	t.Run("memoizes by normalized query", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		cached := optionsource.MemoryCache(2, countingProvider(&calls, nil))

		first, err := cached(context.Background(), "ab")
		require.NoError(t, err)
		second, err := cached(context.Background(), "  AB ")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		boom := errors.New("boom")
		cached := optionsource.MemoryCache(0, countingProvider(&calls, boom))

		for range 2 {
			_, err := cached(context.Background(), "x")
			assert.ErrorIs(t, err, boom)
		}
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("ttl", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		cached := optionsource.MemoryCache(4, countingProvider(&calls, nil), optionsource.WithTTL(time.Millisecond))
		_, _ = cached(context.Background(), "x")
		time.Sleep(5 * time.Millisecond)
		_, _ = cached(context.Background(), "x")
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("feeds field search", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		s := scheduler.New()
		f := field.New(field.Config[string, country]{
			Disabled:        field.Enabled(),
			OptionsProvider: optionsource.MemoryCache(4, countingProvider(&calls, nil)),
			SearchDebounce:  time.Millisecond,
			Scheduler:       s,
		})

		for range 2 {
			done := f.Search(context.Background(), "de")
			require.NoError(t, s.Wait(context.Background()))
			<-done
		}
		assert.Equal(t, int32(1), calls.Load())
		require.Len(t, f.Options(), 1)
		assert.Equal(t, "Result for de", f.OptionLabel(f.Options()[0]))

		<-f.SetFromOptions(func(c country) bool { return c.Code == "de" })
		assert.Equal(t, "de", f.Value())
	})
}

func TestRedisCache(t *testing.T) {
	t.Parallel()

	t.Run("nil client", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		_, err := optionsource.RedisCache(nil, "p:", time.Minute, countingProvider(&calls, nil))(context.Background(), "x")
		assert.ErrorIs(t, err, optionsource.ErrNilClient)
	})

	t.Run("round trip", func(t *testing.T) {
		url := os.Getenv("REDIS_URL")
		if url == "" {
			t.Skip("REDIS_URL is not set")
		}

		ctx := context.Background()
		client, err := optionsource.ConnectRedis(ctx, optionsource.RedisConfig{ConnectionURL: url, RetryAttempts: 1})
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		prefix := "formkit:test:" + time.Now().Format("150405.000000") + ":"
		t.Cleanup(func() { client.Del(context.Background(), prefix+"fr") })

		var calls atomic.Int32
		cached := optionsource.RedisCache(client, prefix, time.Minute, countingProvider(&calls, nil))

		first, err := cached(ctx, "FR")
		require.NoError(t, err)
		second, err := cached(ctx, "fr")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestConnect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := optionsource.ConnectPostgres(ctx, optionsource.PostgresConfig{ConnectionString: "postgres://%zz"})
	assert.ErrorIs(t, err, optionsource.ErrFailedToParseConfig)

	_, err = optionsource.ConnectRedis(ctx, optionsource.RedisConfig{ConnectionURL: "http://nope"})
	assert.ErrorIs(t, err, optionsource.ErrFailedToParseConfig)

	t.Run("opensearch", func(t *testing.T) {
		t.Parallel()

		ok := httptestCluster(t, false)
		_, err := optionsource.ConnectOpenSearch(ctx, optionsource.OpenSearchConfig{Addresses: []string{ok}})
		require.NoError(t, err)

		down := httptestCluster(t, true)
		_, err = optionsource.ConnectOpenSearch(ctx, optionsource.OpenSearchConfig{Addresses: []string{down}})
		assert.ErrorIs(t, err, optionsource.ErrConnectionFailed)
	})
}
