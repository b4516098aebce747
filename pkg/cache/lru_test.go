package cache_test

import (
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

func TestLRUCache_Basic(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](3)
		c.Put("a", 1)
		c.Put("b", 2)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("get non-existent", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](3)
		val, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Zero(t, val)
	})

	t.Run("update existing", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](3)
		c.Put("a", 1)
		old, existed := c.Put("a", 2)
		assert.True(t, existed)
		assert.Equal(t, 1, old)

		val, _ := c.Get("a")
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, c.Len())
	})
}

func TestLRUCache_Eviction(t *testing.T) {
	t.Run("evict least recently used", func(t *testing.T) {
		c := cache.NewLRUCache[string, int](2)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Get("a")
		c.Put("c", 3)

		_, ok := c.Get("b")
		assert.False(t, ok)
		_, ok = c.Get("a")
		assert.True(t, ok)
		_, ok = c.Get("c")
		assert.True(t, ok)
	})

	t.Run("callback receives evicted entries", func(t *testing.T) {
		var evicted []string
		c := cache.NewLRUCache(1, cache.WithEvictCallback(func(k string, _ int) {
			evicted = append(evicted, k)
		}))
		c.Put("a", 1)
		c.Put("b", 2)
		c.Remove("b")
		assert.Equal(t, []string{"a", "b"}, evicted)
	})
}

func TestLRUCache_TTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := cache.NewLRUCache(4, cache.WithTTL[string, int](time.Minute))
	c.SetClock(func() time.Time { return now })

	c.Put("a", 1)
	_, ok := c.Get("a")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestLRUCache_GetOrCompute(t *testing.T) {
	c := cache.NewLRUCache[string, *regexp.Regexp](4)
	calls := 0
	compile := func(src string) func() (*regexp.Regexp, error) {
		return func() (*regexp.Regexp, error) {
			calls++
			return regexp.Compile(src)
		}
	}

	first, err := c.GetOrCompute("^a+$", compile("^a+$"))
	require.NoError(t, err)
	second, err := c.GetOrCompute("^a+$", compile("^a+$"))
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	_, err = c.GetOrCompute("(", compile("("))
	require.Error(t, err)
	_, ok := c.Get("(")
	assert.False(t, ok)

	errBoom := errors.New("boom")
	_, err = c.GetOrCompute("x", func() (*regexp.Regexp, error) { return nil, errBoom })
	assert.ErrorIs(t, err, errBoom)
}

func TestLRUCache_Clear(t *testing.T) {
	cleared := 0
	c := cache.NewLRUCache(3, cache.WithEvictCallback(func(string, int) { cleared++ }))
	c.Put("a", 1)
	c.Put("b", 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 2, cleared)
}

func TestLRUCache_EdgeCases(t *testing.T) {
	assert.Panics(t, func() { cache.NewLRUCache[string, int](0) })
	assert.Panics(t, func() { cache.NewLRUCache[string, int](-1) })

	_, ok := cache.NewLRUCache[string, int](1).Remove("missing")
	assert.False(t, ok)
}

func TestLRUCache_Concurrent(t *testing.T) {
	c := cache.NewLRUCache[int, int](64)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				c.Put(n*100+j, j)
				c.Get(n*100 + j)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 64, c.Len())
}
