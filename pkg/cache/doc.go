// Package cache provides a small generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// formkit uses it to keep compiled validation patterns (so a pattern constraint
// is compiled once, not on every validation pass) and to memoise
// search-as-you-type option results per query.
//
// # Usage
//
//	patterns := cache.NewLRUCache[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrCompute(src, func() (*regexp.Regexp, error) {
//	    return regexp.Compile(src)
//	})
//
//	results := cache.NewLRUCache[string, []Country](128,
//	    cache.WithTTL[string, []Country](time.Minute),
//	)
package cache
