package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// RistrettoQuoteCache keeps recent rate quotes keyed by the query
// fingerprint, so identical recalculation triggers skip the backend.
type RistrettoQuoteCache struct {
	cache *ristretto.Cache
}

func NewQuoteCache(maxItems int64) (*RistrettoQuoteCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create quote cache failed: %w", err)
	}
	return &RistrettoQuoteCache{cache: c}, nil
}

func (c *RistrettoQuoteCache) Get(key string) (float64, bool) {
	if v, ok := c.cache.Get(key); ok {
		amount, ok := v.(float64)
		return amount, ok
	}
	return 0, false
}

func (c *RistrettoQuoteCache) Set(key string, amount float64) {
	c.cache.Set(key, amount, 1)
}

func (c *RistrettoQuoteCache) Close() { c.cache.Close() }
