package replaycache

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache remembers forwarded transaction ids for a time window. It never
// blocks a replay; it only reports how often an id has been forwarded.
type Cache struct {
	cache *cache.Cache
}

// New creates a replay cache that forgets ids after window.
func New(window, cleanupInterval time.Duration) *Cache {
	return &Cache{
		cache: cache.New(window, cleanupInterval),
	}
}

// Record marks transactionID as forwarded and returns how many times it has
// been forwarded within the window, including this one. The id is copied
// before it is stored, so callers may pass strings backed by reused buffers.
func (c *Cache) Record(transactionID string) int {
	transactionID = strings.Clone(transactionID)
	if err := c.cache.Add(transactionID, 1, cache.DefaultExpiration); err == nil {
		return 1
	}
	count, err := c.cache.IncrementInt(transactionID, 1)
	if err != nil {
		// expired between Add and IncrementInt
		c.cache.Set(transactionID, 1, cache.DefaultExpiration)
		return 1
	}
	return count
}

// seen returns how many times transactionID has been forwarded within the window.
func (c *Cache) seen(transactionID string) int {
	if count, found := c.cache.Get(transactionID); found {
		return count.(int)
	}
	return 0
}
