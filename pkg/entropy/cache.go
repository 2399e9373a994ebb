package entropy

import (
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// MaxCachedLen is the longest input, in bytes, that Cache will store.
// Longer inputs are computed on every call.
const MaxCachedLen = 4096

var ErrInvalidCacheSize = errors.New("cache size must be positive")

// Cache memoizes Shannon for callers that score the same candidates
// repeatedly. It is safe for concurrent use.
type Cache struct {
	log    hclog.Logger
	values *lru.Cache[string, float32]

	hits   atomic.Uint64
	misses atomic.Uint64
}

func NewCache(log hclog.Logger, size int) (*Cache, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidCacheSize, "got %d", size)
	}

	if log == nil {
		log = hclog.NewNullLogger()
	}

	c := &Cache{
		log: log,
	}

	values, err := lru.NewWithEvict[string, float32](size, func(key string, value float32) {
		c.log.Trace("evicted entropy value", "len", len(key), "entropy", value)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "creating lru of size %d", size)
	}

	c.values = values

	return c, nil
}

// Shannon returns the same value as the package level Shannon.
func (c *Cache) Shannon(text string) float32 {
	if len(text) > MaxCachedLen {
		c.misses.Add(1)
		return Shannon(text)
	}

	if v, ok := c.values.Get(text); ok {
		c.hits.Add(1)
		return v
	}

	c.misses.Add(1)

	v := Shannon(text)
	c.values.Add(text, v)

	return v
}

func (c *Cache) Hits() uint64 {
	return c.hits.Load()
}

func (c *Cache) Misses() uint64 {
	return c.misses.Load()
}

func (c *Cache) Len() int {
	return c.values.Len()
}

func (c *Cache) Purge() {
	c.values.Purge()
}
