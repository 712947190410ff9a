// README: Redis-backed cache for reverse-geocode lookups.
package maps

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// GeocodeCache stores resolved country codes per coordinate cell. A cached
// empty string is a valid entry ("no country here"), stored under a
// sentinel so it is distinguishable from a cache miss.
type GeocodeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

const noCountrySentinel = "-"

func NewGeocodeCache(rdb *redis.Client, ttl time.Duration) *GeocodeCache {
	return &GeocodeCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached country code for a cell. The second return value
// reports whether the cell was cached at all. Redis errors degrade to a
// cache miss.
func (c *GeocodeCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	if val == noCountrySentinel {
		return "", true
	}
	return val, true
}

// Set stores a resolved country code. Failures are ignored: the cache is an
// optimization, never a dependency.
func (c *GeocodeCache) Set(ctx context.Context, key, code string) {
	val := code
	if val == "" {
		val = noCountrySentinel
	}
	_ = c.rdb.Set(ctx, key, val, c.ttl).Err()
}
