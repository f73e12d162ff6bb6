package landing

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps Redis based caching of the landing aggregate. Staleness is
// bounded by the TTL alone; storefront writes show up on the next expiry.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Fetch loads a cached value or populates it using the loader. A nil cache
// or client degrades to calling the loader directly; either way the value
// round-trips through JSON so cached and uncached responses are identical.
func (c *Cache) Fetch(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("cache: loader required")
	}
	if c == nil || c.client == nil {
		value, err := loader(ctx)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dest)
	}
	// Redis trouble degrades to the store; the cache never fails a call.
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		if unmarshalErr := json.Unmarshal(payload, dest); unmarshalErr == nil {
			return nil
		}
	}
	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_ = c.client.Set(ctx, key, raw, c.ttl).Err()
	return json.Unmarshal(raw, dest)
}
