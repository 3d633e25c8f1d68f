// Package cache wraps redis for the small lookup lists the filter screens
// poll aggressively (distinct shift codes and lines).
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	KeyShiftOptions = "workforce:options:shifts"
	KeyLineOptions  = "workforce:options:lines"

	// OptionTTL bounds staleness between roster uploads.
	OptionTTL = 60 * time.Second
)

type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// GetJSON loads key into dest. The second return reports a hit; redis
// errors are treated as misses so the caller falls through to the database.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(payload, dest) == nil
}

// SetJSON stores value under key with the option TTL; failures are ignored,
// the cache is advisory.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.client.Set(ctx, key, payload, OptionTTL)
}

// Invalidate drops the given keys, used after roster uploads change the
// option lists.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil {
		return
	}

	c.client.Del(ctx, keys...)
}
