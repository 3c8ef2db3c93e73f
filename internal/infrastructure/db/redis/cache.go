package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecocollect/collection-system/internal/core/domain"
)

const locationsKey = "locations:all"

// LocationCache holds a TTL'd JSON snapshot of the full location list.
// Every mutation invalidates the snapshot, so a read issued after a write is
// always served fresh from the store.
type LocationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLocationCache creates a LocationCache wrapping the given Redis client.
func NewLocationCache(client *redis.Client, ttl time.Duration) *LocationCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &LocationCache{client: client, ttl: ttl}
}

// Get returns the cached list and whether the snapshot was present.
func (c *LocationCache) Get(ctx context.Context) ([]domain.Location, bool, error) {
	raw, err := c.client.Get(ctx, locationsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var locs []domain.Location
	if err := json.Unmarshal(raw, &locs); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return locs, true, nil
}

// Set stores a fresh snapshot of the list (expires after the configured TTL).
func (c *LocationCache) Set(ctx context.Context, locs []domain.Location) error {
	raw, err := json.Marshal(locs)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, locationsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot.
func (c *LocationCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, locationsKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
