package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ksaeil2001/capss/internal/domain"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func recommendationKey(digest string) string {
	return fmt.Sprintf("diet:rec:%s", digest)
}

// GetRecommendation returns the cached recommendation for a profile digest.
// A miss returns (nil, false, nil).
func (c *Cache) GetRecommendation(ctx context.Context, digest string) (*domain.DietRecommendation, bool, error) {
	key := recommendationKey(digest)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get recommendation from cache: %w", err)
	}

	var rec domain.DietRecommendation
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached recommendation %s: %w", key, err)
	}
	return &rec, true, nil
}

// SetRecommendation stores a computed recommendation under its profile digest.
func (c *Cache) SetRecommendation(ctx context.Context, digest string, rec *domain.DietRecommendation) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal recommendation: %w", err)
	}
	if err := c.client.Set(ctx, recommendationKey(digest), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("set recommendation in cache: %w", err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
