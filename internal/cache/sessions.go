package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ksaeil2001/capss/internal/domain"
	"github.com/redis/go-redis/v9"
)

func sessionKey(token string) string {
	return fmt.Sprintf("diet:session:%s", token)
}

// SaveSession stores a bearer token with its own lifetime; Redis expiry is
// what makes anonymous tokens lapse after 24h without any cleanup job.
func (c *Cache) SaveSession(ctx context.Context, token string, s domain.Session, ttl time.Duration) error {
	val, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := c.client.Set(ctx, sessionKey(token), val, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// GetSession resolves a bearer token. An unknown or expired token returns
// (nil, false, nil).
func (c *Cache) GetSession(ctx context.Context, token string) (*domain.Session, bool, error) {
	val, err := c.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get session: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, false, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, true, nil
}

// DeleteSession revokes a token (logout).
func (c *Cache) DeleteSession(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
