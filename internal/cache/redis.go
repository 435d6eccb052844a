package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stylecrate/outfit-service/internal/domain"
)

const defaultTTL = 30 * time.Minute

// Entry is the cached form of a generated recommendation, keyed per user per
// calendar day. Weather shifts within a day are absorbed by the TTL.
type Entry struct {
	RecommendationID string                      `json:"recommendation_id"`
	Result           domain.RecommendationResult `json:"result"`
}

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func buildKey(userID int64, day string) string {
	return fmt.Sprintf("outfit:user:%d:date:%s", userID, day)
}

// Get a cached recommendation for the user's current day
func (c *Cache) Get(ctx context.Context, userID int64, day string) (*Entry, bool, error) {
	key := buildKey(userID, day)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to get recommendation from cache: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recommendation %s: %w", key, err)
	}

	return &entry, true, nil
}

// Store a recommendation in cache
func (c *Cache) Set(ctx context.Context, userID int64, day string, entry Entry) error {
	key := buildKey(userID, day)
	val, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set recommendation in cache: %w", err)
	}

	return nil
}

// Clear user cache: used when feedback lands or the wardrobe changes
func (c *Cache) ClearUserCache(ctx context.Context, userID int64) error {
	pattern := fmt.Sprintf("outfit:user:%d:date:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
