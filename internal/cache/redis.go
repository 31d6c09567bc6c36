package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"service-gas-delivery/internal/domain"
)

const redisKeyPrefix = "route:"

// RedisCache is a RouteCache shared between processes.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisClient parses url and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewRedisCache wraps client with the given entry TTL.
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get loads and decodes the route stored under key.
func (c *RedisCache) Get(ctx context.Context, key string) (domain.Route, bool, error) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Route{}, false, nil
	}
	if err != nil {
		return domain.Route{}, false, fmt.Errorf("route cache get: %w", err)
	}
	var route domain.Route
	if err := json.Unmarshal(raw, &route); err != nil {
		return domain.Route{}, false, fmt.Errorf("route cache decode: %w", err)
	}
	return route, true, nil
}

// Set encodes route and stores it with the TTL.
func (c *RedisCache) Set(ctx context.Context, key string, route domain.Route) error {
	raw, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("route cache encode: %w", err)
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("route cache set: %w", err)
	}
	return nil
}
