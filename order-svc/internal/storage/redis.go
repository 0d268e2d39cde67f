package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"eatplus/order-svc/internal/domain"
	"eatplus/pkg/orderevents"
)

const restaurantsKey = "catalog:restaurants"

// RedisCache keeps the public restaurant list for a short TTL.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) GetRestaurants(ctx context.Context) ([]domain.Restaurant, bool, error) {
	data, err := c.rdb.Get(ctx, restaurantsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var restaurants []domain.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		return nil, false, fmt.Errorf("decode cached restaurants: %w", err)
	}
	return restaurants, true, nil
}

func (c *RedisCache) SetRestaurants(ctx context.Context, restaurants []domain.Restaurant) error {
	data, err := json.Marshal(restaurants)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, restaurantsKey, data, c.ttl).Err()
}

// RedisStats reads the per-status counters notify-svc maintains for each
// restaurant and day.
type RedisStats struct {
	rdb *redis.Client
}

func NewRedisStats(rdb *redis.Client) *RedisStats {
	return &RedisStats{rdb: rdb}
}

func (s *RedisStats) DailyStatusCounts(ctx context.Context, restaurantID int64, day time.Time) (map[string]int64, bool, error) {
	fields, err := s.rdb.HGetAll(ctx, orderevents.StatsKey(day, restaurantID)).Result()
	if err != nil {
		return nil, false, err
	}
	if len(fields) == 0 {
		return nil, false, nil
	}

	counts := make(map[string]int64, len(fields))
	for status, raw := range fields {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false, fmt.Errorf("stats field %s: %w", status, err)
		}
		if n > 0 {
			counts[status] = n
		}
	}
	return counts, true, nil
}
