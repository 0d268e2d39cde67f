package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"eatplus/pkg/orderevents"
)

// statsTTL keeps yesterday's counters around for late status changes.
const statsTTL = 48 * time.Hour

// RedisStats maintains the per-status counters order-svc serves as today's stats.
type RedisStats struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStats(rdb *redis.Client) *RedisStats {
	return &RedisStats{rdb: rdb, ttl: statsTTL}
}

func (s *RedisStats) RecordPlaced(ctx context.Context, restaurantID int64, day time.Time) error {
	key := orderevents.StatsKey(day, restaurantID)
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HIncrBy(ctx, key, "placed", 1)
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	return err
}

// RecordTransition moves one order from one status counter to another.
func (s *RedisStats) RecordTransition(ctx context.Context, restaurantID int64, day time.Time, from, to string) error {
	key := orderevents.StatsKey(day, restaurantID)
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		if from != "" {
			p.HIncrBy(ctx, key, from, -1)
		}
		p.HIncrBy(ctx, key, to, 1)
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	return err
}
