package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"eatplus/pkg/outbox"
)

// Store remembers processed message keys in Redis for ttl.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Key identifies msg by the outbox event id it carries, so one event relayed
// at two offsets maps to one key. Messages without the header fall back to
// their log position.
func (s *Store) Key(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == outbox.EventIDHeader && len(h.Value) > 0 {
			return fmt.Sprintf("idem:%s:event:%s", msg.Topic, h.Value)
		}
	}
	return fmt.Sprintf("idem:%s:%d:%d", msg.Topic, msg.Partition, msg.Offset)
}

// Seen marks key as processed and reports whether it already was.
func (s *Store) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return false, err
	}

	return !ok, nil
}

// Forget clears key so a failed message can be processed again.
func (s *Store) Forget(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
