package service

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"eatplus/notify-svc/internal/domain"
	"eatplus/notify-svc/internal/storage"
	"eatplus/pkg/idempotency"
)

type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Deduplicator interface {
	Key(msg kafka.Message) string
	Seen(ctx context.Context, key string) (bool, error)
	Forget(ctx context.Context, key string) error
}

// StatsStore keeps the per-restaurant daily counters read by order-svc.
type StatsStore interface {
	RecordPlaced(ctx context.Context, restaurantID int64, day time.Time) error
	RecordTransition(ctx context.Context, restaurantID int64, day time.Time, from, to string) error
}

type Publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

var (
	_ Reader       = (*kafka.Reader)(nil)
	_ Deduplicator = (*idempotency.Store)(nil)
	_ StatsStore   = (*storage.RedisStats)(nil)
	_ Publisher    = (*storage.RabbitPublisher)(nil)
)
