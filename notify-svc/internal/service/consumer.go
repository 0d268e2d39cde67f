package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"eatplus/notify-svc/internal/domain"
	"eatplus/pkg/orderevents"
	"eatplus/pkg/tracing"
)

const maxAttempts = 3

type Consumer struct {
	log       *slog.Logger
	reader    Reader
	dedup     Deduplicator
	stats     StatsStore
	publisher Publisher
	tracer    trace.Tracer
	backoff   time.Duration
}

func NewConsumer(log *slog.Logger, reader Reader, dedup Deduplicator, stats StatsStore, publisher Publisher) *Consumer {
	return &Consumer{
		log:       log,
		reader:    reader,
		dedup:     dedup,
		stats:     stats,
		publisher: publisher,
		tracer:    otel.Tracer("notify-svc/consumer"),
		backoff:   200 * time.Millisecond,
	}
}

// Run consumes order events until ctx is cancelled. Every fetched message is
// committed once handled, whether or not handling succeeded.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("order events consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.log.Info("order events consumer stopping")
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		c.handleWithRetry(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.log.Error("commit failed", "offset", msg.Offset, "err", err)
		}
	}
}

func (c *Consumer) handleWithRetry(ctx context.Context, msg kafka.Message) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := c.Handle(ctx, msg)
		if err == nil {
			return
		}
		c.log.Warn("handle order event failed",
			"partition", msg.Partition,
			"offset", msg.Offset,
			"attempt", attempt,
			"err", err,
		)
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * c.backoff):
		}
	}
	c.log.Error("order event dropped", "partition", msg.Partition, "offset", msg.Offset)
}

// Handle processes one message at most once. A processing failure releases
// the idempotency key so the caller may retry.
func (c *Consumer) Handle(ctx context.Context, msg kafka.Message) error {
	key := c.dedup.Key(msg)
	seen, err := c.dedup.Seen(ctx, key)
	if err != nil {
		return fmt.Errorf("idempotency check: %w", err)
	}
	if seen {
		c.log.Info("duplicate message skipped", "key", key)
		return nil
	}

	ctx = tracing.ExtractKafkaHeaders(ctx, msg.Headers)
	ctx, span := c.tracer.Start(ctx, "ConsumeOrderEvent")
	defer span.End()

	var ev orderevents.Event
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		c.log.Error("unmarshal failed", "key", key, "err", err)
		return nil
	}
	span.SetAttributes(
		attribute.String("order.event_type", ev.Type),
		attribute.Int64("order.id", ev.OrderID),
	)

	if err := c.ProcessEvent(ctx, ev); err != nil {
		span.RecordError(err)
		if ferr := c.dedup.Forget(ctx, key); ferr != nil {
			return errors.Join(err, fmt.Errorf("forget key: %w", ferr))
		}
		return err
	}
	return nil
}

// ProcessEvent updates the restaurant's daily counters and tells the customer.
// Counters are bucketed by the day the order was placed. Only a failed counter
// update is returned; the counters must not be applied twice, so a failed
// publish is logged instead.
func (c *Consumer) ProcessEvent(ctx context.Context, ev orderevents.Event) error {
	day := ev.OccurredAt
	if ev.PlacedAt != nil {
		day = *ev.PlacedAt
	}

	switch ev.Type {
	case orderevents.TypeOrderPlaced:
		if err := c.stats.RecordPlaced(ctx, ev.RestaurantID, day); err != nil {
			return fmt.Errorf("record placed: %w", err)
		}
	case orderevents.TypeOrderStatusChanged:
		if err := c.stats.RecordTransition(ctx, ev.RestaurantID, day, ev.From, ev.To); err != nil {
			return fmt.Errorf("record transition: %w", err)
		}
	default:
		c.log.Debug("ignoring event", "type", ev.Type)
		return nil
	}

	n, ok := domain.NotificationFor(ev)
	if !ok {
		return nil
	}
	if err := c.publisher.Publish(ctx, n); err != nil {
		c.log.Error("publish notification failed", "order_id", ev.OrderID, "status", ev.To, "err", err)
		return nil
	}
	c.log.Info("customer notified", "order_id", ev.OrderID, "status", ev.To)
	return nil
}
