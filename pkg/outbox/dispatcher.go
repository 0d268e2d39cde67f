package outbox

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"

	"eatplus/pkg/tracing"
)

// EventIDHeader carries the outbox row id. Consumers deduplicate on it since a
// row can be published again at a new offset after a relay crash or an
// expired lease.
const EventIDHeader = "event_id"

type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Dispatcher publishes outbox events to a Kafka topic keyed by aggregate id.
type Dispatcher struct {
	log      *slog.Logger
	producer Producer
	topic    string
}

func NewDispatcher(log *slog.Logger, producer Producer, topic string) *Dispatcher {
	return &Dispatcher{log: log, producer: producer, topic: topic}
}

// Message builds the Kafka record for one outbox event.
func (d *Dispatcher) Message(event Event) kafka.Message {
	headers := []kafka.Header{
		{Key: EventIDHeader, Value: []byte(strconv.FormatInt(event.ID, 10))},
		{Key: "event_type", Value: []byte(event.Type)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
	}
	if event.Traceparent != "" {
		headers = append(headers, kafka.Header{Key: tracing.TraceparentHeader, Value: []byte(event.Traceparent)})
	}
	return kafka.Message{
		Topic:   d.topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	}
}

// Dispatch writes the events in a single WriteMessages call. The returned
// slice lines up with events; a nil entry means that event was accepted.
func (d *Dispatcher) Dispatch(ctx context.Context, events ...Event) []error {
	errs := make([]error, len(events))
	if len(events) == 0 {
		return errs
	}

	msgs := make([]kafka.Message, len(events))
	for i, e := range events {
		msgs[i] = d.Message(e)
	}

	err := d.producer.WriteMessages(ctx, msgs...)
	if err == nil {
		d.log.Debug("outbox dispatched", "count", len(events))
		return errs
	}

	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) && len(writeErrs) == len(events) {
		copy(errs, writeErrs)
	} else {
		for i := range errs {
			errs[i] = err
		}
	}
	for i, e := range events {
		if errs[i] != nil {
			d.log.Error("outbox dispatch failed", "event_id", e.ID, "err", errs[i])
		}
	}
	return errs
}
