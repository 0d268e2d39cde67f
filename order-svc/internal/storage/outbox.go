package storage

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"eatplus/pkg/outbox"
)

// OutboxStore leases unsent order events to the relay. An event whose lease
// ran out is picked up again by the next relay that asks.
type OutboxStore struct {
	log *slog.Logger
	db  *sql.DB
}

func NewOutboxStore(log *slog.Logger, db *sql.DB) *OutboxStore {
	return &OutboxStore{log: log, db: db}
}

func (s *OutboxStore) LockBatch(ctx context.Context, relayID string, batchSize int, lease time.Duration) ([]outbox.Event, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	events, err := func() ([]outbox.Event, error) {
		rows, err := tx.QueryContext(ctx, `
			SELECT id, aggregate_type, aggregate_id, type, payload, traceparent, created_at, retry_count
			FROM outbox
			WHERE status = 'pending' OR (status = 'in_progress' AND lease_until < now())
			ORDER BY id
			FOR UPDATE SKIP LOCKED
			LIMIT $1`, batchSize)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var events []outbox.Event
		for rows.Next() {
			var e outbox.Event
			if err := rows.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &e.Type, &e.Payload, &e.Traceparent,
				&e.CreatedAt, &e.RetryCount); err != nil {
				return nil, err
			}
			e.Status = outbox.StatusInProgress
			events = append(events, e)
		}
		return events, rows.Err()
	}()
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, tx.Commit()
	}

	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE outbox SET status = 'in_progress', relay_id = $1, lease_until = now() + $2::interval
		WHERE id = ANY($3)`, relayID, lease.String(), pq.Array(ids))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *OutboxStore) MarkSent(ctx context.Context, ids []int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE outbox SET status = 'sent', lease_until = NULL WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("no outbox rows updated")
	}
	return nil
}

// MarkFailed returns the event to pending until it has failed MaxRetries
// times, after which it is parked as failed.
func (s *OutboxStore) MarkFailed(ctx context.Context, id int64, errMsg string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE outbox
		SET retry_count = retry_count + 1,
			last_error = $2,
			lease_until = NULL,
			status = CASE WHEN retry_count + 1 >= $3 THEN 'failed' ELSE 'pending' END
		WHERE id = $1`, id, errMsg, outbox.MaxRetries)
	if err != nil {
		return err
	}
	s.log.Warn("outbox event dispatch failed", "event_id", id, "err", errMsg)
	return nil
}

var _ outbox.Store = (*OutboxStore)(nil)
