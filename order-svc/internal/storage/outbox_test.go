package storage

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatplus/pkg/outbox"
)

func setupOutbox(t *testing.T) (*OutboxStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewOutboxStore(slog.New(slog.NewTextHandler(io.Discard, nil)), db), mock
}

func TestOutboxStore_LockBatch(t *testing.T) {
	store, mock := setupOutbox(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "aggregate_type", "aggregate_id", "type", "payload", "traceparent", "created_at", "retry_count"}).
			AddRow(int64(1), "order", "42", "order.placed", []byte(`{"order_id":42}`), "", created, 0).
			AddRow(int64(2), "order", "42", "order.status_changed", []byte(`{"order_id":42}`), "", created, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox SET status = 'in_progress'")).
		WithArgs("relay-1", "30s", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	events, err := store.LockBatch(context.Background(), "relay-1", 100, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "42", events[0].AggregateID)
	assert.Equal(t, outbox.StatusInProgress, events[1].Status)
	assert.Equal(t, 2, events[1].RetryCount)
}

func TestOutboxStore_LockBatch_Empty(t *testing.T) {
	store, mock := setupOutbox(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	events, err := store.LockBatch(context.Background(), "relay-1", 100, 30*time.Second)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestOutboxStore_MarkSent(t *testing.T) {
	store, mock := setupOutbox(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox SET status = 'sent'")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	require.NoError(t, store.MarkSent(context.Background(), []int64{1, 2}))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox SET status = 'sent'")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.Error(t, store.MarkSent(context.Background(), []int64{3}))
}

func TestOutboxStore_MarkFailed(t *testing.T) {
	store, mock := setupOutbox(t)

	mock.ExpectExec(regexp.QuoteMeta("status = CASE WHEN retry_count + 1 >= $3 THEN 'failed' ELSE 'pending' END")).
		WithArgs(int64(7), "broker down", outbox.MaxRetries).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.MarkFailed(context.Background(), 7, "broker down"))
}
