package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatplus/pkg/outbox"
)

func TestStore_Seen(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	ctx := context.Background()
	key := store.Key(kafka.Message{Topic: "order.events", Partition: 2, Offset: 99})
	assert.Equal(t, "idem:order.events:2:99", key)

	seen, err := store.Seen(ctx, key)
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = store.Seen(ctx, key)
	require.NoError(t, err)
	assert.True(t, seen)

	require.NoError(t, store.Forget(ctx, key))
	seen, err = store.Seen(ctx, key)
	require.NoError(t, err)
	assert.False(t, seen)

	mr.FastForward(2 * time.Hour)
	seen, err = store.Seen(ctx, key)
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestStore_Key_EventIDOutlivesOffset(t *testing.T) {
	store := NewStore(nil, time.Hour)
	headers := []kafka.Header{{Key: outbox.EventIDHeader, Value: []byte("314")}}

	first := store.Key(kafka.Message{Topic: "order.events", Partition: 0, Offset: 10, Headers: headers})
	again := store.Key(kafka.Message{Topic: "order.events", Partition: 0, Offset: 11, Headers: headers})

	assert.Equal(t, "idem:order.events:event:314", first)
	assert.Equal(t, first, again)
	assert.NotEqual(t, first, store.Key(kafka.Message{Topic: "order.events", Partition: 0, Offset: 10}))
}
