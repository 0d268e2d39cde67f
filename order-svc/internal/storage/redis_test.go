package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatplus/order-svc/internal/domain"
	"eatplus/pkg/orderevents"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestRedisCache_Restaurants(t *testing.T) {
	mr, rdb := setupRedis(t)
	cache := NewRedisCache(rdb, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.GetRestaurants(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := []domain.Restaurant{{ID: 1, Name: "Diner", Verified: true, Available: true, DeliveryFee: 300}}
	require.NoError(t, cache.SetRestaurants(ctx, want))

	got, ok, err := cache.GetRestaurants(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want[0].Name, got[0].Name)
	assert.Equal(t, want[0].DeliveryFee, got[0].DeliveryFee)

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.GetRestaurants(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	mr, rdb := setupRedis(t)
	require.NoError(t, mr.Set(restaurantsKey, "not json"))

	_, ok, err := NewRedisCache(rdb, time.Minute).GetRestaurants(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisStats_DailyStatusCounts(t *testing.T) {
	mr, rdb := setupRedis(t)
	stats := NewRedisStats(rdb)
	day := time.Date(2024, 5, 1, 15, 4, 0, 0, time.UTC)

	_, ok, err := stats.DailyStatusCounts(context.Background(), 7, day)
	require.NoError(t, err)
	assert.False(t, ok)

	key := orderevents.StatsKey(day, 7)
	mr.HSet(key, "placed", "2")
	mr.HSet(key, "completed", "1")
	mr.HSet(key, "received", "0")

	counts, ok, err := stats.DailyStatusCounts(context.Background(), 7, day)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, map[string]int64{"placed": 2, "completed": 1}, counts)
}
