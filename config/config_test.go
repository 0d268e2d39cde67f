package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "TAX_RATE_BPS", "CHECKOUT_SCOPE", "CATALOG_CACHE_TTL", "REDIS_HOST", "REDIS_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, int64(1300), cfg.Orders.TaxRateBasisPoints)
	assert.Equal(t, "platform", cfg.Orders.CheckoutScope)
	assert.Equal(t, time.Minute, cfg.Orders.CatalogCacheTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestNewKafkaWriter_ShortBatchTimeout(t *testing.T) {
	w := NewKafkaWriter(KafkaConfig{Broker: "localhost:9092"})

	assert.Empty(t, w.Topic)
	assert.Equal(t, 100, w.BatchSize)
	assert.LessOrEqual(t, w.BatchTimeout, 10*time.Millisecond)
	assert.Less(t, w.WriteTimeout, 15*time.Second)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TAX_RATE_BPS", "800")
	t.Setenv("CHECKOUT_SCOPE", "restaurant")
	t.Setenv("CATALOG_CACHE_TTL", "30s")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(800), cfg.Orders.TaxRateBasisPoints)
	assert.Equal(t, "restaurant", cfg.Orders.CheckoutScope)
	assert.Equal(t, 30*time.Second, cfg.Orders.CatalogCacheTTL)
	assert.Contains(t, cfg.Database.DSN(), "host=db")
	assert.False(t, strings.Contains(cfg.String(), "hunter2"))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "tax not a number", key: "TAX_RATE_BPS", value: "13%"},
		{name: "negative tax", key: "TAX_RATE_BPS", value: "-1"},
		{name: "unknown scope", key: "CHECKOUT_SCOPE", value: "galaxy"},
		{name: "bad ttl", key: "CATALOG_CACHE_TTL", value: "soon"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv(testCase.key, testCase.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
