package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"eatplus/config"
	"eatplus/notify-svc/internal/service"
	"eatplus/notify-svc/internal/storage"
	"eatplus/pkg/idempotency"
	"eatplus/pkg/logging"
	"eatplus/pkg/shutdown"
	"eatplus/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	log := logging.New("notify-svc", cfg.LogLevel)

	stopTracing := tracing.Init("notify-svc")
	defer stopTracing(context.Background())

	rdb := config.MustInitRedis(cfg.Redis, log)
	defer rdb.Close()

	conn := config.MustInitRabbitMQ(cfg.RabbitMQ, log)
	defer conn.Close()

	publisher, err := storage.NewRabbitPublisher(conn, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Error("init publisher", "err", err)
		os.Exit(1)
	}
	defer publisher.Close()

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	consumer := service.NewConsumer(log,
		reader,
		idempotency.NewStore(rdb, 24*time.Hour),
		storage.NewRedisStats(rdb),
		publisher,
	)

	ctx, stop := shutdown.WithSignals(context.Background())
	defer stop()

	log.Info("notify service starting", "topic", cfg.Kafka.OrderTopic, "exchange", cfg.RabbitMQ.Exchange)
	if err := consumer.Run(ctx); err != nil {
		log.Error("consumer stopped", "err", err)
		stop()
		return
	}
	log.Info("notify service stopped")
}
