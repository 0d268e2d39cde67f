package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"eatplus/config"
	httpapi "eatplus/order-svc/internal/api/http"
	"eatplus/order-svc/internal/domain"
	"eatplus/order-svc/internal/service"
	"eatplus/order-svc/internal/storage"
	"eatplus/pkg/auth"
	"eatplus/pkg/logging"
	"eatplus/pkg/outbox"
	"eatplus/pkg/shutdown"
	"eatplus/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	log := logging.New("order-svc", cfg.LogLevel)
	log.Info("config loaded", "config", cfg.String())

	stopTracing := tracing.Init("order-svc")
	defer stopTracing(context.Background())

	db := config.MustInitPostgres(cfg.Database, log)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.Migrate(); err != nil {
		log.Error("migrate schema", "err", err)
		os.Exit(1)
	}

	rdb := config.MustInitRedis(cfg.Redis, log)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg.Kafka)
	defer writer.Close()

	relay := outbox.NewRelay(log,
		storage.NewOutboxStore(log, db),
		outbox.NewDispatcher(log, writer, cfg.Kafka.OrderTopic),
		uuid.NewString(),
	)

	catalogSvc := service.NewCatalogService(repo,
		storage.NewRedisCache(rdb, cfg.Orders.CatalogCacheTTL),
		service.BaseURLResolver{BaseURL: cfg.MediaBaseURL},
		log,
	)
	cartSvc := service.NewCartService(repo, repo,
		domain.TaxPricer{RateBasisPoints: cfg.Orders.TaxRateBasisPoints},
		service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL},
		service.CheckoutScope(cfg.Orders.CheckoutScope),
		log,
	)
	fulfillmentSvc := service.NewFulfillmentService(repo, storage.NewRedisStats(rdb), log)

	handler := httpapi.NewHandler(catalogSvc, cartSvc, fulfillmentSvc, auth.NewVerifier(cfg.Auth.JWTSecret), log)
	router := httpapi.NewRouter(handler)

	ctx, stop := shutdown.WithSignals(context.Background())
	defer stop()

	relayDone := make(chan struct{})
	go func() {
		defer close(relayDone)
		relay.Run(ctx)
	}()

	if err := httpapi.StartServer(ctx, log, cfg.HTTPAddr, router); err != nil {
		log.Error("http server failed", "err", err)
		stop()
	}
	<-relayDone
	log.Info("order service stopped")
}
