package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"caseflow/internal/caseproc"
	caseprocmetrics "caseflow/internal/caseproc/metrics"
	caseprocports "caseflow/internal/caseproc/ports"
	"caseflow/internal/casestore"
	"caseflow/internal/gather"
	"caseflow/internal/platform/config"
	"caseflow/internal/platform/httpserver"
	"caseflow/internal/platform/kafka"
	"caseflow/internal/platform/logger"
	platformredis "caseflow/internal/platform/redis"
	"caseflow/internal/provider"
	"caseflow/internal/provider/adapters"
	providermetrics "caseflow/internal/provider/metrics"
	"caseflow/internal/publish"
	publishmetrics "caseflow/internal/publish/metrics"
	httptransport "caseflow/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	producer, err := kafka.NewProducer(cfg.Kafka, log)
	if err != nil {
		log.Error("kafka connect failed", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	health := map[string]httptransport.HealthCheck{
		"redis": redisClient.Health,
		"kafka": producer.Health,
	}

	// Empty Postgres URL selects the in-memory store for local runs.
	var (
		cases    caseprocports.CaseStore
		recorder caseprocports.DecisionRecorder
	)
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.Postgres.URL)
		if err != nil {
			log.Error("postgres connect failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store := casestore.NewPostgres(pool)
		if err := store.EnsureSchema(context.Background()); err != nil {
			log.Error("schema setup failed", "error", err)
			os.Exit(1)
		}
		health["postgres"] = pool.Ping
		cases, recorder = store, store
	} else {
		log.Warn("no postgres configured, using in-memory case store")
		mem := casestore.NewMemory()
		cases, recorder = mem, mem
	}

	httpClient := &http.Client{Timeout: cfg.Providers.Timeout}
	providers := provider.NewSet(
		cfg.Providers,
		adapters.NewCivilHTTP(cfg.Providers.CivilURL, httpClient),
		adapters.NewEmploymentHTTP(cfg.Providers.EmploymentURL, httpClient),
		adapters.NewTaxHTTP(cfg.Providers.TaxURL, httpClient),
		adapters.NewBankHTTP(cfg.Providers.BankURL, httpClient),
		log,
		providermetrics.New(),
	)

	gatherer := gather.New(providers, log)
	publisher := publish.New(
		publish.Config{
			DecidedTopic:  cfg.Publisher.DecidedTopic,
			AlertTopic:    cfg.Publisher.AlertTopic,
			PaymentQueue:  cfg.Publisher.PaymentQueue,
			DocumentQueue: cfg.Publisher.DocumentQueue,
		},
		producer,
		platformredis.NewQueue(redisClient),
		log,
		publish.WithMetrics(publishmetrics.New()),
	)
	orchestrator := caseproc.New(
		cases, recorder, gatherer, publisher,
		cfg.Pipeline.Timeout, log, caseprocmetrics.New(),
	)

	handler := httptransport.NewHandler(orchestrator, health, log)
	srv := httpserver.New(cfg.Server.Addr, httptransport.NewRouter(handler))

	log.Info("starting caseflow", "addr", cfg.Server.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
