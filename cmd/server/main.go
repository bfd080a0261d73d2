package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"salaire/internal/domaingate"
	"salaire/internal/identity"
	"salaire/internal/platform/config"
	"salaire/internal/platform/httpserver"
	"salaire/internal/platform/logger"
	"salaire/internal/platform/postgres"
	platformredis "salaire/internal/platform/redis"
	"salaire/internal/salary/metrics"
	"salaire/internal/salary/query"
	"salaire/internal/salary/retention"
	"salaire/internal/salary/service"
	pendingstore "salaire/internal/salary/store/pending"
	publishedstore "salaire/internal/salary/store/published"
	referencestore "salaire/internal/salary/store/reference"
	httptransport "salaire/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx := context.Background()

	var (
		pending   service.PendingStore
		published interface {
			service.PublishedStore
			query.Dataset
		}
		reference httptransport.ReferenceStore
		purger    retention.PendingPurger
	)

	if cfg.PostgresURL != "" {
		db, err := postgres.Open(ctx, cfg.PostgresURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		pg := pendingstore.NewPostgres(db)
		pending, purger = pg, pg
		published = publishedstore.NewPostgres(db)
		reference = referencestore.NewPostgres(db)
	} else {
		log.Warn("SALAIRE_POSTGRES_URL not set, using in-memory stores")
		mem := pendingstore.NewMemory()
		pending, purger = mem, mem
		published = publishedstore.NewMemory()
		reference = referencestore.NewMemory(
			[]string{"Backend Engineer", "Frontend Engineer", "Data Analyst", "Product Manager"},
			[]string{"Abidjan", "Bouaké", "Yamoussoukro", "San-Pédro"},
		)
	}

	var snapshotCache domaingate.SnapshotCache = domaingate.NewMemoryCache()
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Warn("redis unavailable, denylist cache is process-local", "error", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		snapshotCache = domaingate.NewRedisCache(redisClient)
	}
	gates := domaingate.NewLoader(
		domaingate.NewFeed(cfg.DenylistFeedURL),
		snapshotCache,
		cfg.DenylistTTL,
		log,
	)

	verifier := identity.NewClient(cfg.IdentityURL, cfg.IdentityJWTSecret)

	svc, err := service.New(pending, published, verifier, cfg.ConfirmReturnURL,
		service.WithLogger(log),
		service.WithMetrics(m),
	)
	if err != nil {
		log.Error("service construction failed", "error", err)
		os.Exit(1)
	}

	engine := query.NewEngine(published, log)

	sweeper := retention.NewSweeper(purger, cfg.PendingRetention, log, m)
	if err := sweeper.Start(); err != nil {
		log.Error("retention sweeper failed to start", "error", err)
		os.Exit(1)
	}
	defer sweeper.Stop()

	handler := httptransport.NewHandler(svc, engine, reference, gates, log)
	router := httptransport.NewRouter(handler)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting salaire", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
