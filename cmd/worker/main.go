package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/common/logger"
	"solosuccess.app/api/common/metrics"
	"solosuccess.app/api/common/otel"
	"solosuccess.app/api/core/config"
	"solosuccess.app/api/core/db"
	"solosuccess.app/api/core/db/sqlc"
	"solosuccess.app/api/internal/email"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/scraper"
	"solosuccess.app/api/internal/store"
	"solosuccess.app/api/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)
	logger.Setup(cfg)

	slog.InfoContext(ctx, "solosuccess worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Redis.JobGroup,
		"consumer_name", cfg.Redis.ConsumerName)

	// Node 2 keeps worker ids disjoint from the server's.
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Redis.JobStream)

	consumer, err := queue.NewRedisConsumer(ctx, redisClient, queue.ConsumerConfig{
		Stream:       cfg.Redis.JobStream,
		Group:        cfg.Redis.JobGroup,
		Consumer:     cfg.Redis.ConsumerName,
		DLQStream:    cfg.Redis.JobDLQStream,
		BatchSize:    5,
		Block:        5 * time.Second,
		MaxAttempts:  cfg.Redis.MaxAttempts,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	producer := queue.NewRedisProducer(redisClient, cfg.Redis.JobStream, slog.Default())
	defer producer.Close()

	sender := email.NewNoopSender()
	if cfg.Email.Enabled() {
		ses, err := email.NewSESSender(ctx, cfg.Email.Region, cfg.Email.From)
		if err != nil {
			slog.ErrorContext(ctx, "failed to configure email sender", "error", err)
			os.Exit(1)
		}
		sender = ses
	} else {
		slog.WarnContext(ctx, "email disabled: notifications are logged and dropped")
	}

	stores := store.NewStores(database.Queries())
	txRunner := &workerTxRunnerAdapter{db: database}

	fetcher := scraper.NewHTTPFetcher(scraper.Config{
		UserAgent:    cfg.Scraper.UserAgent,
		Timeout:      cfg.Scraper.Timeout,
		MaxBodyBytes: cfg.Scraper.MaxBodyBytes,
	})

	handlers := map[queue.TaskType]worker.TaskHandler{
		queue.TaskTypeCompetitorScrape: worker.NewScrapeHandler(stores, txRunner, fetcher, producer),
		queue.TaskTypeSendEmail:        worker.NewEmailHandler(stores, sender, cfg.AppURL),
	}

	w := worker.New(consumer, handlers, worker.Config{
		MaxAttempts: cfg.Redis.MaxAttempts,
	})

	reclaimer := worker.NewReclaimer(redisClient, worker.ReclaimerConfig{
		Stream:    cfg.Redis.JobStream,
		Group:     cfg.Redis.JobGroup,
		Consumer:  cfg.Redis.ConsumerName + "-reclaimer",
		MinIdle:   cfg.Redis.ReclaimIdle,
		Interval:  time.Minute,
		BatchSize: 10,
	}, consumer, w.ProcessMessage)

	scheduler := worker.NewScheduler(stores.ScrapingJobs(), producer, worker.SchedulerConfig{
		Interval: cfg.Redis.SchedulerTick,
	})

	metricsServer := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           metrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "metrics server error", "error", err)
		}
	}()

	errCh := make(chan error, 3)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()
	go func() {
		scheduler.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running",
		"scheduler_tick", cfg.Redis.SchedulerTick,
		"reclaim_idle", cfg.Redis.ReclaimIdle)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Stop producers of work before the worker so nothing new lands mid-drain.
	scheduler.Stop()
	reclaimer.Stop()
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "metrics server shutdown error", "error", err)
	}
	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

// workerTxRunnerAdapter bridges db.DB to worker.TxRunner.
type workerTxRunnerAdapter struct {
	db *db.DB
}

func (a *workerTxRunnerAdapter) WithTx(ctx context.Context, fn func(stores worker.StoreProvider) error) error {
	return a.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}

const banner = `
 ____        _       ____
/ ___|  ___ | | ___ / ___| _   _  ___ ___ ___  ___ ___
\___ \ / _ \| |/ _ \\___ \| | | |/ __/ __/ _ \/ __/ __|
 ___) | (_) | | (_) |___) | |_| | (_| (_|  __/\__ \__ \
|____/ \___/|_|\___/|____/ \__,_|\___\___\___||___/___/  worker
`
