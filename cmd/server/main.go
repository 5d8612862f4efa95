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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"solosuccess.app/api/common/id"
	"solosuccess.app/api/common/llm"
	"solosuccess.app/api/common/logger"
	"solosuccess.app/api/common/metrics"
	"solosuccess.app/api/common/otel"
	"solosuccess.app/api/core/config"
	"solosuccess.app/api/core/db"
	"solosuccess.app/api/internal/http/middleware"
	httprouter "solosuccess.app/api/internal/http/router"
	"solosuccess.app/api/internal/queue"
	"solosuccess.app/api/internal/ratelimit"
	"solosuccess.app/api/internal/search"
	"solosuccess.app/api/internal/service"
	"solosuccess.app/api/internal/social"
	"solosuccess.app/api/internal/storage"
	"solosuccess.app/api/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "solosuccess api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	var (
		redisClient *redis.Client
		producer    queue.Producer
		limiter     ratelimit.Limiter = ratelimit.NewMemoryLimiter()
	)
	if cfg.Redis.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}

		redisClient = redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		slog.InfoContext(ctx, "redis connected", "stream", cfg.Redis.JobStream)

		producer = queue.NewRedisProducer(redisClient, cfg.Redis.JobStream, slog.Default())
		limiter = ratelimit.NewFallbackLimiter(ratelimit.NewRedisLimiter(redisClient), limiter)
	} else {
		slog.WarnContext(ctx, "redis disabled: background jobs are dropped and rate limits are per replica")
		producer = queue.NewNoopProducer(slog.Default())
	}
	defer producer.Close()

	objects := storage.NewNoopStore()
	if cfg.Storage.Enabled() {
		s3Store, err := storage.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			slog.ErrorContext(ctx, "failed to configure object storage", "error", err)
			os.Exit(1)
		}
		objects = s3Store
		slog.InfoContext(ctx, "object storage configured", "bucket", cfg.Storage.Bucket)
	}

	index := search.NewNoopIndex()
	if cfg.Search.Enabled() {
		typesense := search.NewTypesenseIndex(cfg.Search)
		if err := typesense.EnsureCollection(ctx); err != nil {
			slog.WarnContext(ctx, "document search unavailable, falling back to name search", "error", err)
		} else {
			index = typesense
		}
	}

	chatClient, err := newChatClient(cfg.ChatLLM)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create chat client", "error", err)
		os.Exit(1)
	}
	brandClient, err := newStructuredClient(cfg.BrandLLM)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create brand client", "error", err)
		os.Exit(1)
	}

	stores := store.NewStores(database.Queries())
	platforms := social.NewRegistry(cfg.Social)

	deps := service.Deps{
		Producer:             producer,
		Objects:              objects,
		Index:                index,
		ChatLLM:              chatClient,
		BrandLLM:             brandClient,
		SocialPlatforms:      service.OAuthPlatforms(platforms),
		SocialState:          social.NewStateSigner(cfg.Social.StateSecret),
		BillingWebhookSecret: cfg.BillingWebhookSecret,
	}
	if cfg.WorkOS.Enabled() {
		deps.Identity = service.NewWorkOSProvider(cfg.WorkOS)
	} else {
		slog.WarnContext(ctx, "workos disabled: sign-in is unavailable")
	}

	services := service.NewServices(stores, service.NewTxRunner(database), deps)

	processor := social.NewProcessor(stores.SocialPosts(), stores.SocialConnections(), platforms.Publishers(), social.ProcessorConfig{
		BatchSize:   cfg.Processor.BatchSize,
		MaxAttempts: int(cfg.Processor.MaxAttempts),
	})
	if cfg.Processor.AutoStart {
		if err := processor.Start(cfg.Processor.Interval); err != nil {
			slog.ErrorContext(ctx, "failed to start social processor", "error", err)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, limiter, processor)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second, // document uploads
		WriteTimeout:      90 * time.Second, // chat completions with tool rounds
		IdleTimeout:       120 * time.Second,
	}

	metricsServer := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           metrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	go func() {
		slog.InfoContext(ctx, "metrics server starting", "port", cfg.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "metrics server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "metrics server shutdown error", "error", err)
	}

	if err := processor.Stop(); err != nil && !errors.Is(err, social.ErrProcessorNotRunning) {
		slog.ErrorContext(shutdownCtx, "social processor shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, limiter ratelimit.Limiter, processor *social.Processor) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		IsProduction:      cfg.IsProduction(),
		AdminAPIKey:       cfg.AdminAPIKey,
		Limiter:           limiter,
		APIRule:           ratelimit.Rule{Scope: "api", Limit: cfg.RateLimit.Requests, Window: cfg.RateLimit.Window},
		ChatRule:          ratelimit.Rule{Scope: "chat", Limit: cfg.RateLimit.ChatRequests, Window: cfg.RateLimit.Window},
		Processor:         processor,
		ProcessorInterval: cfg.Processor.Interval,
	})

	return router
}

// newChatClient returns nil when no chat model is configured.
func newChatClient(c config.LLMConfig) (llm.ChatClient, error) {
	if !c.Enabled() {
		slog.Warn("chat model disabled: AI agents answer 503")
		return nil, nil
	}
	return llm.NewChatClient(llmConfig(c))
}

// newStructuredClient returns nil when no brand model is configured.
func newStructuredClient(c config.LLMConfig) (llm.StructuredClient, error) {
	if !c.Enabled() {
		slog.Warn("brand model disabled: brand generation answers 503")
		return nil, nil
	}
	return llm.NewStructuredClient(llmConfig(c))
}

func llmConfig(c config.LLMConfig) llm.Config {
	return llm.Config{
		Provider:        c.Provider,
		APIKey:          c.APIKey,
		BaseURL:         c.BaseURL,
		Model:           c.Model,
		ReasoningEffort: llm.ReasoningEffort(c.ReasoningEffort),
	}
}

const banner = `
 ____        _       ____
/ ___|  ___ | | ___ / ___| _   _  ___ ___ ___  ___ ___
\___ \ / _ \| |/ _ \\___ \| | | |/ __/ __/ _ \/ __/ __|
 ___) | (_) | | (_) |___) | |_| | (_| (_|  __/\__ \__ \
|____/ \___/|_|\___/|____/ \__,_|\___\___\___||___/___/  api
`
