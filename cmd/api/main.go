package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"paintquote_backend/internal/assistant"
	assistantservice "paintquote_backend/internal/assistant/service"
	"paintquote_backend/internal/config"
	"paintquote_backend/internal/contractor"
	"paintquote_backend/internal/datasource"
	apphttp "paintquote_backend/internal/http"
	"paintquote_backend/internal/http/router"
	"paintquote_backend/internal/parser"
	"paintquote_backend/internal/pricing"
	"paintquote_backend/platform/ai"
	"paintquote_backend/platform/logger"
	"paintquote_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	model, err := ai.New(ctx, ai.FactoryConfig{
		Provider: cfg.AIProvider,
		APIKey:   cfg.AIAPIKey,
		BaseURL:  cfg.AIBaseURL,
		Model:    cfg.AIModel,
	})
	if err != nil {
		log.Error("failed to initialize model backend", "error", err)
		panic("failed to initialize model backend: " + err.Error())
	}
	if model == nil {
		log.Warn("no AI credential configured; running extraction in deterministic fallback mode")
	} else {
		log.Info("model backend initialized", "model", model.Name())
	}

	dataClient := datasource.NewClient(datasource.Config{
		BaseURL: cfg.DataAPIBaseURL,
		APIKey:  cfg.DataAPIKey,
		Timeout: cfg.DataAPITimeout,
	})

	sessions, closeSessions := initSessionStore(ctx, cfg, log)
	if closeSessions != nil {
		defer closeSessions()
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	contractorModule := contractor.NewModule(dataClient, log)
	parserModule := parser.NewModule(model, val, log)
	pricingModule := pricing.NewModule()
	assistantModule := assistant.NewModule(
		model,
		parserModule.Service(),
		contractorModule.Service(),
		dataClient,
		sessions,
		val,
		log,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			contractorModule,
			parserModule,
			pricingModule,
			assistantModule,
		},
	}

	engine := router.New(app)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initSessionStore picks Redis-backed sessions when REDIS_URL is set, and
// in-memory sessions otherwise.
func initSessionStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (assistantservice.SessionStore, func()) {
	if cfg.RedisURL == "" {
		log.Info("REDIS_URL not configured; using in-memory conversation sessions")
		return assistantservice.NewMemoryStore(cfg.SessionTTL), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Error("invalid REDIS_URL", "error", err)
		panic("invalid REDIS_URL: " + err.Error())
	}
	client := redis.NewClient(opts)
	if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}
	log.Info("redis session store initialized")

	return assistantservice.NewRedisStore(client, cfg.SessionTTL), func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
