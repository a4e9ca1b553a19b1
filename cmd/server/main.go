// Command server starts the orientation classification HTTP server.
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

	"github.com/avenira/orient-api/internal/adapter/ai/mock"
	"github.com/avenira/orient-api/internal/adapter/ai/openai"
	"github.com/avenira/orient-api/internal/adapter/cache/rediscache"
	httpserver "github.com/avenira/orient-api/internal/adapter/httpserver"
	"github.com/avenira/orient-api/internal/adapter/observability"
	"github.com/avenira/orient-api/internal/adapter/quota/redisquota"
	"github.com/avenira/orient-api/internal/adapter/repo/postgres"
	"github.com/avenira/orient-api/internal/app"
	"github.com/avenira/orient-api/internal/config"
	"github.com/avenira/orient-api/internal/domain"
	"github.com/avenira/orient-api/internal/usecase"
)

// redisAdapter narrows *redis.Client to the readiness interface.
type redisAdapter struct{ rdb *redis.Client }

func (a redisAdapter) Ping(ctx context.Context) app.RedisPingResult { return a.rdb.Ping(ctx) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		slog.Error("schema migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	defer func() { _ = rdb.Close() }()

	// AI client: the real OpenAI-compatible client when a key is present,
	// otherwise the deterministic mock so dev environments work offline.
	var aicl domain.AIClient
	if cfg.AIEnabled && cfg.OpenAIAPIKey != "" {
		aicl = openai.New(cfg)
		slog.Info("ai client initialized", slog.String("model", cfg.OpenAIModel))
	} else {
		aicl = mock.New()
		slog.Info("ai mock client in use", slog.Bool("ai_enabled", cfg.AIEnabled))
	}

	quota := redisquota.New(rdb, cfg.UserDailyQuota, cfg.GlobalDailyQuota)
	cache := rediscache.New(rdb)
	repo := postgres.NewClassificationRepo(pool)

	classifier := usecase.New(cfg, aicl, quota, cache, repo)

	dbCheck, redisCheck := app.BuildReadinessChecks(pool, redisAdapter{rdb: rdb})
	srv := httpserver.NewServer(cfg, classifier, repo, dbCheck, redisCheck)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
