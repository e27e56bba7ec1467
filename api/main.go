package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/shopgenius/shopgenius-api/internal/config"
	"github.com/shopgenius/shopgenius-api/internal/gemini"
	api "github.com/shopgenius/shopgenius-api/internal/http"
	"github.com/shopgenius/shopgenius-api/internal/http/handlers"
	rl "github.com/shopgenius/shopgenius-api/internal/http/rate_limiter"
	"github.com/shopgenius/shopgenius-api/internal/redissvc"
	"github.com/shopgenius/shopgenius-api/internal/repo"
	"go.uber.org/zap"
)

// @title ShopGenius API
// @version 1.0
// @description Storefront catalog, stock management and AI-generated advisory content.
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var opts []gemini.Option
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("could not connect to redis, insight cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			opts = append(opts, gemini.WithInsightCache(redissvc.NewInsightCache(rdb, cfg.InsightCacheTTL, logger)))
		}
	}

	var generator gemini.Generator
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal("could not create gemini client", zap.Error(err))
		}
		generator = client
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI endpoints will serve fallback content")
	}

	handlers.SetCatalog(repo.NewCatalog(repo.SeedProducts()))
	handlers.SetAdvisor(gemini.NewService(generator, logger, opts...))
	handlers.SetLogger(logger)
	api.SetLogger(logger)

	rl.SetLimits(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.NewRouter(),
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
