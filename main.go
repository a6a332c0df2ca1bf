package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/elmufurqaan/site/backend/go-services/internal/config"
	"github.com/elmufurqaan/site/backend/go-services/internal/database"
	"github.com/elmufurqaan/site/backend/go-services/internal/router"
	"github.com/elmufurqaan/site/backend/go-services/internal/search"
	"github.com/elmufurqaan/site/backend/go-services/internal/storage"
	"github.com/elmufurqaan/site/backend/go-services/pkg/logger"
	"github.com/elmufurqaan/site/backend/go-services/pkg/metrics"
)

func main() {
	// LOG_LEVEL is read before config so startup problems are visible
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)
	defer logger.Sync()
	logger.Infof("config loaded: env=%s mongo=%v redis=%v media=%v",
		cfg.Server.Environment, cfg.MongoConfigured(), cfg.Redis.Host != "", cfg.MinIOConfigured())

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	store, err := database.Open(ctx, cfg.MongoDB)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}

	lex, err := search.LoadLexicon(cfg.Search.SynonymsFile)
	if err != nil {
		logger.Fatalf("failed to load search synonyms: %v", err)
	}
	logger.Infof("search lexicon loaded: %d groups", lex.Len())

	deps := router.Deps{Store: store, Lexicon: lex, MediaPublicURL: cfg.MinIO.PublicURL}

	if cfg.Redis.Host != "" {
		rc := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rc.Ping(ctx).Err(); err != nil {
			logger.Warnf("redis ping failed, continuing without redis: %v", err)
			_ = rc.Close()
		} else {
			deps.Redis = rc
			defer rc.Close()
		}
	}

	if cfg.MinIOConfigured() {
		ms, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("media storage unavailable: %v", err)
		} else {
			deps.Media = ms
		}
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router.New(cfg, deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Address())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Errorf("closing store: %v", err)
	}
	logger.Infof("server exited")
}
