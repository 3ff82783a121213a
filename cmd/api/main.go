package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shopstack/storefront-media/internal/adapter/handler"
	"github.com/shopstack/storefront-media/internal/infrastructure/config"
	"github.com/shopstack/storefront-media/internal/infrastructure/imaging"
	"github.com/shopstack/storefront-media/internal/infrastructure/observability"
	"github.com/shopstack/storefront-media/internal/infrastructure/server"
	"github.com/shopstack/storefront-media/internal/infrastructure/storage"
	"github.com/shopstack/storefront-media/internal/usecase/media"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Infrastructure services
	objectStore, err := storage.NewS3Store(cfg.S3, storage.Limits{
		MaxObjectBytes: cfg.Pipeline.MaxObjectBytes,
		AllowedMIME: []string{
			"image/jpeg", "image/jpg", "image/png",
			"image/webp", "image/gif", "image/svg+xml",
		},
	})
	if err != nil {
		logger.Fatal("failed to create object store", zap.Error(err))
	}
	decoder := imaging.NewDecoder()
	engine := imaging.NewEngine(cfg.Pipeline)

	// Use cases
	mediaSvc := media.NewService(objectStore, decoder, engine, cfg.Pipeline, logger)

	// Handlers
	mediaHandler := handler.NewMediaHandler(mediaSvc, cfg.Pipeline.MaxProductImages)

	// Router
	router := server.NewRouter(server.RouterConfig{
		MediaHandler: mediaHandler,
		Logger:       logger,
		Environment:  cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
