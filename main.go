package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"autojoin-server/internal/bootstrap"
	"autojoin-server/internal/config"
	"autojoin-server/internal/observability"
	"autojoin-server/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := observability.NewLoggerWithLevel(cfg.LogLevel)
	defer logger.Sync()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to initialize dependencies", err)
		os.Exit(1)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()
	if err := srv.Run(ctx); err != nil {
		logger.Error(context.Background(), "server stopped with error", err)
		os.Exit(1)
	}
}
