package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"autojoin-server/internal/bootstrap"
	"autojoin-server/internal/config"
	"autojoin-server/internal/observability"

	"golang.org/x/sync/errgroup"
)

// The worker runs the scheduler and its jobs without the HTTP control surface
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := observability.NewLoggerWithLevel(cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting background worker...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to initialize dependencies", err)
		os.Exit(1)
	}

	deps.Scheduler.Start(deps.JobContext())
	status := deps.Scheduler.Status()
	logger.Info(ctx, fmt.Sprintf("Worker started with %d scheduled jobs", len(status.Jobs)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return deps.Broadcaster.Run(gctx)
	})

	err = g.Wait()
	logger.Info(context.Background(), "Shutting down worker...")
	deps.StopScheduler(context.Background())
	deps.Cleanup()

	if err != nil {
		logger.Error(context.Background(), "worker stopped with error", err)
		os.Exit(1)
	}
	logger.Info(context.Background(), "Worker stopped")
}
