package bootstrap

import (
	"context"
	"fmt"
	"time"

	authHandler "autojoin-server/internal/auth/handler"
	authProcessor "autojoin-server/internal/auth/processor"
	automationHandler "autojoin-server/internal/automation/handler"
	automationProcessor "autojoin-server/internal/automation/processor"
	"autojoin-server/internal/catalog"
	kafkaClient "autojoin-server/internal/clients/kafka"
	redisClient "autojoin-server/internal/clients/redis"
	"autojoin-server/internal/clients/steamgifts"
	"autojoin-server/internal/clients/steamstore"
	"autojoin-server/internal/config"
	entriesProcessor "autojoin-server/internal/entries/processor"
	"autojoin-server/internal/events"
	"autojoin-server/internal/jobs/scheduler"
	"autojoin-server/internal/jobs/scheduler/jobs"
	"autojoin-server/internal/metrics"
	"autojoin-server/internal/observability"
	safetyProcessor "autojoin-server/internal/safety/processor"
	scannerProcessor "autojoin-server/internal/scanner/processor"
	settingsHandler "autojoin-server/internal/settings/handler"
	settingsProcessor "autojoin-server/internal/settings/processor"
	"autojoin-server/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store   *store.Store
	Logger  *observability.Logger
	Metrics *metrics.Metrics

	// Events
	Hub         *events.Hub
	Broadcaster *events.Broadcaster

	// Scheduling
	Scheduler *scheduler.Scheduler
	Jobs      *jobs.Manager

	// Handlers
	AuthHandler       authHandler.Handler
	AutomationHandler automationHandler.Handler
	SettingsHandler   settingsHandler.Handler

	// Optional clients (for cleanup)
	RedisClient   *redisClient.Client
	KafkaProducer *kafkaClient.Producer

	jobCtx       context.Context
	cancelJobs   context.CancelFunc
	drainTimeout time.Duration
}

// Initialize sets up all application dependencies and registers the jobs. The scheduler is
// left stopped; start it with JobContext so runs outlive ctx until StopScheduler has drained them.
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	jobCtx, cancelJobs := context.WithCancel(context.WithoutCancel(ctx))
	deps := &Dependencies{
		Logger:       logger,
		Metrics:      metrics.New(),
		jobCtx:       jobCtx,
		cancelJobs:   cancelJobs,
		drainTimeout: cfg.Scheduler.DrainTimeout,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.Migrate(); err != nil {
		deps.Store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize optional clients
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	}, logger)

	// Initialize event fan-out
	deps.Hub = events.NewHub(cfg.Server.AllowedOrigins, logger)
	var publisher events.Publisher
	if deps.KafkaProducer != nil {
		publisher = deps.KafkaProducer
	}
	deps.Broadcaster = events.NewBroadcaster(deps.Hub, publisher, logger)

	// Settings come first: the site client reads its session from them on every call
	settingsProc := settingsProcessor.New(deps.Store, logger)
	site := steamgifts.NewClient(cfg.SteamGifts, settingsProc, logger)

	// Initialize catalog
	steamStore := steamstore.NewClient(cfg.Catalog, logger)
	catalogSvc := catalog.New(deps.Store, steamStore, deps.RedisClient, cfg.Catalog, logger)

	// Initialize processors
	scanner := scannerProcessor.New(site, deps.Store, catalogSvc, deps.Metrics, logger)
	safety := safetyProcessor.New(site, deps.Store, deps.Broadcaster, deps.Metrics, logger)
	entries := entriesProcessor.New(site, deps.Store, catalogSvc, deps.Broadcaster, deps.Metrics, logger)

	// Initialize scheduler and jobs
	deps.Scheduler = scheduler.New(logger, deps.Metrics)
	winCheck := jobs.NewWinCheckJob(scanner, deps.Store, deps.Scheduler, logger, cfg.Scheduler.WinCheckDelay)
	automation := automationProcessor.New(scanner, entries, site, deps.Store, deps.Broadcaster, winCheck, deps.Metrics, logger)
	deps.Jobs = jobs.NewManager(deps.Scheduler, automation, safety, winCheck, catalogSvc, deps.Store, jobs.Config{
		SafetyCheckInterval: cfg.Scheduler.SafetyCheckInterval,
		CatalogRefreshCron:  cfg.Scheduler.CatalogRefreshCron,
		CatalogRefreshBatch: cfg.Scheduler.CatalogRefreshBatch,
	}, logger)
	settingsProc.SetJobScheduler(deps.Jobs)

	settings, err := settingsProc.GetSettings(ctx)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := deps.Jobs.RegisterAll(ctx, settings); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to register jobs: %w", err)
	}

	// Initialize handlers
	deps.AuthHandler = authHandler.New(authProcessor.New(cfg.Auth, logger), logger)
	deps.AutomationHandler = automationHandler.New(jobCtx, deps.Scheduler, deps.Jobs, automation, entries, deps.Hub, deps.Store, logger)
	deps.SettingsHandler = settingsHandler.New(settingsProc, logger)

	return deps, nil
}

// JobContext is the parent context of every job run
func (d *Dependencies) JobContext() context.Context {
	return d.jobCtx
}

// StopScheduler stops the scheduler and waits for in-flight runs up to the drain timeout.
// Runs still going after that are cancelled.
func (d *Dependencies) StopScheduler(ctx context.Context) {
	defer d.cancelJobs()
	if d.Scheduler == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		d.Scheduler.Stop(true)
		close(done)
	}()

	select {
	case <-done:
		d.Logger.Info(ctx, "Scheduler drained")
	case <-time.After(d.drainTimeout):
		d.Logger.Warn(ctx, fmt.Sprintf("Scheduler did not drain within %s", d.drainTimeout))
	}
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	d.cancelJobs()
	if d.Hub != nil {
		d.Hub.Close()
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close database", err)
		}
	}
}
