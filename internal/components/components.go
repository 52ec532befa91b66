package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goowebia/hay-paso/internal/api"
	"github.com/goowebia/hay-paso/internal/api/handlers/http/system"
	"github.com/goowebia/hay-paso/internal/config"
	"github.com/goowebia/hay-paso/internal/gemini"
	"github.com/goowebia/hay-paso/internal/metrics"
	"github.com/goowebia/hay-paso/internal/redis"
	"github.com/goowebia/hay-paso/internal/render"
	"github.com/goowebia/hay-paso/internal/service"
	"github.com/goowebia/hay-paso/internal/storage/memory"
	"github.com/goowebia/hay-paso/internal/workers"
	"github.com/goowebia/hay-paso/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Feed       *memory.FeedStore
	Redis      *redis.Redis
	EventQ     *redis.EventQueue
	Janitor    *workers.DraftJanitor
	Sender     *workers.EventSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	metrics.Register()

	logger.Info("Initializing feed store")
	store := memory.NewFeedStore(logger)
	if cfg.Feed.SeedDemo {
		if err := store.Seed(ctx, time.Now()); err != nil {
			return nil, fmt.Errorf("failed to seed feed: %w", err)
		}
		logger.Info("Feed seeded with demo reports", slog.Int("count", store.Len()))
	}

	var (
		redisClient *redis.Redis
		eventQueue  *redis.EventQueue
		cache       service.AdvisoryCache = service.NopAdvisoryCache{}
		events      service.EventQueue    = service.NopEventQueue{}
		deps                              = map[string]system.Pinger{}
	)
	if cfg.Redis.Enabled {
		logger.Info("Initializing Redis")
		rc, err := redis.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		redisClient = rc
		cache = redis.NewAdvisoryCache(rc)
		deps["redis"] = rc

		if !cfg.Webhook.Disabled {
			eventQueue = redis.NewEventQueue(rc.Client, redis.EventQueueKey)
			events = eventQueue
		}
	}

	var gen service.TextGenerator
	if client := gemini.NewClient(cfg.Summarizer, logger); client.Enabled() {
		gen = client
	} else {
		logger.Warn("GEMINI_API_KEY is empty, advisories and extraction will degrade")
	}

	validator := service.NewReportValidator(uuid.New)
	feedSvc := service.NewFeedService(store, events, logger)

	submissionSvc := service.NewSubmissionService(service.WorkflowConfig{
		DefaultLocation: cfg.Route.DefaultTramo,
		GeoTimeout:      cfg.Feed.GeoTimeout,
	}, feedSvc, validator, logger)

	advisor := service.NewAdvisor(gen, feedSvc, cache, service.AdvisorConfig{
		Model:    cfg.Summarizer.Model,
		Timeout:  cfg.Summarizer.Timeout,
		CacheTTL: cfg.Redis.CacheTTL,
	}, logger)
	feedSvc.OnChange(advisor)

	extractor := service.NewExtractor(gen, feedSvc, validator, service.ExtractorConfig{
		Model:           cfg.Summarizer.Model,
		Timeout:         cfg.Summarizer.Timeout,
		DefaultLocation: cfg.Route.DefaultTramo,
	}, logger)

	gate := service.NewAdminGate(service.AdminGateConfig{
		Enabled:    cfg.Features.AdminGate,
		Secret:     cfg.Admin.Secret,
		SigningKey: cfg.Admin.SigningKey,
		TokenTTL:   cfg.Admin.TokenTTL,
	}, logger)

	routeSvc := service.NewRouteService(feedSvc, service.RouteConfig{
		Origin:         cfg.Route.Origin,
		Destination:    cfg.Route.Destination,
		ExternalLink:   cfg.Route.ExternalLink,
		MapProvider:    cfg.Features.MapProvider,
		StatusWindow:   cfg.Route.StatusWindow,
		BaseTravelTime: cfg.Route.BaseTravelTime,
		CenterLat:      cfg.Route.CenterLat,
		CenterLng:      cfg.Route.CenterLng,
	})

	pages, err := render.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	srv := service.NewService(feedSvc, submissionSvc, advisor, extractor, gate, routeSvc)

	httpServer := api.NewServer(ctx, cfg, logger, srv, pages, deps)
	logger.Info("Initialized server")

	c := &Components{
		logger:     logger,
		HttpServer: httpServer,
		Feed:       store,
		Redis:      redisClient,
		EventQ:     eventQueue,
		Janitor:    workers.NewDraftJanitor(submissionSvc, cfg.Feed.DraftTTL, logger),
	}
	if eventQueue != nil {
		c.Sender = workers.NewEventSender(logger, cfg.Webhook, eventQueue)
	}
	return c, nil
}

// RunWorkers starts the background loops. They stop when ctx is done.
func (c *Components) RunWorkers(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Janitor.Run(ctx)
		c.logger.Info("draft janitor stopped")
	}()

	if c.Sender == nil {
		return
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Sender.Run(ctx)
		c.logger.Info("event sender stopped")
	}()
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)),
		slog.Int("reports", c.Feed.Len()))
}
