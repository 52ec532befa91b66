package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goowebia/hay-paso/internal/api/handlers/http/admin"
	"github.com/goowebia/hay-paso/internal/api/handlers/http/public"
	"github.com/goowebia/hay-paso/internal/api/handlers/http/system"
	"github.com/goowebia/hay-paso/internal/config"
	"github.com/goowebia/hay-paso/internal/middleware"
	"github.com/goowebia/hay-paso/internal/render"
	"github.com/goowebia/hay-paso/internal/service"
)

const adminSessionTTL = 10 * time.Minute

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, pages *render.Renderer, deps map[string]system.Pinger) *Server {
	adminHandler := admin.NewHandler(logger, svc.Gate, svc.Extractor, svc.Feed)
	publicHandler := public.NewHandler(logger, svc.Feed, svc.Submission, svc.Advisor, svc.Route, pages)
	systemHandler := system.NewHandler(logger, deps)

	r := InitRouter(ctx, cfg, svc.Gate, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	ctx context.Context,
	cfg *config.Config,
	verifier middleware.TokenVerifier,
	adminHandler *admin.Handler,
	publicHandler *public.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	// request_id must be set before chi's Logger runs
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.Authenticate(verifier, logger))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/map", publicHandler.MapPage)

	r.Route("/api/v1", func(api chi.Router) {
		// FEED
		api.Get("/reports", publicHandler.FeedList)
		api.Get("/reports/{id}/map", publicHandler.ReportMapLink)

		api.Route("/drafts", func(dr chi.Router) {
			dr.Post("/", publicHandler.DraftOpen)

			dr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", publicHandler.DraftGet)
				ir.Patch("/", publicHandler.DraftUpdate)
				ir.Delete("/", publicHandler.DraftCancel)
				ir.Put("/location", publicHandler.DraftLocation)
				ir.With(middleware.Limit(ctx, cfg.Feed.SubmitRPS, cfg.Feed.SubmitBurst, cfg.Feed.LimiterTTL, logger)).
					Post("/submit", publicHandler.DraftSubmit)
			})
		})

		// ADVISORY
		api.Route("/advisory", func(ar chi.Router) {
			ar.Use(middleware.Feature(cfg.Features.Summarizer))
			ar.Get("/", publicHandler.AdvisoryGet)
			ar.Post("/refresh", publicHandler.AdvisoryRefresh)
		})

		// ROUTE
		api.Get("/route", publicHandler.RouteStatus)
		api.Get("/map", publicHandler.MapEmbed)

		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.Feature(cfg.Features.AdminGate))

			ar.With(middleware.Limit(ctx, 2, 5, adminSessionTTL, logger)).
				Post("/session", adminHandler.AdminSession)

			ar.Group(func(pr chi.Router) {
				pr.Use(middleware.RequireAdmin)
				pr.Post("/ingest", adminHandler.AdminIngest)
				pr.Get("/reports.geojson", adminHandler.AdminExportGeoJSON)
				pr.Get("/reports/nearby", adminHandler.AdminNearby)
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
