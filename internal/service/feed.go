package service

import (
	"context"
	"fmt"
	"log/slog"

	geojson "github.com/paulmach/go.geojson"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/geo"
	"github.com/goowebia/hay-paso/internal/metrics"
	"github.com/goowebia/hay-paso/pkg/e"

	"github.com/google/uuid"
)

// Invalidator is notified whenever the feed changes.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type FeedService struct {
	repo   FeedRepository
	events EventQueue
	logger *slog.Logger

	invalidators []Invalidator
}

func NewFeedService(repo FeedRepository, events EventQueue, logger *slog.Logger) *FeedService {
	if events == nil {
		events = NopEventQueue{}
	}
	return &FeedService{repo: repo, events: events, logger: logger}
}

// OnChange registers a component whose derived state depends on the feed.
func (s *FeedService) OnChange(inv Invalidator) {
	s.invalidators = append(s.invalidators, inv)
}

// Commit inserts a validated report and fans the change out. Only the insert can fail.
func (s *FeedService) Commit(ctx context.Context, r *domain.Report) error {
	const op = "service.Feed.Commit"

	if err := s.repo.Insert(ctx, r); err != nil {
		s.logger.Error("feed insert failed", slog.String("op", op), slog.Any("error", err))
		return err
	}

	source := "app"
	if r.IsExternalSource {
		source = "external"
	}
	metrics.ReportsTotal.WithLabelValues(source).Inc()
	metrics.FeedSize.Set(float64(s.repo.Len()))

	for _, inv := range s.invalidators {
		inv.Invalidate(ctx)
	}

	ev := domain.ReportCreatedEvent{
		ReportID:  r.ID,
		Status:    r.Status,
		Location:  r.Location,
		External:  r.IsExternalSource,
		CreatedAt: r.CreatedAt,
	}
	if err := s.events.Enqueue(ctx, ev); err != nil {
		s.logger.Error("enqueue report event failed", slog.String("op", op), slog.Any("error", err))
	}

	s.logger.Info("report committed",
		slog.String("id", r.ID.String()),
		slog.String("status", r.Status.String()),
		slog.String("source", source),
		slog.Bool("has_coords", r.Coords != nil),
	)
	return nil
}

func (s *FeedService) List(ctx context.Context, viewer domain.Viewer) ([]domain.ViewReport, error) {
	reports, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ProjectAll(reports, viewer), nil
}

func (s *FeedService) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return s.repo.Get(ctx, id)
}

func (s *FeedService) Snapshot(ctx context.Context) ([]*domain.Report, error) {
	return s.repo.All(ctx)
}

// Nearby exposes exact positions, so callers must hold the privileged capability.
func (s *FeedService) Nearby(ctx context.Context, viewer domain.Viewer, center domain.Coordinates, radiusKm float64) ([]geo.Nearby, error) {
	const op = "service.Feed.Nearby"

	if !viewer.Privileged {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if !center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if radiusKm <= 0 || radiusKm > 500 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	reports, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return geo.Within(reports, center, radiusKm), nil
}

// ExportGeoJSON returns one point feature per report that carries coordinates.
func (s *FeedService) ExportGeoJSON(ctx context.Context, viewer domain.Viewer) (*geojson.FeatureCollection, error) {
	const op = "service.Feed.ExportGeoJSON"

	if !viewer.Privileged {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	reports, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, r := range reports {
		if r.Coords == nil {
			continue
		}
		f := geojson.NewPointFeature([]float64{r.Coords.Lng, r.Coords.Lat})
		f.ID = r.ID.String()
		f.SetProperty("status", r.Status.String())
		f.SetProperty("severity", r.Status.Severity())
		f.SetProperty("location", r.Location)
		f.SetProperty("description", r.Description)
		f.SetProperty("author", r.AuthorName)
		f.SetProperty("created_at", r.CreatedAt)
		f.SetProperty("external", r.IsExternalSource)
		fc.AddFeature(f)
	}
	return fc, nil
}
