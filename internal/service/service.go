package service

import (
	"context"
	"time"

	"github.com/goowebia/hay-paso/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type FeedRepository interface {
	Insert(ctx context.Context, report *domain.Report) error
	All(ctx context.Context) ([]*domain.Report, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Len() int
}

// TextGenerator is the external text-generation collaborator.
type TextGenerator interface {
	Generate(ctx context.Context, req domain.GenerateRequest) (string, error)
}

type AdvisoryCache interface {
	Get(ctx context.Context) (*domain.Advisory, error)
	Set(ctx context.Context, advisory domain.Advisory, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type EventQueue interface {
	Enqueue(ctx context.Context, event domain.ReportCreatedEvent) error
}

type Service struct {
	Feed       *FeedService
	Submission *SubmissionService
	Advisor    *Advisor
	Extractor  *Extractor
	Gate       *AdminGate
	Route      *RouteService
}

func NewService(
	feed *FeedService,
	submission *SubmissionService,
	advisor *Advisor,
	extractor *Extractor,
	gate *AdminGate,
	route *RouteService,
) *Service {
	return &Service{
		Feed:       feed,
		Submission: submission,
		Advisor:    advisor,
		Extractor:  extractor,
		Gate:       gate,
		Route:      route,
	}
}

// NopAdvisoryCache is used when Redis is disabled.
type NopAdvisoryCache struct{}

func (NopAdvisoryCache) Get(context.Context) (*domain.Advisory, error) { return nil, nil }
func (NopAdvisoryCache) Set(context.Context, domain.Advisory, time.Duration) error {
	return nil
}
func (NopAdvisoryCache) Invalidate(context.Context) error { return nil }

// NopEventQueue drops events when webhooks are disabled.
type NopEventQueue struct{}

func (NopEventQueue) Enqueue(context.Context, domain.ReportCreatedEvent) error { return nil }
