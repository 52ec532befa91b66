package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/pkg/e"

	"github.com/google/uuid"
)

// FeedStore keeps reports newest-first. It is the only owner of the sequence.
type FeedStore struct {
	mu      sync.RWMutex
	reports []*domain.Report
	ids     map[uuid.UUID]struct{}
	logger  *slog.Logger
}

func NewFeedStore(logger *slog.Logger) *FeedStore {
	return &FeedStore{
		ids:    make(map[uuid.UUID]struct{}),
		logger: logger,
	}
}

// Insert puts r at index 0. Existing entries keep their relative order.
func (s *FeedStore) Insert(ctx context.Context, r *domain.Report) error {
	const op = "memory.Feed.Insert"

	if r == nil || r.ID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return e.WrapError(ctx, op, err)
	}

	stored := *r
	if r.Coords != nil {
		c := *r.Coords
		stored.Coords = &c
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.ids[stored.ID]; dup {
		s.logger.Warn("duplicate report id", slog.String("op", op), slog.String("id", stored.ID.String()))
		return fmt.Errorf("%s: %w", op, e.ErrConflict)
	}

	next := make([]*domain.Report, 0, len(s.reports)+1)
	next = append(next, &stored)
	next = append(next, s.reports...)
	s.reports = next
	s.ids[stored.ID] = struct{}{}

	return nil
}

// All returns a copy of the feed; callers may modify it freely.
func (s *FeedStore) All(ctx context.Context) ([]*domain.Report, error) {
	const op = "memory.Feed.All"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, cloneReport(r))
	}
	return out, nil
}

func (s *FeedStore) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "memory.Feed.Get"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reports {
		if r.ID == id {
			return cloneReport(r), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
}

func (s *FeedStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

func cloneReport(r *domain.Report) *domain.Report {
	c := *r
	if r.Coords != nil {
		coords := *r.Coords
		c.Coords = &coords
	}
	return &c
}
