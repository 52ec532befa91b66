package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/geo"
	"github.com/goowebia/hay-paso/internal/metrics"
	"github.com/goowebia/hay-paso/pkg/e"
)

type draftEntry struct {
	wf      *Workflow
	pending *geo.Pending
}

// SubmissionService keeps one Workflow per open draft. A draft leaves the map on
// submit, cancel or when the sweeper finds it idle for longer than the TTL.
type SubmissionService struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*draftEntry

	cfg       WorkflowConfig
	feed      *FeedService
	validator *ReportValidator
	logger    *slog.Logger
	now       func() time.Time
}

func NewSubmissionService(cfg WorkflowConfig, feed *FeedService, validator *ReportValidator, logger *slog.Logger) *SubmissionService {
	return &SubmissionService{
		drafts:    make(map[uuid.UUID]*draftEntry),
		cfg:       cfg,
		feed:      feed,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// Open starts a draft. Known coordinates resolve the location at once; otherwise
// the draft waits for ResolveLocation or the geolocation timeout.
func (s *SubmissionService) Open(ctx context.Context, req domain.OpenDraftRequest) (domain.DraftView, error) {
	const op = "service.Submission.Open"

	if err := ctx.Err(); err != nil {
		return domain.DraftView{}, e.WrapError(ctx, op, err)
	}

	entry := &draftEntry{}
	var locator geo.Locator
	if req.Coords != nil {
		if !req.Coords.Valid() {
			return domain.DraftView{}, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
		}
		locator = geo.Fixed(*req.Coords)
	} else {
		entry.pending = geo.NewPending()
		locator = entry.pending
	}

	entry.wf = NewWorkflow(uuid.New(), s.cfg, s.validator, s.logger, s.now)
	if err := entry.wf.Open(locator); err != nil {
		return domain.DraftView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.drafts[entry.wf.ID()] = entry
	open := len(s.drafts)
	s.mu.Unlock()

	metrics.DraftsOpen.Set(float64(open))
	s.logger.Debug("draft opened", slog.String("draft_id", entry.wf.ID().String()), slog.Bool("coords_known", req.Coords != nil))

	return entry.wf.View(), nil
}

func (s *SubmissionService) Get(ctx context.Context, id uuid.UUID) (domain.DraftView, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return domain.DraftView{}, err
	}
	return entry.wf.View(), nil
}

func (s *SubmissionService) Update(ctx context.Context, id uuid.UUID, patch domain.DraftPatch) (domain.DraftView, error) {
	const op = "service.Submission.Update"

	entry, err := s.lookup(id)
	if err != nil {
		return domain.DraftView{}, err
	}
	if err := entry.wf.Update(patch); err != nil {
		return domain.DraftView{}, fmt.Errorf("%s: %w", op, err)
	}
	return entry.wf.View(), nil
}

// ResolveLocation delivers the device position, or its failure, to a draft that is
// still waiting for one.
func (s *SubmissionService) ResolveLocation(ctx context.Context, id uuid.UUID, res domain.LocationResult) (domain.DraftView, error) {
	const op = "service.Submission.ResolveLocation"

	entry, err := s.lookup(id)
	if err != nil {
		return domain.DraftView{}, err
	}
	if entry.pending == nil {
		return domain.DraftView{}, fmt.Errorf("%s: location already known: %w", op, e.ErrConflict)
	}

	var delivered bool
	switch {
	case res.Coords != nil:
		if !res.Coords.Valid() {
			return domain.DraftView{}, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
		}
		delivered = entry.pending.Deliver(*res.Coords)
	default:
		delivered = entry.pending.Fail(fmt.Errorf("client: %s", res.Error))
	}
	if !delivered {
		// either resolved before or GEO_TIMEOUT already gave up on the device
		return domain.DraftView{}, fmt.Errorf("%s: location already resolved or timed out: %w", op, e.ErrConflict)
	}

	// The locate goroutine applies the result asynchronously.
	s.waitLocated(ctx, entry.wf)
	return entry.wf.View(), nil
}

func (s *SubmissionService) waitLocated(ctx context.Context, wf *Workflow) {
	located := wf.Located()
	if located == nil {
		return
	}
	select {
	case <-located:
	case <-ctx.Done():
	}
}

// Submit validates and commits the draft. A rejected draft stays open so the
// client can fix the reported field and try again.
func (s *SubmissionService) Submit(ctx context.Context, id uuid.UUID) (domain.ViewReport, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return domain.ViewReport{}, err
	}

	report, err := entry.wf.Submit(ctx, s.feed.Commit)
	if err != nil {
		return domain.ViewReport{}, err
	}

	s.remove(id)
	return domain.Project(report, domain.Anonymous), nil
}

func (s *SubmissionService) Cancel(ctx context.Context, id uuid.UUID) error {
	const op = "service.Submission.Cancel"

	entry, err := s.lookup(id)
	if err != nil {
		return err
	}
	if err := entry.wf.Cancel(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.remove(id)
	return nil
}

// Sweep drops drafts untouched since before now-ttl and returns how many went.
// A draft leaves the map only after its workflow agreed to expire, so a draft
// that a concurrent Submit already claimed stays reachable.
func (s *SubmissionService) Sweep(now time.Time, ttl time.Duration) int {
	cutoff := now.Add(-ttl)

	s.mu.Lock()
	swept := 0
	for id, entry := range s.drafts {
		if !entry.wf.Expire(cutoff) {
			continue
		}
		delete(s.drafts, id)
		swept++
	}
	open := len(s.drafts)
	s.mu.Unlock()

	metrics.DraftsOpen.Set(float64(open))
	return swept
}

func (s *SubmissionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

func (s *SubmissionService) lookup(id uuid.UUID) (*draftEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, e.ErrNotFound)
	}
	return entry, nil
}

func (s *SubmissionService) remove(id uuid.UUID) {
	s.mu.Lock()
	delete(s.drafts, id)
	open := len(s.drafts)
	s.mu.Unlock()
	metrics.DraftsOpen.Set(float64(open))
}
