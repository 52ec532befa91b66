package service

import (
	"context"
	"errors"
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

// CommitFunc receives a validated report. It is FeedService.Commit in production.
type CommitFunc func(ctx context.Context, r *domain.Report) error

type draftFields struct {
	description string
	status      domain.TrafficStatus
	location    string
	mediaURL    string
	coords      *domain.Coordinates
}

type WorkflowConfig struct {
	DefaultLocation string
	GeoTimeout      time.Duration
}

// Workflow drives one report submission:
// Idle -> Locating -> Composing -> Submitting -> Idle.
// Fields can be edited while the location is still being resolved.
type Workflow struct {
	mu sync.Mutex

	id        uuid.UUID
	cfg       WorkflowConfig
	validator *ReportValidator
	logger    *slog.Logger
	now       func() time.Time

	state        domain.DraftState
	fields       draftFields
	gen          uint64
	cancelLocate context.CancelFunc
	located      chan struct{}
	openedAt     time.Time
	touchedAt    time.Time
}

func NewWorkflow(id uuid.UUID, cfg WorkflowConfig, validator *ReportValidator, logger *slog.Logger, now func() time.Time) *Workflow {
	if now == nil {
		now = time.Now
	}
	return &Workflow{
		id:        id,
		cfg:       cfg,
		validator: validator,
		logger:    logger.With(slog.String("draft_id", id.String())),
		now:       now,
		state:     domain.DraftIdle,
	}
}

func (w *Workflow) ID() uuid.UUID { return w.id }

func (w *Workflow) State() domain.DraftState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Workflow) TouchedAt() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.touchedAt
}

// Open starts a new draft with defaults and begins locating in the background.
func (w *Workflow) Open(locator geo.Locator) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != domain.DraftIdle {
		return fmt.Errorf("workflow.Open: %w", e.ErrConflict)
	}

	w.gen++
	w.fields = draftFields{
		status:   domain.StatusSlow,
		location: w.cfg.DefaultLocation,
	}
	w.state = domain.DraftLocating
	w.openedAt = w.now()
	w.touchedAt = w.openedAt

	if locator == nil {
		locator = geo.Unavailable{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.GeoTimeout)
	w.cancelLocate = cancel
	w.located = make(chan struct{})
	go w.locate(ctx, cancel, w.gen, w.located, locator)

	return nil
}

// Located is closed once the locate attempt started by the last Open has finished.
func (w *Workflow) Located() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.located
}

func (w *Workflow) locate(ctx context.Context, cancel context.CancelFunc, gen uint64, done chan struct{}, locator geo.Locator) {
	defer close(done)
	defer cancel()

	coords, err := locator.CurrentPosition(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.gen || !(w.editable() || w.state == domain.DraftSubmitting) {
		metrics.LocationTotal.WithLabelValues("discarded").Inc()
		w.logger.Debug("late location result discarded", slog.String("state", string(w.state)))
		return
	}

	if err != nil {
		metrics.LocationTotal.WithLabelValues("unavailable").Inc()
		w.logger.Warn("location unavailable, continuing without coordinates",
			slog.Any("error", fmt.Errorf("%w: %v", e.ErrLocationUnavailable, err)))
	} else {
		metrics.LocationTotal.WithLabelValues("acquired").Inc()
		c := coords
		w.fields.coords = &c
		w.logger.Debug("location acquired")
	}

	if w.state == domain.DraftLocating {
		w.state = domain.DraftComposing
	}
}

// Update applies the non-nil fields of p. An unknown status is kept as typed so
// that Submit can report it against the status field.
func (w *Workflow) Update(p domain.DraftPatch) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.editable() {
		return fmt.Errorf("workflow.Update: %w", e.ErrDraftClosed)
	}

	if p.Description != nil {
		w.fields.description = *p.Description
	}
	if p.Location != nil {
		w.fields.location = *p.Location
	}
	if p.Status != nil {
		st, ok := domain.ParseTrafficStatus(*p.Status)
		if !ok {
			st = domain.TrafficStatus(*p.Status)
		}
		w.fields.status = st
	}
	if p.MediaURL != nil {
		w.fields.mediaURL = *p.MediaURL
	}
	w.touchedAt = w.now()
	return nil
}

// AttachMedia buffers a media reference locally; an empty ref removes it.
func (w *Workflow) AttachMedia(ref string) error {
	return w.Update(domain.DraftPatch{MediaURL: &ref})
}

// Submit validates the draft and hands the report to commit. On any failure the
// draft goes back to Composing with every field intact.
func (w *Workflow) Submit(ctx context.Context, commit CommitFunc) (*domain.Report, error) {
	w.mu.Lock()
	if !w.editable() {
		w.mu.Unlock()
		return nil, fmt.Errorf("workflow.Submit: %w", e.ErrDraftClosed)
	}
	w.state = domain.DraftSubmitting
	draft := domain.ReportDraft{
		Description:  w.fields.description,
		Location:     w.fields.location,
		Status:       w.fields.status,
		Coords:       w.fields.coords,
		MediaURL:     w.fields.mediaURL,
		CreatedAt:    w.now().UTC(),
		AuthorName:   domain.SelfAuthorName,
		AuthorAvatar: domain.SelfAuthorAvatar,
	}
	w.mu.Unlock()

	report, err := w.validator.Validate(draft)
	if err == nil {
		err = commit(ctx, report)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.state = domain.DraftComposing
		w.touchedAt = w.now()
		var ve *e.ValidationError
		if errors.As(err, &ve) {
			metrics.ValidationFailuresTotal.WithLabelValues(ve.Field).Inc()
		}
		w.logger.Info("submission rejected", slog.Any("error", err))
		return nil, err
	}

	w.reset()
	return report, nil
}

// Expire cancels the draft when it was last touched before cutoff and is still
// editable. A draft in Submitting is never expired.
func (w *Workflow) Expire(cutoff time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.editable() || !w.touchedAt.Before(cutoff) {
		return false
	}
	w.reset()
	w.logger.Debug("draft expired")
	return true
}

// Cancel discards the draft. Nothing reaches the feed.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.editable() {
		return fmt.Errorf("workflow.Cancel: %w", e.ErrDraftClosed)
	}
	w.reset()
	w.logger.Debug("draft canceled")
	return nil
}

func (w *Workflow) View() domain.DraftView {
	w.mu.Lock()
	defer w.mu.Unlock()

	return domain.DraftView{
		ID:          w.id,
		State:       w.state,
		Description: w.fields.description,
		Status:      w.fields.status,
		Location:    w.fields.location,
		MediaURL:    w.fields.mediaURL,
		MediaKind:   domain.MediaKindOf(w.fields.mediaURL),
		HasCoords:   w.fields.coords != nil,
		OpenedAt:    w.openedAt,
	}
}

func (w *Workflow) editable() bool {
	return w.state == domain.DraftLocating || w.state == domain.DraftComposing
}

// reset must be called with mu held.
func (w *Workflow) reset() {
	if w.cancelLocate != nil {
		w.cancelLocate()
		w.cancelLocate = nil
	}
	w.gen++
	w.fields = draftFields{}
	w.state = domain.DraftIdle
}
