package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/service"
	mock_service "github.com/goowebia/hay-paso/internal/service/mocks"
	"github.com/goowebia/hay-paso/pkg/e"
)

func newSubmissions(t *testing.T, geoTimeout time.Duration) (*service.SubmissionService, *service.FeedService) {
	t.Helper()
	_, feed := newMemoryFeed(t)
	subs := service.NewSubmissionService(
		service.WorkflowConfig{DefaultLocation: defaultTramo, GeoTimeout: geoTimeout},
		feed,
		service.NewReportValidator(nil),
		newTestLogger(),
	)
	return subs, feed
}

func TestSubmission_FullFlowWithDeviceLocation(t *testing.T) {
	t.Parallel()

	subs, feed := newSubmissions(t, time.Minute)
	ctx := context.Background()

	draft, err := subs.Open(ctx, domain.OpenDraftRequest{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if draft.State != domain.DraftLocating {
		t.Fatalf("state = %s", draft.State)
	}

	draft, err = subs.ResolveLocation(ctx, draft.ID, domain.LocationResult{Coords: &domain.Coordinates{Lat: 19.88, Lng: -103.6}})
	if err != nil {
		t.Fatalf("ResolveLocation: %v", err)
	}
	if draft.State != domain.DraftComposing || !draft.HasCoords {
		t.Fatalf("location not applied: %+v", draft)
	}

	if _, err := subs.ResolveLocation(ctx, draft.ID, domain.LocationResult{Error: "denied"}); !errors.Is(err, e.ErrConflict) {
		t.Fatalf("second resolve: expected ErrConflict, got %v", err)
	}

	if _, err := subs.Update(ctx, draft.ID, domain.DraftPatch{Description: strPtr("Paso lento por obras")}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	report, err := subs.Submit(ctx, draft.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if report.Coords != nil {
		t.Fatalf("submit response must not expose coords")
	}

	stored, err := feed.Get(ctx, report.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Coords == nil {
		t.Fatalf("coords should be kept in the feed")
	}
	if subs.Count() != 0 {
		t.Fatalf("draft should be removed after submit")
	}
	if _, err := subs.Get(ctx, draft.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmission_DeviceFailureStillSubmits(t *testing.T) {
	t.Parallel()

	subs, _ := newSubmissions(t, time.Minute)
	ctx := context.Background()

	draft, _ := subs.Open(ctx, domain.OpenDraftRequest{})
	draft, err := subs.ResolveLocation(ctx, draft.ID, domain.LocationResult{Error: "permission denied"})
	if err != nil {
		t.Fatalf("ResolveLocation: %v", err)
	}
	if draft.State != domain.DraftComposing || draft.HasCoords {
		t.Fatalf("unexpected draft: %+v", draft)
	}

	_, _ = subs.Update(ctx, draft.ID, domain.DraftPatch{Description: strPtr("Todo fluido")})
	if _, err := subs.Submit(ctx, draft.ID); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

func TestSubmission_OpenWithKnownCoords(t *testing.T) {
	t.Parallel()

	subs, _ := newSubmissions(t, time.Minute)
	ctx := context.Background()

	draft, err := subs.Open(ctx, domain.OpenDraftRequest{Coords: &domain.Coordinates{Lat: 19.2, Lng: -103.7}})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := subs.ResolveLocation(ctx, draft.ID, domain.LocationResult{Error: "x"}); !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	if _, err := subs.Open(ctx, domain.OpenDraftRequest{Coords: &domain.Coordinates{Lat: 91}}); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestSubmission_ValidationFailureKeepsDraftOpen(t *testing.T) {
	t.Parallel()

	subs, feed := newSubmissions(t, time.Minute)
	ctx := context.Background()

	draft, _ := subs.Open(ctx, domain.OpenDraftRequest{Coords: &domain.Coordinates{Lat: 19.2, Lng: -103.7}})

	_, err := subs.Submit(ctx, draft.ID)
	if !e.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if subs.Count() != 1 {
		t.Fatalf("draft should stay open")
	}
	if reports, _ := feed.Snapshot(ctx); len(reports) != 0 {
		t.Fatalf("feed must be unchanged")
	}

	_, _ = subs.Update(ctx, draft.ID, domain.DraftPatch{Description: strPtr("ahora sí")})
	if _, err := subs.Submit(ctx, draft.ID); err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
}

func TestSubmission_Cancel(t *testing.T) {
	t.Parallel()

	subs, feed := newSubmissions(t, time.Minute)
	ctx := context.Background()

	draft, _ := subs.Open(ctx, domain.OpenDraftRequest{})
	_, _ = subs.Update(ctx, draft.ID, domain.DraftPatch{Description: strPtr("no se envía")})

	if err := subs.Cancel(ctx, draft.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if reports, _ := feed.Snapshot(ctx); len(reports) != 0 {
		t.Fatalf("cancel must not touch the feed")
	}
	if err := subs.Cancel(ctx, draft.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := subs.Cancel(ctx, uuid.New()); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmission_Sweep(t *testing.T) {
	t.Parallel()

	subs, _ := newSubmissions(t, time.Minute)
	ctx := context.Background()

	_, _ = subs.Open(ctx, domain.OpenDraftRequest{})
	_, _ = subs.Open(ctx, domain.OpenDraftRequest{})

	if n := subs.Sweep(time.Now(), time.Hour); n != 0 {
		t.Fatalf("fresh drafts swept: %d", n)
	}
	if n := subs.Sweep(time.Now().Add(2*time.Hour), time.Hour); n != 2 {
		t.Fatalf("swept %d, want 2", n)
	}
	if subs.Count() != 0 {
		t.Fatalf("drafts left after sweep: %d", subs.Count())
	}
}

func TestSubmission_SweepSparesDraftBeingSubmitted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	repo := mock_service.NewMockFeedRepository(ctrl)
	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *domain.Report) error {
			close(started)
			<-release
			return e.ErrInternal
		}).
		Times(1)

	feed := service.NewFeedService(repo, nil, newTestLogger())
	subs := service.NewSubmissionService(
		service.WorkflowConfig{DefaultLocation: defaultTramo, GeoTimeout: time.Minute},
		feed,
		service.NewReportValidator(nil),
		newTestLogger(),
	)
	ctx := context.Background()

	draft, _ := subs.Open(ctx, domain.OpenDraftRequest{Coords: &domain.Coordinates{Lat: 19.2, Lng: -103.7}})
	_, _ = subs.Update(ctx, draft.ID, domain.DraftPatch{Description: strPtr("Obras en Tonila")})

	done := make(chan error, 1)
	go func() {
		_, err := subs.Submit(ctx, draft.ID)
		done <- err
	}()

	<-started
	if n := subs.Sweep(time.Now().Add(2*time.Hour), time.Hour); n != 0 {
		t.Fatalf("swept %d drafts while one was submitting", n)
	}
	close(release)

	if err := <-done; err == nil {
		t.Fatalf("expected the commit failure to surface")
	}
	got, err := subs.Get(ctx, draft.ID)
	if err != nil {
		t.Fatalf("draft lost after failed submit: %v", err)
	}
	if got.State != domain.DraftComposing || got.Description != "Obras en Tonila" {
		t.Fatalf("unexpected draft: %+v", got)
	}
}

func TestSubmission_ResolveAfterTimeoutConflicts(t *testing.T) {
	t.Parallel()

	subs, _ := newSubmissions(t, 20*time.Millisecond)
	ctx := context.Background()

	draft, _ := subs.Open(ctx, domain.OpenDraftRequest{})

	deadline := time.Now().Add(2 * time.Second)
	for {
		v, err := subs.Get(ctx, draft.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v.State == domain.DraftComposing {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("geolocation never timed out")
		}
		time.Sleep(5 * time.Millisecond)
	}

	_, err := subs.ResolveLocation(ctx, draft.ID, domain.LocationResult{Coords: &domain.Coordinates{Lat: 19.88, Lng: -103.6}})
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict for a position after the timeout, got %v", err)
	}
	if v, _ := subs.Get(ctx, draft.ID); v.HasCoords {
		t.Fatalf("late position must not be applied")
	}
}
