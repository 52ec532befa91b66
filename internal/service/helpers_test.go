package service_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/service"
	"github.com/goowebia/hay-paso/internal/storage/memory"
)

const defaultTramo = "Tramo Sayula-Zapotal"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemoryFeed(t *testing.T) (*memory.FeedStore, *service.FeedService) {
	t.Helper()
	store := memory.NewFeedStore(newTestLogger())
	return store, service.NewFeedService(store, nil, newTestLogger())
}

func newReport(status domain.TrafficStatus, createdAt time.Time, coords *domain.Coordinates) *domain.Report {
	return &domain.Report{
		ID:          uuid.New(),
		AuthorName:  "Luis",
		CreatedAt:   createdAt,
		Location:    "Sayula",
		Description: "reporte " + string(status),
		Status:      status,
		Coords:      coords,
	}
}

func strPtr(s string) *string { return &s }

func waitLocated(t *testing.T, wf *service.Workflow) {
	t.Helper()
	select {
	case <-wf.Located():
	case <-time.After(2 * time.Second):
		t.Fatalf("location never resolved")
	}
}
