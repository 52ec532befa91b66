package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/service"
	"github.com/goowebia/hay-paso/pkg/e"
)

func validDraft() domain.ReportDraft {
	return domain.ReportDraft{
		Description: "  Tráfico lento por obras  ",
		Location:    " Cuesta de Sayula ",
		Status:      domain.StatusSlow,
		CreatedAt:   time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		AuthorName:  domain.SelfAuthorName,
	}
}

func TestReportValidator_Success(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("6f1c2a36-8a4e-4c55-9a51-3c7e2c1b0d11")
	v := service.NewReportValidator(func() uuid.UUID { return id })

	d := validDraft()
	d.MediaURL = "blob:video-clip"
	d.Coords = &domain.Coordinates{Lat: 19.86, Lng: -103.6}

	r, err := v.Validate(d)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.ID != id {
		t.Fatalf("id = %s, want %s", r.ID, id)
	}
	if r.Description != "Tráfico lento por obras" || r.Location != "Cuesta de Sayula" {
		t.Fatalf("fields not trimmed: %+v", r)
	}
	if r.Likes != 0 || r.Comments != 0 {
		t.Fatalf("counters must start at zero: %+v", r)
	}
	if r.MediaKind != domain.MediaVideo {
		t.Fatalf("media kind = %q", r.MediaKind)
	}
	if !r.CreatedAt.Equal(d.CreatedAt) {
		t.Fatalf("created_at = %v", r.CreatedAt)
	}

	d.Coords.Lat = 0
	if r.Coords.Lat != 19.86 {
		t.Fatalf("report coords alias the draft")
	}
}

func TestReportValidator_Rejects(t *testing.T) {
	t.Parallel()

	v := service.NewReportValidator(nil)

	tests := []struct {
		name      string
		mutate    func(d *domain.ReportDraft)
		wantField string
		wantErr   error
	}{
		{
			name:      "blank description",
			mutate:    func(d *domain.ReportDraft) { d.Description = "   " },
			wantField: "description",
			wantErr:   e.ErrEmptyDescription,
		},
		{
			name:      "blank location",
			mutate:    func(d *domain.ReportDraft) { d.Location = "" },
			wantField: "location",
			wantErr:   e.ErrEmptyLocation,
		},
		{
			name:      "unknown status",
			mutate:    func(d *domain.ReportDraft) { d.Status = "JAM" },
			wantField: "status",
			wantErr:   e.ErrInvalidStatus,
		},
		{
			name:      "latitude out of range",
			mutate:    func(d *domain.ReportDraft) { d.Coords = &domain.Coordinates{Lat: 91, Lng: 0} },
			wantField: "coords",
			wantErr:   e.ErrInvalidCoordinates,
		},
		{
			name:      "longitude out of range",
			mutate:    func(d *domain.ReportDraft) { d.Coords = &domain.Coordinates{Lat: 0, Lng: -180.5} },
			wantField: "coords",
			wantErr:   e.ErrInvalidCoordinates,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := validDraft()
			tt.mutate(&d)

			r, err := v.Validate(d)
			if r != nil {
				t.Fatalf("expected no report, got %+v", r)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			var ve *e.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.wantField {
				t.Fatalf("field = %v, want %q", err, tt.wantField)
			}
		})
	}
}
