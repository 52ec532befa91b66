package service_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/service"
	"github.com/goowebia/hay-paso/pkg/e"
)

func routeConfig(provider string) service.RouteConfig {
	return service.RouteConfig{
		Origin:         "Manzanillo, Colima",
		Destination:    "Guadalajara, Jalisco",
		ExternalLink:   "https://maps.app.goo.gl/example",
		MapProvider:    provider,
		StatusWindow:   2 * time.Hour,
		BaseTravelTime: 3 * time.Hour,
		CenterLat:      19.86,
		CenterLng:      -103.83,
	}
}

func TestRoute_Status(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		reports  []*domain.Report
		overall  domain.TrafficStatus
		estimate string
		alerts   int
	}{
		{name: "empty feed", overall: domain.StatusFluid, estimate: "3h"},
		{
			name: "most severe wins",
			reports: []*domain.Report{
				newReport(domain.StatusSlow, now.Add(-10*time.Minute), nil),
				newReport(domain.StatusStall, now.Add(-30*time.Minute), nil),
				newReport(domain.StatusFluid, now.Add(-5*time.Minute), nil),
			},
			overall:  domain.StatusStall,
			estimate: "4h 50min",
			alerts:   1,
		},
		{
			name: "old reports ignored",
			reports: []*domain.Report{
				newReport(domain.StatusClosure, now.Add(-3*time.Hour), nil),
				newReport(domain.StatusSlow, now.Add(-time.Hour), nil),
			},
			overall:  domain.StatusSlow,
			estimate: "3h 45min",
		},
		{
			name: "closure",
			reports: []*domain.Report{
				newReport(domain.StatusClosure, now.Add(-time.Minute), nil),
				newReport(domain.StatusAccident, now.Add(-2*time.Minute), nil),
			},
			overall:  domain.StatusClosure,
			estimate: "Sin paso",
			alerts:   2,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, feed := newMemoryFeed(t)
			for _, r := range tc.reports {
				if err := feed.Commit(context.Background(), r); err != nil {
					t.Fatalf("Commit: %v", err)
				}
			}

			got, err := service.NewRouteService(feed, routeConfig("google")).Status(context.Background(), now)
			if err != nil {
				t.Fatalf("Status: %v", err)
			}
			if got.OverallStatus != tc.overall || got.EstimatedTime != tc.estimate || got.ActiveAlerts != tc.alerts {
				t.Fatalf("got %+v", got)
			}
			if got.Origin != "Manzanillo, Colima" || got.Destination != "Guadalajara, Jalisco" {
				t.Fatalf("route endpoints missing: %+v", got)
			}
		})
	}
}

func TestRoute_MapEmbed(t *testing.T) {
	t.Parallel()

	_, feed := newMemoryFeed(t)

	google := service.NewRouteService(feed, routeConfig("google")).MapEmbed()
	if google.Provider != "google" || !strings.HasPrefix(google.EmbedURL, "https://www.google.com/maps?q=") {
		t.Fatalf("unexpected google embed: %+v", google)
	}
	if !strings.Contains(google.EmbedURL, url.QueryEscape("from Manzanillo, Colima to Guadalajara, Jalisco")) {
		t.Fatalf("embed does not carry the route: %s", google.EmbedURL)
	}
	if google.ExternalLink != "https://maps.app.goo.gl/example" {
		t.Fatalf("external link = %q", google.ExternalLink)
	}

	waze := service.NewRouteService(feed, routeConfig("waze")).MapEmbed()
	if waze.Provider != "waze" || !strings.HasPrefix(waze.EmbedURL, "https://embed.waze.com/iframe") {
		t.Fatalf("unexpected waze embed: %+v", waze)
	}
	if !strings.Contains(waze.EmbedURL, "lat=19.8600") {
		t.Fatalf("waze embed not centered: %s", waze.EmbedURL)
	}
}

func TestRoute_ReportMapLinkNeverLeaksCoords(t *testing.T) {
	t.Parallel()

	_, feed := newMemoryFeed(t)
	rs := service.NewRouteService(feed, routeConfig("google"))
	ctx := context.Background()

	r := newReport(domain.StatusStall, time.Now(), &domain.Coordinates{Lat: 19.123456, Lng: -103.654321})
	_ = feed.Commit(ctx, r)

	public, err := rs.MapLinkFor(ctx, r.ID, domain.Anonymous)
	if err != nil {
		t.Fatalf("MapLinkFor: %v", err)
	}
	if strings.Contains(public.URL, "19.123456") {
		t.Fatalf("public link leaks coordinates: %s", public.URL)
	}
	if !strings.Contains(public.URL, url.QueryEscape("Sayula carretera Colima Guadalajara")) {
		t.Fatalf("public link should search by location: %s", public.URL)
	}

	admin, _ := rs.MapLinkFor(ctx, r.ID, domain.Viewer{Privileged: true})
	if !strings.Contains(admin.URL, url.QueryEscape("19.123456,-103.654321")) {
		t.Fatalf("privileged link should use coordinates: %s", admin.URL)
	}

	if _, err := rs.MapLinkFor(ctx, uuid.New(), domain.Anonymous); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
