package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/pkg/e"
)

const (
	ProviderGoogle = "google"
	ProviderWaze   = "waze"

	noPassage     = "Sin paso"
	searchSuffix  = " carretera Colima Guadalajara"
	mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="
)

var travelFactor = map[domain.TrafficStatus]float64{
	domain.StatusFluid:    1.0,
	domain.StatusSlow:     1.25,
	domain.StatusStall:    1.6,
	domain.StatusAccident: 1.8,
}

type RouteConfig struct {
	Origin         string
	Destination    string
	ExternalLink   string
	MapProvider    string
	StatusWindow   time.Duration
	BaseTravelTime time.Duration
	CenterLat      float64
	CenterLng      float64
}

type RouteService struct {
	feed *FeedService
	cfg  RouteConfig
}

func NewRouteService(feed *FeedService, cfg RouteConfig) *RouteService {
	return &RouteService{feed: feed, cfg: cfg}
}

// Status summarises recent reports into the route-wide badge.
func (s *RouteService) Status(ctx context.Context, now time.Time) (domain.RouteStatus, error) {
	const op = "service.Route.Status"

	reports, err := s.feed.Snapshot(ctx)
	if err != nil {
		return domain.RouteStatus{}, e.WrapError(ctx, op, err)
	}

	cutoff := now.Add(-s.cfg.StatusWindow)
	overall := domain.StatusFluid
	alerts := 0
	for _, r := range reports {
		if r.CreatedAt.Before(cutoff) {
			continue
		}
		if domain.MoreSevere(r.Status, overall) {
			overall = r.Status
		}
		if r.Status.Severity() >= domain.StatusStall.Severity() {
			alerts++
		}
	}

	return domain.RouteStatus{
		Origin:        s.cfg.Origin,
		Destination:   s.cfg.Destination,
		OverallStatus: overall,
		EstimatedTime: s.estimate(overall),
		ActiveAlerts:  alerts,
	}, nil
}

func (s *RouteService) estimate(st domain.TrafficStatus) string {
	factor, ok := travelFactor[st]
	if !ok {
		return noPassage
	}
	d := time.Duration(float64(s.cfg.BaseTravelTime) * factor).Round(5 * time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %02dmin", h, m)
}

func (s *RouteService) MapEmbed() domain.MapEmbed {
	embed := domain.MapEmbed{
		Provider:     s.cfg.MapProvider,
		Origin:       s.cfg.Origin,
		Destination:  s.cfg.Destination,
		ExternalLink: s.cfg.ExternalLink,
	}

	switch s.cfg.MapProvider {
	case ProviderWaze:
		embed.EmbedURL = fmt.Sprintf("https://embed.waze.com/iframe?zoom=8&lat=%.4f&lon=%.4f&ct=livemap",
			s.cfg.CenterLat, s.cfg.CenterLng)
	default:
		embed.Provider = ProviderGoogle
		q := url.QueryEscape(fmt.Sprintf("from %s to %s", s.cfg.Origin, s.cfg.Destination))
		embed.EmbedURL = "https://www.google.com/maps?q=" + q + "&layer=t&output=embed"
	}
	return embed
}

// ReportMapLink points at exact coordinates only for privileged viewers.
func (s *RouteService) ReportMapLink(r *domain.Report, viewer domain.Viewer) domain.MapLink {
	var query string
	if viewer.Privileged && r.Coords != nil {
		query = fmt.Sprintf("%.6f,%.6f", r.Coords.Lat, r.Coords.Lng)
	} else {
		query = strings.TrimSpace(r.Location) + searchSuffix
	}
	return domain.MapLink{
		ReportID: r.ID.String(),
		URL:      mapsSearchURL + url.QueryEscape(query),
	}
}

func (s *RouteService) MapLinkFor(ctx context.Context, id uuid.UUID, viewer domain.Viewer) (domain.MapLink, error) {
	r, err := s.feed.Get(ctx, id)
	if err != nil {
		return domain.MapLink{}, err
	}
	return s.ReportMapLink(r, viewer), nil
}
