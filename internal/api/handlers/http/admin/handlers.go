package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	geojson "github.com/paulmach/go.geojson"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/geo"
	"github.com/goowebia/hay-paso/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Gate interface {
	Check(secret string) (domain.Viewer, string, error)
}

type Ingestor interface {
	Ingest(ctx context.Context, viewer domain.Viewer, req domain.IngestRequest) (domain.ViewReport, error)
}

type FeedExporter interface {
	ExportGeoJSON(ctx context.Context, viewer domain.Viewer) (*geojson.FeatureCollection, error)
	Nearby(ctx context.Context, viewer domain.Viewer, center domain.Coordinates, radiusKm float64) ([]geo.Nearby, error)
}

type Handler struct {
	logger   *slog.Logger
	Gate     Gate
	Ingestor Ingestor
	Feed     FeedExporter
}

func NewHandler(logger *slog.Logger, gate Gate, ingestor Ingestor, feed FeedExporter) *Handler {
	return &Handler{
		logger:   logger,
		Gate:     gate,
		Ingestor: ingestor,
		Feed:     feed,
	}
}

func (h *Handler) AdminSession(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminSession", slog.String("remote", r.RemoteAddr))

	var req domain.SessionRequest
	if err := middleware.BindJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	viewer, token, err := h.Gate.Check(req.Secret)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("admin session opened", slog.String("remote", r.RemoteAddr))
	h.writeJSON(w, http.StatusCreated, domain.SessionResponse{Token: token, Privileged: viewer.Privileged})
}

func (h *Handler) AdminIngest(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminIngest", slog.String("remote", r.RemoteAddr))

	var req domain.IngestRequest
	if err := middleware.BindJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	report, err := h.Ingestor.Ingest(r.Context(), middleware.ViewerFrom(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("external report ingested",
		slog.String("id", report.ID.String()),
		slog.String("source", report.AuthorName),
		slog.String("status", report.Status.String()),
	)
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) AdminExportGeoJSON(w http.ResponseWriter, r *http.Request) {
	fc, err := h.Feed.ExportGeoJSON(r.Context(), middleware.ViewerFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) AdminNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminNearby", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		l.Warn("invalid coordinates", slog.String("lat", q.Get("lat")), slog.String("lng", q.Get("lng")))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required numbers"})
		return
	}
	radius := parseFloat(q.Get("radius_km"), 10)

	nearby, err := h.Feed.Nearby(r.Context(), middleware.ViewerFrom(r.Context()), domain.Coordinates{Lat: lat, Lng: lng}, radius)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("nearby reports", slog.Int("count", len(nearby)), slog.Float64("radius_km", radius))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports":   nearby,
		"count":     len(nearby),
		"radius_km": radius,
	})
}
