package public

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Feed interface {
	List(ctx context.Context, viewer domain.Viewer) ([]domain.ViewReport, error)
}

type Drafts interface {
	Open(ctx context.Context, req domain.OpenDraftRequest) (domain.DraftView, error)
	Get(ctx context.Context, id uuid.UUID) (domain.DraftView, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.DraftPatch) (domain.DraftView, error)
	ResolveLocation(ctx context.Context, id uuid.UUID, res domain.LocationResult) (domain.DraftView, error)
	Submit(ctx context.Context, id uuid.UUID) (domain.ViewReport, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type Advisories interface {
	Latest(ctx context.Context) (domain.Advisory, error)
	Refresh(ctx context.Context) (domain.Advisory, error)
}

type Routes interface {
	Status(ctx context.Context, now time.Time) (domain.RouteStatus, error)
	MapEmbed() domain.MapEmbed
	MapLinkFor(ctx context.Context, id uuid.UUID, viewer domain.Viewer) (domain.MapLink, error)
}

type PageRenderer interface {
	Render(w http.ResponseWriter, name string, data any) error
}

type Handler struct {
	logger     *slog.Logger
	Feed       Feed
	Drafts     Drafts
	Advisories Advisories
	Routes     Routes
	Pages      PageRenderer
}

func NewHandler(logger *slog.Logger, feed Feed, drafts Drafts, advisories Advisories, routes Routes, pages PageRenderer) *Handler {
	return &Handler{
		logger:     logger,
		Feed:       feed,
		Drafts:     drafts,
		Advisories: advisories,
		Routes:     routes,
		Pages:      pages,
	}
}

func (h *Handler) FeedList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	viewer := middleware.ViewerFrom(r.Context())

	reports, err := h.Feed.List(r.Context(), viewer)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("feed listed", slog.Int("count", len(reports)), slog.Bool("privileged", viewer.Privileged))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"reports": reports,
		"count":   len(reports),
	})
}

func (h *Handler) ReportMapLink(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	link, err := h.Routes.MapLinkFor(r.Context(), id, middleware.ViewerFrom(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, link)
}

func (h *Handler) DraftOpen(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.OpenDraftRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	draft, err := h.Drafts.Open(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("draft opened", slog.String("draft_id", draft.ID.String()))
	h.writeJSON(w, http.StatusCreated, draft)
}

func (h *Handler) DraftGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	draft, err := h.Drafts.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) DraftUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var patch domain.DraftPatch
	if err := middleware.DecodeJSON(w, r, &patch); err != nil {
		h.handleError(w, r, err)
		return
	}

	draft, err := h.Drafts.Update(r.Context(), id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) DraftLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var res domain.LocationResult
	if err := middleware.DecodeJSON(w, r, &res); err != nil {
		h.handleError(w, r, err)
		return
	}

	draft, err := h.Drafts.ResolveLocation(r.Context(), id, res)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) DraftSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	report, err := h.Drafts.Submit(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report submitted", slog.String("report_id", report.ID.String()), slog.String("status", report.Status.String()))
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) DraftCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.Drafts.Cancel(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdvisoryGet(w http.ResponseWriter, r *http.Request) {
	adv, err := h.Advisories.Latest(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, adv)
}

func (h *Handler) AdvisoryRefresh(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	adv, err := h.Advisories.Refresh(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("advisory refreshed", slog.Int("reports", adv.ReportCount), slog.Bool("degraded", adv.Degraded))
	h.writeJSON(w, http.StatusOK, adv)
}

func (h *Handler) RouteStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.Routes.Status(r.Context(), time.Now())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, st)
}

func (h *Handler) MapEmbed(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Routes.MapEmbed())
}

func (h *Handler) MapPage(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	st, err := h.Routes.Status(r.Context(), time.Now())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	data := map[string]any{
		"Embed":  h.Routes.MapEmbed(),
		"Status": st,
	}
	if err := h.Pages.Render(w, "map.html", data); err != nil {
		l.Error("map page render failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
