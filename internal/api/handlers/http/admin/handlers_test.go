package admin_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	geojson "github.com/paulmach/go.geojson"

	"github.com/goowebia/hay-paso/internal/api/handlers/http/admin"
	mock_admin "github.com/goowebia/hay-paso/internal/api/handlers/http/admin/mocks"
	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/geo"
	"github.com/goowebia/hay-paso/internal/middleware"
	"github.com/goowebia/hay-paso/pkg/e"
)

func newTestLogger() *slog.Logger {

	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func asAdmin(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithViewer(r.Context(), domain.Viewer{Privileged: true}))
}

func newHandler(ctrl *gomock.Controller) (*admin.Handler, *mock_admin.MockGate, *mock_admin.MockIngestor, *mock_admin.MockFeedExporter) {
	gate := mock_admin.NewMockGate(ctrl)
	ingestor := mock_admin.NewMockIngestor(ctrl)
	feed := mock_admin.NewMockFeedExporter(ctrl)
	return admin.NewHandler(newTestLogger(), gate, ingestor, feed), gate, ingestor, feed
}

func TestAdminSession_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, gate, _, _ := newHandler(ctrl)
	gate.EXPECT().
		Check("hay-paso").
		Return(domain.Viewer{Privileged: true}, "signed.jwt.token", nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", bytes.NewBufferString(`{"secret":"hay-paso"}`))
	rr := httptest.NewRecorder()

	h.AdminSession(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.SessionResponse](t, rr)
	if got.Token != "signed.jwt.token" || !got.Privileged {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestAdminSession_WrongSecret_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, gate, _, _ := newHandler(ctrl)
	gate.EXPECT().Check("nope").Return(domain.Anonymous, "", e.ErrForbidden).Times(1)

	rr := httptest.NewRecorder()
	h.AdminSession(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"secret":"nope"}`)))

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rr.Code)
	}
}

func TestAdminSession_MissingSecret_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, gate, _, _ := newHandler(ctrl)
	gate.EXPECT().Check(gomock.Any()).Times(0)

	rr := httptest.NewRecorder()
	h.AdminSession(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`)))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestAdminIngest_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, ingestor, _ := newHandler(ctrl)
	want := domain.IngestRequest{Text: "Cierre en Atenquique", Source: "Accidentes Carretera Colima-Guadalajara"}
	report := domain.ViewReport{ID: uuid.New(), AuthorName: want.Source, Status: domain.StatusClosure, IsExternalSource: true}

	ingestor.EXPECT().
		Ingest(gomock.Any(), domain.Viewer{Privileged: true}, want).
		Return(report, nil).
		Times(1)

	body := `{"text":"Cierre en Atenquique","source":"Accidentes Carretera Colima-Guadalajara"}`
	rr := httptest.NewRecorder()
	h.AdminIngest(rr, asAdmin(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d, body=%s", rr.Code, rr.Body.String())
	}
	if got := decodeJSON[domain.ViewReport](t, rr); got.ID != report.ID || !got.IsExternalSource {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestAdminIngest_BlankText_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, ingestor, _ := newHandler(ctrl)
	ingestor.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rr := httptest.NewRecorder()
	h.AdminIngest(rr, asAdmin(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"text":" ","source":"g"}`))))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestAdminExportGeoJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, feed := newHandler(ctrl)

	fc := geojson.NewFeatureCollection()
	f := geojson.NewPointFeature([]float64{-103.6, 19.5})
	f.SetProperty("status", "STALL")
	fc.AddFeature(f)

	feed.EXPECT().ExportGeoJSON(gomock.Any(), domain.Viewer{Privileged: true}).Return(fc, nil).Times(1)

	rr := httptest.NewRecorder()
	h.AdminExportGeoJSON(rr, asAdmin(httptest.NewRequest(http.MethodGet, "/", nil)))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/geo+json" {
		t.Fatalf("content-type = %q", ct)
	}
	got, err := geojson.UnmarshalFeatureCollection(rr.Body.Bytes())
	if err != nil {
		t.Fatalf("invalid geojson: %v", err)
	}
	if len(got.Features) != 1 || got.Features[0].Properties["status"] != "STALL" {
		t.Fatalf("unexpected collection: %s", rr.Body.String())
	}
}

func TestAdminExportGeoJSON_Forbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, feed := newHandler(ctrl)
	feed.EXPECT().ExportGeoJSON(gomock.Any(), domain.Anonymous).Return(nil, e.ErrForbidden).Times(1)

	rr := httptest.NewRecorder()
	h.AdminExportGeoJSON(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rr.Code)
	}
}

func TestAdminNearby(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, feed := newHandler(ctrl)
	r := &domain.Report{ID: uuid.New(), Status: domain.StatusAccident, Coords: &domain.Coordinates{Lat: 19.88, Lng: -103.6}}

	feed.EXPECT().
		Nearby(gomock.Any(), domain.Viewer{Privileged: true}, domain.Coordinates{Lat: 19.87, Lng: -103.61}, 5.0).
		Return([]geo.Nearby{{Report: r, DistanceKM: 1.4}}, nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.AdminNearby(rr, asAdmin(httptest.NewRequest(http.MethodGet, "/?lat=19.87&lng=-103.61&radius_km=5", nil)))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d, body=%s", rr.Code, rr.Body.String())
	}
	got := decodeJSON[struct {
		Count int `json:"count"`
	}](t, rr)
	if got.Count != 1 {
		t.Fatalf("count = %d", got.Count)
	}
}

func TestAdminNearby_BadQuery_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, feed := newHandler(ctrl)
	feed.EXPECT().Nearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rr := httptest.NewRecorder()
	h.AdminNearby(rr, asAdmin(httptest.NewRequest(http.MethodGet, "/?lat=abc", nil)))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}
