package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/middleware"
	"github.com/goowebia/hay-paso/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubVerifier struct{}

func (stubVerifier) ViewerFromToken(raw string) (domain.Viewer, error) {
	if raw == "good" {
		return domain.Viewer{Privileged: true}, nil
	}
	return domain.Anonymous, e.ErrUnauthorized
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		header     string
		privileged bool
	}{
		"no header":      {header: "", privileged: false},
		"good token":     {header: "Bearer good", privileged: true},
		"lowercase":      {header: "bearer good", privileged: true},
		"bad token":      {header: "Bearer nope", privileged: false},
		"wrong scheme":   {header: "Basic good", privileged: false},
		"missing secret": {header: "Bearer ", privileged: false},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var got domain.Viewer
			h := middleware.Authenticate(stubVerifier{}, newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = middleware.ViewerFrom(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tc.privileged, got.Privileged)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	called := false
	h := middleware.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithViewer(req.Context(), domain.Viewer{Privileged: true}))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
}

func TestFeature(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	rr := httptest.NewRecorder()
	middleware.Feature(true)(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	rr = httptest.NewRecorder()
	middleware.Feature(false)(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLimit(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := middleware.Limit(ctx, 1, 2, time.Minute, newTestLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code, "other clients keep their own budget")
}

type bindTarget struct {
	Text string `json:"text" validate:"notblank"`
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		body    string
		wantErr bool
	}{
		"valid":         {body: `{"text":"hola"}`},
		"unknown field": {body: `{"text":"hola","x":1}`, wantErr: true},
		"trailing data": {body: `{"text":"hola"}{}`, wantErr: true},
		"broken":        {body: `{"text":`, wantErr: true},
		"blank":         {body: `{"text":"  "}`, wantErr: true},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var dst bindTarget
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))
			err := middleware.BindJSON(httptest.NewRecorder(), req, &dst)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, e.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "hola", dst.Text)
		})
	}
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	t.Parallel()

	dst := bindTarget{Text: "kept"}
	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	require.NoError(t, middleware.DecodeJSON(httptest.NewRecorder(), req, &dst))
	assert.Equal(t, "kept", dst.Text)
}
