package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goowebia/hay-paso/internal/domain"
)

type ctxKey int

const viewerKey ctxKey = iota

type TokenVerifier interface {
	ViewerFromToken(raw string) (domain.Viewer, error)
}

func WithViewer(ctx context.Context, v domain.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, v)
}

// ViewerFrom returns the anonymous viewer when Authenticate did not run.
func ViewerFrom(ctx context.Context) domain.Viewer {
	v, ok := ctx.Value(viewerKey).(domain.Viewer)
	if !ok {
		return domain.Anonymous
	}
	return v
}

// Authenticate resolves the bearer token into a Viewer. A missing or bad token is
// not an error here; the request simply continues as anonymous.
func Authenticate(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer := domain.Anonymous

			if raw := bearerToken(r); raw != "" {
				v, err := verifier.ViewerFromToken(raw)
				if err != nil {
					logger.Debug("bearer token ignored", slog.Any("error", err))
				} else {
					viewer = v
				}
			}

			next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), viewer)))
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ViewerFrom(r.Context()).Privileged {
			w.Header().Set("WWW-Authenticate", `Bearer realm="hay-paso"`)
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Feature hides a route group entirely when its flag is off.
func Feature(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "not found")
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}
