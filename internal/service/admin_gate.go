package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/pkg/e"
)

const tokenIssuer = "hay-paso"

type AdminGateConfig struct {
	Enabled    bool
	Secret     string
	SigningKey string
	TokenTTL   time.Duration
}

type adminClaims struct {
	Privileged bool `json:"privileged"`
	jwt.RegisteredClaims
}

// AdminGate is the only place a privileged Viewer is created.
type AdminGate struct {
	cfg    AdminGateConfig
	logger *slog.Logger
	now    func() time.Time
}

func NewAdminGate(cfg AdminGateConfig, logger *slog.Logger) *AdminGate {
	return &AdminGate{cfg: cfg, logger: logger, now: time.Now}
}

func (g *AdminGate) Enabled() bool { return g.cfg.Enabled }

// Check compares secret with the configured one and, on a match, mints a capability token.
func (g *AdminGate) Check(secret string) (domain.Viewer, string, error) {
	const op = "service.AdminGate.Check"

	if !g.cfg.Enabled {
		return domain.Anonymous, "", fmt.Errorf("%s: %w", op, e.ErrDisabled)
	}

	if subtle.ConstantTimeCompare([]byte(secret), []byte(g.cfg.Secret)) != 1 {
		g.logger.Warn("admin gate rejected secret")
		return domain.Anonymous, "", fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	now := g.now()
	claims := adminClaims{
		Privileged: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.cfg.TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(g.cfg.SigningKey))
	if err != nil {
		return domain.Anonymous, "", fmt.Errorf("%s: sign: %w", op, e.ErrInternal)
	}

	g.logger.Info("admin session issued", slog.String("jti", claims.ID))
	return domain.Viewer{Privileged: true}, token, nil
}

// ViewerFromToken parses a bearer token. Any problem yields the anonymous viewer and ErrUnauthorized.
func (g *AdminGate) ViewerFromToken(raw string) (domain.Viewer, error) {
	if !g.cfg.Enabled {
		return domain.Anonymous, e.ErrDisabled
	}
	if raw == "" {
		return domain.Anonymous, e.ErrUnauthorized
	}

	var claims adminClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(g.cfg.SigningKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			g.logger.Debug("admin token expired")
		}
		return domain.Anonymous, fmt.Errorf("%v: %w", err, e.ErrUnauthorized)
	}
	if !claims.Privileged {
		return domain.Anonymous, e.ErrUnauthorized
	}
	return domain.Viewer{Privileged: true}, nil
}
