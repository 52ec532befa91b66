package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/metrics"
	"github.com/goowebia/hay-paso/pkg/e"
)

const (
	AdvisoryEmptyText = "No hay suficiente información para un resumen en este momento."
	AdvisoryErrorText = "Error al procesar el resumen de tráfico."

	advisorySystemInstruction = "Eres un analista de tráfico experto en la carretera Colima-Guadalajara. Eres conciso, usas lenguaje local y priorizas la seguridad vial."
	advisoryPromptHeader      = "Analiza los siguientes reportes de la carretera Manzanillo-Guadalajara y genera un resumen muy breve y directo para conductores. Indica si hay paso libre, tráfico pesado o bloqueos totales.\n\nReportes:\n"
)

type AdvisorConfig struct {
	Model    string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Advisor turns the feed into a short advisory for drivers.
type Advisor struct {
	gen    TextGenerator
	feed   *FeedService
	cache  AdvisoryCache
	cfg    AdvisorConfig
	logger *slog.Logger
	now    func() time.Time

	seq    atomic.Uint64
	mu     sync.RWMutex
	latest *domain.Advisory
}

func NewAdvisor(gen TextGenerator, feed *FeedService, cache AdvisoryCache, cfg AdvisorConfig, logger *slog.Logger) *Advisor {
	if cache == nil {
		cache = NopAdvisoryCache{}
	}
	return &Advisor{
		gen:    gen,
		feed:   feed,
		cache:  cache,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// BuildContext renders one line per report, in the order given.
func BuildContext(reports []*domain.Report) string {
	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%s] %s: %s (%s)",
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.AuthorName,
			r.Description,
			r.Status,
		)
	}
	return b.String()
}

// Summarize never fails: collaborator errors and timeouts become the fixed error text.
func (a *Advisor) Summarize(ctx context.Context, reports []*domain.Report) string {
	text, _ := a.summarize(ctx, reports)
	return text
}

func (a *Advisor) summarize(ctx context.Context, reports []*domain.Report) (string, bool) {
	if a.gen == nil {
		a.logger.Warn("advisory not generated", slog.Any("error", e.ErrSummarizerUnavailable))
		metrics.AdvisoryTotal.WithLabelValues("error").Inc()
		return AdvisoryErrorText, true
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	start := time.Now()
	out, err := a.gen.Generate(ctx, domain.GenerateRequest{
		Model:             a.cfg.Model,
		Prompt:            advisoryPromptHeader + BuildContext(reports),
		SystemInstruction: advisorySystemInstruction,
	})
	metrics.AdvisoryDurationSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AdvisoryTotal.WithLabelValues("error").Inc()
		a.logger.Error("advisory generation failed",
			slog.Any("error", fmt.Errorf("%w: %v", e.ErrSummarizerUnavailable, err)),
			slog.Int("reports", len(reports)))
		return AdvisoryErrorText, true
	}

	if out == "" {
		metrics.AdvisoryTotal.WithLabelValues("empty").Inc()
		return AdvisoryEmptyText, false
	}

	metrics.AdvisoryTotal.WithLabelValues("ok").Inc()
	return out, false
}

// FeedVersion fingerprints a newest-first snapshot. Reports are never updated or
// removed, so the count and the newest ID identify it.
func FeedVersion(reports []*domain.Report) string {
	if len(reports) == 0 {
		return "0"
	}
	return fmt.Sprintf("%d:%s", len(reports), reports[0].ID)
}

// Refresh recomputes the advisory from the current feed. When a newer refresh starts
// before this one finishes, this result is returned to the caller but not published.
// Degraded results are returned but never published or cached.
func (a *Advisor) Refresh(ctx context.Context) (domain.Advisory, error) {
	const op = "service.Advisor.Refresh"

	seq := a.seq.Add(1)

	reports, err := a.feed.Snapshot(ctx)
	if err != nil {
		return domain.Advisory{}, e.WrapError(ctx, op, err)
	}

	text, degraded := a.summarize(ctx, reports)
	adv := domain.Advisory{
		Text:        text,
		GeneratedAt: a.now().UTC(),
		ReportCount: len(reports),
		Degraded:    degraded,
		FeedVersion: FeedVersion(reports),
	}

	if !a.publish(ctx, seq, adv) {
		metrics.AdvisoryTotal.WithLabelValues("stale").Inc()
		a.logger.Debug("stale advisory dropped", slog.Uint64("seq", seq))
	}
	return adv, nil
}

// publish stores adv as the latest advisory if no newer refresh or invalidation
// happened since seq was taken. The cache write shares the lock with Invalidate.
func (a *Advisor) publish(ctx context.Context, seq uint64, adv domain.Advisory) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if seq != a.seq.Load() {
		return false
	}
	if adv.Degraded {
		return true
	}
	a.latest = &adv

	if err := a.cache.Set(ctx, adv, a.cfg.CacheTTL); err != nil {
		a.logger.Warn("advisory cache set failed", slog.Any("error", err))
	}
	return true
}

// Latest returns the published advisory, falling back to the cache and then to a
// fresh computation. A cached advisory is used only when it was computed from the
// same feed this process holds.
func (a *Advisor) Latest(ctx context.Context) (domain.Advisory, error) {
	const op = "service.Advisor.Latest"

	a.mu.RLock()
	latest := a.latest
	a.mu.RUnlock()
	if latest != nil {
		return *latest, nil
	}

	seq := a.seq.Load()
	cached, err := a.cache.Get(ctx)
	switch {
	case err != nil && !errors.Is(err, e.ErrNotFound):
		a.logger.Warn("advisory cache get failed", slog.Any("error", err))
	case cached != nil:
		reports, err := a.feed.Snapshot(ctx)
		if err != nil {
			return domain.Advisory{}, e.WrapError(ctx, op, err)
		}
		if version := FeedVersion(reports); cached.FeedVersion != version {
			a.logger.Debug("cached advisory belongs to another feed",
				slog.String("cached", cached.FeedVersion), slog.String("feed", version))
			break
		}

		a.mu.Lock()
		if a.latest == nil && a.seq.Load() == seq {
			a.latest = cached
		}
		a.mu.Unlock()
		return *cached, nil
	}

	return a.Refresh(ctx)
}

// Invalidate drops the published advisory. Any refresh in flight is now stale.
func (a *Advisor) Invalidate(ctx context.Context) {
	a.mu.Lock()
	a.seq.Add(1)
	a.latest = nil
	a.mu.Unlock()

	if err := a.cache.Invalidate(ctx); err != nil {
		a.logger.Warn("advisory cache invalidate failed", slog.Any("error", err))
	}
}
