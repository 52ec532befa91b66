package workers

import (
	"context"
	"log/slog"
	"time"
)

type DraftSweeper interface {
	Sweep(now time.Time, ttl time.Duration) int
}

// DraftJanitor removes drafts a client opened and never came back to.
type DraftJanitor struct {
	drafts   DraftSweeper
	ttl      time.Duration
	interval time.Duration
	logger   *slog.Logger
}

func NewDraftJanitor(drafts DraftSweeper, ttl time.Duration, logger *slog.Logger) *DraftJanitor {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	return &DraftJanitor{
		drafts:   drafts,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

func (j *DraftJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := j.drafts.Sweep(now, j.ttl); n > 0 {
				j.logger.Info("abandoned drafts swept", slog.Int("count", n))
			}
		}
	}
}
