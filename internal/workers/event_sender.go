package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"

	"github.com/goowebia/hay-paso/internal/config"
	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/metrics"
	"github.com/goowebia/hay-paso/pkg/e"
)

const (
	maxDeliveryAttempts = 3
	popTimeout          = 5 * time.Second
)

type EventSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.ReportCreatedEvent, error)
}

// EventSender posts report-created events to the configured webhook.
type EventSender struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	queue  EventSource
	http   *http.Client

	retryDelay time.Duration
}

func NewEventSender(logger *slog.Logger, cfg config.WebhookConfig, q EventSource) *EventSender {
	return &EventSender{
		logger:     logger,
		cfg:        cfg,
		queue:      q,
		http:       &http.Client{Timeout: 5 * time.Second},
		retryDelay: time.Second,
	}
}

func (s *EventSender) Run(ctx context.Context) {
	s.logger.Info("eventSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("eventSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		ev, err := s.queue.BRPop(ctx, popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			select {
			case <-ctx.Done():
			case <-time.After(500 * time.Millisecond):
			}
			continue
		}

		s.logger.Debug("sending webhook", slog.String("report_id", ev.ReportID.String()))
		if err := s.Deliver(ctx, ev); err != nil {
			metrics.WebhookTotal.WithLabelValues("failed").Inc()
			s.logger.Error("webhook delivery failed",
				slog.String("report_id", ev.ReportID.String()),
				slog.Any("error", err))
			continue
		}
		metrics.WebhookTotal.WithLabelValues("ok").Inc()
	}
}

// Deliver posts one event, retrying transport errors and 5xx answers with backoff.
func (s *EventSender) Deliver(ctx context.Context, ev domain.ReportCreatedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return retry.Do(
		func() error {
			return s.post(ctx, body)
		},
		retry.Context(ctx),
		retry.Attempts(maxDeliveryAttempts),
		retry.Delay(s.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Warn("webhook failed",
				slog.Int("attempt", int(n)+1),
				slog.String("url", s.cfg.URL),
				slog.String("reason", err.Error()),
			)
		}),
	)
}

func (s *EventSender) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return retry.Unrecoverable(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500:
		return fmt.Errorf("webhook answered %s", resp.Status)
	default:
		return retry.Unrecoverable(fmt.Errorf("webhook answered %s", resp.Status))
	}
}
