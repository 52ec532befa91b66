package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goowebia/hay-paso/internal/domain"
	"github.com/goowebia/hay-paso/internal/metrics"
	"github.com/goowebia/hay-paso/pkg/e"
	"github.com/goowebia/hay-paso/pkg/validator"
)

const extractionPrompt = `Extrae la información relevante de este post de Facebook de grupos de tráfico: "%s"`

var extractionSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"description": map[string]any{"type": "STRING"},
		"status": map[string]any{
			"type": "STRING",
			"enum": []string{
				string(domain.StatusFluid),
				string(domain.StatusSlow),
				string(domain.StatusStall),
				string(domain.StatusAccident),
				string(domain.StatusClosure),
			},
		},
	},
	"required": []string{"description", "status"},
}

type ExtractorConfig struct {
	Model           string
	Timeout         time.Duration
	DefaultLocation string
}

// Extractor turns posts from community traffic groups into feed reports.
type Extractor struct {
	gen       TextGenerator
	feed      *FeedService
	validator *ReportValidator
	cfg       ExtractorConfig
	logger    *slog.Logger
	now       func() time.Time
}

func NewExtractor(gen TextGenerator, feed *FeedService, validator *ReportValidator, cfg ExtractorConfig, logger *slog.Logger) *Extractor {
	return &Extractor{
		gen:       gen,
		feed:      feed,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// ParseSocialReport always yields a usable extraction. Anything the collaborator gets
// wrong falls back to the raw text with status SLOW.
func (x *Extractor) ParseSocialReport(ctx context.Context, text string) domain.Extraction {
	ext, err := x.extract(ctx, text)
	if err != nil {
		metrics.ExtractionTotal.WithLabelValues("fallback").Inc()
		x.logger.Warn("social post extraction fell back",
			slog.Any("error", fmt.Errorf("%w: %v", e.ErrMalformedExtraction, err)))
		return domain.Extraction{Description: text, Status: domain.StatusSlow}
	}
	metrics.ExtractionTotal.WithLabelValues("ok").Inc()
	return ext
}

func (x *Extractor) extract(ctx context.Context, text string) (domain.Extraction, error) {
	if x.gen == nil {
		return domain.Extraction{}, e.ErrSummarizerUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, x.cfg.Timeout)
	defer cancel()

	out, err := x.gen.Generate(ctx, domain.GenerateRequest{
		Model:          x.cfg.Model,
		Prompt:         fmt.Sprintf(extractionPrompt, text),
		ResponseSchema: extractionSchema,
	})
	if err != nil {
		return domain.Extraction{}, err
	}

	var raw struct {
		Description string `json:"description"`
		Status      string `json:"status"`
	}
	if err := json.Unmarshal([]byte(stripFence(out)), &raw); err != nil {
		return domain.Extraction{}, fmt.Errorf("decode: %w", err)
	}

	st, ok := domain.ParseTrafficStatus(raw.Status)
	if !ok {
		return domain.Extraction{}, fmt.Errorf("status %q: %w", raw.Status, e.ErrInvalidStatus)
	}
	desc := strings.TrimSpace(raw.Description)
	if desc == "" {
		return domain.Extraction{}, e.ErrEmptyDescription
	}
	return domain.Extraction{Description: desc, Status: st}, nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Ingest extracts a report from a social post and commits it as an external report.
func (x *Extractor) Ingest(ctx context.Context, viewer domain.Viewer, req domain.IngestRequest) (domain.ViewReport, error) {
	const op = "service.Extractor.Ingest"

	if !viewer.Privileged {
		return domain.ViewReport{}, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return domain.ViewReport{}, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	ext := x.ParseSocialReport(ctx, req.Text)

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = x.cfg.DefaultLocation
	}

	report, err := x.validator.Validate(domain.ReportDraft{
		Description:      ext.Description,
		Location:         location,
		Status:           ext.Status,
		MediaURL:         req.MediaURL,
		CreatedAt:        x.now().UTC(),
		AuthorName:       strings.TrimSpace(req.Source),
		AuthorAvatar:     req.Avatar,
		IsExternalSource: true,
	})
	if err != nil {
		return domain.ViewReport{}, err
	}

	if err := x.feed.Commit(ctx, report); err != nil {
		return domain.ViewReport{}, err
	}
	return domain.Project(report, viewer), nil
}
