package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/craftlog/pattern-tracker/internal/entity"
	"github.com/craftlog/pattern-tracker/internal/raster"
)

// Config holds enhancement behavior knobs.
type Config struct {
	MaxPages int           // pages rasterized per call, default 10
	Timeout  time.Duration // upper bound on the vision call, default 2m
}

// Enhancer sends rasterized pattern pages plus the current draft to the
// vision model and folds the response into the draft. Enrichment is
// best-effort by contract: every internal failure (no pages, transport
// error, timeout, malformed response) degrades to returning the draft
// unchanged, and callers cannot tell which one happened.
type Enhancer struct {
	cfg    Config
	raster *raster.Rasterizer
	client VisionClient
	logger *slog.Logger
}

func NewEnhancer(cfg Config, r *raster.Rasterizer, client VisionClient, logger *slog.Logger) *Enhancer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &Enhancer{cfg: cfg, raster: r, client: client, logger: logger}
}

// Enhance returns the draft with any visually-verified gaps filled in.
// It never fails: the zero-risk outcome is always the input draft.
func (e *Enhancer) Enhance(ctx context.Context, pdfPath string, draft entity.PatternDraft) entity.PatternDraft {
	rid := uuid.New().String()
	start := time.Now()

	images := e.raster.RenderPages(ctx, pdfPath, e.cfg.MaxPages, raster.EnrichQuality)
	if len(images) == 0 {
		e.logger.Warn("llm.enhance.no_pages", "req_id", rid, "path", pdfPath)
		return draft
	}

	prompt := BuildReviewPrompt(draft)

	e.logger.Info("llm.enhance.start", "req_id", rid, "path", pdfPath, "pages", len(images))

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	response, err := e.client.Generate(callCtx, prompt, images)
	if err != nil {
		e.logger.Warn("llm.enhance.call_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return draft
	}

	raw, ok := ExtractJSONObject(response)
	if !ok {
		e.logger.Warn("llm.enhance.no_json", "req_id", rid, "response_len", len(response))
		return draft
	}

	cleaned, dropped, err := SanitizeFields(raw)
	if err != nil {
		e.logger.Warn("llm.enhance.sanitize_failed", "req_id", rid, "error", err)
		return draft
	}
	if len(dropped) > 0 {
		e.logger.Debug("llm.enhance.sanitized", "req_id", rid, "dropped", dropped)
	}

	if err := ValidateJSONAgainstSchema(BuildPatternJSONSchema(), cleaned); err != nil {
		e.logger.Warn("llm.enhance.schema_mismatch", "req_id", rid, "error", err)
		return draft
	}

	fields, err := DecodeFields(cleaned)
	if err != nil {
		e.logger.Warn("llm.enhance.decode_failed", "req_id", rid, "error", err)
		return draft
	}

	Merge(&draft, fields)

	e.logger.Info("llm.enhance.ok",
		"req_id", rid,
		"name", draft.Name,
		"designer", draft.Designer,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return draft
}
