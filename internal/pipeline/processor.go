// Package pipeline composes the parse flow: text extraction, heuristic
// field extraction, vision enrichment, preview rendering.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/craftlog/pattern-tracker/internal/entity"
	"github.com/craftlog/pattern-tracker/internal/extract"
	"github.com/craftlog/pattern-tracker/internal/llm"
	"github.com/craftlog/pattern-tracker/internal/pdftext"
	"github.com/craftlog/pattern-tracker/internal/raster"
)

// PreviewPages is how many pages the review previews cover.
const PreviewPages = 5

// ParseResult is what one pipeline run hands back to the caller.
type ParseResult struct {
	Draft    entity.PatternDraft `json:"draft"`
	Previews []string            `json:"previews,omitempty"`
}

// Processor runs the full parse flow for one document. It holds no
// per-request state; the only cross-request state anywhere in the flow is
// the thumbnail cache, which this path does not touch.
type Processor struct {
	Logger   *slog.Logger
	Enhancer *llm.Enhancer
	Raster   *raster.Rasterizer
}

func NewProcessor(logger *slog.Logger, enhancer *llm.Enhancer, r *raster.Rasterizer) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Enhancer: enhancer, Raster: r}
}

// ProcessFile parses the PDF at pdfPath into an enriched draft plus page
// previews. A document with no extractable text yields an empty draft and
// the flow continues; enrichment and previews are both best-effort. The
// result is always usable.
func (p *Processor) ProcessFile(ctx context.Context, pdfPath string) ParseResult {
	start := time.Now()

	text, err := pdftext.ExtractText(pdfPath)
	if err != nil {
		p.Logger.Warn("pipeline.text.unreadable", "path", pdfPath, "error", err)
		text = ""
	}

	draft := extract.Extract(text)
	p.Logger.Info("pipeline.extract.ok",
		"path", pdfPath,
		"text_bytes", len(text),
		"name", draft.Name,
		"empty", draft.IsEmpty(),
	)

	if p.Enhancer != nil {
		draft = p.Enhancer.Enhance(ctx, pdfPath, draft)
	}

	var previews []string
	if p.Raster != nil {
		previews = p.Raster.Previews(ctx, pdfPath, PreviewPages)
	}

	p.Logger.Info("pipeline.process.ok",
		"path", pdfPath,
		"previews", len(previews),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ParseResult{Draft: draft, Previews: previews}
}
