// Package raster renders PDF pages to JPEG images by shelling out to
// poppler's pdftoppm behind a stubbable Runner, and layers the thumbnail
// cache and preview generation on top.
package raster

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// JPEG qualities per consumer.
const (
	ThumbnailQuality = 90
	PreviewQuality   = 60
	EnrichQuality    = 80
)

type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"
	DPI      int    // default 150
}

// Rasterizer renders single PDF pages to encoded JPEG bytes.
type Rasterizer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewRasterizer(cfg Config, logger *slog.Logger) *Rasterizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 150
	}
	return &Rasterizer{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the exec runner; tests use this to avoid poppler.
func (r *Rasterizer) WithRunner(runner Runner) *Rasterizer {
	r.runner = runner
	return r
}

// RenderPage renders one page (1-based) of the PDF at pdfPath to JPEG
// bytes at the given quality. A page past the end of the document surfaces
// as an error, which callers use as end-of-document detection.
func (r *Rasterizer) RenderPage(ctx context.Context, pdfPath string, page, quality int) ([]byte, error) {
	if page < 1 {
		page = 1
	}

	tmpDir, err := os.MkdirTemp("", "pt-raster-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			r.logger.Warn("raster.tmpdir_cleanup_failed", "dir", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -jpeg -jpegopt quality=<q> -f <p> -l <p> -singlefile <in.pdf> <prefix>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm,
		"-r", fmt.Sprintf("%d", r.cfg.DPI),
		"-jpeg", "-jpegopt", fmt.Sprintf("quality=%d", quality),
		"-f", fmt.Sprintf("%d", page),
		"-l", fmt.Sprintf("%d", page),
		"-singlefile", pdfPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w (%s)", page, err, truncate(string(errb), 256))
	}

	out, err := os.ReadFile(prefix + ".jpg")
	if err != nil {
		// pdftoppm exits zero for out-of-range pages but writes nothing
		return nil, fmt.Errorf("render page %d: no output: %w", page, err)
	}
	return out, nil
}
