package raster

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// SourceResolver locates the source document for a stable file name.
// Implemented by the pattern file store.
type SourceResolver interface {
	// Resolve returns the absolute path for fileName, or an error wrapping
	// the store's not-found sentinel when no such document exists.
	Resolve(fileName string) (string, error)
}

// ThumbnailCache persists one representative JPEG per document, keyed by
// the document's filename stem. Entries are created lazily on first miss
// and never refreshed: a hit returns the cached bytes even when a
// different page is requested, and concurrent first misses may both render
// and write the same path (same bytes, last writer wins). Both are
// deliberate trade-offs, pinned by tests.
type ThumbnailCache struct {
	dir    string
	source SourceResolver
	raster *Rasterizer
	logger *slog.Logger
}

func NewThumbnailCache(dir string, source SourceResolver, raster *Rasterizer, logger *slog.Logger) *ThumbnailCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &ThumbnailCache{dir: dir, source: source, raster: raster, logger: logger}
}

// GetOrCreate returns the cached thumbnail for fileName, rendering and
// persisting the requested page (1-based) on a miss. A missing source
// document surfaces as the resolver's not-found error; everything else is
// plain I/O.
func (c *ThumbnailCache) GetOrCreate(ctx context.Context, fileName string, page int) ([]byte, error) {
	thumbPath := filepath.Join(c.dir, stem(fileName)+".jpg")

	if b, err := os.ReadFile(thumbPath); err == nil {
		return b, nil
	}

	pdfPath, err := c.source.Resolve(fileName)
	if err != nil {
		return nil, err
	}

	c.logger.Info("thumbnail.generate", "file", fileName, "page", page, "path", thumbPath)

	b, err := c.raster.RenderPage(ctx, pdfPath, page, ThumbnailQuality)
	if err != nil {
		return nil, fmt.Errorf("generate thumbnail for %s: %w", fileName, err)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(thumbPath, b, 0o644); err != nil {
		return nil, err
	}
	return b, nil
}

// Path returns where the cached thumbnail for fileName lives, whether or
// not it exists yet.
func (c *ThumbnailCache) Path(fileName string) string {
	return filepath.Join(c.dir, stem(fileName)+".jpg")
}

func stem(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
