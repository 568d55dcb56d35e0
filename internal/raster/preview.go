package raster

import (
	"context"
	"encoding/base64"
)

// Previews renders up to maxPages pages of the PDF as base64 JPEG data
// URIs. Nothing is cached: the sequence is regenerated on every call. The
// first page that fails to render ends the loop, which doubles as
// end-of-document detection, so a 3-page document with maxPages=5 yields
// exactly 3 entries and an unreadable document yields none. Errors never
// propagate.
func (r *Rasterizer) Previews(ctx context.Context, pdfPath string, maxPages int) []string {
	previews := make([]string, 0, maxPages)
	for page := 1; page <= maxPages; page++ {
		b, err := r.RenderPage(ctx, pdfPath, page, PreviewQuality)
		if err != nil {
			r.logger.Debug("raster.preview.stop", "path", pdfPath, "page", page, "rendered", len(previews))
			break
		}
		previews = append(previews, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(b))
	}
	return previews
}

// RenderPages renders pages 1..maxPages as raw base64 strings (no data-URI
// prefix) for the enrichment request, stopping at the first failure.
func (r *Rasterizer) RenderPages(ctx context.Context, pdfPath string, maxPages, quality int) []string {
	images := make([]string, 0, maxPages)
	for page := 1; page <= maxPages; page++ {
		b, err := r.RenderPage(ctx, pdfPath, page, quality)
		if err != nil {
			break
		}
		images = append(images, base64.StdEncoding.EncodeToString(b))
	}
	if len(images) > 0 {
		r.logger.Debug("raster.pages.rendered", "path", pdfPath, "pages", len(images))
	}
	return images
}
