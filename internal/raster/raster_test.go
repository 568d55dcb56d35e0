package raster

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftlog/pattern-tracker/internal/common"
)

// stubRunner mimics pdftoppm: it writes <prefix>.jpg for pages within the
// document and, like the real binary, exits zero without output for pages
// past the end.
type stubRunner struct {
	pages int
	calls int
}

func (s *stubRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	s.calls++
	var page int
	for i, a := range args {
		if a == "-f" && i+1 < len(args) {
			page, _ = strconv.Atoi(args[i+1])
		}
	}
	if page > s.pages {
		return nil, nil, nil
	}
	prefix := args[len(args)-1]
	return nil, nil, os.WriteFile(prefix+".jpg", []byte(fmt.Sprintf("jpeg-page-%d", page)), 0o644)
}

func newTestRasterizer(pages int) (*Rasterizer, *stubRunner) {
	runner := &stubRunner{pages: pages}
	r := NewRasterizer(Config{}, nil).WithRunner(runner)
	return r, runner
}

func TestRenderPage(t *testing.T) {
	r, _ := newTestRasterizer(2)

	b, err := r.RenderPage(context.Background(), "doc.pdf", 2, PreviewQuality)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-page-2", string(b))
}

func TestRenderPagePastEndIsError(t *testing.T) {
	r, _ := newTestRasterizer(2)

	_, err := r.RenderPage(context.Background(), "doc.pdf", 3, PreviewQuality)
	require.Error(t, err)
}

func TestPreviewsStopAtEndOfDocument(t *testing.T) {
	r, _ := newTestRasterizer(3)

	previews := r.Previews(context.Background(), "doc.pdf", 5)
	require.Len(t, previews, 3)
	for i, p := range previews {
		require.True(t, strings.HasPrefix(p, "data:image/jpeg;base64,"))
		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(p, "data:image/jpeg;base64,"))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("jpeg-page-%d", i+1), string(raw))
	}
}

func TestPreviewsUnreadableDocumentYieldsNone(t *testing.T) {
	r, _ := newTestRasterizer(0)

	previews := r.Previews(context.Background(), "doc.pdf", 5)
	assert.Empty(t, previews)
}

func TestRenderPagesRawBase64(t *testing.T) {
	r, _ := newTestRasterizer(2)

	images := r.RenderPages(context.Background(), "doc.pdf", 5, EnrichQuality)
	require.Len(t, images, 2)
	raw, err := base64.StdEncoding.DecodeString(images[0])
	require.NoError(t, err)
	assert.Equal(t, "jpeg-page-1", string(raw))
}

type mapResolver map[string]string

func (m mapResolver) Resolve(fileName string) (string, error) {
	p, ok := m[fileName]
	if !ok {
		return "", common.NewAppError("PATTERN_NOT_FOUND", "no such document", common.ErrNotFound)
	}
	return p, nil
}

func TestThumbnailCacheRendersOnceAndIgnoresPage(t *testing.T) {
	r, runner := newTestRasterizer(4)
	dir := t.TempDir()
	cache := NewThumbnailCache(dir, mapResolver{"doc.pdf": "/tmp/doc.pdf"}, r, nil)

	first, err := cache.GetOrCreate(context.Background(), "doc.pdf", 1)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-page-1", string(first))
	assert.Equal(t, 1, runner.calls)

	// A hit returns the cached bytes even for a different page.
	second, err := cache.GetOrCreate(context.Background(), "doc.pdf", 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, runner.calls)

	assert.Equal(t, filepath.Join(dir, "doc.jpg"), cache.Path("doc.pdf"))
}

func TestThumbnailMissingSource(t *testing.T) {
	r, _ := newTestRasterizer(4)
	cache := NewThumbnailCache(t.TempDir(), mapResolver{}, r, nil)

	_, err := cache.GetOrCreate(context.Background(), "ghost.pdf", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
