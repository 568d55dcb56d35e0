package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/craftlog/pattern-tracker/constants"
	"github.com/craftlog/pattern-tracker/internal/entity"
	"github.com/craftlog/pattern-tracker/internal/pdftext"
	"github.com/craftlog/pattern-tracker/internal/pipeline"
	"github.com/craftlog/pattern-tracker/internal/repository"
	"github.com/craftlog/pattern-tracker/internal/storage"
)

// FSIngestor reads pattern documents from the local filesystem, copies
// them into the document store, registers them in the catalog, and runs
// the parse pipeline on everything it has not seen before.
type FSIngestor struct {
	Files     repository.PatternFileRepository
	Patterns  repository.PatternRepository
	Store     *storage.Dir
	Processor *pipeline.Processor
	Logger    *slog.Logger
}

func NewFSIngestor(
	files repository.PatternFileRepository,
	patterns repository.PatternRepository,
	store *storage.Dir,
	proc *pipeline.Processor,
	logger *slog.Logger,
) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{Files: files, Patterns: patterns, Store: store, Processor: proc, Logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult
	start := time.Now()

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}
	out.SourcePath = abs

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	if err := pdftext.Validate(abs); err != nil {
		i.Logger.Warn("ingest.invalid_pdf", "path", abs, "error", err)
		return out, err
	}
	pages, err := pdftext.PageCount(abs)
	if err != nil {
		return out, err
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, fmt.Errorf("open: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	st, err := f.Stat()
	if err != nil {
		return out, err
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return out, fmt.Errorf("hash: %w", err)
	}
	sum := h.Sum(nil)
	out.HashHex = hex.EncodeToString(sum)

	row, dedup, err := i.Files.UpsertByHash(ctx, &entity.PatternFile{
		SourcePath:  abs,
		ContentHash: sum,
		Filename:    filepath.Base(abs),
		PageCount:   pages,
		FileSize:    st.Size(),
	})
	if err != nil {
		return out, err
	}
	out.FileID = row.ID.String()
	out.Deduplicated = dedup
	out.UploadedAt = row.UploadedAt

	if dedup {
		out.StoredPath = i.Store.Path(row.Filename)
		i.Logger.Info("ingest.dedup", "path", abs, "file_id", out.FileID)
		return out, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return out, fmt.Errorf("rewind: %w", err)
	}
	stored, err := i.Store.Save(row.Filename, f)
	if err != nil {
		return out, err
	}
	out.StoredPath = stored

	result := i.Processor.ProcessFile(ctx, stored)
	draft := result.Draft
	if draft.Name == "" {
		// A parse that found nothing still catalogs the document for
		// later manual review.
		draft.Name = strings.TrimSuffix(row.Filename, filepath.Ext(row.Filename))
	}

	patternID, err := i.Patterns.AddPattern(ctx, repository.AddPatternRequest{
		Draft:    draft,
		FilePath: stored,
	})
	if err != nil {
		return out, err
	}
	out.PatternID = patternID

	i.Logger.Info("ingest.ok",
		"path", abs,
		"file_id", out.FileID,
		"pattern_id", patternID,
		"pages", pages,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and
// ingests each matching file. Per-file failures are recorded, not fatal.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(constants.NormalizeExt(filepath.Ext(path))) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
