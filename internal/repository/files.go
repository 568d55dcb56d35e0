package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/craftlog/pattern-tracker/internal/common"
	"github.com/craftlog/pattern-tracker/internal/entity"
)

type PatternFileRepository interface {
	// UpsertByHash registers an ingested file, deduplicating on its
	// content hash. The bool reports whether the file already existed.
	UpsertByHash(ctx context.Context, f *entity.PatternFile) (*entity.PatternFile, bool, error)
	GetByFilename(ctx context.Context, filename string) (*entity.PatternFile, error)
	List(ctx context.Context) ([]*entity.PatternFile, error)
}

type patternFileRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func (r *patternFileRepository) UpsertByHash(ctx context.Context, f *entity.PatternFile) (*entity.PatternFile, bool, error) {
	existing, err := r.getByHash(ctx, f.ContentHash)
	if err == nil {
		r.logger.Info("repository.file.duplicate",
			"filename", f.Filename, "existing_id", existing.ID.String())
		return existing, true, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, false, err
	}

	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.UploadedAt.IsZero() {
		f.UploadedAt = time.Now().UTC()
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pattern_files (id, source_path, content_hash, filename, page_count, file_size, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.ID.String(), f.SourcePath, f.ContentHash, f.Filename,
		f.PageCount, f.FileSize, f.UploadedAt.Format(time.RFC3339))
	if err != nil {
		return nil, false, common.WrapError(err, "insert pattern_file")
	}
	r.logger.Info("repository.file.registered",
		"file_id", f.ID.String(), "filename", f.Filename, "pages", f.PageCount)
	return f, false, nil
}

func (r *patternFileRepository) GetByFilename(ctx context.Context, filename string) (*entity.PatternFile, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		selectPatternFile+` WHERE filename = ? ORDER BY uploaded_at DESC LIMIT 1`, filename))
}

func (r *patternFileRepository) List(ctx context.Context) ([]*entity.PatternFile, error) {
	rows, err := r.db.QueryContext(ctx, selectPatternFile+` ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, common.WrapError(err, "list pattern_files")
	}
	defer func() {
		_ = rows.Close()
	}()
	var out []*entity.PatternFile
	for rows.Next() {
		f, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *patternFileRepository) getByHash(ctx context.Context, hash []byte) (*entity.PatternFile, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectPatternFile+` WHERE content_hash = ?`, hash))
}

const selectPatternFile = `
	SELECT id, source_path, content_hash, filename, page_count, file_size, uploaded_at
	FROM pattern_files`

func (r *patternFileRepository) scanOne(row rowScanner) (*entity.PatternFile, error) {
	var (
		f          entity.PatternFile
		id         string
		uploadedAt string
	)
	err := row.Scan(&id, &f.SourcePath, &f.ContentHash, &f.Filename,
		&f.PageCount, &f.FileSize, &uploadedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewAppError("FILE_NOT_FOUND", "pattern file not found", common.ErrNotFound)
		}
		return nil, common.WrapError(err, "scan pattern_file")
	}
	f.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, common.WrapError(err, "parse file id")
	}
	if t, err := time.Parse(time.RFC3339, uploadedAt); err == nil {
		f.UploadedAt = t
	}
	return &f, nil
}
