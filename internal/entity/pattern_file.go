package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatternFile represents an ingested pattern document.
type PatternFile struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	PageCount   int       `json:"page_count"`
	FileSize    int64     `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
