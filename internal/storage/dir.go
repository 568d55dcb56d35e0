// Package storage keeps the uploaded pattern documents on disk under a
// single patterns directory, addressed by their caller-assigned filename.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/craftlog/pattern-tracker/internal/common"
)

// Dir is the pattern document store rooted at <dataDir>/patterns.
type Dir struct {
	root string
}

func NewDir(dataDir string) *Dir {
	return &Dir{root: filepath.Join(dataDir, "patterns")}
}

// Save writes the document under its stable filename, creating the
// patterns directory on demand, and returns the stored path. An existing
// file with the same name is replaced; filename uniqueness is the
// caller's contract.
func (d *Dir) Save(fileName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return "", fmt.Errorf("create patterns dir: %w", err)
	}
	dst := d.Path(fileName)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return dst, nil
}

// Path returns where fileName is (or would be) stored. The base name is
// taken to keep callers from escaping the patterns directory.
func (d *Dir) Path(fileName string) string {
	return filepath.Join(d.root, filepath.Base(fileName))
}

// Exists reports whether a document with this filename is stored.
func (d *Dir) Exists(fileName string) bool {
	st, err := os.Stat(d.Path(fileName))
	return err == nil && !st.IsDir()
}

// Open opens a stored document for reading.
func (d *Dir) Open(fileName string) (*os.File, error) {
	f, err := os.Open(d.Path(fileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NewAppError("PATTERN_NOT_FOUND",
				fmt.Sprintf("no pattern document named %q", fileName), common.ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}

// Resolve implements raster.SourceResolver: the absolute path for a stored
// document, or a not-found error when it was never saved.
func (d *Dir) Resolve(fileName string) (string, error) {
	p := d.Path(fileName)
	st, err := os.Stat(p)
	if err != nil || st.IsDir() {
		return "", common.NewAppError("PATTERN_NOT_FOUND",
			fmt.Sprintf("no pattern document named %q", fileName), common.ErrNotFound)
	}
	return p, nil
}
