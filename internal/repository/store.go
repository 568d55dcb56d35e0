// Package repository persists the pattern catalog in an embedded SQLite
// database: the patterns table, lookup tables with get-or-create dedup
// semantics, and the ingested-file ledger.
package repository

import (
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/craftlog/pattern-tracker/internal/repository/migrations"
)

// Store owns the SQLite handle shared by the repositories.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewStore opens (creating if needed) the catalog database under dataDir.
func NewStore(dataDir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: dbPath, logger: logger}
	if err := s.migrate(migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Info("repository.open", "path", dbPath)
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Patterns returns the pattern repository backed by this store.
func (s *Store) Patterns() PatternRepository {
	return &patternRepository{db: s.db, logger: s.logger}
}

// Files returns the ingested-file repository backed by this store.
func (s *Store) Files() PatternFileRepository {
	return &patternFileRepository{db: s.db, logger: s.logger}
}

// migrate applies every embedded .sql file in lexical order. Statements
// are idempotent, so re-running on an existing database is harmless.
func (s *Store) migrate(migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		b, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(b)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
