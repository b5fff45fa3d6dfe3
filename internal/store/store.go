// Package store archives finished interview reports in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the archive database.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Results returns a ResultRepo backed by this store.
func (s *Store) Results() ResultRepo {
	return &resultRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS results (
			session_id  TEXT PRIMARY KEY,
			candidate   TEXT NOT NULL,
			seniority   TEXT NOT NULL,
			role        TEXT NOT NULL,
			status      TEXT NOT NULL,
			final_score REAL NOT NULL,
			readiness   TEXT NOT NULL,
			answered    INTEGER NOT NULL,
			report      TEXT NOT NULL,
			finished_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_finished_at ON results(finished_at)`,
		`CREATE TABLE IF NOT EXISTS decision_log (
			session_id TEXT NOT NULL REFERENCES results(session_id) ON DELETE CASCADE,
			seq        INTEGER NOT NULL,
			line       TEXT NOT NULL,
			PRIMARY KEY (session_id, seq)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MOCKROUND_DB environment variable
// 2. $XDG_DATA_HOME/mockround/mockround.db
// 3. ~/.local/share/mockround/mockround.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MOCKROUND_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "mockround", "mockround.db")
	return p, ensureDir(p)
}

// ResolveDBPath returns override when set, creating its directory, and
// DefaultDBPath otherwise.
func ResolveDBPath(override string) (string, error) {
	if override != "" {
		return override, ensureDir(override)
	}
	return DefaultDBPath()
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
