package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rpgo/taxforms/internal/calculation"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// ErrNotFound is returned when no record exists for an (interest, tax year) pair.
var ErrNotFound = errors.New("ledger record not found")

// nowFunc stamps UpdatedAt (override in tests for determinism).
var nowFunc = time.Now

// Store persists loss limitation carryforward records in SQLite.
type Store struct {
	db     *sql.DB
	dbPath string
	logger calculation.Logger
}

// Open creates the database file if needed. Call Migrate before use.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// writes are serialized; concurrent edits to one year are last-write-wins
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db, dbPath: dbPath, logger: calculation.NopLogger{}}, nil
}

// SetLogger sets the logger for the store. If nil is provided, a no-op logger is used.
func (s *Store) SetLogger(l calculation.Logger) {
	if l == nil {
		s.logger = calculation.NopLogger{}
		return
	}
	s.logger = l
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}
