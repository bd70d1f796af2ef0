/*
Package storage persists search analytics snapshots.

It provides SQLite-based storage for search history with graceful
degradation: if the database cannot be opened, the storage disables itself
and every operation becomes a no-op instead of failing the caller.

The database defaults to ~/.toolbox-search/history.db and uses
modernc.org/sqlite (a pure Go, CGo-free implementation). Query text is never
stored; only its SHA-256 hash is kept.
*/
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Storage defines the interface for persistent analytics storage.
type Storage interface {
	// Init initializes the database and runs migrations.
	Init() error

	// RecordSearch records a search snapshot.
	RecordSearch(record SearchRecord) error

	// ListSearches returns the newest records first, at most limit of them.
	ListSearches(limit int) ([]SearchRecord, error)

	// Cleanup removes records older than retention and returns how many were removed.
	Cleanup(retention time.Duration) (int64, error)

	// Close closes the database connection.
	Close() error
}

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	logger   *zap.Logger
	mu       sync.Mutex
	initOnce sync.Once
}

var _ Storage = (*SQLiteStorage)(nil)

// NewStorage creates a new SQLite storage instance at dbPath.
//
// An empty dbPath selects ~/.toolbox-search/history.db. The directory is
// created by Init. If the home directory cannot be resolved, the storage is
// disabled but operations will not fail.
func NewStorage(dbPath string, logger *zap.Logger) *SQLiteStorage {
	if logger == nil {
		logger = zap.NewNop()
	}

	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Warn("failed to get home directory, history disabled", zap.Error(err))
			return &SQLiteStorage{enabled: false, logger: logger}
		}
		dbPath = filepath.Join(home, ".toolbox-search", "history.db")
	}

	return &SQLiteStorage{
		dbPath:  dbPath,
		enabled: true,
		logger:  logger,
	}
}

// Enabled reports whether the database is usable.
func (s *SQLiteStorage) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.dbPath
}

// Init initializes the database and runs migrations.
//
// If initialization fails, storage is disabled and subsequent operations
// become no-ops (graceful degradation).
func (s *SQLiteStorage) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
			initErr = fmt.Errorf("failed to create db directory: %w", err)
			s.disable(initErr)
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.disable(initErr)
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.disable(initErr)
			return
		}

		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.disable(initErr)
			return
		}
	})

	return initErr
}

// disable turns the storage into a no-op. Caller holds s.mu.
func (s *SQLiteStorage) disable(cause error) {
	s.logger.Warn("search history disabled", zap.String("path", s.dbPath), zap.Error(cause))
	s.enabled = false
	if s.db != nil {
		s.db.Close()
		s.db = nil
	}
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	s.db = nil
	return nil
}

// HashQuery creates a SHA256 hash of a query string for privacy.
func HashQuery(query string) string {
	hash := sha256.Sum256([]byte(query))
	return hex.EncodeToString(hash[:])
}
