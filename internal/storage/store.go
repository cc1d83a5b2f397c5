// Package storage persists ledger snapshots in a SQLite-backed key-value
// store. Each collection (accounts, transactions, categories, customCharts)
// is stored wholesale as one JSON snapshot and overwritten on every save.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Snapshot keys for the persisted collections.
const (
	KeyAccounts     = "accounts"
	KeyTransactions = "transactions"
	KeyCategories   = "categories"
	KeyCharts       = "customCharts"
)

// Store is a SQLite-backed snapshot store.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open opens (or creates) the snapshot database at dbPath and runs
// migrations.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the snapshot stored under key into dst. When the snapshot is
// absent or unparsable, dst is left untouched for the caller's fallback
// and ok is false; parse errors are logged, never propagated.
func (s *Store) Load(ctx context.Context, key string, dst any) (ok bool, err error) {
	if ctx == nil {
		return false, fmt.Errorf("context cannot be nil")
	}

	var value string
	row := s.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, key)
	if scanErr := row.Scan(&value); scanErr == sql.ErrNoRows {
		slog.Debug("no snapshot stored", "key", key)
		return false, nil
	} else if scanErr != nil {
		return false, fmt.Errorf("failed to read snapshot %q: %w", key, scanErr)
	}

	// Decode into a scratch value first. Unmarshal writes elements into
	// dst as it goes, so a snapshot that fails partway through would
	// otherwise leave dst holding a truncated decode.
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false, fmt.Errorf("dst must be a non-nil pointer")
	}
	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal([]byte(value), tmp.Interface()); err != nil {
		slog.Warn("malformed snapshot, falling back to defaults", "key", key, "error", err)
		return false, nil
	}
	rv.Elem().Set(tmp.Elem())

	slog.Debug("loaded snapshot", "key", key, "bytes", len(value))
	return true, nil
}

// Save overwrites the snapshot stored under key with the JSON encoding of v.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}

	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", key, err)
	}

	slog.Debug("saved snapshot", "key", key, "bytes", len(value))
	return nil
}
