// Package sqlite implements the SQLite storage backend for reditus.
// Each namespace is one row in program_states; every Put also appends a row
// to state_history.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

// DBFileName is the database file created in DataDir.
const DBFileName = "reditus.db"

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store on a SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the database in config.DataDir and applies the
// schema. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	// Create DataDir if needed
	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return err
	}

	for _, stmt := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. After Detach, all operations return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// Get returns the value stored under namespace.
func (b *Backend) Get(namespace string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if namespace == "" {
		return nil, types.ErrInvalidNamespace
	}

	var value string
	err := b.db.QueryRow("SELECT value FROM program_states WHERE namespace = ?", namespace).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", namespace, err)
	}
	return []byte(value), nil
}

// Put upserts the namespace row and appends a history row in one
// transaction. The version increments with every Put.
func (b *Backend) Put(namespace string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if namespace == "" {
		return types.ErrInvalidNamespace
	}

	histID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating history UUID v7: %w", err)
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var version int64
	err = tx.QueryRow("SELECT version FROM program_states WHERE namespace = ?", namespace).Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("reading version of %s: %w", namespace, err)
	}
	exists := err == nil
	version++

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if exists {
		_, err = tx.Exec(
			"UPDATE program_states SET value = ?, version = ?, updated_at = ? WHERE namespace = ?",
			string(value), version, now, namespace,
		)
	} else {
		_, err = tx.Exec(
			"INSERT INTO program_states (namespace, value, version, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			namespace, string(value), version, now, now,
		)
	}
	if err != nil {
		return fmt.Errorf("persisting %s: %w", namespace, err)
	}

	_, err = tx.Exec(
		"INSERT INTO state_history (history_id, namespace, version, value, created_at) VALUES (?, ?, ?, ?, ?)",
		histID.String(), namespace, version, string(value), now,
	)
	if err != nil {
		return fmt.Errorf("recording history of %s: %w", namespace, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", namespace, err)
	}
	return nil
}

// History returns the snapshots of namespace ordered by version.
func (b *Backend) History(namespace string) ([]types.Snapshot, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT history_id, namespace, version, value, created_at FROM state_history WHERE namespace = ? ORDER BY version",
		namespace,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history of %s: %w", namespace, err)
	}
	defer rows.Close()

	var out []types.Snapshot
	for rows.Next() {
		var (
			s         types.Snapshot
			value     string
			createdAt string
		)
		if err := rows.Scan(&s.SnapshotID, &s.Namespace, &s.Version, &value, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		s.Value = []byte(value)
		s.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history of %s: %w", namespace, err)
	}
	return out, nil
}
