package types

import (
	"encoding/json"
	"errors"
	"time"
)

// Store is the key-value capability the program persists through. Each
// namespace holds one JSON-encoded ProgramState. Callers attach to a backend,
// read and write values, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations return ErrStoreDetached.
	Detach() error

	// Get returns the value stored under namespace.
	// Returns ErrNotFound if nothing has been stored there.
	Get(namespace string) ([]byte, error)

	// Put replaces the value stored under namespace and records a snapshot
	// in the namespace history.
	Put(namespace string, value []byte) error

	// History returns the snapshots of namespace, oldest first.
	History(namespace string) ([]Snapshot, error)
}

// Snapshot is one historical value of a namespace.
type Snapshot struct {
	SnapshotID string          `json:"snapshot_id"` // UUID v7.
	Namespace  string          `json:"namespace"`
	Version    int64           `json:"version"` // 1 for the first Put, then +1.
	Value      json.RawMessage `json:"value"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Store errors.
var (
	ErrStoreDetached    = errors.New("store is detached")
	ErrAlreadyAttached  = errors.New("store is already attached")
	ErrNotFound         = errors.New("namespace not found")
	ErrInvalidNamespace = errors.New("namespace must not be empty")
)
