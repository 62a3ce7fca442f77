// Package filestore implements a Store on plain files: one JSON document per
// namespace, rewritten atomically on every Put, and an append-only JSONL
// history beside it.
package filestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

var _ types.Store = (*Store)(nil)

// File suffixes for a namespace's value and history.
const (
	valueSuffix   = ".json"
	historySuffix = ".history.jsonl"
)

// Store implements types.Store in a data directory.
type Store struct {
	mu       sync.RWMutex
	attached bool
	dataDir  string
}

// snapshotJSON is one line of a history file.
type snapshotJSON struct {
	SnapshotID string          `json:"snapshot_id"`
	Namespace  string          `json:"namespace"`
	Version    int64           `json:"version"`
	Value      json.RawMessage `json:"value"`
	CreatedAt  string          `json:"created_at"`
}

// NewStore creates a new file store. Call Attach before use.
func NewStore() *Store {
	return &Store{}
}

// Attach creates DataDir if needed. Returns ErrAlreadyAttached if already
// attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	s.dataDir = dataDir
	s.attached = true
	return nil
}

// Detach is idempotent. Files stay on disk.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = false
	return nil
}

// Get reads the namespace document.
func (s *Store) Get(namespace string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path, err := s.pathFor(namespace, valueSuffix)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", namespace, err)
	}
	return data, nil
}

// Put atomically replaces the namespace document, then appends a snapshot
// to its history.
func (s *Store) Put(namespace string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.pathFor(namespace, valueSuffix)
	if err != nil {
		return err
	}
	histPath, _ := s.pathFor(namespace, historySuffix)

	records, err := readJSONL(histPath)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, value); err != nil {
		return fmt.Errorf("writing %s: %w", namespace, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating UUID v7: %w", err)
	}
	snap := snapshotJSON{
		SnapshotID: id.String(),
		Namespace:  namespace,
		Version:    int64(len(records) + 1),
		Value:      compactJSON(value),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := appendJSONL(histPath, snap); err != nil {
		return fmt.Errorf("appending history of %s: %w", namespace, err)
	}
	return nil
}

// History reads the namespace history, skipping malformed lines.
func (s *Store) History(namespace string) ([]types.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	histPath, err := s.pathFor(namespace, historySuffix)
	if err != nil {
		return nil, err
	}
	records, err := readJSONL(histPath)
	if err != nil {
		return nil, err
	}

	out := make([]types.Snapshot, 0, len(records))
	for _, rec := range records {
		var sj snapshotJSON
		if err := json.Unmarshal(rec, &sj); err != nil {
			continue
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, sj.CreatedAt)
		out = append(out, types.Snapshot{
			SnapshotID: sj.SnapshotID,
			Namespace:  sj.Namespace,
			Version:    sj.Version,
			Value:      sj.Value,
			CreatedAt:  createdAt,
		})
	}
	return out, nil
}

// pathFor returns the file for namespace. The caller must hold s.mu.
func (s *Store) pathFor(namespace, suffix string) (string, error) {
	if !s.attached {
		return "", types.ErrStoreDetached
	}
	if namespace == "" || strings.ContainsAny(namespace, `/\`) || namespace == "." || namespace == ".." {
		return "", types.ErrInvalidNamespace
	}
	return filepath.Join(s.dataDir, namespace+suffix), nil
}

// compactJSON returns value as a single-line JSON document, or as a JSON
// string when value is not valid JSON.
func compactJSON(value []byte) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err == nil {
		return json.RawMessage(buf.Bytes())
	}
	quoted, _ := json.Marshal(string(value))
	return json.RawMessage(quoted)
}
