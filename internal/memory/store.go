// Package memory implements an in-process Store. Nothing survives Detach.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/reditus/pkg/types"
)

var _ types.Store = (*Store)(nil)

// Store keeps namespace values and their history in maps.
type Store struct {
	mu       sync.RWMutex
	attached bool
	values   map[string][]byte
	history  map[string][]types.Snapshot

	// PutErr, when set, is returned by every Put. Tests use it to simulate
	// a failing backend.
	PutErr error
}

// NewStore returns an attached, empty Store.
func NewStore() *Store {
	s := &Store{}
	_ = s.Attach(types.Config{Backend: types.BackendMemory})
	return s
}

// Attach resets the store to empty.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	s.values = make(map[string][]byte)
	s.history = make(map[string][]types.Snapshot)
	s.attached = true
	return nil
}

// Detach drops all values. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attached = false
	s.values = nil
	s.history = nil
	return nil
}

// Get returns a copy of the value under namespace.
func (s *Store) Get(namespace string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	if namespace == "" {
		return nil, types.ErrInvalidNamespace
	}
	v, ok := s.values[namespace]
	if !ok {
		return nil, types.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value and appends a snapshot.
func (s *Store) Put(namespace string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	if namespace == "" {
		return types.ErrInvalidNamespace
	}
	if s.PutErr != nil {
		return s.PutErr
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating UUID v7: %w", err)
	}
	v := append([]byte(nil), value...)
	s.values[namespace] = v
	s.history[namespace] = append(s.history[namespace], types.Snapshot{
		SnapshotID: id.String(),
		Namespace:  namespace,
		Version:    int64(len(s.history[namespace]) + 1),
		Value:      v,
		CreatedAt:  time.Now().UTC(),
	})
	return nil
}

// History returns the snapshots of namespace, oldest first.
func (s *Store) History(namespace string) ([]types.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	out := make([]types.Snapshot, len(s.history[namespace]))
	copy(out, s.history[namespace])
	return out, nil
}

// Seed stores value under namespace without recording history. Tests use it
// to plant persisted state written by an older version.
func (s *Store) Seed(namespace string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[namespace] = append([]byte(nil), value...)
}
