// Package store provides the public factory for reditus storage backends.
// This package selects a backend by name while keeping implementation
// details internal.
//
// Example:
//
//	s, err := store.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".reditus-db",
//	})
//	if err != nil {
//	    return err
//	}
//	defer s.Detach()
package store

import (
	"fmt"

	"github.com/mesh-intelligence/reditus/internal/filestore"
	"github.com/mesh-intelligence/reditus/internal/memory"
	"github.com/mesh-intelligence/reditus/internal/sqlite"
	"github.com/mesh-intelligence/reditus/pkg/types"
)

// New returns an unattached Store for the named backend.
func New(backend string) (types.Store, error) {
	switch backend {
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case types.BackendFile:
		return filestore.NewStore(), nil
	case types.BackendMemory:
		return &memory.Store{}, nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
	}
}

// Open creates the backend named by config and attaches it.
func Open(config types.Config) (types.Store, error) {
	s, err := New(config.Backend)
	if err != nil {
		return nil, err
	}
	if err := s.Attach(config); err != nil {
		return nil, fmt.Errorf("attach %s store: %w", config.Backend, err)
	}
	return s, nil
}
