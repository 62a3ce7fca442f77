// Package types defines the program entities, the Store interface, and
// standard errors for reditus.
package types

import "errors"

// Config holds backend selection and program parameters for Store.Attach and
// for building the program timeline.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Anchor is the program's anchor date in YYYY-MM-DD form. When empty,
	// Easter Sunday of Year is used.
	Anchor string `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Year   int    `json:"year,omitempty" yaml:"year,omitempty"`

	// NamespaceSuffix is appended to the anchor year to form the storage key.
	NamespaceSuffix string `json:"namespace_suffix,omitempty" yaml:"namespace_suffix,omitempty"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// DefaultNamespaceSuffix is the storage key suffix used when the config does
// not name one.
const DefaultNamespaceSuffix = "programstate"

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrInvalidAnchor  = errors.New("invalid anchor date")
	ErrInvalidYear    = errors.New("year must be between 1583 and 9999")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
	BackendFile:   true,
	BackendMemory: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. Anchor syntax is checked by the program
// package, which owns date parsing.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Year != 0 && (c.Year < 1583 || c.Year > 9999) {
		return ErrInvalidYear
	}
	return nil
}

// GetNamespaceSuffix returns the configured suffix or DefaultNamespaceSuffix.
func (c Config) GetNamespaceSuffix() string {
	if c.NamespaceSuffix == "" {
		return DefaultNamespaceSuffix
	}
	return c.NamespaceSuffix
}
