// Package types defines the program entities (disciplines, days, timeline,
// program state), the Store interface implemented by the storage backends,
// and the standard error types for reditus.
package types
