// Package blob provides the flat key-value store the logbook persists into.
// The whole location collection is written as a single blob under a fixed
// key, so the interface is deliberately tiny: overwrite-put, get, delete.
// Backends are swappable via configuration; semantics are identical across
// drivers so the store layer never cares which one is active.
package blob

import (
	"context"
	"errors"
)

// Driver identifies a concrete blob storage backend implementation.
type Driver string

const (
	DriverMemory     Driver = "memory"   // in-memory (tests)
	DriverFilesystem Driver = "fs"       // one file per key under a root directory
	DriverSQLite     Driver = "sqlite"   // single-file local database (default)
	DriverPostgres   Driver = "postgres" // shared database, goose-migrated blobs table
	DriverS3         Driver = "s3"       // S3 / MinIO compatible
)

// ErrNotFound is returned by Get when no blob exists under the requested key.
var ErrNotFound = errors.New("blob: not found")

// Store is a minimal key-value abstraction over a flat blob namespace.
type Store interface {
	// Put writes data under key, overwriting any existing blob.
	Put(ctx context.Context, key string, data []byte) error

	// Get returns the contents stored under key.
	// Returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the blob under key.
	// Returns false with a nil error when the key was absent.
	Delete(ctx context.Context, key string) (bool, error)

	// Driver reports the configured backend.
	Driver() Driver
}
