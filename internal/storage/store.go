// Package storage provides the key-value persistence adapter backing the
// entity repositories. Each collection owns a single key and is stored as
// one serialized blob; there are no transactions across keys.
package storage

import "errors"

// Storage errors
var (
	// ErrUnavailable indicates the underlying store cannot be read or
	// written. Reads degrade to an empty collection; writes surface this to
	// the caller so it can warn that changes were not persisted.
	ErrUnavailable = errors.New("storage unavailable")
)

// Store is a durable key-value store. Implementations serialize access per
// key; the application assumes a single logical writer per collection, so
// concurrent writers across processes are last-write-wins.
type Store interface {
	// Get returns the value stored at key, or (nil, nil) if the key has
	// never been written.
	Get(key string) ([]byte, error)
	// Set overwrites the value at key with a full replacement blob.
	Set(key string, value []byte) error
}

// Deleter removes keys outright. Both store implementations satisfy it; it
// is separate from Store because the repositories only ever replace values,
// never drop keys.
type Deleter interface {
	// Delete removes the value at key. Unknown keys are a no-op.
	Delete(key string) error
}
