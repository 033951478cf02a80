// Package kv implements the entity repositories on top of the key-value
// persistence adapter. Every repository persists its entire collection under
// one key: a mutation loads the full collection, transforms it in memory and
// writes the full collection back, preserving order.
package kv

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"spendtrack/internal/storage"
)

// Storage keys, one per entity collection.
const (
	KeySpendings = "spendings"
	KeyBudgets   = "budgets"
	KeyRevenues  = "revenues"
	KeyRecurring = "recurring"
)

// newID returns a fresh time-ordered id for a new record.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// loadCollection reads and decodes the collection stored at key. Reads fail
// soft: an unavailable store or a malformed payload yields an empty
// collection rather than an error.
func loadCollection[T any](store storage.Store, key string) []T {
	data, err := store.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Store unreadable, returning empty collection")
		return []T{}
	}
	if len(data) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Malformed collection, returning empty collection")
		return []T{}
	}
	if items == nil {
		// A stored literal null decodes to a nil slice.
		return []T{}
	}
	return items
}

// saveCollection serializes the collection and overwrites the value at key.
// Write failures propagate so callers can warn that changes were lost.
func saveCollection[T any](store storage.Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
