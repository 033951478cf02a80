package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	store := openTestStore(t)

	value, err := store.Get("spendings")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("spendings", []byte(`[{"id":"1"}]`)))

	value, err := store.Get("spendings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), value)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("budgets", []byte(`[1]`)))
	require.NoError(t, store.Set("budgets", []byte(`[1,2]`)))

	value, err := store.Get("budgets")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), value)
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("spendings", []byte(`["a"]`)))
	require.NoError(t, store.Set("budgets", []byte(`["b"]`)))

	spendings, err := store.Get("spendings")
	require.NoError(t, err)
	budgets, err := store.Get("budgets")
	require.NoError(t, err)

	assert.Equal(t, []byte(`["a"]`), spendings)
	assert.Equal(t, []byte(`["b"]`), budgets)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("revenues", []byte(`[]`)))
	require.NoError(t, store.Delete("revenues"))

	value, err := store.Get("revenues")
	require.NoError(t, err)
	assert.Nil(t, value)

	// Deleting an absent key is a no-op.
	require.NoError(t, store.Delete("revenues"))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("spendings", []byte(`[{"id":"x"}]`)))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get("spendings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"x"}]`), value)
}
