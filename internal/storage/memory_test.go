package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetAndGet(t *testing.T) {
	store := NewMemoryStore()

	value, err := store.Get("spendings")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Set("spendings", []byte(`[]`)))

	value, err = store.Get("spendings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set("budgets", []byte(`[1]`)))

	value, err := store.Get("budgets")
	require.NoError(t, err)
	value[0] = 'X'

	unchanged, err := store.Get("budgets")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), unchanged)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set("spendings", []byte(`[]`)))

	require.NoError(t, store.Delete("spendings"))

	value, err := store.Get("spendings")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Delete("no-such-key"))
}

func TestMemoryStore_ErrorInjection(t *testing.T) {
	store := NewMemoryStore()
	injected := errors.New("disk full")

	store.SetErr = injected
	assert.ErrorIs(t, store.Set("spendings", []byte(`[]`)), injected)

	store.GetErr = injected
	_, err := store.Get("spendings")
	assert.ErrorIs(t, err, injected)
}
