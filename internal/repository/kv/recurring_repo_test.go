package kv

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendtrack/internal/domain"
	"spendtrack/internal/storage"
	"spendtrack/internal/types"
)

func addRecurring(t *testing.T, repo *RecurringRepository, description string, amount int64, category string) *domain.RecurringTransaction {
	t.Helper()
	rt, err := repo.Add(description, decimal.NewFromInt(amount), domain.ParseCategory(category),
		domain.FrequencyMonthly, types.NewDate(2026, time.January, 1), true)
	require.NoError(t, err)
	return rt
}

func TestRecurringRepository_AddAndList(t *testing.T) {
	repo := NewRecurringRepository(storage.NewMemoryStore())

	rt := addRecurring(t, repo, "Rent", 1500, "Housing / Rent")

	assert.NotEmpty(t, rt.ID)
	listed := repo.List()
	require.Len(t, listed, 1)
	assert.Equal(t, "Rent", listed[0].Description)
	assert.Equal(t, domain.FrequencyMonthly, listed[0].Frequency)
	assert.True(t, listed[0].IsActive)
	assert.Nil(t, listed[0].EndDate)
}

func TestRecurringRepository_UpdateTogglesActive(t *testing.T) {
	repo := NewRecurringRepository(storage.NewMemoryStore())
	rt := addRecurring(t, repo, "Rent", 1500, "Housing / Rent")

	inactive := false
	require.NoError(t, repo.Update(rt.ID, domain.RecurringUpdate{IsActive: &inactive}))

	listed := repo.List()
	require.Len(t, listed, 1)
	assert.False(t, listed[0].IsActive)
	// Untouched fields stay as they were.
	assert.Equal(t, "Rent", listed[0].Description)
	assert.True(t, listed[0].Amount.Equal(decimal.NewFromInt(1500)))
}

func TestRecurringRepository_UpdateMergesFields(t *testing.T) {
	repo := NewRecurringRepository(storage.NewMemoryStore())
	rt := addRecurring(t, repo, "Rent", 1500, "Housing / Rent")

	newAmount := decimal.NewFromInt(1600)
	end := types.NewDate(2026, time.December, 31)
	require.NoError(t, repo.Update(rt.ID, domain.RecurringUpdate{
		Amount:  &newAmount,
		EndDate: &end,
	}))

	listed := repo.List()
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Amount.Equal(newAmount))
	require.NotNil(t, listed[0].EndDate)
	assert.True(t, listed[0].EndDate.Equal(end))
	assert.Equal(t, "Rent", listed[0].Description)
}

func TestRecurringRepository_UpdateUnknownIDIsNoOp(t *testing.T) {
	repo := NewRecurringRepository(storage.NewMemoryStore())
	addRecurring(t, repo, "Rent", 1500, "Housing / Rent")

	inactive := false
	require.NoError(t, repo.Update("no-such-id", domain.RecurringUpdate{IsActive: &inactive}))

	listed := repo.List()
	require.Len(t, listed, 1)
	assert.True(t, listed[0].IsActive)
}

func TestRecurringRepository_Delete(t *testing.T) {
	repo := NewRecurringRepository(storage.NewMemoryStore())

	keep := addRecurring(t, repo, "Rent", 1500, "Housing / Rent")
	remove := addRecurring(t, repo, "Gym", 80, "Sports / Membership")

	require.NoError(t, repo.Delete(remove.ID))

	listed := repo.List()
	require.Len(t, listed, 1)
	assert.Equal(t, keep.ID, listed[0].ID)
}
