package kv

import (
	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
	"spendtrack/internal/storage"
	"spendtrack/internal/types"
)

// RecurringRepository implements domain.RecurringRepository on a Store.
type RecurringRepository struct {
	store storage.Store
}

// NewRecurringRepository creates a new RecurringRepository.
func NewRecurringRepository(store storage.Store) *RecurringRepository {
	return &RecurringRepository{store: store}
}

// Add appends a recurring transaction template with a fresh id.
func (r *RecurringRepository) Add(description string, amount decimal.Decimal, category domain.Category, frequency domain.Frequency, startDate types.Date, isActive bool) (*domain.RecurringTransaction, error) {
	recurring := loadCollection[domain.RecurringTransaction](r.store, KeyRecurring)
	rt := domain.RecurringTransaction{
		ID:          newID(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Frequency:   frequency,
		StartDate:   startDate,
		IsActive:    isActive,
	}
	recurring = append(recurring, rt)
	if err := saveCollection(r.store, KeyRecurring, recurring); err != nil {
		return nil, err
	}
	return &rt, nil
}

// Update merges the given fields into the entry with the given id. Unknown
// ids are a no-op.
func (r *RecurringRepository) Update(id string, update domain.RecurringUpdate) error {
	recurring := loadCollection[domain.RecurringTransaction](r.store, KeyRecurring)

	found := false
	for i := range recurring {
		if recurring[i].ID != id {
			continue
		}
		applyRecurringUpdate(&recurring[i], update)
		found = true
		break
	}
	if !found {
		return nil
	}
	return saveCollection(r.store, KeyRecurring, recurring)
}

// Delete removes the template with the given id. Unknown ids are a no-op.
func (r *RecurringRepository) Delete(id string) error {
	recurring := loadCollection[domain.RecurringTransaction](r.store, KeyRecurring)
	filtered := recurring[:0]
	for _, rt := range recurring {
		if rt.ID != id {
			filtered = append(filtered, rt)
		}
	}
	return saveCollection(r.store, KeyRecurring, filtered)
}

// List returns the current persisted snapshot in insertion order.
func (r *RecurringRepository) List() []domain.RecurringTransaction {
	return loadCollection[domain.RecurringTransaction](r.store, KeyRecurring)
}

func applyRecurringUpdate(rt *domain.RecurringTransaction, update domain.RecurringUpdate) {
	if update.Description != nil {
		rt.Description = *update.Description
	}
	if update.Amount != nil {
		rt.Amount = *update.Amount
	}
	if update.Category != nil {
		rt.Category = *update.Category
	}
	if update.Frequency != nil {
		rt.Frequency = *update.Frequency
	}
	if update.StartDate != nil {
		rt.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		rt.EndDate = update.EndDate
	}
	if update.IsActive != nil {
		rt.IsActive = *update.IsActive
	}
}
