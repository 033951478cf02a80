package kv

import (
	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
	"spendtrack/internal/storage"
	"spendtrack/internal/types"
)

// SpendingRepository implements domain.SpendingRepository on a Store.
type SpendingRepository struct {
	store storage.Store
}

// NewSpendingRepository creates a new SpendingRepository.
func NewSpendingRepository(store storage.Store) *SpendingRepository {
	return &SpendingRepository{store: store}
}

// Add appends a spending with a fresh id and persists the collection.
func (r *SpendingRepository) Add(description string, amount decimal.Decimal, category domain.Category, date types.Date) (*domain.Spending, error) {
	spendings := loadCollection[domain.Spending](r.store, KeySpendings)
	spending := domain.Spending{
		ID:          newID(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
	}
	spendings = append(spendings, spending)
	if err := saveCollection(r.store, KeySpendings, spendings); err != nil {
		return nil, err
	}
	return &spending, nil
}

// Delete removes the spending with the given id. Unknown ids are a no-op.
func (r *SpendingRepository) Delete(id string) error {
	spendings := loadCollection[domain.Spending](r.store, KeySpendings)
	filtered := spendings[:0]
	for _, s := range spendings {
		if s.ID != id {
			filtered = append(filtered, s)
		}
	}
	return saveCollection(r.store, KeySpendings, filtered)
}

// Clear replaces the collection with an empty one.
func (r *SpendingRepository) Clear() error {
	return saveCollection(r.store, KeySpendings, []domain.Spending{})
}

// List returns the current persisted snapshot in insertion order.
func (r *SpendingRepository) List() []domain.Spending {
	return loadCollection[domain.Spending](r.store, KeySpendings)
}
