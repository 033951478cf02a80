package kv

import (
	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
	"spendtrack/internal/storage"
)

// RevenueRepository implements domain.RevenueRepository on a Store.
type RevenueRepository struct {
	store storage.Store
}

// NewRevenueRepository creates a new RevenueRepository.
func NewRevenueRepository(store storage.Store) *RevenueRepository {
	return &RevenueRepository{store: store}
}

// Upsert creates or overwrites the revenue for (type, month, year). An
// existing entry is replaced in place, keeping its position and its id
// unless a new id is supplied.
func (r *RevenueRepository) Upsert(typ domain.RevenueType, amount decimal.Decimal, currency string, month, year int, id string) (*domain.Revenue, error) {
	revenues := loadCollection[domain.Revenue](r.store, KeyRevenues)

	existingIdx := -1
	for i, rev := range revenues {
		if rev.Matches(typ, month, year) {
			existingIdx = i
			break
		}
	}

	revenue := domain.Revenue{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Month:    month,
		Year:     year,
		Type:     typ,
	}
	if revenue.ID == "" {
		if existingIdx != -1 {
			revenue.ID = revenues[existingIdx].ID
		} else {
			revenue.ID = newID()
		}
	}

	if existingIdx != -1 {
		revenues[existingIdx] = revenue
	} else {
		revenues = append(revenues, revenue)
	}

	if err := saveCollection(r.store, KeyRevenues, revenues); err != nil {
		return nil, err
	}
	return &revenue, nil
}

// Delete removes the revenue with the given id. Unknown ids are a no-op.
func (r *RevenueRepository) Delete(id string) error {
	revenues := loadCollection[domain.Revenue](r.store, KeyRevenues)
	filtered := revenues[:0]
	for _, rev := range revenues {
		if rev.ID != id {
			filtered = append(filtered, rev)
		}
	}
	return saveCollection(r.store, KeyRevenues, filtered)
}

// List returns the current persisted snapshot in insertion order.
func (r *RevenueRepository) List() []domain.Revenue {
	return loadCollection[domain.Revenue](r.store, KeyRevenues)
}
