package kv

import (
	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
	"spendtrack/internal/storage"
)

// BudgetRepository implements domain.BudgetRepository on a Store.
type BudgetRepository struct {
	store storage.Store
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository(store storage.Store) *BudgetRepository {
	return &BudgetRepository{store: store}
}

// Upsert creates or overwrites the budget for (category, month, year). An
// existing entry is replaced in place, keeping its position and its id
// unless a new id is supplied.
func (r *BudgetRepository) Upsert(category domain.Category, amount decimal.Decimal, currency string, month, year int, id string) (*domain.Budget, error) {
	budgets := loadCollection[domain.Budget](r.store, KeyBudgets)

	existingIdx := -1
	for i, b := range budgets {
		if b.Matches(category, month, year) {
			existingIdx = i
			break
		}
	}

	budget := domain.Budget{
		ID:       id,
		Category: category,
		Amount:   amount,
		Currency: currency,
		Month:    month,
		Year:     year,
	}
	if budget.ID == "" {
		if existingIdx != -1 {
			budget.ID = budgets[existingIdx].ID
		} else {
			budget.ID = newID()
		}
	}

	if existingIdx != -1 {
		budgets[existingIdx] = budget
	} else {
		budgets = append(budgets, budget)
	}

	if err := saveCollection(r.store, KeyBudgets, budgets); err != nil {
		return nil, err
	}
	return &budget, nil
}

// Delete removes the budget with the given id. Unknown ids are a no-op.
func (r *BudgetRepository) Delete(id string) error {
	budgets := loadCollection[domain.Budget](r.store, KeyBudgets)
	filtered := budgets[:0]
	for _, b := range budgets {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	return saveCollection(r.store, KeyBudgets, filtered)
}

// List returns the current persisted snapshot in insertion order.
func (r *BudgetRepository) List() []domain.Budget {
	return loadCollection[domain.Budget](r.store, KeyBudgets)
}
