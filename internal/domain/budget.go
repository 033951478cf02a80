package domain

import "github.com/shopspring/decimal"

// Budget is a monthly spending limit for one category. At most one budget
// exists per (category, month, year); upserting the same key overwrites the
// existing entry in place.
type Budget struct {
	ID       string          `json:"id"`
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
}

// Matches reports whether the budget covers the given category and period.
// Category comparison is exact on the composed value: budgets that differ
// only in subcategory are separate budgets.
func (b Budget) Matches(category Category, month, year int) bool {
	return b.Category == category && b.Month == month && b.Year == year
}

// BudgetRepository persists the full budget collection.
type BudgetRepository interface {
	// Upsert creates or overwrites the budget for (category, month, year).
	// An existing entry keeps its position and, unless id is non-empty, its
	// id. New entries are appended with a fresh id.
	Upsert(category Category, amount decimal.Decimal, currency string, month, year int, id string) (*Budget, error)
	// Delete removes the budget with the given id. Unknown ids are a no-op.
	Delete(id string) error
	// List returns the current persisted snapshot in insertion order.
	List() []Budget
}
