package domain

import (
	"github.com/shopspring/decimal"

	"spendtrack/internal/types"
)

// Spending is a single recorded expense. Spendings are append-only: they are
// created once and deleted by id, never updated in place.
type Spending struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Date        types.Date      `json:"date"`
}

// SpendingRepository persists the full spending collection. Reads never
// fail: a missing or unreadable collection is an empty snapshot. Input
// validation is the caller's responsibility (see ValidateSpendingInput).
type SpendingRepository interface {
	// Add appends a spending with a fresh id and persists the collection.
	Add(description string, amount decimal.Decimal, category Category, date types.Date) (*Spending, error)
	// Delete removes the spending with the given id. Unknown ids are a no-op.
	Delete(id string) error
	// Clear replaces the collection with an empty one.
	Clear() error
	// List returns the current persisted snapshot in insertion order.
	List() []Spending
}
