package domain

import (
	"github.com/shopspring/decimal"

	"spendtrack/internal/types"
)

// Frequency is how often a recurring transaction repeats.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// Frequencies lists the valid frequencies in display order.
var Frequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyBiweekly,
	FrequencyMonthly,
	FrequencyYearly,
}

// IsValid reports whether f is a known frequency.
func (f Frequency) IsValid() bool {
	for _, known := range Frequencies {
		if f == known {
			return true
		}
	}
	return false
}

// RecurringTransaction is a template for a repeating expense. The template
// is only stored and toggled; occurrences are never materialized into
// spendings.
type RecurringTransaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Frequency   Frequency       `json:"frequency"`
	StartDate   types.Date      `json:"startDate"`
	EndDate     *types.Date     `json:"endDate,omitempty"`
	IsActive    bool            `json:"isActive"`
}

// RecurringUpdate is a partial update for a recurring transaction. Nil
// fields are left unchanged.
type RecurringUpdate struct {
	Description *string
	Amount      *decimal.Decimal
	Category    *Category
	Frequency   *Frequency
	StartDate   *types.Date
	EndDate     *types.Date
	IsActive    *bool
}

// RecurringRepository persists the full recurring transaction collection.
type RecurringRepository interface {
	// Add appends a template with a fresh id and persists the collection.
	Add(description string, amount decimal.Decimal, category Category, frequency Frequency, startDate types.Date, isActive bool) (*RecurringTransaction, error)
	// Update merges the given fields into the entry with the given id.
	// Unknown ids are a no-op.
	Update(id string, update RecurringUpdate) error
	// Delete removes the template with the given id. Unknown ids are a no-op.
	Delete(id string) error
	// List returns the current persisted snapshot in insertion order.
	List() []RecurringTransaction
}
