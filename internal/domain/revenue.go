package domain

import "github.com/shopspring/decimal"

// RevenueType labels where a revenue came from.
type RevenueType string

const (
	RevenueSalary     RevenueType = "Salary"
	RevenueBonus      RevenueType = "Bonus"
	RevenueBetWinning RevenueType = "Bet Winning"
	RevenueGift       RevenueType = "Gift"
	RevenueFreelance  RevenueType = "Freelance"
	RevenueInvestment RevenueType = "Investment"
	RevenueOther      RevenueType = "Other"
)

// RevenueTypes lists the valid revenue types in display order.
var RevenueTypes = []RevenueType{
	RevenueSalary,
	RevenueBonus,
	RevenueBetWinning,
	RevenueGift,
	RevenueFreelance,
	RevenueInvestment,
	RevenueOther,
}

// IsValid reports whether t is a known revenue type.
func (t RevenueType) IsValid() bool {
	for _, known := range RevenueTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Revenue is a monthly income entry. At most one revenue exists per
// (type, month, year).
type Revenue struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	Type     RevenueType     `json:"type"`
}

// Matches reports whether the revenue covers the given type and period.
func (r Revenue) Matches(typ RevenueType, month, year int) bool {
	return r.Type == typ && r.Month == month && r.Year == year
}

// RevenueRepository persists the full revenue collection.
type RevenueRepository interface {
	// Upsert creates or overwrites the revenue for (type, month, year).
	// An existing entry keeps its position and, unless id is non-empty, its
	// id. New entries are appended with a fresh id.
	Upsert(typ RevenueType, amount decimal.Decimal, currency string, month, year int, id string) (*Revenue, error)
	// Delete removes the revenue with the given id. Unknown ids are a no-op.
	Delete(id string) error
	// List returns the current persisted snapshot in insertion order.
	List() []Revenue
}
