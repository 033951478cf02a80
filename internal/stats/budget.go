package stats

import (
	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
)

// ConsumptionStatus classifies how much of a budget has been consumed.
type ConsumptionStatus string

const (
	// StatusUnder covers consumption below 80%.
	StatusUnder ConsumptionStatus = "under"
	// StatusNear covers consumption from 80% up to but excluding 100%.
	StatusNear ConsumptionStatus = "near"
	// StatusOver covers consumption at or above 100%.
	StatusOver ConsumptionStatus = "over"
)

var (
	nearThreshold = decimal.NewFromInt(80)
	overThreshold = decimal.NewFromInt(100)
)

// BudgetFor returns the budget matching the category and period exactly, or
// nil when none exists. Category matching is on the full composed value, so
// a "Food" budget never covers "Food / Lunch" spendings.
func BudgetFor(category domain.Category, month, year int, budgets []domain.Budget) *domain.Budget {
	for i := range budgets {
		if budgets[i].Matches(category, month, year) {
			return &budgets[i]
		}
	}
	return nil
}

// ConsumptionPercent returns spent as a percentage of the budget amount.
// A budget with a non-positive amount yields zero rather than dividing by
// zero; validation keeps such budgets out of storage in the first place.
func ConsumptionPercent(spent decimal.Decimal, budget domain.Budget) decimal.Decimal {
	if !budget.Amount.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(budget.Amount).Mul(oneHundred)
}

// ClassifyConsumption maps a consumption percentage to its status.
func ClassifyConsumption(percent decimal.Decimal) ConsumptionStatus {
	switch {
	case percent.GreaterThanOrEqual(overThreshold):
		return StatusOver
	case percent.GreaterThanOrEqual(nearThreshold):
		return StatusNear
	default:
		return StatusUnder
	}
}

// BarSegments splits a consumption percentage into the two segments the
// progress bar renders: the base segment capped at 100 and an overflow
// segment of min(percent-100, 100) for anything beyond the budget.
func BarSegments(percent decimal.Decimal) (base, overflow decimal.Decimal) {
	if percent.LessThanOrEqual(overThreshold) {
		return percent, decimal.Zero
	}
	overflow = percent.Sub(overThreshold)
	if overflow.GreaterThan(overThreshold) {
		overflow = overThreshold
	}
	return overThreshold, overflow
}
