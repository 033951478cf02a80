package stats

import (
	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
)

// RevenueForPeriod returns the revenues recorded for the exact (month, year)
// period, in snapshot order. The result may be empty.
func RevenueForPeriod(revenues []domain.Revenue, month, year int) []domain.Revenue {
	matched := make([]domain.Revenue, 0)
	for _, r := range revenues {
		if r.Month == month && r.Year == year {
			matched = append(matched, r)
		}
	}
	return matched
}

// Balance returns the period's revenue total minus the spending total. The
// revenue side is filtered to (month, year); the spending side is the
// all-time total, not period-filtered. That asymmetry is long-standing
// observed behavior and is kept as-is until product intent changes.
func Balance(revenues []domain.Revenue, spendings []domain.Spending, month, year int) decimal.Decimal {
	revenueTotal := decimal.Zero
	for _, r := range RevenueForPeriod(revenues, month, year) {
		revenueTotal = revenueTotal.Add(r.Amount)
	}
	return revenueTotal.Sub(Total(spendings))
}
