package stats

import (
	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
	"spendtrack/internal/types"
)

// DefaultTrendMonths is how many months the trend chart shows.
const DefaultTrendMonths = 6

// TrendBucket is the spending total for one calendar month.
type TrendBucket struct {
	Month  types.Month
	Amount decimal.Decimal
}

// MonthlyTrend buckets spendings into monthsBack consecutive calendar
// months ending at ref inclusive, in chronological order. Every bucket is
// present even when empty. Spendings dated outside the window are excluded
// from the trend but still count toward overall totals.
func MonthlyTrend(spendings []domain.Spending, ref types.Month, monthsBack int) []TrendBucket {
	if monthsBack <= 0 {
		return []TrendBucket{}
	}

	buckets := make([]TrendBucket, monthsBack)
	index := make(map[string]int, monthsBack)
	for i := 0; i < monthsBack; i++ {
		month := ref.AddMonths(i - monthsBack + 1)
		buckets[i] = TrendBucket{Month: month, Amount: decimal.Zero}
		index[month.String()] = i
	}

	for _, s := range spendings {
		key := types.MonthOf(s.Date.Time()).String()
		if i, ok := index[key]; ok {
			buckets[i].Amount = buckets[i].Amount.Add(s.Amount)
		}
	}
	return buckets
}
