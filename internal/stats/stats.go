// Package stats implements the aggregation engine: pure functions computing
// derived figures from repository snapshots. No function here holds state or
// returns an error; empty or missing inputs yield well-defined zero values.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
)

// Total returns the sum of all spending amounts.
func Total(spendings []domain.Spending) decimal.Decimal {
	total := decimal.Zero
	for _, s := range spendings {
		total = total.Add(s.Amount)
	}
	return total
}

// Average returns the mean spending amount, or zero for an empty snapshot.
func Average(spendings []domain.Spending) decimal.Decimal {
	if len(spendings) == 0 {
		return decimal.Zero
	}
	return Total(spendings).Div(decimal.NewFromInt(int64(len(spendings))))
}

// Maximum returns the largest spending amount, or zero for an empty snapshot.
func Maximum(spendings []domain.Spending) decimal.Decimal {
	max := decimal.Zero
	for _, s := range spendings {
		if s.Amount.GreaterThan(max) {
			max = s.Amount
		}
	}
	return max
}

// CategoryBreakdown is the aggregate for one exact category.
type CategoryBreakdown struct {
	Category domain.Category
	Amount   decimal.Decimal
	Count    int
}

// Breakdown groups spendings by their exact composed category and sorts the
// groups by amount descending. The sort is stable: categories with equal
// amounts keep first-encountered order.
func Breakdown(spendings []domain.Spending) []CategoryBreakdown {
	index := make(map[domain.Category]int)
	breakdown := make([]CategoryBreakdown, 0)
	for _, s := range spendings {
		i, ok := index[s.Category]
		if !ok {
			i = len(breakdown)
			index[s.Category] = i
			breakdown = append(breakdown, CategoryBreakdown{Category: s.Category, Amount: decimal.Zero})
		}
		breakdown[i].Amount = breakdown[i].Amount.Add(s.Amount)
		breakdown[i].Count++
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})
	return breakdown
}

// ShareOfTotal returns amount as a percentage of total, or zero when the
// total is zero.
func ShareOfTotal(amount, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return amount.Div(total).Mul(oneHundred)
}

// SortByDateDesc returns a copy of the snapshot sorted newest-first, the
// order used for transaction lists. The snapshot itself is never reordered.
func SortByDateDesc(spendings []domain.Spending) []domain.Spending {
	sorted := make([]domain.Spending, len(spendings))
	copy(sorted, spendings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

var oneHundred = decimal.NewFromInt(100)
