package stats

import (
	"testing"

	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
)

func revenue(typ domain.RevenueType, amount int64, month, year int) domain.Revenue {
	return domain.Revenue{
		ID:       string(typ),
		Amount:   decimal.NewFromInt(amount),
		Currency: "RON",
		Month:    month,
		Year:     year,
		Type:     typ,
	}
}

func TestRevenueForPeriod(t *testing.T) {
	revenues := []domain.Revenue{
		revenue(domain.RevenueSalary, 3500, 1, 2026),
		revenue(domain.RevenueFreelance, 500, 1, 2026),
		revenue(domain.RevenueSalary, 3500, 2, 2026),
	}

	matched := RevenueForPeriod(revenues, 1, 2026)
	if len(matched) != 2 {
		t.Fatalf("Expected 2 revenues for 2026-01, got %d", len(matched))
	}
	if matched[0].Type != domain.RevenueSalary || matched[1].Type != domain.RevenueFreelance {
		t.Error("Expected snapshot order to be preserved")
	}

	if got := RevenueForPeriod(revenues, 6, 2026); len(got) != 0 {
		t.Errorf("Expected no revenues for an empty period, got %d", len(got))
	}
}

func TestBalance_NoSpendings(t *testing.T) {
	revenues := []domain.Revenue{
		revenue(domain.RevenueSalary, 3500, 1, 2026),
	}

	balance := Balance(revenues, nil, 1, 2026)
	if !balance.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("Expected balance 3500, got %s", balance.String())
	}
}

func TestBalance_SubtractsAllTimeSpendingTotal(t *testing.T) {
	revenues := []domain.Revenue{
		revenue(domain.RevenueSalary, 3500, 1, 2026),
	}
	spendings := []domain.Spending{
		spending("Lunch", 45, "Food / Lunch", "2026-01-08"),
		// A spending from another period still reduces the balance: the
		// spending side of the calculation is all-time, not period-scoped.
		spending("Old gift", 200, "Gifts & Special / Gifts", "2025-11-20"),
	}

	balance := Balance(revenues, spendings, 1, 2026)
	if !balance.Equal(decimal.NewFromInt(3255)) {
		t.Errorf("Expected balance 3255, got %s", balance.String())
	}
}

func TestBalance_NegativeWhenOverspent(t *testing.T) {
	revenues := []domain.Revenue{
		revenue(domain.RevenueSalary, 100, 1, 2026),
	}
	spendings := []domain.Spending{
		spending("Laptop", 4500, "Tech / Electronics", "2026-01-08"),
	}

	balance := Balance(revenues, spendings, 1, 2026)
	if !balance.Equal(decimal.NewFromInt(-4400)) {
		t.Errorf("Expected balance -4400, got %s", balance.String())
	}
}

func TestBalance_EmptyEverything(t *testing.T) {
	if !Balance(nil, nil, 1, 2026).IsZero() {
		t.Error("Expected zero balance with no data")
	}
}
