// Package seed populates the local store with a small sample dataset for
// development and demos, and can wipe all collections again.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"spendtrack/internal/domain"
	"spendtrack/internal/repository/kv"
	"spendtrack/internal/storage"
	"spendtrack/internal/types"
)

// Repositories bundles everything Populate and Clear need.
type Repositories struct {
	Spendings domain.SpendingRepository
	Budgets   domain.BudgetRepository
	Revenues  domain.RevenueRepository
	Recurring domain.RecurringRepository
}

// Summary counts what is currently stored, mirroring the debug readout of
// the client: collection sizes, active recurring templates and total spent.
type Summary struct {
	Spendings       int
	Budgets         int
	Revenues        int
	ActiveRecurring int
	TotalSpent      decimal.Decimal
}

// Summarize builds a Summary from the current snapshots.
func Summarize(repos Repositories) Summary {
	spendings := repos.Spendings.List()

	active := 0
	for _, rt := range repos.Recurring.List() {
		if rt.IsActive {
			active++
		}
	}

	total := decimal.Zero
	for _, s := range spendings {
		total = total.Add(s.Amount)
	}

	return Summary{
		Spendings:       len(spendings),
		Budgets:         len(repos.Budgets.List()),
		Revenues:        len(repos.Revenues.List()),
		ActiveRecurring: active,
		TotalSpent:      total,
	}
}

type sampleSpending struct {
	description string
	amount      int64
	category    string
	date        string
}

type sampleBudget struct {
	category string
	amount   int64
}

var sampleSpendings = []sampleSpending{
	{"Morning Coffee", 25, "Food / Coffee", "2026-01-08"},
	{"Lunch at work", 45, "Food / Lunch", "2026-01-08"},
	{"Dinner", 65, "Food / Dinner", "2026-01-09"},
	{"Gas - Full tank", 150, "Transport / Gas", "2026-01-09"},
	{"Uber ride", 28, "Transport / Taxi", "2026-01-10"},
	{"Movie tickets", 50, "Entertainment / Cinema", "2026-01-07"},
	{"Spotify subscription", 99, "Entertainment / Subscriptions", "2026-01-05"},
	{"Gym membership", 80, "Sports / Membership", "2026-01-06"},
	{"Shoes", 120, "Shopping / Clothes", "2026-01-04"},
	{"Pharmacy", 42, "Health / Medical", "2026-01-03"},
	{"Electric bill", 85, "Utilities / Electricity", "2026-01-02"},
	{"Internet bill", 50, "Utilities / Internet", "2026-01-02"},
}

var sampleBudgets = []sampleBudget{
	{"Food / Coffee", 150},
	{"Food / Lunch", 250},
	{"Food / Dinner", 300},
	{"Transport / Gas", 400},
	{"Entertainment / Cinema", 200},
}

var sampleRevenues = []struct {
	typ    domain.RevenueType
	amount int64
}{
	{domain.RevenueSalary, 3500},
	{domain.RevenueFreelance, 500},
}

var sampleRecurring = []struct {
	description string
	amount      int64
	category    string
	startDate   string
}{
	{"Rent", 1500, "Housing / Rent", "2026-01-01"},
	{"Gym membership", 80, "Sports / Membership", "2026-01-06"},
}

// Populate validates and inserts the sample dataset. Budgets and revenues
// are placed in the current month so the budget screens have data to show.
func Populate(repos Repositories, now time.Time) error {
	month := int(now.Month())
	year := now.Year()

	for _, s := range sampleSpendings {
		amount := decimal.NewFromInt(s.amount)
		category := domain.ParseCategory(s.category)
		if err := domain.ValidateSpendingInput(s.description, amount, category); err != nil {
			return fmt.Errorf("sample spending %q: %w", s.description, err)
		}
		date, err := types.ParseDate(s.date)
		if err != nil {
			return fmt.Errorf("sample spending %q: %w", s.description, err)
		}
		if _, err := repos.Spendings.Add(s.description, amount, category, date); err != nil {
			return err
		}
	}

	for _, b := range sampleBudgets {
		amount := decimal.NewFromInt(b.amount)
		category := domain.ParseCategory(b.category)
		if err := domain.ValidateBudgetInput(category, amount, "RON", month); err != nil {
			return fmt.Errorf("sample budget %q: %w", b.category, err)
		}
		if _, err := repos.Budgets.Upsert(category, amount, "RON", month, year, ""); err != nil {
			return err
		}
	}

	for _, r := range sampleRevenues {
		amount := decimal.NewFromInt(r.amount)
		if err := domain.ValidateRevenueInput(r.typ, amount, "RON", month); err != nil {
			return fmt.Errorf("sample revenue %q: %w", r.typ, err)
		}
		if _, err := repos.Revenues.Upsert(r.typ, amount, "RON", month, year, ""); err != nil {
			return err
		}
	}

	for _, rt := range sampleRecurring {
		amount := decimal.NewFromInt(rt.amount)
		category := domain.ParseCategory(rt.category)
		startDate, err := types.ParseDate(rt.startDate)
		if err != nil {
			return fmt.Errorf("sample recurring %q: %w", rt.description, err)
		}
		if err := domain.ValidateRecurringInput(rt.description, amount, category, domain.FrequencyMonthly, startDate, nil); err != nil {
			return fmt.Errorf("sample recurring %q: %w", rt.description, err)
		}
		if _, err := repos.Recurring.Add(rt.description, amount, category, domain.FrequencyMonthly, startDate, true); err != nil {
			return err
		}
	}

	return nil
}

// Clear removes every collection key from the store outright, so a cleared
// store is indistinguishable from a fresh one.
func Clear(store storage.Deleter) error {
	keys := []string{kv.KeySpendings, kv.KeyBudgets, kv.KeyRevenues, kv.KeyRecurring}
	for _, key := range keys {
		if err := store.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
