package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"spendtrack/internal/types"
)

// Input validation lives at the caller boundary: repositories persist what
// they are given and never re-validate. UI glue and tooling are expected to
// run these checks before calling Add or Upsert, so no partial record ever
// reaches storage.

// ValidateSpendingInput checks the fields of a spending before it is added.
func ValidateSpendingInput(description string, amount decimal.Decimal, category Category) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	if category.IsZero() {
		return ErrCategoryRequired
	}
	return validateAmount(amount)
}

// ValidateBudgetInput checks the fields of a budget before it is upserted.
func ValidateBudgetInput(category Category, amount decimal.Decimal, currency string, month int) error {
	if category.IsZero() {
		return ErrCategoryRequired
	}
	if strings.TrimSpace(currency) == "" {
		return ErrCurrencyRequired
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	return validateMonth(month)
}

// ValidateRevenueInput checks the fields of a revenue before it is upserted.
func ValidateRevenueInput(typ RevenueType, amount decimal.Decimal, currency string, month int) error {
	if !typ.IsValid() {
		return ErrInvalidRevenueType
	}
	if strings.TrimSpace(currency) == "" {
		return ErrCurrencyRequired
	}
	if err := validateAmount(amount); err != nil {
		return err
	}
	return validateMonth(month)
}

// ValidateRecurringInput checks the fields of a recurring transaction
// template before it is added.
func ValidateRecurringInput(description string, amount decimal.Decimal, category Category, frequency Frequency, startDate types.Date, endDate *types.Date) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	if category.IsZero() {
		return ErrCategoryRequired
	}
	if !frequency.IsValid() {
		return ErrInvalidFrequency
	}
	if endDate != nil && startDate.After(*endDate) {
		return ErrStartDateAfterEnd
	}
	return validateAmount(amount)
}

func validateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return ErrDescriptionRequired
	}
	if len(trimmed) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	return nil
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}
