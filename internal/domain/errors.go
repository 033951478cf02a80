package domain

import "errors"

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDescriptionRequired = errors.New("description is required")
	ErrCategoryRequired    = errors.New("category is required")
	ErrAmountNotPositive   = errors.New("amount must be greater than zero")
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
	ErrInvalidFrequency    = errors.New("invalid frequency")
	ErrInvalidRevenueType  = errors.New("invalid revenue type")
	ErrCurrencyRequired    = errors.New("currency is required")
	ErrStartDateAfterEnd   = errors.New("start date is after end date")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
)

// Validation constants
const (
	MaxDescriptionLength = 255
)
