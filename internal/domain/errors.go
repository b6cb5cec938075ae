package domain

import "errors"

// Expense validation errors
var (
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrMissingCategory = errors.New("category is required")
)

// IsValidation reports whether err is one of the expense validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrMissingCategory)
}
