// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the
	// same (category, month, year) tuple.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category and month")

	// ErrInvalidBudgetMonth is returned when the month is outside 1-12.
	ErrInvalidBudgetMonth = errors.New("budget month must be between 1 and 12")

	// ErrInvalidBudgetAmount is returned when the amount is not strictly positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeBudgetNotFound       BudgetErrorCode = "BDG-010001"
	ErrCodeBudgetAlreadyExists  BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetMonth   BudgetErrorCode = "BDG-010003"
	ErrCodeInvalidBudgetAmount  BudgetErrorCode = "BDG-010004"
	ErrCodeMissingBudgetFields  BudgetErrorCode = "BDG-010005"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
