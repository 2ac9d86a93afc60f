// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrNotAuthorizedToModifyCategory is returned when a category exists but
	// belongs to another user.
	ErrNotAuthorizedToModifyCategory = errors.New("not authorized to modify category")

	// ErrCategoryInUse is returned when deleting a category that is still
	// referenced by at least one transaction.
	ErrCategoryInUse = errors.New("category has associated transactions")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrEmptyCategoryName is returned when the category name is blank.
	ErrEmptyCategoryName = errors.New("category name must not be empty")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010001"
	ErrCodeNotAuthorizedCategory CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryInUse         CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010004"
	ErrCodeEmptyCategoryName     CategoryErrorCode = "CAT-010005"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010006"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
