// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when a transaction exists
	// but belongs to another user.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is not strictly positive.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrEmptyTransactionDescription is returned when the description is blank.
	ErrEmptyTransactionDescription = errors.New("transaction description must not be empty")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrCategoryNotOwnedByUser is returned when the referenced category belongs
	// to another user.
	ErrCategoryNotOwnedByUser = errors.New("category does not belong to user")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeInvalidTransactionType    TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount  TransactionErrorCode = "TXN-010002"
	ErrCodeEmptyDescription          TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound       TransactionErrorCode = "TXN-010004"
	ErrCodeNotAuthorizedTransaction  TransactionErrorCode = "TXN-010005"
	ErrCodeTxnCategoryNotFound       TransactionErrorCode = "TXN-010006"
	ErrCodeTxnCategoryNotOwned       TransactionErrorCode = "TXN-010007"
	ErrCodeMissingTransactionFields  TransactionErrorCode = "TXN-010008"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
