// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
// StartDate and EndDate select an inclusive period; Type selects a single
// transaction type. Period and type filters are mutually exclusive here,
// matching the separate list endpoints.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListTransactionsUseCase handles the transaction list variants.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the user's transactions, newest first. A period whose
// start is after its end yields an empty list rather than an error.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var (
		transactions []*entity.TransactionWithCategory
		err          error
	)

	switch {
	case input.StartDate != nil && input.EndDate != nil:
		transactions, err = uc.transactionRepo.FindByUserAndPeriod(ctx, input.UserID, *input.StartDate, *input.EndDate)
	case input.Type != nil:
		if *input.Type != entity.TransactionTypeExpense && *input.Type != entity.TransactionTypeIncome {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'EXPENSE' or 'INCOME'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transactions, err = uc.transactionRepo.FindByUserAndType(ctx, input.UserID, *input.Type)
	default:
		transactions, err = uc.transactionRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
