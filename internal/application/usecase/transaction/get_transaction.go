// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

// GetTransactionInput represents the input for fetching a single transaction.
type GetTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// GetTransactionOutput represents the output of fetching a single transaction.
type GetTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// GetTransactionUseCase handles fetching a transaction with ownership enforcement.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the transaction together with its category.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByIDWithCategory(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to access this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	return &GetTransactionOutput{Transaction: transaction}, nil
}
