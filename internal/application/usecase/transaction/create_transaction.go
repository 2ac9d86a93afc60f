// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Attachment  string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithCategory
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation. The referenced category must
// exist and belong to the same user.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Type, input.Amount, input.Description); err != nil {
		return nil, err
	}

	category, err := uc.resolveCategory(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.CategoryID,
		input.Type,
		input.Amount,
		input.Description,
		input.Date,
		input.Attachment,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: &entity.TransactionWithCategory{
			Transaction: *transaction,
			Category:    *category,
		},
	}, nil
}

func (uc *CreateTransactionUseCase) resolveCategory(ctx context.Context, userID, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.UserID != userID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotOwned,
			"category does not belong to the user",
			domainerror.ErrCategoryNotOwnedByUser,
		)
	}

	return category, nil
}

// validateTransactionFields checks the shared creation and update constraints.
func validateTransactionFields(transactionType entity.TransactionType, amount decimal.Decimal, description string) error {
	if transactionType != entity.TransactionTypeExpense && transactionType != entity.TransactionTypeIncome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'EXPENSE' or 'INCOME'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if strings.TrimSpace(description) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDescription,
			"transaction description must not be empty",
			domainerror.ErrEmptyTransactionDescription,
		)
	}

	return nil
}
