// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Month      int
	Year       int
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation. At most one budget may exist
// per (user, category, month, year) tuple.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"budget month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != input.UserID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"category does not belong to the user",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	existing, err := uc.budgetRepo.FindByUserAndCategoryMonth(ctx, input.UserID, input.CategoryID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing budget: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			"a budget already exists for this category and month",
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Amount, input.Month, input.Year)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}
