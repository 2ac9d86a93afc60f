// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

// FindBudgetInput represents the composite lookup key for a single budget.
type FindBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Month      int
	Year       int
}

// FindBudgetOutput represents the output of the composite budget lookup.
type FindBudgetOutput struct {
	Budget *entity.Budget
}

// FindBudgetUseCase resolves the budget for an exact
// (user, category, month, year) tuple.
type FindBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewFindBudgetUseCase creates a new FindBudgetUseCase instance.
func NewFindBudgetUseCase(budgetRepo adapter.BudgetRepository) *FindBudgetUseCase {
	return &FindBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the lookup. An absent tuple is a not-found error, not an
// empty result.
func (uc *FindBudgetUseCase) Execute(ctx context.Context, input FindBudgetInput) (*FindBudgetOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"budget month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	budget, err := uc.budgetRepo.FindByUserAndCategoryMonth(ctx, input.UserID, input.CategoryID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if budget == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	return &FindBudgetOutput{Budget: budget}, nil
}
