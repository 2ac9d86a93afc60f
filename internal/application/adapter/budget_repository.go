// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByUser retrieves all budgets owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindByUserAndCategoryMonth retrieves the budget for the exact
	// (user, category, month, year) tuple. Returns nil without error when
	// no such budget exists.
	FindByUserAndCategoryMonth(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*entity.Budget, error)
}
