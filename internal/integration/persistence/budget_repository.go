// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/domain/entity"
	"github.com/finledger/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := conn(ctx, r.db).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all budgets owned by a user.
func (r *budgetRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, 0, len(budgetModels))
	for i := range budgetModels {
		budgets = append(budgets, budgetModels[i].ToEntity())
	}
	return budgets, nil
}

// FindByUserAndCategoryMonth retrieves the budget for the exact tuple, or nil
// without error when none exists.
func (r *budgetRepository) FindByUserAndCategoryMonth(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := conn(ctx, r.db).
		Where("user_id = ? AND category_id = ? AND month = ? AND year = ?", userID, categoryID, month, year).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}
