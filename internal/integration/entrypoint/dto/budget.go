// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finledger/backend/internal/domain/entity"
)

// BudgetRequest represents the request body for budget creation.
type BudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
	Year       int             `json:"year" binding:"required"`
}

// BudgetResponse represents the budget data in API responses.
type BudgetResponse struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToBudgetResponse converts a budget entity to its API representation.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID.String(),
		CategoryID: budget.CategoryID.String(),
		Amount:     budget.Amount,
		Month:      budget.Month,
		Year:       budget.Year,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}

// ToBudgetResponses converts a slice of budget entities.
func ToBudgetResponses(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		responses = append(responses, ToBudgetResponse(budget))
	}
	return responses
}
