// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finledger/backend/internal/domain/entity"
)

// CategoryRequest represents the request body for category creation and update.
type CategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type" binding:"required,oneof=EXPENSE INCOME"`
}

// CategoryResponse represents the category data in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a category entity to its API representation.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Icon:      category.Icon,
		Color:     category.Color,
		Type:      string(category.Type),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of category entities.
func ToCategoryResponses(categories []*entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, ToCategoryResponse(category))
	}
	return responses
}
