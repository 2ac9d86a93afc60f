// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/domain/entity"
)

// SeedDefaultCategoriesInput represents the input for default-category seeding.
type SeedDefaultCategoriesInput struct {
	UserID uuid.UUID
}

// SeedDefaultCategoriesOutput represents the output of default-category seeding.
type SeedDefaultCategoriesOutput struct {
	Categories []*entity.Category
}

// SeedDefaultCategoriesUseCase seeds the frozen default catalog for a user.
// Seeding is not idempotent: every call inserts the full catalog again, so
// the registration flow must invoke it exactly once per user, inside the
// registration unit of work.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase instance.
func NewSeedDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultCategoriesUseCase {
	return &SeedDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute inserts the default catalog for the user.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context, input SeedDefaultCategoriesInput) (*SeedDefaultCategoriesOutput, error) {
	categories := make([]*entity.Category, 0, len(entity.DefaultCategories))
	for _, def := range entity.DefaultCategories {
		categories = append(categories, entity.NewCategory(def.Name, def.Icon, def.Color, def.Type, input.UserID))
	}

	if err := uc.categoryRepo.CreateBatch(ctx, categories); err != nil {
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}

	return &SeedDefaultCategoriesOutput{Categories: categories}, nil
}
