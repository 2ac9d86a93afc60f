// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	userID := uuid.New()

	t.Run("create batch inserts every row", func(t *testing.T) {
		categories := make([]*entity.Category, 0, len(entity.DefaultCategories))
		for _, def := range entity.DefaultCategories {
			categories = append(categories, entity.NewCategory(def.Name, def.Icon, def.Color, def.Type, userID))
		}
		if err := repo.CreateBatch(ctx, categories); err != nil {
			t.Fatalf("batch create failed: %v", err)
		}

		stored, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(stored) != len(entity.DefaultCategories) {
			t.Fatalf("expected %d categories, got %d", len(entity.DefaultCategories), len(stored))
		}
	})

	t.Run("batch seeding twice duplicates rows", func(t *testing.T) {
		categories := make([]*entity.Category, 0, len(entity.DefaultCategories))
		for _, def := range entity.DefaultCategories {
			categories = append(categories, entity.NewCategory(def.Name, def.Icon, def.Color, def.Type, userID))
		}
		if err := repo.CreateBatch(ctx, categories); err != nil {
			t.Fatalf("second batch create failed: %v", err)
		}

		stored, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(stored) != 2*len(entity.DefaultCategories) {
			t.Fatalf("expected %d categories after double seed, got %d", 2*len(entity.DefaultCategories), len(stored))
		}
	})

	t.Run("update replaces fields", func(t *testing.T) {
		cat := entity.NewCategory("Pets", "🐕", "#AAAAAA", entity.CategoryTypeExpense, userID)
		if err := repo.Create(ctx, cat); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		cat.Name = "Animals"
		cat.Color = "#BBBBBB"
		if err := repo.Update(ctx, cat); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		stored, err := repo.FindByID(ctx, cat.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if stored.Name != "Animals" || stored.Color != "#BBBBBB" {
			t.Errorf("update not persisted: %+v", stored)
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		cat := entity.NewCategory("Temp", "", "", entity.CategoryTypeExpense, userID)
		if err := repo.Create(ctx, cat); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if err := repo.Delete(ctx, cat.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := repo.FindByID(ctx, cat.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected category-not-found, got %v", err)
		}
	})

	t.Run("users do not see each other's categories", func(t *testing.T) {
		otherUser := uuid.New()
		stored, err := repo.FindByUser(ctx, otherUser)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(stored) != 0 {
			t.Errorf("expected no categories for a fresh user, got %d", len(stored))
		}
	})
}
