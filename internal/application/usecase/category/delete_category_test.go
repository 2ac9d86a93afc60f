// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

// memCategoryRepo is an in-memory category repository for use case tests.
type memCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (m *memCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	m.categories[c.ID] = c
	return nil
}

func (m *memCategoryRepo) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	for _, c := range categories {
		m.categories[c.ID] = c
	}
	return nil
}

func (m *memCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (m *memCategoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	m.categories[c.ID] = c
	return nil
}

func (m *memCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.categories, id)
	return nil
}

// countingTransactionRepo satisfies only the count path used by deletion.
type countingTransactionRepo struct {
	counts map[uuid.UUID]int64
}

func (c *countingTransactionRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return c.counts[categoryID], nil
}

func (c *countingTransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	return nil
}

func (c *countingTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (c *countingTransactionRepo) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (c *countingTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}

func (c *countingTransactionRepo) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}

func (c *countingTransactionRepo) FindByUserAndType(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType) ([]*entity.TransactionWithCategory, error) {
	return nil, nil
}

func (c *countingTransactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	return nil
}

func (c *countingTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestDeleteCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	setup := func() (*DeleteCategoryUseCase, *memCategoryRepo, *countingTransactionRepo, *entity.Category) {
		categoryRepo := newMemCategoryRepo()
		transactionRepo := &countingTransactionRepo{counts: make(map[uuid.UUID]int64)}
		cat := entity.NewCategory("Food", "🍔", "#EF4444", entity.CategoryTypeExpense, owner)
		categoryRepo.categories[cat.ID] = cat
		return NewDeleteCategoryUseCase(categoryRepo, transactionRepo), categoryRepo, transactionRepo, cat
	}

	t.Run("deletes an unused category", func(t *testing.T) {
		uc, categoryRepo, _, cat := setup()

		output, err := uc.Execute(ctx, DeleteCategoryInput{UserID: owner, CategoryID: cat.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}
		if _, ok := categoryRepo.categories[cat.ID]; ok {
			t.Error("category should be gone")
		}
	})

	t.Run("refuses to delete a category in use", func(t *testing.T) {
		uc, categoryRepo, transactionRepo, cat := setup()
		transactionRepo.counts[cat.ID] = 3

		_, err := uc.Execute(ctx, DeleteCategoryInput{UserID: owner, CategoryID: cat.ID})
		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeCategoryInUse {
			t.Fatalf("expected in-use error, got %v", err)
		}
		if _, ok := categoryRepo.categories[cat.ID]; !ok {
			t.Error("category must survive a refused deletion")
		}
	})

	t.Run("deletes once the last transaction is gone", func(t *testing.T) {
		uc, _, transactionRepo, cat := setup()
		transactionRepo.counts[cat.ID] = 1

		if _, err := uc.Execute(ctx, DeleteCategoryInput{UserID: owner, CategoryID: cat.ID}); err == nil {
			t.Fatal("expected in-use error")
		}

		transactionRepo.counts[cat.ID] = 0
		if _, err := uc.Execute(ctx, DeleteCategoryInput{UserID: owner, CategoryID: cat.ID}); err != nil {
			t.Fatalf("expected deletion to succeed, got %v", err)
		}
	})

	t.Run("ownership is checked before the in-use guard", func(t *testing.T) {
		uc, _, transactionRepo, cat := setup()
		transactionRepo.counts[cat.ID] = 3

		_, err := uc.Execute(ctx, DeleteCategoryInput{UserID: stranger, CategoryID: cat.ID})
		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeNotAuthorizedCategory {
			t.Fatalf("expected authorization error, got %v", err)
		}
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		uc, _, _, _ := setup()

		_, err := uc.Execute(ctx, DeleteCategoryInput{UserID: owner, CategoryID: uuid.New()})
		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeCategoryNotFound {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})
}

func TestGetCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	categoryRepo := newMemCategoryRepo()
	cat := entity.NewCategory("Salary", "💰", "#10B981", entity.CategoryTypeIncome, owner)
	categoryRepo.categories[cat.ID] = cat
	uc := NewGetCategoryUseCase(categoryRepo)

	t.Run("returns an owned category", func(t *testing.T) {
		output, err := uc.Execute(ctx, GetCategoryInput{UserID: owner, CategoryID: cat.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Salary" {
			t.Errorf("unexpected category: %s", output.Category.Name)
		}
	})

	t.Run("foreign category is forbidden, not hidden", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetCategoryInput{UserID: stranger, CategoryID: cat.ID})
		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeNotAuthorizedCategory {
			t.Fatalf("expected authorization error, got %v", err)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, GetCategoryInput{UserID: owner, CategoryID: uuid.New()})
		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeCategoryNotFound {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})
}

func TestUpdateCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	categoryRepo := newMemCategoryRepo()
	cat := entity.NewCategory("Leisure", "🎮", "#EC4899", entity.CategoryTypeExpense, owner)
	categoryRepo.categories[cat.ID] = cat
	uc := NewUpdateCategoryUseCase(categoryRepo)

	t.Run("replaces all mutable fields", func(t *testing.T) {
		output, err := uc.Execute(ctx, UpdateCategoryInput{
			UserID:     owner,
			CategoryID: cat.ID,
			Name:       "Entertainment",
			Icon:       "🎬",
			Color:      "#000000",
			Type:       entity.CategoryTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Entertainment" || output.Category.Icon != "🎬" {
			t.Errorf("fields not replaced: %+v", output.Category)
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateCategoryInput{
			UserID:     owner,
			CategoryID: cat.ID,
			Name:       "   ",
			Type:       entity.CategoryTypeExpense,
		})
		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeEmptyCategoryName {
			t.Fatalf("expected empty-name error, got %v", err)
		}
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateCategoryInput{
			UserID:     owner,
			CategoryID: cat.ID,
			Name:       "Leisure",
			Type:       entity.CategoryType("TRANSFER"),
		})
		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeInvalidCategoryType {
			t.Fatalf("expected invalid-type error, got %v", err)
		}
	})
}

func TestSeedDefaultCategoriesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	categoryRepo := newMemCategoryRepo()
	uc := NewSeedDefaultCategoriesUseCase(categoryRepo)

	t.Run("seeds the full catalog", func(t *testing.T) {
		output, err := uc.Execute(ctx, SeedDefaultCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 12 {
			t.Fatalf("expected 12 categories, got %d", len(output.Categories))
		}
		if len(categoryRepo.categories) != 12 {
			t.Fatalf("expected 12 persisted categories, got %d", len(categoryRepo.categories))
		}
	})

	t.Run("seeding twice duplicates the catalog", func(t *testing.T) {
		if _, err := uc.Execute(ctx, SeedDefaultCategoriesInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categoryRepo.categories) != 24 {
			t.Fatalf("expected 24 persisted categories after double seed, got %d", len(categoryRepo.categories))
		}
	})
}
