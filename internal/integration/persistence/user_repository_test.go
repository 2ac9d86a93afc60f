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

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewUserRepository(db)

	user := entity.NewUser("Alice", "alice@example.com", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("finds by id and email", func(t *testing.T) {
		byID, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("find by id failed: %v", err)
		}
		if byID.Email != "alice@example.com" {
			t.Errorf("unexpected email: %s", byID.Email)
		}

		byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("find by email failed: %v", err)
		}
		if byEmail.ID != user.ID {
			t.Errorf("unexpected id: %s", byEmail.ID)
		}
	})

	t.Run("duplicate email violates the unique index", func(t *testing.T) {
		dup := entity.NewUser("Impostor", "alice@example.com", "other-hash")
		err := repo.Create(ctx, dup)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Fatalf("expected duplicate-email error, got %v", err)
		}
	})

	t.Run("exists by email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
		if err != nil || !exists {
			t.Fatalf("expected alice to exist, got %v %v", exists, err)
		}
		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		if err != nil || exists {
			t.Fatalf("expected nobody to be absent, got %v %v", exists, err)
		}
	})

	t.Run("unknown lookups return the sentinel", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected user-not-found, got %v", err)
		}
		if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected user-not-found, got %v", err)
		}
	})
}

func TestUnitOfWorkRollback(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	userRepo := NewUserRepository(db)
	categoryRepo := NewCategoryRepository(db)
	uow := NewUnitOfWork(db)

	user := entity.NewUser("Bob", "bob@example.com", "hash")

	err := uow.Do(ctx, func(ctx context.Context) error {
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		if err := categoryRepo.Create(ctx, entity.NewCategory("Food", "🍔", "#EF4444", entity.CategoryTypeExpense, user.ID)); err != nil {
			return err
		}
		return errors.New("downstream failure")
	})
	if err == nil {
		t.Fatal("expected the unit of work to fail")
	}

	if _, err := userRepo.FindByEmail(ctx, "bob@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("user row must be rolled back, got %v", err)
	}
	categories, err := categoryRepo.FindByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("category rows must be rolled back, got %d", len(categories))
	}
}

func TestUnitOfWorkCommit(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	userRepo := NewUserRepository(db)
	categoryRepo := NewCategoryRepository(db)
	uow := NewUnitOfWork(db)

	user := entity.NewUser("Carol", "carol@example.com", "hash")

	err := uow.Do(ctx, func(ctx context.Context) error {
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		return categoryRepo.Create(ctx, entity.NewCategory("Food", "🍔", "#EF4444", entity.CategoryTypeExpense, user.ID))
	})
	if err != nil {
		t.Fatalf("unit of work failed: %v", err)
	}

	if _, err := userRepo.FindByEmail(ctx, "carol@example.com"); err != nil {
		t.Errorf("user row must be committed, got %v", err)
	}
	categories, err := categoryRepo.FindByUser(ctx, user.ID)
	if err != nil || len(categories) != 1 {
		t.Errorf("expected one committed category, got %d (%v)", len(categories), err)
	}
}
