// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return d
}

func seedTransaction(t *testing.T, repo adapter.TransactionRepository, userID, categoryID uuid.UUID, transactionType entity.TransactionType, amount, day, description string) *entity.Transaction {
	t.Helper()
	txn := entity.NewTransaction(userID, categoryID, transactionType, decimal.RequireFromString(amount), description, date(t, day), "")
	if err := repo.Create(context.Background(), txn); err != nil {
		t.Fatalf("create transaction failed: %v", err)
	}
	return txn
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	repo := NewTransactionRepository(db)

	userID := uuid.New()
	otherUserID := uuid.New()

	food := entity.NewCategory("Food", "🍔", "#EF4444", entity.CategoryTypeExpense, userID)
	salary := entity.NewCategory("Salary", "💰", "#10B981", entity.CategoryTypeIncome, userID)
	if err := categoryRepo.CreateBatch(ctx, []*entity.Category{food, salary}); err != nil {
		t.Fatalf("seed categories failed: %v", err)
	}

	older := seedTransaction(t, repo, userID, food.ID, entity.TransactionTypeExpense, "12.00", "2024-03-01", "breakfast")
	newest := seedTransaction(t, repo, userID, food.ID, entity.TransactionTypeExpense, "30.00", "2024-03-20", "dinner")
	middle := seedTransaction(t, repo, userID, salary.ID, entity.TransactionTypeIncome, "3000.00", "2024-03-10", "salary")
	seedTransaction(t, repo, otherUserID, food.ID, entity.TransactionTypeExpense, "99.00", "2024-03-15", "not mine")

	t.Run("lists newest first with category joined", func(t *testing.T) {
		transactions, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(transactions))
		}
		if transactions[0].Transaction.ID != newest.ID || transactions[1].Transaction.ID != middle.ID || transactions[2].Transaction.ID != older.ID {
			t.Errorf("unexpected order: %s, %s, %s",
				transactions[0].Transaction.Description, transactions[1].Transaction.Description, transactions[2].Transaction.Description)
		}
		if transactions[0].Category.Name != "Food" {
			t.Errorf("expected joined category, got %+v", transactions[0].Category)
		}
	})

	t.Run("period filter is inclusive on both ends", func(t *testing.T) {
		transactions, err := repo.FindByUserAndPeriod(ctx, userID, date(t, "2024-03-01"), date(t, "2024-03-10"))
		if err != nil {
			t.Fatalf("period list failed: %v", err)
		}
		if len(transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(transactions))
		}
	})

	t.Run("type filter", func(t *testing.T) {
		incomes, err := repo.FindByUserAndType(ctx, userID, entity.TransactionTypeIncome)
		if err != nil {
			t.Fatalf("type list failed: %v", err)
		}
		if len(incomes) != 1 || incomes[0].Transaction.Description != "salary" {
			t.Fatalf("unexpected incomes: %d", len(incomes))
		}
	})

	t.Run("count by category", func(t *testing.T) {
		count, err := repo.CountByCategory(ctx, food.ID)
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		// Two of the user's plus the other user's transaction.
		if count != 3 {
			t.Errorf("expected 3, got %d", count)
		}
	})

	t.Run("update persists a category reassignment", func(t *testing.T) {
		older.CategoryID = salary.ID
		older.Type = entity.TransactionTypeIncome
		if err := repo.Update(ctx, older); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		stored, err := repo.FindByIDWithCategory(ctx, older.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if stored.Category.Name != "Salary" {
			t.Errorf("expected reassigned category, got %s", stored.Category.Name)
		}
	})

	t.Run("category rename shows up in reads immediately", func(t *testing.T) {
		food.Name = "Groceries"
		if err := categoryRepo.Update(ctx, food); err != nil {
			t.Fatalf("rename failed: %v", err)
		}

		stored, err := repo.FindByIDWithCategory(ctx, newest.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if stored.Category.Name != "Groceries" {
			t.Errorf("expected renamed category in read, got %s", stored.Category.Name)
		}
	})

	t.Run("delete removes the row permanently", func(t *testing.T) {
		if err := repo.Delete(ctx, newest.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := repo.FindByID(ctx, newest.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected transaction-not-found, got %v", err)
		}
	})
}
