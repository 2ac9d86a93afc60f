// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
// List methods return transactions ordered by date descending (creation time
// breaking ties) with the owning category joined at read time.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithCategory retrieves a transaction with its category by ID.
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error)

	// FindByUser retrieves all transactions for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionWithCategory, error)

	// FindByUserAndPeriod retrieves transactions dated within [startDate, endDate].
	FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.TransactionWithCategory, error)

	// FindByUserAndType retrieves transactions of the given type.
	FindByUserAndType(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType) ([]*entity.TransactionWithCategory, error)

	// CountByCategory counts transactions referencing a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
