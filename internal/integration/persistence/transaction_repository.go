// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/domain/entity"
	domainerror "github.com/finledger/backend/internal/domain/error"
	"github.com/finledger/backend/internal/integration/persistence/model"
)

// listOrder is the ordering applied to every transaction list. Creation time
// breaks ties between transactions dated the same day.
const listOrder = "date DESC, created_at DESC"

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := conn(ctx, r.db).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByIDWithCategory retrieves a transaction with its category by ID.
func (r *transactionRepository) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	var transactionModel model.TransactionModel
	result := conn(ctx, r.db).Preload("Category").Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntityWithCategory(), nil
}

// FindByUser retrieves all transactions for a given user, newest first.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionWithCategory, error) {
	var transactionModels []model.TransactionModel
	result := conn(ctx, r.db).
		Preload("Category").
		Where("user_id = ?", userID).
		Order(listOrder).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntitiesWithCategory(transactionModels), nil
}

// FindByUserAndPeriod retrieves transactions dated within [startDate, endDate].
func (r *transactionRepository) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.TransactionWithCategory, error) {
	var transactionModels []model.TransactionModel
	result := conn(ctx, r.db).
		Preload("Category").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order(listOrder).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntitiesWithCategory(transactionModels), nil
}

// FindByUserAndType retrieves transactions of the given type.
func (r *transactionRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType) ([]*entity.TransactionWithCategory, error) {
	var transactionModels []model.TransactionModel
	result := conn(ctx, r.db).
		Preload("Category").
		Where("user_id = ? AND type = ?", userID, string(transactionType)).
		Order(listOrder).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntitiesWithCategory(transactionModels), nil
}

// CountByCategory counts transactions referencing a category.
func (r *transactionRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := conn(ctx, r.db).Model(&model.TransactionModel{}).Where("category_id = ?", categoryID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := conn(ctx, r.db).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toEntitiesWithCategory(transactionModels []model.TransactionModel) []*entity.TransactionWithCategory {
	transactions := make([]*entity.TransactionWithCategory, 0, len(transactionModels))
	for i := range transactionModels {
		transactions = append(transactions, transactionModels[i].ToEntityWithCategory())
	}
	return transactions
}
