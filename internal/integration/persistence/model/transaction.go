// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Deletion is permanent, so there is no soft-delete column.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Date        time.Time       `gorm:"not null;index"`
	Attachment  string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Loaded via Preload where the read path needs the category.
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.Date,
		Attachment:  m.Attachment,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithCategory converts the model and its preloaded category.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	withCategory := &entity.TransactionWithCategory{
		Transaction: *m.ToEntity(),
	}
	if m.Category != nil {
		withCategory.Category = *m.Category.ToEntity()
	}
	return withCategory
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		CategoryID:  transaction.CategoryID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Date:        transaction.Date,
		Attachment:  transaction.Attachment,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
