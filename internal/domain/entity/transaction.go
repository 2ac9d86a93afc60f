// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "EXPENSE"
	TransactionTypeIncome  TransactionType = "INCOME"
)

// Transaction represents a single monetary movement. The amount is always
// stored non-negative; its direction is implied by Type alone.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Attachment  string // opaque file reference, may be empty
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	categoryID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	description string,
	date time.Time,
	attachment string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Date:        date,
		Attachment:  attachment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory pairs a transaction with its owning category as it
// currently exists. Category display fields are joined at read time, never
// copied into the transaction row.
type TransactionWithCategory struct {
	Transaction
	Category Category
}
