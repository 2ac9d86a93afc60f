// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget caps spending for a category in a given month. CategoryID is kept as
// a bare reference and is not validated against the categories table.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Month      int // 1-12
	Year       int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, categoryID uuid.UUID, amount decimal.Decimal, month, year int) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
		Year:       year,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
