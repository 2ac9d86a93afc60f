// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finledger/backend/internal/domain/entity"
)

// TransactionRequest represents the request body for transaction creation and
// update. Date uses the YYYY-MM-DD wire format.
type TransactionRequest struct {
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
	Type        string          `json:"type" binding:"required,oneof=EXPENSE INCOME"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required,min=1,max=255"`
	Date        string          `json:"date" binding:"required"`
	Attachment  string          `json:"attachment"`
}

// TransactionResponse represents the transaction data in API responses. The
// category is denormalized into the payload so list consumers never need a
// second request.
type TransactionResponse struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Amount      decimal.Decimal  `json:"amount"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	Attachment  string           `json:"attachment,omitempty"`
	Category    CategoryResponse `json:"category"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ToTransactionResponse converts a transaction with its category to its API
// representation.
func ToTransactionResponse(transaction *entity.TransactionWithCategory) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID.String(),
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Date:        transaction.Date.Format(time.DateOnly),
		Attachment:  transaction.Attachment,
		Category:    ToCategoryResponse(&transaction.Category),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions with categories.
func ToTransactionResponses(transactions []*entity.TransactionWithCategory) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, ToTransactionResponse(transaction))
	}
	return responses
}
