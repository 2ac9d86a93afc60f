// Package stats contains the financial statistics use cases.
package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/adapter"
)

// GetStatsInput represents the input for all-time statistics.
type GetStatsInput struct {
	UserID uuid.UUID
}

// GetStatsOutput represents the computed all-time statistics.
type GetStatsOutput struct {
	Report *Report
}

// GetStatsUseCase computes statistics over the user's entire history.
type GetStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(transactionRepo adapter.TransactionRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute aggregates every transaction the user owns.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetStatsOutput{Report: Aggregate(transactions)}, nil
}
