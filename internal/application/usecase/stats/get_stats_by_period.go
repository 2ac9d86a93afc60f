// Package stats contains the financial statistics use cases.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/adapter"
)

// GetStatsByPeriodInput represents the input for period statistics. The
// period bounds are inclusive on both ends.
type GetStatsByPeriodInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetStatsByPeriodOutput represents the computed period statistics.
type GetStatsByPeriodOutput struct {
	Report *Report
}

// GetStatsByPeriodUseCase computes statistics restricted to a date period.
type GetStatsByPeriodUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetStatsByPeriodUseCase creates a new GetStatsByPeriodUseCase instance.
func NewGetStatsByPeriodUseCase(transactionRepo adapter.TransactionRepository) *GetStatsByPeriodUseCase {
	return &GetStatsByPeriodUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute aggregates the transactions dated within the period. A period with
// no transactions produces a zeroed report, not an error.
func (uc *GetStatsByPeriodUseCase) Execute(ctx context.Context, input GetStatsByPeriodInput) (*GetStatsByPeriodOutput, error) {
	transactions, err := uc.transactionRepo.FindByUserAndPeriod(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetStatsByPeriodOutput{Report: Aggregate(transactions)}, nil
}
