// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finledger/backend/internal/application/usecase/stats"
)

// StatsResponse represents the aggregated financial statistics in API
// responses. Breakdown maps are keyed by category name.
type StatsResponse struct {
	TotalIncome        decimal.Decimal            `json:"total_income"`
	TotalExpense       decimal.Decimal            `json:"total_expense"`
	Balance            decimal.Decimal            `json:"balance"`
	TransactionCount   int                        `json:"transaction_count"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
	IncomesByCategory  map[string]decimal.Decimal `json:"incomes_by_category"`
}

// UploadResponse represents the response for file uploads.
type UploadResponse struct {
	URL string `json:"url"`
}

// ToStatsResponse converts a stats report to its API representation.
func ToStatsResponse(report *stats.Report) StatsResponse {
	return StatsResponse{
		TotalIncome:        report.TotalIncome,
		TotalExpense:       report.TotalExpense,
		Balance:            report.Balance,
		TransactionCount:   report.TransactionCount,
		ExpensesByCategory: report.ExpensesByCategory,
		IncomesByCategory:  report.IncomesByCategory,
	}
}
