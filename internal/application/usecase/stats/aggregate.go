// Package stats contains the financial statistics use cases.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/finledger/backend/internal/domain/entity"
)

// Report holds the aggregated financial figures for a set of transactions.
// Per-category breakdowns are keyed by category name, so two categories that
// share a name fold into a single bucket.
type Report struct {
	TotalIncome        decimal.Decimal
	TotalExpense       decimal.Decimal
	Balance            decimal.Decimal
	TransactionCount   int
	ExpensesByCategory map[string]decimal.Decimal
	IncomesByCategory  map[string]decimal.Decimal
}

// Aggregate computes totals and per-category breakdowns over the given
// transactions. All arithmetic is exact decimal arithmetic; the empty input
// yields zero totals and empty maps.
func Aggregate(transactions []*entity.TransactionWithCategory) *Report {
	report := &Report{
		TotalIncome:        decimal.Zero,
		TotalExpense:       decimal.Zero,
		Balance:            decimal.Zero,
		TransactionCount:   len(transactions),
		ExpensesByCategory: make(map[string]decimal.Decimal),
		IncomesByCategory:  make(map[string]decimal.Decimal),
	}

	for _, txn := range transactions {
		name := txn.Category.Name
		switch txn.Type {
		case entity.TransactionTypeIncome:
			report.TotalIncome = report.TotalIncome.Add(txn.Amount)
			report.IncomesByCategory[name] = report.IncomesByCategory[name].Add(txn.Amount)
		case entity.TransactionTypeExpense:
			report.TotalExpense = report.TotalExpense.Add(txn.Amount)
			report.ExpensesByCategory[name] = report.ExpensesByCategory[name].Add(txn.Amount)
		}
	}

	report.Balance = report.TotalIncome.Sub(report.TotalExpense)

	return report
}
