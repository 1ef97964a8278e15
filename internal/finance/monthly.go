package finance

import (
	"time"

	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DefaultMonths is the window used when no valid month count is given.
const DefaultMonths = 6

// MonthlySeries contains income and expenses per month, aligned by index
// and ordered oldest first.
type MonthlySeries struct {
	Months      []types.Month     `json:"months" swaggertype:"array,string" example:"2026-09,2026-10"` // Months of the series
	Labels      []string          `json:"labels" example:"Sep 2026,Oct 2026"`                          // Human readable month labels
	IncomeData  []decimal.Decimal `json:"incomeData"`                                                  // Income per month
	ExpenseData []decimal.Decimal `json:"expenseData"`                                                 // Expenses per month
}

// MonthlyTotals buckets the transactions into the trailing months calendar
// months ending with the month of now.
//
// Every month of the window is present, months without transactions have
// zero values. A months value below one is replaced by DefaultMonths.
func MonthlyTotals(txns []models.Transaction, months int, now time.Time) MonthlySeries {
	if months < 1 {
		months = DefaultMonths
	}

	window := types.MonthOf(now.UTC()).Trailing(months)
	series := MonthlySeries{
		Months:      window,
		Labels:      make([]string, len(window)),
		IncomeData:  make([]decimal.Decimal, len(window)),
		ExpenseData: make([]decimal.Decimal, len(window)),
	}

	index := make(map[types.Month]int, len(window))
	for i, m := range window {
		index[m] = i
		series.Labels[i] = m.Label()
		series.IncomeData[i] = decimal.Zero
		series.ExpenseData[i] = decimal.Zero
	}

	for _, t := range txns {
		i, ok := index[types.MonthOf(t.Date.UTC())]
		if !ok {
			continue
		}

		switch t.Type {
		case models.TypeIncome:
			series.IncomeData[i] = series.IncomeData[i].Add(t.Amount)
		case models.TypeExpense:
			series.ExpenseData[i] = series.ExpenseData[i].Add(t.Amount)
		}
	}

	return series
}
