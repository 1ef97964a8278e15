package finance

import (
	"github.com/finwise/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Summary contains the dashboard figures for a list of transactions.
type Summary struct {
	Balance          decimal.Decimal `json:"balance" example:"750"`        // Income minus expenses
	Income           decimal.Decimal `json:"income" example:"1000"`        // Sum of all income
	Expenses         decimal.Decimal `json:"expenses" example:"250"`       // Sum of all expenses
	SavingsRate      decimal.Decimal `json:"savingsRate" example:"75"`     // Unspent share of income in percent
	TransactionCount int             `json:"transactionCount" example:"2"` // Number of transactions
	IncomeCount      int             `json:"incomeCount" example:"1"`      // Number of income transactions
	ExpenseCount     int             `json:"expenseCount" example:"1"`     // Number of expense transactions
}

// Summarize computes the Summary.
func Summarize(txns []models.Transaction) Summary {
	s := Summary{
		Income:           TotalIncome(txns),
		Expenses:         TotalExpenses(txns),
		TransactionCount: len(txns),
	}

	for _, t := range txns {
		switch t.Type {
		case models.TypeIncome:
			s.IncomeCount++
		case models.TypeExpense:
			s.ExpenseCount++
		}
	}

	s.Balance = s.Income.Sub(s.Expenses)
	s.SavingsRate = SavingsRate(s.Income, s.Expenses)
	return s
}
