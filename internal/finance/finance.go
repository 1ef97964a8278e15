// Package finance computes all derived financial figures from a list of
// transactions.
//
// Every function is pure, never fails and degrades to zero values for
// empty input. Divisions by zero yield zero.
package finance

import (
	"github.com/finwise/backend/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Balance is the sum of all incomes minus the sum of all expenses.
func Balance(txns []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		balance = balance.Add(t.Signed())
	}

	return balance
}

// TotalIncome is the sum of all income amounts.
func TotalIncome(txns []models.Transaction) decimal.Decimal {
	return total(txns, models.TypeIncome)
}

// TotalExpenses is the sum of all expense amounts.
func TotalExpenses(txns []models.Transaction) decimal.Decimal {
	return total(txns, models.TypeExpense)
}

func total(txns []models.Transaction, t models.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		if txn.Type == t {
			sum = sum.Add(txn.Amount)
		}
	}

	return sum
}

// Percentage returns part as a percentage of whole, or zero if whole is zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}

	return part.Div(whole).Mul(hundred)
}

// SavingsRate is the share of income that has not been spent, in percent.
// It is zero when there is no income.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	return Percentage(income.Sub(expenses), income)
}
