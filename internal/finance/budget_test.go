package finance_test

import (
	"testing"

	"github.com/finwise/backend/internal/finance"
	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budget(category string, limit int64) models.Budget {
	return models.Budget{
		ID:       models.NewID(),
		Category: category,
		Limit:    decimal.NewFromInt(limit),
		Color:    "#FFFFFF",
	}
}

func TestBudgetUtilization(t *testing.T) {
	budgets := []models.Budget{
		budget("Food & Dining", 400),
		budget("Shopping", 100),
		budget("Travel", 1000),
		budget("Education", 0),
	}

	txns := []models.Transaction{
		expense(300, "Food & Dining", now),
		expense(72.50, "Food & Dining", now.AddDate(0, 0, -10)),
		// Previous month, not counted
		expense(500, "Food & Dining", now.AddDate(0, -1, 0)),
		// Income in a budget category, not counted
		income(50, "Shopping", now),
		expense(150, "Shopping", now),
		expense(10, "Education", now),
	}

	util := finance.BudgetUtilization(budgets, txns, now)
	require.Len(t, util, 4)

	tests := []struct {
		spent      string
		remaining  string
		percentage string
		raw        string
		alert      bool
	}{
		{"372.5", "27.5", "93.125", "93.125", true},
		{"150", "0", "100", "150", true},
		{"0", "1000", "0", "0", false},
		{"10", "0", "0", "0", false},
	}

	for i, tt := range tests {
		u := util[i]
		t.Run(u.Category, func(t *testing.T) {
			assert.Equal(t, budgets[i], u.Budget)
			assert.Equal(t, types.NewMonth(2026, 10), u.Month)
			assertDecimal(t, tt.spent, u.Spent)
			assertDecimal(t, tt.remaining, u.Remaining)
			assertDecimal(t, tt.percentage, u.Percentage)
			assertDecimal(t, tt.raw, u.RawPercentage)
			assert.Equal(t, tt.alert, u.Alert())
		})
	}
}

func TestBudgetUtilizationBounds(t *testing.T) {
	budgets := []models.Budget{budget("Shopping", 10), budget("Shopping", 1), budget("Travel", 5)}

	for name, txns := range fixtures() {
		for _, u := range finance.BudgetUtilization(budgets, txns, now) {
			assert.True(t, u.Percentage.LessThanOrEqual(decimal.NewFromInt(100)), name)
			assert.False(t, u.Remaining.IsNegative(), name)
		}
	}
}

func TestBudgetAlerts(t *testing.T) {
	budgets := []models.Budget{
		budget("Food & Dining", 100),
		budget("Shopping", 100),
		budget("Travel", 100),
	}

	txns := []models.Transaction{
		expense(90, "Food & Dining", now),
		expense(89.99, "Shopping", now),
		expense(250, "Travel", now),
	}

	alerts := finance.BudgetAlerts(finance.BudgetUtilization(budgets, txns, now))
	require.Len(t, alerts, 2)
	assert.Equal(t, "Food & Dining", alerts[0].Category)
	assert.Equal(t, "Travel", alerts[1].Category)
}
