package finance

import (
	"time"

	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// AlertThreshold is the utilization in percent from which a budget is
// reported as an alert.
var AlertThreshold = decimal.NewFromInt(90)

// Utilization is the spending against one budget in a month.
type Utilization struct {
	models.Budget
	Month         types.Month     `json:"month" swaggertype:"string" example:"2026-10"` // Month the utilization is calculated for
	Spent         decimal.Decimal `json:"spent" example:"372.5"`                        // Sum of expenses in the budget category
	Remaining     decimal.Decimal `json:"remaining" example:"27.5"`                     // Limit minus spent, never below zero
	Percentage    decimal.Decimal `json:"percentage" example:"93.12"`                   // Spent in percent of the limit, at most 100
	RawPercentage decimal.Decimal `json:"rawPercentage" example:"93.12"`                // Spent in percent of the limit, not capped
}

// Alert reports whether the spending reached AlertThreshold.
func (u Utilization) Alert() bool {
	return u.RawPercentage.GreaterThanOrEqual(AlertThreshold)
}

// BudgetUtilization calculates the spending for each budget in the calendar month
// of now.
//
// Only expenses with the same category as the budget are counted.
// A budget with a zero limit has zero percentage.
func BudgetUtilization(budgets []models.Budget, txns []models.Transaction, now time.Time) []Utilization {
	month := types.MonthOf(now.UTC())

	spent := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.Type != models.TypeExpense || !month.Contains(t.Date) {
			continue
		}

		spent[t.Category] = spent[t.Category].Add(t.Amount)
	}

	result := make([]Utilization, 0, len(budgets))
	for _, b := range budgets {
		s := spent[b.Category]
		raw := Percentage(s, b.Limit)

		result = append(result, Utilization{
			Budget:        b,
			Month:         month,
			Spent:         s,
			Remaining:     decimal.Max(decimal.Zero, b.Limit.Sub(s)),
			Percentage:    decimal.Min(hundred, raw),
			RawPercentage: raw,
		})
	}

	return result
}

// BudgetAlerts returns the budgets whose spending reached AlertThreshold.
func BudgetAlerts(utilization []Utilization) []Utilization {
	alerts := make([]Utilization, 0)
	for _, u := range utilization {
		if u.Alert() {
			alerts = append(alerts, u)
		}
	}

	return alerts
}
