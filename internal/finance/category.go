package finance

import (
	"slices"
	"strings"

	"github.com/finwise/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Colors resolves the display color for a category name.
type Colors interface {
	Color(name string) string
}

// CategoryTotal is the expense total for one category.
type CategoryTotal struct {
	Name       string          `json:"name" example:"Food & Dining"` // Name of the category
	Total      decimal.Decimal `json:"total" example:"400"`          // Sum of all expenses in the category
	Percentage decimal.Decimal `json:"percentage" example:"61.53"`   // Share of all expenses
	Color      string          `json:"color" example:"#FF6B6B"`      // Display color of the category
}

// CategoryTotals groups the expenses by category, largest total first.
//
// Categories with equal totals are ordered by name. Percentages are
// relative to the sum of all expenses and zero if that sum is zero.
func CategoryTotals(txns []models.Transaction, colors Colors) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[string]int)
	sum := decimal.Zero

	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, CategoryTotal{Name: t.Category, Total: decimal.Zero})
		}

		totals[i].Total = totals[i].Total.Add(t.Amount)
		sum = sum.Add(t.Amount)
	}

	for i := range totals {
		totals[i].Percentage = Percentage(totals[i].Total, sum)
		if colors != nil {
			totals[i].Color = colors.Color(totals[i].Name)
		}
	}

	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		if c := b.Total.Cmp(a.Total); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	return totals
}
