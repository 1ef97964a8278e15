package v1

import (
	"github.com/finwise/backend/internal/finance"
	"github.com/finwise/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/0f6bd8a4-4a4d-4b88-a4ad-1d7c7e4f5e73"` // The budget itself
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	return Budget{
		Budget: model,
		Links: BudgetLinks{
			Self: resourceURL(c.GetString(contextURL), "budgets", model.ID),
		},
	}
}

// BudgetLimitUpdate contains the new limit for a budget.
type BudgetLimitUpdate struct {
	Limit decimal.Decimal `json:"limit" example:"450" minimum:"0.01"` // New monthly limit, must be positive
}

type BudgetResponse struct {
	Error *string `json:"error" example:"there is no budget matching your query"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                   // Data for the budget
}

type BudgetListResponse struct {
	Error *string  `json:"error" example:"the budget limit must be greater than zero"` // The error, if any occurred
	Data  []Budget `json:"data"`                                                       // List of budgets
}

type UtilizationListResponse struct {
	Error *string               `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []finance.Utilization `json:"data"`                                                                // Utilization for each budget in the current month
}
