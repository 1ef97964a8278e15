// Package v1 implements the v1 HTTP API.
package v1

import (
	"time"

	"github.com/finwise/backend/internal/category"
	"github.com/finwise/backend/internal/narrator"
	"github.com/finwise/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// Controller holds the services the API handlers work on.
type Controller struct {
	Transactions *store.Transactions
	Budgets      *store.Budgets
	Classifier   *category.Classifier
	Categories   category.Set
	Narrator     narrator.Narrator

	// Now is the clock for month based calculations. Defaults to time.Now.
	Now func() time.Time
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now().UTC()
	}

	return co.Now().UTC()
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterSummaryRoutes(r.Group("/summary"))
	co.RegisterMonthRoutes(r.Group("/months"))
	co.RegisterInsightRoutes(r.Group("/insights"))
	co.RegisterExportRoutes(r.Group("/export"))
}
