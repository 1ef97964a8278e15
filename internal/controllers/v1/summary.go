package v1

import (
	"net/http"

	"github.com/finwise/backend/internal/finance"
	"github.com/finwise/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type SummaryResponse struct {
	Data finance.Summary `json:"data"` // Dashboard figures over all transactions
}

// RegisterSummaryRoutes registers the routes for the summary with
// the RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSummary)
	r.GET("", co.GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func (co Controller) OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns balance, income, expenses, savings rate and transaction counts
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Router			/v1/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, SummaryResponse{
		Data: finance.Summarize(co.Transactions.Snapshot()),
	})
}
