package v1

import (
	"net/http"

	"github.com/finwise/backend/internal/finance"
	"github.com/finwise/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// maxMonths is the longest window that can be requested.
const maxMonths = 120

type MonthQuery struct {
	Months int `form:"months"` // Number of months in the window, including the current one
}

type MonthlySeriesResponse struct {
	Error *string                `json:"error" example:"the months parameter must not be larger than 120"` // The error, if any occurred
	Data  *finance.MonthlySeries `json:"data"`                                                             // Income and expense totals per month, oldest first
}

// RegisterMonthRoutes registers the routes for monthly totals with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsMonths)
	r.GET("", co.GetMonths)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func (co Controller) OptionsMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly totals
// @Description	Returns income and expense totals for the trailing months ending with the current month.
// @Description	Without the months parameter or with a value below 1, six months are returned.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthlySeriesResponse
// @Failure		400		{object}	MonthlySeriesResponse
// @Param			months	query		int	false	"Number of months"	maximum(120)
// @Router			/v1/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	var query MonthQuery
	err := httputil.BindQuery(c, &query)
	if err != nil {
		c.JSON(status(err), MonthlySeriesResponse{
			Error: errorString(err),
		})
		return
	}

	if query.Months > maxMonths {
		c.JSON(status(errMonthsTooLarge), MonthlySeriesResponse{
			Error: errorString(errMonthsTooLarge),
		})
		return
	}

	series := finance.MonthlyTotals(co.Transactions.Snapshot(), query.Months, co.now())
	c.JSON(http.StatusOK, MonthlySeriesResponse{Data: &series})
}
