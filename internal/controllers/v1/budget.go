package v1

import (
	"net/http"

	"github.com/finwise/backend/internal/finance"
	"github.com/finwise/backend/internal/httputil"
	"github.com/finwise/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudgets)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}

	// Calculated views
	{
		r.OPTIONS("/utilization", co.OptionsBudgetViews)
		r.GET("/utilization", co.GetBudgetUtilization)
		r.OPTIONS("/alerts", co.OptionsBudgetViews)
		r.GET("/alerts", co.GetBudgetAlerts)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/utilization [options]
// @Router			/v1/budgets/alerts [options]
func (co Controller) OptionsBudgetViews(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	_, err := co.Budgets.Get(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		Get budgets
// @Description	Returns all budgets in the order they were created
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	data := make([]Budget, 0)
	for _, budget := range co.Budgets.List() {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Create budget
// @Description	Creates a new budget. Without a color, the budget uses the color of its category.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		models.BudgetCreate	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var create models.BudgetCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: errorString(err),
		})
		return
	}

	budget, err := co.Budgets.Create(c.Request.Context(), create)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: errorString(err),
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: errorString(err),
		})
		return
	}

	budget, err := co.Budgets.Get(uri.ID)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: errorString(err),
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget limit
// @Description	Sets a new monthly limit for an existing budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		string				true	"ID formatted as string"
// @Param			budget	body		BudgetLimitUpdate	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: errorString(err),
		})
		return
	}

	// Check that the budget exists before looking at the body
	_, err = co.Budgets.Get(uri.ID)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: errorString(err),
		})
		return
	}

	var update BudgetLimitUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: errorString(err),
		})
		return
	}

	budget, err := co.Budgets.UpdateLimit(c.Request.Context(), uri.ID, update.Limit)
	if err != nil {
		c.JSON(status(err), BudgetResponse{
			Error: errorString(err),
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Get budget utilization
// @Description	Returns the spending against every budget in the current calendar month
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	UtilizationListResponse
// @Router			/v1/budgets/utilization [get]
func (co Controller) GetBudgetUtilization(c *gin.Context) {
	data := finance.BudgetUtilization(co.Budgets.List(), co.Transactions.Snapshot(), co.now())
	c.JSON(http.StatusOK, UtilizationListResponse{Data: data})
}

// @Summary		Get budget alerts
// @Description	Returns the budgets where at least 90% of the limit is spent in the current calendar month
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	UtilizationListResponse
// @Router			/v1/budgets/alerts [get]
func (co Controller) GetBudgetAlerts(c *gin.Context) {
	utilization := finance.BudgetUtilization(co.Budgets.List(), co.Transactions.Snapshot(), co.now())
	c.JSON(http.StatusOK, UtilizationListResponse{Data: finance.BudgetAlerts(utilization)})
}
