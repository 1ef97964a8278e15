package v1

import (
	"net/http"

	"github.com/finwise/backend/internal/category"
	"github.com/finwise/backend/internal/finance"
	"github.com/finwise/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type CategoryListResponse struct {
	Data []category.Category `json:"data"` // List of known categories
}

type CategoryTotalListResponse struct {
	Data []finance.CategoryTotal `json:"data"` // Expense totals per category, highest first
}

type CategorySuggestQuery struct {
	Description string `form:"description"` // Transaction description to classify
}

// Suggestion is the category suggested for a description.
type Suggestion struct {
	Category string `json:"category" example:"Food & Dining"` // Suggested category
	Color    string `json:"color" example:"#FF6B6B"`          // Display color of the category
	Keyword  string `json:"keyword" example:"restaurant"`     // The keyword that matched. Empty for fallback suggestions
	Matched  bool   `json:"matched" example:"true"`           // If a keyword matched the description
	Known    bool   `json:"known" example:"true"`             // If the category is part of the category set
}

type SuggestionResponse struct {
	Error *string     `json:"error" example:"the description parameter must be set"` // The error, if any occurred
	Data  *Suggestion `json:"data"`                                                  // The suggestion
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategories)
	r.GET("", co.GetCategories)
	r.OPTIONS("/totals", co.OptionsCategories)
	r.GET("/totals", co.GetCategoryTotals)
	r.OPTIONS("/suggest", co.OptionsCategories)
	r.GET("/suggest", co.GetCategorySuggestion)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
// @Router			/v1/categories/totals [options]
// @Router			/v1/categories/suggest [options]
func (co Controller) OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the known categories with their display colors
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	data := make([]category.Category, len(co.Categories))
	copy(data, co.Categories)

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category totals
// @Description	Returns the expense totals per category over all transactions, highest total first
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryTotalListResponse
// @Router			/v1/categories/totals [get]
func (co Controller) GetCategoryTotals(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryTotalListResponse{
		Data: finance.CategoryTotals(co.Transactions.Snapshot(), co.Categories),
	})
}

// @Summary		Suggest category
// @Description	Suggests a category for a transaction description
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	SuggestionResponse
// @Failure		400			{object}	SuggestionResponse
// @Param			description	query		string	true	"Transaction description"
// @Router			/v1/categories/suggest [get]
func (co Controller) GetCategorySuggestion(c *gin.Context) {
	var query CategorySuggestQuery
	err := httputil.BindQuery(c, &query)
	if err != nil {
		c.JSON(status(err), SuggestionResponse{
			Error: errorString(err),
		})
		return
	}

	if query.Description == "" {
		c.JSON(status(errDescriptionMissing), SuggestionResponse{
			Error: errorString(errDescriptionMissing),
		})
		return
	}

	var suggestion Suggestion
	if rule, ok := co.Classifier.Match(query.Description); ok {
		suggestion = Suggestion{
			Category: rule.Category,
			Keyword:  rule.Keyword,
			Matched:  true,
		}
	} else {
		suggestion = Suggestion{Category: co.Classifier.Classify(query.Description)}
	}

	suggestion.Color = co.Categories.Color(suggestion.Category)
	suggestion.Known = slices.Contains(co.Categories.Names(), suggestion.Category)

	c.JSON(http.StatusOK, SuggestionResponse{Data: &suggestion})
}
