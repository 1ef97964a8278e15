package v1

import (
	"net/http"

	"github.com/finwise/backend/internal/httputil"
	"github.com/finwise/backend/internal/narrator"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type InsightQuery struct {
	Kind string `form:"kind"` // Kind of commentary
}

// Insight is generated commentary on the transactions.
type Insight struct {
	Kind narrator.Kind `json:"kind" example:"insights"`                                      // Kind of commentary
	Text string        `json:"text" example:"• Your top spending category is Food & Dining"` // Bullet points separated by newlines
}

type InsightResponse struct {
	Error *string  `json:"error" example:"insights are currently unavailable, please try again later"` // The error, if any occurred
	Data  *Insight `json:"data"`                                                                       // The commentary
}

// RegisterInsightRoutes registers the routes for insights with
// the RouterGroup that is passed.
func (co Controller) RegisterInsightRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsInsights)
	r.GET("", co.GetInsights)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/v1/insights [options]
func (co Controller) OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get insights
// @Description	Returns commentary on all transactions: general insights, predictions for next month or saving tips
// @Tags			Insights
// @Produce		json
// @Success		200		{object}	InsightResponse
// @Failure		400		{object}	InsightResponse
// @Failure		503		{object}	InsightResponse
// @Param			kind	query		string	false	"Kind of commentary"	Enums(insights, predictions, tips)
// @Router			/v1/insights [get]
func (co Controller) GetInsights(c *gin.Context) {
	var query InsightQuery
	err := httputil.BindQuery(c, &query)
	if err != nil {
		c.JSON(status(err), InsightResponse{
			Error: errorString(err),
		})
		return
	}

	kind, err := narrator.ParseKind(query.Kind)
	if err != nil {
		c.JSON(status(err), InsightResponse{
			Error: errorString(err),
		})
		return
	}

	text, err := co.Narrator.Narrate(c.Request.Context(), co.Transactions.Snapshot(), kind)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Str("kind", string(kind)).Err(err).Msg("narration failed")
		c.JSON(status(err), InsightResponse{
			Error: errorString(err),
		})
		return
	}

	c.JSON(http.StatusOK, InsightResponse{Data: &Insight{Kind: kind, Text: text}})
}
