package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/finwise/backend/internal/export"
	"github.com/finwise/backend/internal/httputil"
	"github.com/finwise/backend/internal/models"
	"github.com/finwise/backend/internal/store"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ExportQuery struct {
	Format string `form:"format"` // File format
}

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export transactions
// @Description	Returns all transactions, newest first, as a file download
// @Tags			Export
// @Produce		text/csv
// @Produce		json
// @Produce		html
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			format	query		string	false	"File format"	Enums(csv, json, html)
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	var query ExportQuery
	err := httputil.BindQuery(c, &query)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	format, err := export.ParseFormat(query.Format)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	err = export.Write(&buf, format, co.Transactions.List(store.FilterAll))
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Str("format", string(format)).Err(err).Msg("export failed")
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename(co.now())))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
