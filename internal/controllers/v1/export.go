package v1

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/export"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/rs/zerolog/log"
)

type ExportQuery struct {
	FromDate  time.Time `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`  // From this date
	UntilDate time.Time `form:"untilDate" time_format:"2006-01-02" time_utc:"1"` // Until this date
}

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", co.GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export transactions
// @Description	Returns an XLSX workbook with all transactions in the date range and a summary sheet
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			fromDate	query		string	false	"Transactions at and after this date, YYYY-MM-DD"
// @Param			untilDate	query		string	false	"Transactions before and at this date, YYYY-MM-DD"
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	var query ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidQueryString.Error()})
		return
	}

	filter := ledger.Filter{From: query.FromDate, Until: query.UntilDate}

	// The workbook is built in memory so that a failing read can still be
	// reported with a status code
	var buf bytes.Buffer
	err := export.Write(&buf, co.Currency, co.Engine.Transactions(c.Request.Context(), auth.Owner(c), filter))
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("export")
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.Filename(time.Now().UTC()))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
