package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/cache"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"golang.org/x/exp/slices"
)

// defaultTrendMonths is the number of months in a trend if none is requested.
const defaultTrendMonths = 6

// RegisterSummaryRoutes registers the routes for the computed summaries
// with the RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/dashboard", OptionsSummary)
	r.GET("/dashboard", co.GetDashboard)

	r.OPTIONS("/budget-progress", OptionsSummary)
	r.GET("/budget-progress", co.GetBudgetProgress)

	r.OPTIONS("/breakdown", OptionsSummary)
	r.GET("/breakdown", co.GetBreakdown)

	r.OPTIONS("/trends", OptionsSummary)
	r.GET("/trends", co.GetTrends)

	r.OPTIONS("/months", OptionsSummary)
	r.GET("/months", co.GetMonths)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summaries
// @Success		204
// @Router			/v1/dashboard [options]
// @Router			/v1/budget-progress [options]
// @Router			/v1/breakdown [options]
// @Router			/v1/trends [options]
// @Router			/v1/months [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns income, expense and balance of the month containing the date and the latest transactions up to that date
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		500		{object}	DashboardResponse
// @Param			date	query		string	false	"Date in YYYY-MM-DD format. Defaults to today"
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	var query DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{Error: &e})
		return
	}

	date := query.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	owner := auth.Owner(c)
	ctx := c.Request.Context()

	summary, err := cached(ctx, co.Cache, owner, func() (ledger.DashboardSummary, error) {
		return co.Engine.DashboardSummary(ctx, owner, date)
	}, "dashboard", date.Format(time.DateOnly))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &summary})
}

// @Summary		Get budget progress
// @Description	Returns actual spend against the limit for every budget of the period, with totals
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	BudgetProgressResponse
// @Failure		400		{object}	BudgetProgressResponse
// @Failure		500		{object}	BudgetProgressResponse
// @Param			year	query		int	false	"Year, 1 to 9999. Defaults to the current year"
// @Param			month	query		int	false	"Month, 1 to 12. Defaults to the current month"
// @Router			/v1/budget-progress [get]
func (co Controller) GetBudgetProgress(c *gin.Context) {
	var query PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, BudgetProgressResponse{Error: &e})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)
	month, year := query.period(setFields, time.Now().UTC())

	owner := auth.Owner(c)
	ctx := c.Request.Context()

	overview, err := cached(ctx, co.Cache, owner, func() (ledger.BudgetOverview, error) {
		return co.Engine.BudgetOverview(ctx, owner, month, year)
	}, "budget-progress", types.Period{Year: year, Month: month}.String())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetProgressResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetProgressResponse{Data: &overview})
}

// @Summary		Get category breakdown
// @Description	Returns the totals per category for one kind of transactions in one month
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	BreakdownResponse
// @Failure		400		{object}	BreakdownResponse
// @Failure		500		{object}	BreakdownResponse
// @Param			kind	query		string	false	"income or expense. Defaults to expense"
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month"
// @Router			/v1/breakdown [get]
func (co Controller) GetBreakdown(c *gin.Context) {
	var query BreakdownQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, BreakdownResponse{Error: &e})
		return
	}

	kind := models.KindExpense
	if query.Kind != "" {
		kind = models.Kind(query.Kind)
	}

	if !kind.Valid() {
		e := errKindInvalid.Error()
		c.JSON(http.StatusBadRequest, BreakdownResponse{Error: &e})
		return
	}

	breakdown, err := co.Engine.CategoryBreakdown(c.Request.Context(), auth.Owner(c), kind, orNow(query.Month, time.Now().UTC()))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BreakdownResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BreakdownResponse{Data: &breakdown})
}

// @Summary		Get monthly trends
// @Description	Returns income, expense and savings of consecutive months, oldest first
// @Tags			Summaries
// @Produce		json
// @Success		200		{object}	TrendsResponse
// @Failure		400		{object}	TrendsResponse
// @Failure		500		{object}	TrendsResponse
// @Param			until	query		string	false	"Last month in YYYY-MM format. Defaults to the current month"
// @Param			months	query		int		false	"Number of months, 1 to 24. Defaults to 6"
// @Router			/v1/trends [get]
func (co Controller) GetTrends(c *gin.Context) {
	var query TrendsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TrendsResponse{Error: &e})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)
	months := defaultTrendMonths
	if slices.Contains(setFields, "Months") {
		months = query.Months
	}

	trends, err := co.Engine.MonthlyTrends(c.Request.Context(), auth.Owner(c), orNow(query.Until, time.Now().UTC()), months)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrendsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TrendsResponse{Data: trends})
}

// @Summary		Get months
// @Description	Returns all months that contain at least one transaction, newest first
// @Tags			Summaries
// @Produce		json
// @Success		200	{object}	MonthListResponse
// @Failure		500	{object}	MonthListResponse
// @Router			/v1/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	months, err := co.Engine.ActiveMonths(c.Request.Context(), auth.Owner(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: months})
}

// cached returns the value cached for the parts or computes and caches it.
//
// The cache generation is read before compute runs, see cache.Versioned.
func cached[T any](ctx context.Context, c cache.Cache, owner string, compute func() (T, error), parts ...string) (T, error) {
	key, ok := cache.Versioned(ctx, c, owner, parts...)
	if ok {
		if value, hit := cache.Load[T](ctx, c, key); hit {
			return value, nil
		}
	}

	value, err := compute()
	if err != nil {
		return value, err
	}

	if ok {
		cache.Store(ctx, c, key, value)
	}

	return value, nil
}
