package v1

import (
	"fmt"
	"time"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/types"
	"golang.org/x/exp/slices"
)

type DashboardQuery struct {
	Date time.Time `form:"date" time_format:"2006-01-02" time_utc:"1" example:"2024-03-15"` // The day the summary is computed for. Defaults to today
}

type PeriodQuery struct {
	Year  int `form:"year" example:"2024"` // Year of the period. Defaults to the current year
	Month int `form:"month" example:"3"`   // Month of the period. Defaults to the current month
}

type BreakdownQuery struct {
	Kind  string    `form:"kind" example:"expense"`                                     // Kind of the transactions. Defaults to expense
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2024-03"` // Year and month in YYYY-MM format. Defaults to the current month
}

type TrendsQuery struct {
	Until  time.Time `form:"until" time_format:"2006-01" time_utc:"1" example:"2024-03"` // Last month of the range in YYYY-MM format. Defaults to the current month
	Months int       `form:"months" example:"6"`                                         // Number of months. Defaults to 6
}

type DashboardResponse struct {
	Data  *ledger.DashboardSummary `json:"data"`                                                       // The summary
	Error *string                  `json:"error" example:"the query string contains unparseable data"` // The error, if any occurred
}

type BudgetProgressResponse struct {
	Data  *ledger.BudgetOverview `json:"data"`                                                                      // Progress of all budgets of the period
	Error *string                `json:"error" example:"the period is invalid, the month must be between 1 and 12"` // The error, if any occurred
}

type BreakdownResponse struct {
	Data  *ledger.CategoryBreakdown `json:"data"`                                                                  // Totals per category
	Error *string                   `json:"error" example:"the kind parameter must be one of 'income', 'expense'"` // The error, if any occurred
}

type TrendsResponse struct {
	Data  []ledger.MonthTrend `json:"data"`                                                          // Totals per month, oldest first
	Error *string             `json:"error" example:"the number of months must be between 1 and 24"` // The error, if any occurred
}

type MonthListResponse struct {
	Data  []types.Month `json:"data" swaggertype:"array,string" example:"2024-03,2024-01"`           // Months with transactions, newest first
	Error *string       `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// period returns month and year of the query. Parameters that are
// not set in the query are taken from now.
func (q PeriodQuery) period(setFields []string, now time.Time) (int, int) {
	month, year := q.Month, q.Year
	if !slices.Contains(setFields, "Month") {
		month = int(now.Month())
	}

	if !slices.Contains(setFields, "Year") {
		year = now.Year()
	}

	return month, year
}

// orNow returns the month of t, or the month of now if t is not set.
func orNow(t, now time.Time) types.Month {
	if t.IsZero() {
		return types.MonthOf(now)
	}

	return types.MonthOf(t)
}

// progressURL returns the URL of the budget progress of a period.
func progressURL(url string, year, month int) string {
	return fmt.Sprintf("%s/v1/budget-progress?year=%d&month=%d", url, year, month)
}
