package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createMarch2024 creates income of 1000 and expenses of 250 for food and
// 80 for transportation in March 2024, plus one expense in February.
func createMarch2024(t *testing.T) {
	createTestTransaction(t, v1.TransactionEditable{Amount: decimal.NewFromFloat(1000), Kind: models.KindIncome, Category: models.CategorySalary, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})
	createTestTransaction(t, v1.TransactionEditable{Amount: decimal.NewFromFloat(200), Category: models.CategoryFood, Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)})
	createTestTransaction(t, v1.TransactionEditable{Amount: decimal.NewFromFloat(50), Category: models.CategoryFood, Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)})
	createTestTransaction(t, v1.TransactionEditable{Amount: decimal.NewFromFloat(80), Category: models.CategoryTransportation, Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)})
	createTestTransaction(t, v1.TransactionEditable{Amount: decimal.NewFromFloat(30), Category: models.CategoryFood, Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)})
}

func (suite *TestSuiteStandard) TestSummaryOptions() {
	for _, path := range []string{"/dashboard", "/budget-progress", "/breakdown", "/trends", "/months", "/categories", "/activities", "/export", ""} {
		r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1"+path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"), path)
	}
}

func (suite *TestSuiteStandard) TestDashboard() {
	createMarch2024(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?date=2024-03-20", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	summary := response.Data
	assert.Equal(suite.T(), types.Period{Year: 2024, Month: 3}, summary.Period)
	assert.True(suite.T(), decimal.NewFromFloat(1000).Equal(summary.TotalIncome), summary.TotalIncome)
	assert.True(suite.T(), decimal.NewFromFloat(330).Equal(summary.TotalExpense), summary.TotalExpense)
	assert.True(suite.T(), decimal.NewFromFloat(670).Equal(summary.Balance), summary.Balance)

	// The transaction on the 31st is after the requested date
	require.Len(suite.T(), summary.RecentTransactions, 4)
	assert.Equal(suite.T(), time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), summary.RecentTransactions[0].Date)
	assert.Equal(suite.T(), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), summary.RecentTransactions[3].Date)
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Balance.IsZero())
	assert.Len(suite.T(), response.Data.RecentTransactions, 0)
	assert.Equal(suite.T(), types.MonthOf(time.Now().UTC()).Period(), response.Data.Period)
}

func (suite *TestSuiteStandard) TestDashboardBadDate() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?date=20.03.2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetProgress() {
	createMarch2024(suite.T())
	createTestBudget(suite.T(), v1.BudgetEditable{Category: models.CategoryFood, LimitAmount: decimal.NewFromFloat(200)})
	createTestBudget(suite.T(), v1.BudgetEditable{Category: models.CategoryBills, LimitAmount: decimal.NewFromFloat(100)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget-progress?year=2024&month=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetProgressResponse
	test.DecodeResponse(suite.T(), &r, &response)

	overview := response.Data
	require.Len(suite.T(), overview.Budgets, 2)
	assert.Equal(suite.T(), 2, overview.BudgetCount)
	assert.Equal(suite.T(), 1, overview.OverBudgetCount)

	bills, food := overview.Budgets[0], overview.Budgets[1]
	assert.Equal(suite.T(), models.CategoryBills, bills.Category)
	assert.True(suite.T(), bills.ActualSpend.IsZero())
	assert.False(suite.T(), bills.IsOverBudget)

	assert.Equal(suite.T(), models.CategoryFood, food.Category)
	assert.True(suite.T(), decimal.NewFromFloat(250).Equal(food.ActualSpend), food.ActualSpend)
	assert.True(suite.T(), decimal.NewFromFloat(-50).Equal(food.Remaining), food.Remaining)
	assert.True(suite.T(), food.IsOverBudget)
	require.True(suite.T(), food.PercentUsed.Valid)
	assert.True(suite.T(), decimal.NewFromFloat(125).Equal(food.PercentUsed.Decimal), food.PercentUsed.Decimal)

	assert.True(suite.T(), decimal.NewFromFloat(300).Equal(overview.TotalBudgeted))
	assert.True(suite.T(), decimal.NewFromFloat(250).Equal(overview.TotalSpent))
	assert.True(suite.T(), decimal.NewFromFloat(330).Equal(overview.Totals.Expense))
}

// TestBudgetProgressCacheInvalidation verifies that a write is reflected in
// the next summary even if the summary was requested before.
func (suite *TestSuiteStandard) TestBudgetProgressCacheInvalidation() {
	createTestBudget(suite.T(), v1.BudgetEditable{})

	get := func() v1.BudgetProgressResponse {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget-progress?year=2024&month=3", "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response v1.BudgetProgressResponse
		test.DecodeResponse(suite.T(), &r, &response)
		return response
	}

	assert.True(suite.T(), get().Data.TotalSpent.IsZero())

	createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(42)})
	assert.True(suite.T(), decimal.NewFromFloat(42).Equal(get().Data.TotalSpent))
}

func (suite *TestSuiteStandard) TestBudgetProgressBadPeriod() {
	tests := []struct {
		name  string
		query string
	}{
		{"Month 0", "year=2024&month=0"},
		{"Month 13", "year=2024&month=13"},
		{"Year 0", "year=0&month=1"},
		{"Not a number", "year=2024&month=march"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/budget-progress?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetProgressNoBudgets() {
	createMarch2024(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget-progress?year=2024&month=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetProgressResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data.Budgets, 0)
	assert.False(suite.T(), response.Data.OverallPercent.Valid)
	assert.True(suite.T(), decimal.NewFromFloat(1000).Equal(response.Data.Totals.Income))
}

func (suite *TestSuiteStandard) TestBreakdown() {
	createMarch2024(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/breakdown?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BreakdownResponse
	test.DecodeResponse(suite.T(), &r, &response)

	breakdown := response.Data
	assert.Equal(suite.T(), models.KindExpense, breakdown.Kind)
	assert.True(suite.T(), decimal.NewFromFloat(330).Equal(breakdown.Total))
	require.Len(suite.T(), breakdown.Categories, 2)
	assert.Equal(suite.T(), models.CategoryFood, breakdown.Categories[0].Category)
	assert.Equal(suite.T(), 2, breakdown.Categories[0].Count)
	assert.True(suite.T(), decimal.NewFromFloat(75.76).Equal(breakdown.Categories[0].Share), breakdown.Categories[0].Share)
	assert.Equal(suite.T(), "Transportation", breakdown.Categories[1].Name)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/breakdown?month=2024-03&kind=income", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Categories, 1)
	assert.Equal(suite.T(), models.CategorySalary, response.Data.Categories[0].Category)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/breakdown?kind=transfer", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/breakdown?month=March", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTrends() {
	createMarch2024(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/trends?until=2024-04&months=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TrendsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), types.NewMonth(2024, 2), response.Data[0].Month)
	assert.True(suite.T(), decimal.NewFromFloat(-30).Equal(response.Data[0].Savings))
	assert.True(suite.T(), decimal.NewFromFloat(670).Equal(response.Data[1].Savings))
	assert.True(suite.T(), response.Data[2].Income.IsZero())

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/trends", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 6)

	for _, months := range []string{"0", "25"} {
		r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/trends?months="+months, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestMonths() {
	createMarch2024(suite.T())
	createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2022, 12, 24, 0, 0, 0, 0, time.UTC)}, http.StatusCreated)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []types.Month{types.NewMonth(2024, 3), types.NewMonth(2024, 2), types.NewMonth(2022, 12)}, response.Data)
}

func (suite *TestSuiteStandard) TestSummariesDatabaseError() {
	for _, path := range []string{"dashboard", "budget-progress", "breakdown", "trends", "months", "activities", "export"} {
		suite.T().Run(path, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, http.MethodGet, "http://example.com/v1/"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}
