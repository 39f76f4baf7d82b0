package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	tests := []struct {
		name     string
		status   int
		id       string
		pathFunc func() string
	}{
		{"Does not exist", http.StatusNotFound, "4711", nil},
		{"Invalid ID", http.StatusBadRequest, "-3", nil},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestBudget(suite.T(), v1.BudgetEditable{}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/budgets", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	tests := []struct {
		name   string
		path   string
		method string
	}{
		{"GET Collection", "", http.MethodGet},
		{"OPTIONS Single", "/1", http.MethodOptions},
		{"GET Single", "/1", http.MethodGet},
		{"PATCH Single", "/1", http.MethodPatch},
		{"DELETE Single", "/1", http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/budgets%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	tests := []struct {
		name   string
		body   string
		status int
		err    string
	}{
		{"Valid", `[{ "category": "food", "year": 2024, "month": 3, "limitAmount": "5000" }]`, http.StatusCreated, ""},
		{"Same category in another month", `[{ "category": "food", "year": 2024, "month": 4, "limitAmount": "5000" }]`, http.StatusCreated, ""},
		{"Duplicate", `[{ "category": "food", "year": 2024, "month": 3, "limitAmount": "10" }]`, http.StatusBadRequest, models.ErrBudgetNotUnique.Error()},
		{"Income category", `[{ "category": "salary", "year": 2024, "month": 3, "limitAmount": "10" }]`, http.StatusBadRequest, models.ErrBudgetCategoryInvalid.Error()},
		{"Zero limit", `[{ "category": "bills", "year": 2024, "month": 3, "limitAmount": "0" }]`, http.StatusBadRequest, models.ErrBudgetLimitNotPositive.Error()},
		{"Month 0", `[{ "category": "bills", "year": 2024, "month": 0, "limitAmount": "10" }]`, http.StatusBadRequest, models.ErrBudgetPeriodInvalid.Error()},
		{"Month 13", `[{ "category": "bills", "year": 2024, "month": 13, "limitAmount": "10" }]`, http.StatusBadRequest, models.ErrBudgetPeriodInvalid.Error()},
		{"Year 10000", `[{ "category": "bills", "year": 10000, "month": 1, "limitAmount": "10" }]`, http.StatusBadRequest, models.ErrBudgetPeriodInvalid.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)

			if tt.err == "" {
				assert.Nil(t, response.Data[0].Error)
				return
			}
			assert.Contains(t, *response.Data[0].Error, tt.err)
		})
	}
}

// TestBudgetsUniquePerOwner verifies that two users can budget the same
// category in the same month.
func (suite *TestSuiteStandard) TestBudgetsUniquePerOwner() {
	createTestBudget(suite.T(), v1.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", `[{ "category": "food", "year": 2024, "month": 3, "limitAmount": "100" }]`, test.Auth(suite.T(), "someone-else"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestBudgetsGet() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Category: models.CategoryBills, Year: 2023, Month: 11})
	assert.Equal(suite.T(), "http://example.com/v1/budget-progress?year=2023&month=11", budget.Data.Links.Progress)

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.CategoryBills, response.Data.Category)
	assert.Equal(suite.T(), 2023, response.Data.Year)
	assert.Equal(suite.T(), 11, response.Data.Month)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "", test.Auth(suite.T(), "someone-else"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsGetFilter() {
	createTestBudget(suite.T(), v1.BudgetEditable{Category: models.CategoryFood, Year: 2024, Month: 3})
	createTestBudget(suite.T(), v1.BudgetEditable{Category: models.CategoryBills, Year: 2024, Month: 3})
	createTestBudget(suite.T(), v1.BudgetEditable{Category: models.CategoryFood, Year: 2024, Month: 4})
	createTestBudget(suite.T(), v1.BudgetEditable{Category: models.CategoryFood, Year: 2023, Month: 4})

	tests := []struct {
		name       string
		query      string
		categories []models.Category
		total      int64
	}{
		{"All, newest period first", "", []models.Category{models.CategoryFood, models.CategoryBills, models.CategoryFood, models.CategoryFood}, 4},
		{"Category", "category=bills", []models.Category{models.CategoryBills}, 1},
		{"Year", "year=2024", []models.Category{models.CategoryFood, models.CategoryBills, models.CategoryFood}, 3},
		{"Month", "month=4", []models.Category{models.CategoryFood, models.CategoryFood}, 2},
		{"Period", "year=2024&month=3", []models.Category{models.CategoryBills, models.CategoryFood}, 2},
		{"Limit and offset", "offset=1&limit=2", []models.Category{models.CategoryBills, models.CategoryFood}, 4},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)

			categories := make([]models.Category, 0, len(response.Data))
			for _, b := range response.Data {
				categories = append(categories, b.Category)
			}

			assert.Equal(t, tt.categories, categories)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?limit=500", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?year=soon", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{LimitAmount: decimal.NewFromFloat(200)})
	createTestBudget(suite.T(), v1.BudgetEditable{Category: models.CategoryBills})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Limit", `{ "limitAmount": "250.5" }`, http.StatusOK},
		{"Move to other month", `{ "month": 4 }`, http.StatusOK},
		{"Zero limit", `{ "limitAmount": "0" }`, http.StatusBadRequest},
		{"Invalid month", `{ "month": 13 }`, http.StatusBadRequest},
		{"Income category", `{ "category": "salary" }`, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, budget.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), decimal.NewFromFloat(250.5).Equal(response.Data.LimitAmount))
	assert.Equal(suite.T(), 4, response.Data.Month)

	// Conflicts with the second budget after moving back
	r = test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, `{ "month": 3, "category": "bills" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrBudgetNotUnique.Error())
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "", test.Auth(suite.T(), "someone-else"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
