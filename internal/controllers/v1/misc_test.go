package v1_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/export"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "http://example.com/v1/transactions", response.Links.Transactions)
	assert.Equal(suite.T(), "http://example.com/v1/budget-progress", response.Links.BudgetProgress)
	assert.Equal(suite.T(), "http://example.com/v1/export", response.Links.Export)
	assert.Equal(suite.T(), "http://example.com/v1/loan-products", response.Links.LoanProducts)
	assert.Equal(suite.T(), "http://example.com/v1/consultations", response.Links.Consultations)
}

func (suite *TestSuiteStandard) TestAuthentication() {
	tests := []struct {
		name   string
		header map[string]string
	}{
		{"Empty header", map[string]string{"Authorization": ""}},
		{"No bearer", map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}},
		{"Garbage token", map[string]string{"Authorization": "Bearer not.a.token"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions", "", tt.header)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestCategories() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Income, len(models.Categories[models.KindIncome]))
	require.Len(suite.T(), response.Data.Expense, len(models.Categories[models.KindExpense]))
	assert.Equal(suite.T(), v1.Category{Category: models.CategorySalary, Name: "Salary"}, response.Data.Income[0])
	assert.Equal(suite.T(), v1.Category{Category: models.CategoryFood, Name: "Food"}, response.Data.Expense[0])
}

func (suite *TestSuiteStandard) TestActivities() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(12.5)})
	createTestBudget(suite.T(), v1.BudgetEditable{})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Activities of other users are not listed
	createTestTransaction(suite.T(), v1.TransactionEditable{})
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", `[{ "amount": "1", "kind": "expense", "category": "food", "date": "2024-03-02T00:00:00Z" }]`, test.Auth(suite.T(), "someone-else"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/activities", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ActivityListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 4)
	assert.Equal(suite.T(), models.ActivityAddTransaction, response.Data[0].Type)
	assert.Equal(suite.T(), models.ActivityDeleteTransaction, response.Data[1].Type)
	assert.Equal(suite.T(), transaction.Data.ID, response.Data[1].ResourceID)
	assert.Equal(suite.T(), models.ActivityCreateBudget, response.Data[2].Type)
	assert.Equal(suite.T(), "Added expense of 12.50 for food", response.Data[3].Description)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/activities?limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)

	for _, limit := range []string{"0", "101", "many"} {
		r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/activities?limit="+limit, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestExport() {
	createMarch2024(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export?fromDate=2024-03-01&untilDate=2024-03-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), export.ContentType, r.Header().Get("Content-Type"))
	assert.True(suite.T(), strings.HasPrefix(r.Header().Get("Content-Disposition"), "attachment; filename=transactions_"))

	f, err := excelize.OpenReader(bytes.NewReader(r.Body.Bytes()))
	require.Nil(suite.T(), err)
	defer f.Close()

	rows, err := f.GetRows(export.TransactionsSheet)
	require.Nil(suite.T(), err)

	// Header and the four transactions of March, newest first
	require.Len(suite.T(), rows, 5)
	assert.Equal(suite.T(), "Date", rows[0][0])
	assert.Equal(suite.T(), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC).Format(time.DateOnly), rows[1][0])

	count, err := f.GetCellValue(export.SummarySheet, "B1")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "4", count)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export?fromDate=first", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
