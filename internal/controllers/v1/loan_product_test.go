package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestSalary records a salary of 50000 ten days ago, making it the
// average monthly income of the owner.
func createTestSalary(t *testing.T) {
	date := time.Now().UTC().AddDate(0, 0, -10).Truncate(24 * time.Hour)
	createTestTransaction(t, v1.TransactionEditable{Amount: decimal.NewFromInt(50000), Kind: models.KindIncome, Category: models.CategorySalary, Date: date})
}

func (suite *TestSuiteStandard) TestLoanProductsOptions() {
	products := createTestLoanProducts(suite.T())

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Collection", "", http.StatusNoContent},
		{"Single", fmt.Sprintf("/%d", products[0].ID), http.StatusNoContent},
		{"Plans", fmt.Sprintf("/%d/plans", products[0].ID), http.StatusNoContent},
		{"Does not exist", "/4711", http.StatusNotFound},
		{"Invalid ID", "/NotParseableAsID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/loan-products"+tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestLoanProductsDatabaseError() {
	for _, path := range []string{"", "/1", "/1/plans"} {
		suite.T().Run(path, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, http.MethodGet, "http://example.com/v1/loan-products"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, r.Body.String(), models.ErrGeneral.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestLoanProductsGet() {
	createTestLoanProducts(suite.T())

	tests := []struct {
		name  string
		query string
		banks []string
		total int64
	}{
		{"All", "", []string{"HDFC Bank", "SBI", "Axis Bank", "HDFC Bank"}, 4},
		{"Category", "category=electronics", []string{"HDFC Bank"}, 1},
		{"Item", "itemId=17", []string{"SBI", "Axis Bank", "HDFC Bank"}, 3},
		{"Bank", "bankName=HDFC%20Bank", []string{"HDFC Bank", "HDFC Bank"}, 2},
		{"Paginated", "itemId=17&offset=1&limit=1", []string{"Axis Bank"}, 3},
		{"No match", "itemId=99", []string{}, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/loan-products?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.LoanProductListResponse
			test.DecodeResponse(t, &r, &response)

			banks := make([]string, 0, len(response.Data))
			for _, product := range response.Data {
				banks = append(banks, product.BankName)
			}

			assert.Equal(t, tt.banks, banks)
			require.NotNil(t, response.Pagination)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, len(tt.banks), response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestLoanProductsGetBadQuery() {
	for _, query := range []string{"category=boat", "limit=0", "limit=101", "offset=-1"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/loan-products?"+query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestLoanProductGet() {
	products := createTestLoanProducts(suite.T())

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/loan-products/%d", products[3].ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LoanProductResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Sony Bravia 55", response.Data.ModelName)
	assert.Equal(suite.T(), "Electronics", response.Data.CategoryName)
	assert.True(suite.T(), decimal.NewFromInt(60000).Equal(response.Data.Price))
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/loan-products/%d/plans", products[3].ID), response.Data.Links.Plans)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/loan-products/4711", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestLoanProductPlans() {
	products := createTestLoanProducts(suite.T())
	createTestSalary(suite.T())

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/loan-products/%d/plans", products[0].ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LoanOfferResponse
	test.DecodeResponse(suite.T(), &r, &response)

	offer := response.Data
	require.NotNil(suite.T(), offer)
	assert.Equal(suite.T(), "HDFC Bank", offer.Product.BankName)
	assert.True(suite.T(), decimal.NewFromInt(50000).Equal(offer.MonthlyIncome), "income is %s", offer.MonthlyIncome)
	assert.True(suite.T(), decimal.NewFromInt(9).Equal(offer.Assessment.Score), "score is %s", offer.Assessment.Score)
	assert.True(suite.T(), decimal.NewFromInt(8).Equal(offer.Assessment.EMIRatio.Decimal), "ratio is %s", offer.Assessment.EMIRatio.Decimal)

	require.Len(suite.T(), offer.Assessment.RecommendedBanks, 3)
	assert.Equal(suite.T(), "SBI", offer.Assessment.RecommendedBanks[0].Bank)
	assert.Equal(suite.T(), "Axis Bank", offer.Assessment.RecommendedBanks[1].Bank)

	require.Len(suite.T(), offer.Plans, 4)
	assert.Equal(suite.T(), "plan_1", offer.Plans[0].ID)
	assert.True(suite.T(), decimal.RequireFromString("3784.58").Equal(offer.Plans[0].EMI), "emi is %s", offer.Plans[0].EMI)
	assert.True(suite.T(), decimal.NewFromInt(80000).Equal(offer.Plans[0].LoanAmount))

	// Nothing is stored
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Consultation{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestLoanProductPlansWithoutIncome() {
	products := createTestLoanProducts(suite.T())

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/loan-products/%d/plans", products[0].ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.LoanOfferResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.MonthlyIncome.IsZero())
	assert.False(suite.T(), response.Data.Assessment.EMIRatio.Valid)
	assert.True(suite.T(), decimal.NewFromInt(2).Equal(response.Data.Assessment.Score))
}
