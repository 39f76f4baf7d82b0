package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestTransactionsOptions verifies that the HTTP OPTIONS response for /v1/transactions/{id} is correct.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			"4711",
			nil,
		},
		{
			"Invalid ID",
			http.StatusBadRequest,
			"NotParseableAsID",
			nil,
		},
		{
			"Zero ID",
			http.StatusBadRequest,
			"0",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(31)}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

// TestTransactionsDatabaseError verifies that the endpoints return the appropriate
// error when the database is disconnected.
func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	tests := []struct {
		name   string // Name of the test
		path   string // Path to send request to
		method string // HTTP method to use
		body   string // The request body
	}{
		{"GET Collection", "", http.MethodGet, ""},
		{"OPTIONS Single", "/1", http.MethodOptions, ""},
		{"GET Single", "/1", http.MethodGet, ""},
		{"PATCH Single", "/1", http.MethodPatch, `{ "amount": "12" }`},
		{"DELETE Single", "/1", http.MethodDelete, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/transactions%s", tt.path), tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			assert.Contains(t, recorder.Body.String(), models.ErrGeneral.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	tests := []struct {
		name           string
		transactions   any
		expectedStatus int
		expectedErrors []string
	}{
		{
			"Single",
			[]v1.TransactionEditable{{Amount: decimal.NewFromFloat(1250), Kind: models.KindIncome, Category: models.CategorySalary, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}},
			http.StatusCreated,
			[]string{""},
		},
		{
			"Kind and category are normalized",
			`[{ "amount": "3.999", "kind": " Expense", "category": "FOOD ", "date": "2024-03-02T23:30:00+02:00" }]`,
			http.StatusCreated,
			[]string{""},
		},
		{
			"Zero amount",
			`[{ "amount": "0", "kind": "expense", "category": "food", "date": "2024-03-02T00:00:00Z" }]`,
			http.StatusBadRequest,
			[]string{models.ErrAmountNotPositive.Error()},
		},
		{
			"Negative amount",
			`[{ "amount": "-5", "kind": "expense", "category": "food", "date": "2024-03-02T00:00:00Z" }]`,
			http.StatusBadRequest,
			[]string{models.ErrAmountNotPositive.Error()},
		},
		{
			"Unknown kind",
			`[{ "amount": "5", "kind": "transfer", "category": "food", "date": "2024-03-02T00:00:00Z" }]`,
			http.StatusBadRequest,
			[]string{models.ErrKindInvalid.Error()},
		},
		{
			"Category of other kind",
			`[{ "amount": "5", "kind": "income", "category": "food", "date": "2024-03-02T00:00:00Z" }]`,
			http.StatusBadRequest,
			[]string{models.ErrCategoryInvalid.Error()},
		},
		{
			"No date",
			`[{ "amount": "5", "kind": "expense", "category": "food" }]`,
			http.StatusBadRequest,
			[]string{models.ErrDateMissing.Error()},
		},
		{
			"One good, one bad",
			`[{ "amount": "5", "kind": "expense", "category": "food", "date": "2024-03-02T00:00:00Z" }, { "amount": "5", "kind": "expense", "category": "salary", "date": "2024-03-02T00:00:00Z" }]`,
			http.StatusBadRequest,
			[]string{"", models.ErrCategoryInvalid.Error()},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.transactions)
			test.AssertHTTPStatus(t, &r, tt.expectedStatus)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, len(tt.expectedErrors))
			for i, e := range tt.expectedErrors {
				if e == "" {
					assert.Nil(t, response.Data[i].Error)
					assert.NotNil(t, response.Data[i].Data)
					continue
				}

				assert.Equal(t, e, *response.Data[i].Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateNormalizes() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", `[{ "amount": "3.999", "kind": " Expense", "category": "FOOD ", "description": "  Snacks ", "date": "2024-03-02T23:30:00+02:00" }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	transaction := response.Data[0].Data
	assert.True(suite.T(), decimal.NewFromFloat(4).Equal(transaction.Amount), "amount is %s", transaction.Amount)
	assert.Equal(suite.T(), models.KindExpense, transaction.Kind)
	assert.Equal(suite.T(), models.CategoryFood, transaction.Category)
	assert.Equal(suite.T(), "Snacks", transaction.Description)
	assert.Equal(suite.T(), time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), transaction.Date)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions/%d", transaction.ID), transaction.Links.Self)
}

func (suite *TestSuiteStandard) TestTransactionsCreateBadBody() {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"Empty", "", httputil.ErrRequestBodyEmpty},
		{"Not JSON", "not json", httputil.ErrInvalidBody},
		{"Not a list", `{ "amount": "5" }`, httputil.ErrInvalidBody},
		{"Wrong type", `[{ "amount": "5", "kind": 17 }]`, httputil.ErrInvalidBody},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, r.Body.String(), tt.err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Lunch"})

	r := test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Lunch", response.Data.Description)
	assert.Equal(suite.T(), transaction.Data.ID, response.Data.ID)
}

// TestTransactionsOwnerIsolation verifies that transactions of other users can
// neither be read nor modified.
func (suite *TestSuiteStandard) TestTransactionsOwnerIsolation() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Mine"})
	other := test.Auth(suite.T(), "someone-else")

	for _, method := range []string{http.MethodGet, http.MethodOptions, http.MethodDelete} {
		r := test.Request(suite.T(), method, transaction.Data.Links.Self, "", other)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, `{ "description": "Yours" }`, other)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "", other)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)

	// Still unchanged for the owner
	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Mine", response.Data.Description)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(2000), Kind: models.KindIncome, Category: models.CategorySalary, Date: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), Description: "February salary"})
	createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(12.5), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Description: "Morning coffee"})
	createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(40), Category: models.CategoryTransportation, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Description: "Train"})
	createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(3.2), Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Description: "Coffee to go"})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 4, 4},
		{"Income", "kind=income", 1, 1},
		{"Expense", "kind=expense", 3, 3},
		{"Food", "category=food", 2, 2},
		{"From March", "fromDate=2024-03-01", 3, 3},
		{"Until March 5th", "untilDate=2024-03-05", 3, 3},
		{"Range", "fromDate=2024-03-01&untilDate=2024-03-05", 2, 2},
		{"Description glob", "description=*offee*", 2, 2},
		{"Description glob is case sensitive", "description=Coffee*", 1, 1},
		{"Limit", "limit=1", 1, 4},
		{"Offset", "offset=3", 1, 4},
		{"Offset behind the end", "offset=10", 0, 4},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, tt.len, response.Pagination.Count)
		})
	}
}

// TestTransactionsGetOrder verifies that transactions are listed by date, newest
// first. Transactions on the same day are ordered by the time they were created.
func (suite *TestSuiteStandard) TestTransactionsGetOrder() {
	a := createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})
	b := createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)})
	c := createTestTransaction(suite.T(), v1.TransactionEditable{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	ids := make([]uint64, 0, len(response.Data))
	for _, t := range response.Data {
		ids = append(ids, t.ID)
	}

	assert.Equal(suite.T(), []uint64{b.Data.ID, c.Data.ID, a.Data.ID}, ids)
}

func (suite *TestSuiteStandard) TestTransactionsGetBadQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"Unknown kind", "kind=transfer"},
		{"Unknown category", "category=pets"},
		{"Bad date", "fromDate=yesterday"},
		{"Limit too small", "limit=0"},
		{"Limit too large", "limit=101"},
		{"Negative offset", "offset=-1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(20), Description: "Groceries"})

	tests := []struct {
		name   string
		body   string
		status int
		check  func(t *testing.T, transaction v1.Transaction)
	}{
		{
			"Amount",
			`{ "amount": "25.75" }`,
			http.StatusOK,
			func(t *testing.T, transaction v1.Transaction) {
				assert.True(t, decimal.NewFromFloat(25.75).Equal(transaction.Amount))
				assert.Equal(t, "Groceries", transaction.Description)
			},
		},
		{
			"Description can be emptied",
			`{ "description": "" }`,
			http.StatusOK,
			func(t *testing.T, transaction v1.Transaction) {
				assert.Equal(t, "", transaction.Description)
				assert.True(t, decimal.NewFromFloat(25.75).Equal(transaction.Amount))
			},
		},
		{
			"Kind and category together",
			`{ "kind": "income", "category": "freelance" }`,
			http.StatusOK,
			func(t *testing.T, transaction v1.Transaction) {
				assert.Equal(t, models.KindIncome, transaction.Kind)
				assert.Equal(t, models.CategoryFreelance, transaction.Category)
			},
		},
		{"Kind without matching category", `{ "kind": "expense" }`, http.StatusBadRequest, nil},
		{"Zero amount", `{ "amount": "0" }`, http.StatusBadRequest, nil},
		{"Broken JSON", `{ "amount": `, http.StatusBadRequest, nil},
		{"Empty body", "", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, transaction.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.check == nil {
				return
			}

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
			tt.check(t, *response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.True(suite.T(), strings.HasPrefix(r.Body.String(), `{"error":"there is no transaction`), r.Body.String())

	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
