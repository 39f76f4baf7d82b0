package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// createTestTransaction creates a test transaction via the v1 API.
//
// Unset fields are filled with an expense of 10 for food on 2024-03-15.
func createTestTransaction(t *testing.T, transaction v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if transaction.Amount.IsZero() {
		transaction.Amount = decimal.NewFromFloat(10)
	}

	if transaction.Kind == "" {
		transaction.Kind = models.KindExpense
	}

	if transaction.Category == "" {
		transaction.Category = models.CategoryFood
	}

	if transaction.Date.IsZero() {
		transaction.Date = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{transaction})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &tr)

	return tr.Data[0]
}

// createTestBudget creates a test budget via the v1 API.
//
// Unset fields are filled with a limit of 100 for food in 2024-03.
func createTestBudget(t *testing.T, budget v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if budget.Category == "" {
		budget.Category = models.CategoryFood
	}

	if budget.Year == 0 {
		budget.Year = 2024
	}

	if budget.Month == 0 {
		budget.Month = 3
	}

	if budget.LimitAmount.IsZero() {
		budget.LimitAmount = decimal.NewFromFloat(100)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{budget})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var br v1.BudgetCreateResponse
	test.DecodeResponse(t, &r, &br)

	return br.Data[0]
}

// createTestLoanProducts replaces the catalogue with three offers for a
// two wheeler priced at 100000 and one offer for a television.
func createTestLoanProducts(t *testing.T) []models.LoanProduct {
	products := []models.LoanProduct{
		{ItemID: "17", Category: models.LoanTwoWheeler, ModelName: "Hero Splendor Plus", Price: decimal.NewFromInt(100000), EMI: decimal.NewFromInt(4000), BankName: "HDFC Bank", InterestRate: decimal.RequireFromString("11.5"), TenureMonths: 24},
		{ItemID: "17", Category: models.LoanTwoWheeler, ModelName: "Hero Splendor Plus", Price: decimal.NewFromInt(100000), EMI: decimal.NewFromInt(3800), BankName: "SBI", InterestRate: decimal.RequireFromString("10.5"), TenureMonths: 24},
		{ItemID: "17", Category: models.LoanTwoWheeler, ModelName: "Hero Splendor Plus", Price: decimal.NewFromInt(100000), EMI: decimal.NewFromInt(3900), BankName: "Axis Bank", InterestRate: decimal.RequireFromString("11"), TenureMonths: 24},
		{ItemID: "4", Category: models.LoanElectronics, ModelName: "Sony Bravia 55", Price: decimal.NewFromInt(60000), EMI: decimal.NewFromInt(5500), BankName: "HDFC Bank", InterestRate: decimal.RequireFromString("14"), TenureMonths: 12},
	}

	require.Nil(t, models.ReplaceLoanProducts(models.DB, products), "creating loan products")

	var created []models.LoanProduct
	require.Nil(t, models.DB.Order("id").Find(&created).Error)
	return created
}

// createTestConsultation creates a consultation for the product via the v1 API.
func createTestConsultation(t *testing.T, productID uint64, expectedStatus ...int) v1.ConsultationResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/consultations", v1.ConsultationCreate{LoanProductID: productID})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var cr v1.ConsultationResponse
	test.DecodeResponse(t, &r, &cr)

	return cr
}
