package v1_test

import (
	"fmt"
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

func (suite *TestSuiteStandard) TestConsultationsOptions() {
	products := createTestLoanProducts(suite.T())
	consultation := createTestConsultation(suite.T(), products[0].ID)

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "http://example.com/v1/consultations", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Single", consultation.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, DELETE"},
		{"Select", consultation.Data.Links.Select, http.StatusNoContent, "OPTIONS, POST"},
		{"Activate", consultation.Data.Links.Activate, http.StatusNoContent, "OPTIONS, POST"},
		{"Does not exist", "http://example.com/v1/consultations/4711", http.StatusNotFound, ""},
		{"Invalid ID", "http://example.com/v1/consultations/-3/select", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestConsultationsDatabaseError() {
	tests := []struct {
		name   string
		path   string
		method string
		body   string
	}{
		{"GET Collection", "", http.MethodGet, ""},
		{"POST Collection", "", http.MethodPost, `{ "loanProductId": 1 }`},
		{"GET Single", "/1", http.MethodGet, ""},
		{"DELETE Single", "/1", http.MethodDelete, ""},
		{"POST Select", "/1/select", http.MethodPost, `{ "planId": "plan_1" }`},
		{"POST Activate", "/1/activate", http.MethodPost, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, tt.method, "http://example.com/v1/consultations"+tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, r.Body.String(), models.ErrGeneral.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestConsultationsCreate() {
	products := createTestLoanProducts(suite.T())
	createTestSalary(suite.T())

	consultation := createTestConsultation(suite.T(), products[0].ID).Data
	require.NotNil(suite.T(), consultation)

	assert.Equal(suite.T(), products[0].ID, consultation.LoanProductID)
	assert.Equal(suite.T(), "Hero Splendor Plus", consultation.Product.ModelName)
	assert.True(suite.T(), decimal.NewFromInt(50000).Equal(consultation.MonthlyIncome), "income is %s", consultation.MonthlyIncome)
	assert.True(suite.T(), decimal.NewFromInt(9).Equal(consultation.AffordabilityScore), "score is %s", consultation.AffordabilityScore)
	assert.Contains(suite.T(), consultation.Recommendation, "Hero Splendor Plus")
	assert.Len(suite.T(), consultation.RecommendedBanks, 3)
	assert.Len(suite.T(), consultation.Plans, 4)
	assert.Nil(suite.T(), consultation.SelectedPlan)
	assert.False(suite.T(), consultation.Activated)
	assert.Nil(suite.T(), consultation.PlanStart)
	assert.Nil(suite.T(), consultation.PlanEnd)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/loan-products/%d", products[0].ID), consultation.Links.Product)

	r := test.Request(suite.T(), http.MethodGet, consultation.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ConsultationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), consultation.ID, response.Data.ID)
	assert.Equal(suite.T(), "plan_4", response.Data.Plans[3].ID)
}

func (suite *TestSuiteStandard) TestConsultationsCreateFails() {
	createTestLoanProducts(suite.T())

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"No product", `{}`, http.StatusBadRequest},
		{"Unknown product", `{ "loanProductId": 4711 }`, http.StatusNotFound},
		{"Empty body", "", http.StatusBadRequest},
		{"Broken body", `{ "loanProductId": "twelve" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/consultations", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ConsultationResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
			assert.Nil(t, response.Data)
		})
	}
}

// TestConsultationsCatalogueReload verifies that a consultation keeps its
// product when the catalogue is replaced.
func (suite *TestSuiteStandard) TestConsultationsCatalogueReload() {
	products := createTestLoanProducts(suite.T())
	consultation := createTestConsultation(suite.T(), products[0].ID).Data

	require.Nil(suite.T(), models.ReplaceLoanProducts(models.DB, nil))

	r := test.Request(suite.T(), http.MethodGet, consultation.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ConsultationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "HDFC Bank", response.Data.Product.BankName)
}

func (suite *TestSuiteStandard) TestConsultationsGet() {
	products := createTestLoanProducts(suite.T())
	first := createTestConsultation(suite.T(), products[0].ID).Data
	second := createTestConsultation(suite.T(), products[3].ID).Data

	// Consultations of other users are neither listed nor accessible
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/consultations", v1.ConsultationCreate{LoanProductID: products[1].ID}, test.Auth(suite.T(), "someone-else"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var other v1.ConsultationResponse
	test.DecodeResponse(suite.T(), &r, &other)

	r = test.Request(suite.T(), http.MethodGet, other.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/consultations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ConsultationListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), second.ID, response.Data[0].ID)
	assert.Equal(suite.T(), first.ID, response.Data[1].ID)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/consultations?limit=1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)

	for _, limit := range []string{"0", "101", "many"} {
		r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/consultations?limit="+limit, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestConsultationsPlanLifecycle() {
	products := createTestLoanProducts(suite.T())
	consultation := createTestConsultation(suite.T(), products[0].ID).Data

	// No plan is selected yet
	r := test.Request(suite.T(), http.MethodPost, consultation.Links.Activate, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrPlanNotSelected.Error())

	r = test.Request(suite.T(), http.MethodPost, consultation.Links.Select, v1.ConsultationSelect{PlanID: "plan_9"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrPlanUnknown.Error())

	r = test.Request(suite.T(), http.MethodPost, consultation.Links.Select, v1.ConsultationSelect{PlanID: "plan_2"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ConsultationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data.SelectedPlan)
	assert.Equal(suite.T(), 36, response.Data.SelectedPlan.TenureMonths)
	assert.False(suite.T(), response.Data.Activated)

	r = test.Request(suite.T(), http.MethodPost, consultation.Links.Activate, `{ "start": "2024-05" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Activated)
	require.NotNil(suite.T(), response.Data.PlanStart)
	require.NotNil(suite.T(), response.Data.PlanEnd)
	assert.Equal(suite.T(), types.NewMonth(2024, 5), *response.Data.PlanStart)
	assert.Equal(suite.T(), types.NewMonth(2027, 5), *response.Data.PlanEnd)
	assert.Equal(suite.T(), 36, response.Data.MonthsCompleted+response.Data.RemainingMonths)

	// Without a body, the plan starts in the current month
	r = test.Request(suite.T(), http.MethodPost, consultation.Links.Activate, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), types.MonthOf(time.Now().UTC()), *response.Data.PlanStart)
	assert.Equal(suite.T(), 0, response.Data.MonthsCompleted)
	assert.Equal(suite.T(), 36, response.Data.RemainingMonths)

	// Selecting another plan stops tracking
	r = test.Request(suite.T(), http.MethodPost, consultation.Links.Select, v1.ConsultationSelect{PlanID: "plan_1"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Data.Activated)
	assert.Nil(suite.T(), response.Data.PlanStart)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/activities", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var activities v1.ActivityListResponse
	test.DecodeResponse(suite.T(), &r, &activities)
	require.Len(suite.T(), activities.Data, 5)
	assert.Equal(suite.T(), models.ActivitySelectPlan, activities.Data[0].Type)
	assert.Equal(suite.T(), models.ActivityActivatePlan, activities.Data[1].Type)
	assert.Equal(suite.T(), "Activated Plan 2: Medium Term for Hero Splendor Plus from 2024-05 to 2027-05", activities.Data[2].Description)
	assert.Equal(suite.T(), models.ActivityCreateConsultation, activities.Data[4].Type)
}

func (suite *TestSuiteStandard) TestConsultationsDelete() {
	products := createTestLoanProducts(suite.T())
	consultation := createTestConsultation(suite.T(), products[0].ID).Data

	r := test.Request(suite.T(), http.MethodDelete, consultation.Links.Self, "", test.Auth(suite.T(), "someone-else"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, consultation.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, consultation.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
