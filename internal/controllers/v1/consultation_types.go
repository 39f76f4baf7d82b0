package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
)

type ConsultationCreate struct {
	LoanProductID uint64 `json:"loanProductId" example:"12" minimum:"1"` // The loan product to assess
}

type ConsultationSelect struct {
	PlanID string `json:"planId" example:"plan_2"` // ID of one of the plans of the consultation
}

type ConsultationActivate struct {
	Start types.Month `json:"start" example:"2024-05"` // First month of the plan. Defaults to the current month.
}

type ConsultationLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/consultations/4"`              // The consultation itself
	Select   string `json:"select" example:"https://example.com/api/v1/consultations/4/select"`     // Select a plan
	Activate string `json:"activate" example:"https://example.com/api/v1/consultations/4/activate"` // Activate the selected plan
	Product  string `json:"product" example:"https://example.com/api/v1/loan-products/12"`          // The loan product in the current catalogue
}

// Consultation is the representation of a Consultation in API v1.
type Consultation struct {
	models.Consultation
	PlanStart       *types.Month      `json:"planStart" swaggertype:"string" example:"2024-05"` // First month of the active plan
	PlanEnd         *types.Month      `json:"planEnd" swaggertype:"string" example:"2026-05"`   // Month after the last installment of the active plan
	MonthsCompleted int               `json:"monthsCompleted" example:"3"`                      // Months of the active plan that have passed
	RemainingMonths int               `json:"remainingMonths" example:"21"`                     // Months of the active plan that are left
	Links           ConsultationLinks `json:"links"`
}

// newConsultation returns the API v1 representation of the resource at asOf
func newConsultation(c *gin.Context, model models.Consultation, asOf time.Time) Consultation {
	s := self(c, "consultations", model.ID)

	consultation := Consultation{
		Consultation:    model,
		MonthsCompleted: model.MonthsCompleted(asOf),
		RemainingMonths: model.RemainingMonths(asOf),
		Links: ConsultationLinks{
			Self:     s,
			Select:   s + "/select",
			Activate: s + "/activate",
			Product:  self(c, "loan-products", model.LoanProductID),
		},
	}

	if model.Activated {
		consultation.PlanStart = &model.PlanStart
		consultation.PlanEnd = &model.PlanEnd
	}

	return consultation
}

type ConsultationListResponse struct {
	Data  []Consultation `json:"data"`                                                          // Consultations, newest first
	Error *string        `json:"error" example:"the limit parameter must be between 1 and 100"` // The error, if any occurred
}

type ConsultationResponse struct {
	Error *string       `json:"error" example:"planId is not a plan of this consultation"` // The error, if any occurred
	Data  *Consultation `json:"data"`                                                      // The consultation
}

type ConsultationQuery struct {
	Limit int `form:"limit" example:"10"` // Maximum number of consultations to return. Defaults to 10.
}
