package models

import (
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinancialPlan is one way to finance a loan product.
type FinancialPlan struct {
	ID                 string          `json:"planId" example:"plan_2"`
	Name               string          `json:"name" example:"Plan 2: Medium Term"`
	TenureMonths       int             `json:"tenureMonths" example:"36"`
	InterestRate       decimal.Decimal `json:"interestRate" example:"13.5"` // Annual interest rate in percent
	ProductCost        decimal.Decimal `json:"productCost" example:"85000"`
	DownPayment        decimal.Decimal `json:"downPayment" example:"17000"`
	DownPaymentPercent int             `json:"downPaymentPercent" example:"20"`
	LoanAmount         decimal.Decimal `json:"loanAmount" example:"68000"`
	EMI                decimal.Decimal `json:"emi" example:"2307.6"`
	TotalRepayment     decimal.Decimal `json:"totalRepayment" example:"83073.6"`
	TotalInterest      decimal.Decimal `json:"totalInterest" example:"15073.6"`
	RemainingSalary    decimal.Decimal `json:"remainingSalary" example:"42692.4"` // Income left after the installment, may be negative
	AffordabilityScore decimal.Decimal `json:"affordabilityScore" example:"9"`    // 5, 7 or 9
}

// BankOffer is an alternative offer for the same item.
type BankOffer struct {
	LoanProductID uint64          `json:"loanProductId" example:"12"`
	Bank          string          `json:"bank" example:"Axis Bank"`
	EMI           decimal.Decimal `json:"emi" example:"3390"`
	InterestRate  decimal.Decimal `json:"interestRate" example:"10.75"`
}

// Consultation is the affordability assessment of a loan product for an
// owner, together with the plan the owner chose.
//
// The product is copied into the consultation so that reloading the
// catalogue does not change it.
type Consultation struct {
	DefaultModel
	Owner              string              `json:"-" gorm:"not null;index"`
	LoanProductID      uint64              `json:"loanProductId"`
	Product            LoanProduct         `json:"product" gorm:"serializer:json"`
	MonthlyIncome      decimal.Decimal     `json:"monthlyIncome" gorm:"type:DECIMAL(12,2)"`
	AffordabilityScore decimal.Decimal     `json:"affordabilityScore" gorm:"type:DECIMAL(3,1)"`
	EMIRatio           decimal.NullDecimal `json:"emiRatio" gorm:"type:DECIMAL(12,1)"`
	RiskAssessment     string              `json:"riskAssessment"`
	Recommendation     string              `json:"recommendation"`
	RecommendedBanks   []BankOffer         `json:"recommendedBanks" gorm:"serializer:json"`
	Plans              []FinancialPlan     `json:"plans" gorm:"serializer:json"`
	SelectedPlan       *FinancialPlan      `json:"selectedPlan" gorm:"serializer:json"`
	Activated          bool                `json:"activated"`
	PlanStart          types.Month         `json:"-"`
	PlanEnd            types.Month         `json:"-"` // Month after the last installment, zero while not activated
}

// BeforeSave rejects consultations without owner or product.
func (c *Consultation) BeforeSave(_ *gorm.DB) error {
	c.Owner = strings.TrimSpace(c.Owner)
	if c.Owner == "" {
		return ErrOwnerMissing
	}

	if c.LoanProductID == 0 {
		return ErrConsultationProductMissing
	}

	return nil
}

// Plan returns the plan with the id.
func (c Consultation) Plan(id string) (FinancialPlan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}

	return FinancialPlan{}, false
}

// Select chooses one of the plans of the consultation.
//
// Selecting a different plan deactivates an active plan.
func (c *Consultation) Select(planID string) error {
	plan, ok := c.Plan(planID)
	if !ok {
		return ErrPlanUnknown
	}

	if c.SelectedPlan != nil && c.SelectedPlan.ID != plan.ID {
		c.Activated = false
		c.PlanStart = types.Month{}
		c.PlanEnd = types.Month{}
	}

	c.SelectedPlan = &plan
	return nil
}

// Activate starts tracking the selected plan in month start. Activating an
// active plan again restarts it.
func (c *Consultation) Activate(start types.Month) error {
	if c.SelectedPlan == nil {
		return ErrPlanNotSelected
	}

	if start.IsZero() {
		return ErrPlanStartMissing
	}

	c.Activated = true
	c.PlanStart = start
	c.PlanEnd = start.AddDate(0, c.SelectedPlan.TenureMonths)
	return nil
}

// MonthsCompleted is the number of months of the active plan that passed
// before asOf. It is zero for inactive plans and never exceeds the tenure.
func (c Consultation) MonthsCompleted(asOf time.Time) int {
	if !c.Activated || c.PlanStart.IsZero() {
		return 0
	}

	month := types.MonthOf(asOf)
	if month.Before(c.PlanStart) {
		return 0
	}

	if month.After(c.PlanEnd) {
		return c.PlanStart.MonthsUntil(c.PlanEnd)
	}

	return c.PlanStart.MonthsUntil(month)
}

// RemainingMonths is the number of months of the active plan left at asOf.
func (c Consultation) RemainingMonths(asOf time.Time) int {
	if !c.Activated || c.PlanEnd.IsZero() {
		return 0
	}

	month := types.MonthOf(asOf)
	if month.After(c.PlanEnd) {
		return 0
	}

	if month.Before(c.PlanStart) {
		month = c.PlanStart
	}

	return month.MonthsUntil(c.PlanEnd)
}

// Consultations returns the latest consultations of the owner, newest first.
func Consultations(db *gorm.DB, owner string, limit int) ([]Consultation, error) {
	var consultations []Consultation
	err := db.Scopes(OwnedBy(owner)).Order("id DESC").Limit(limit).Find(&consultations).Error
	if err != nil {
		return nil, err
	}

	return consultations, nil
}
