package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

const (
	// DownPaymentPercent is the share of the price every plan pays upfront.
	DownPaymentPercent = 20

	// IncomeWindow is how far back AverageMonthlyIncome looks.
	IncomeWindow = 180 * 24 * time.Hour

	// RecommendedBanks is the number of offers in an assessment.
	RecommendedBanks = 3
)

// planTerm is the financing term of one plan.
type planTerm struct {
	name   string
	rate   decimal.Decimal
	tenure int
}

var planTerms = []planTerm{
	{"Standard Term", decimal.RequireFromString("12.5"), 24},
	{"Medium Term", decimal.RequireFromString("13.5"), 36},
	{"Extended Term", decimal.RequireFromString("14.5"), 48},
	{"Long Term", decimal.RequireFromString("15"), 60},
}

var (
	monthlyRateDivisor = decimal.NewFromInt(12 * 100)
	one                = decimal.NewFromInt(1)
)

// EMI is the monthly installment that repays principal at annualRate
// percent in months equal installments, rounded to two decimal places.
func EMI(principal, annualRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return decimal.Zero
	}

	n := decimal.NewFromInt(int64(months))
	if !annualRate.IsPositive() {
		return principal.DivRound(n, 2)
	}

	r := annualRate.DivRound(monthlyRateDivisor, 16)

	// (1+r)^n is exact, r has at most 16 decimal places
	f, _ := one.Add(r).PowInt32(int32(months))

	return principal.Mul(r).Mul(f).DivRound(f.Sub(one), 16).Round(2)
}

// FinancialPlans returns the plans to finance price for an owner earning
// income per month, shortest tenure first.
func FinancialPlans(price, income decimal.Decimal) []models.FinancialPlan {
	downPayment := price.Mul(decimal.NewFromInt(DownPaymentPercent)).Div(hundred).Round(2)
	loan := price.Sub(downPayment)

	plans := make([]models.FinancialPlan, 0, len(planTerms))
	for i, term := range planTerms {
		emi := EMI(loan, term.rate, term.tenure)
		total := emi.Mul(decimal.NewFromInt(int64(term.tenure)))
		remaining := income.Sub(emi)

		plans = append(plans, models.FinancialPlan{
			ID:                 fmt.Sprintf("plan_%d", i+1),
			Name:               fmt.Sprintf("Plan %d: %s", i+1, term.name),
			TenureMonths:       term.tenure,
			InterestRate:       term.rate,
			ProductCost:        price,
			DownPayment:        downPayment,
			DownPaymentPercent: DownPaymentPercent,
			LoanAmount:         loan,
			EMI:                emi,
			TotalRepayment:     total,
			TotalInterest:      total.Sub(loan),
			RemainingSalary:    remaining,
			AffordabilityScore: planScore(remaining, income),
		})
	}

	return plans
}

// planScore rates the salary left after the installment.
func planScore(remaining, income decimal.Decimal) decimal.Decimal {
	switch {
	case remaining.GreaterThan(income.Mul(decimal.RequireFromString("0.7"))):
		return decimal.NewFromInt(9)
	case remaining.GreaterThan(income.Mul(decimal.RequireFromString("0.6"))):
		return decimal.NewFromInt(7)
	default:
		return decimal.NewFromInt(5)
	}
}

// Assessment rates how affordable the installment of a loan product is.
type Assessment struct {
	Score            decimal.Decimal     `json:"score" example:"7.5"`
	EMIRatio         decimal.NullDecimal `json:"emiRatio" swaggertype:"primitive,string" example:"24.3"` // Installment in percent of the income, null without income
	Risk             string              `json:"risk" example:"Good: the installment is manageable, keep an eye on your expenses."`
	Recommendation   string              `json:"recommendation"`
	RecommendedBanks []models.BankOffer  `json:"recommendedBanks"` // Cheapest offers for the same item
}

type risk struct {
	maxRatio decimal.Decimal
	score    decimal.Decimal
	text     string
}

var risks = []risk{
	{decimal.NewFromInt(20), decimal.NewFromInt(9), "Excellent: the installment is very comfortable for your income."},
	{decimal.NewFromInt(30), decimal.RequireFromString("7.5"), "Good: the installment is manageable, keep an eye on your expenses."},
	{decimal.NewFromInt(40), decimal.NewFromInt(5), "Caution: the installment may strain your finances. Consider a longer tenure."},
}

var highRisk = risk{score: decimal.NewFromInt(2), text: "High risk: the installment exceeds 40% of your income. Not advisable."}

// Assess rates the installment of product against income. alternatives are
// the offers for the same item, the cheapest become the recommended banks.
func Assess(product models.LoanProduct, income decimal.Decimal, alternatives []models.LoanProduct) Assessment {
	a := Assessment{RecommendedBanks: make([]models.BankOffer, 0, RecommendedBanks)}

	r := highRisk
	if income.IsPositive() {
		ratio := product.EMI.Div(income).Mul(hundred)
		a.EMIRatio = decimal.NewNullDecimal(ratio.Round(1))

		for _, candidate := range risks {
			if ratio.LessThanOrEqual(candidate.maxRatio) {
				r = candidate
				break
			}
		}
	}

	a.Score = r.score
	a.Risk = r.text
	a.Recommendation = fmt.Sprintf("Based on your income of %s per month, %s has an affordability score of %s/10.", income.StringFixed(2), product.ModelName, a.Score.StringFixed(1))

	for _, p := range alternatives {
		if len(a.RecommendedBanks) == RecommendedBanks {
			break
		}

		a.RecommendedBanks = append(a.RecommendedBanks, models.BankOffer{
			LoanProductID: p.ID,
			Bank:          p.BankName,
			EMI:           p.EMI,
			InterestRate:  p.InterestRate,
		})
	}

	return a
}

// AverageMonthlyIncome averages the income of the owner over the months
// with income in the IncomeWindow up to asOf. It is zero without income.
func (e *Engine) AverageMonthlyIncome(ctx context.Context, owner string, asOf time.Time) (decimal.Decimal, error) {
	filter := Filter{Kind: models.KindIncome, From: asOf.Add(-IncomeWindow), Until: asOf}

	perMonth := make(map[types.Period]decimal.Decimal)
	for t, err := range e.store.Transactions(ctx, owner, filter) {
		if err != nil {
			return decimal.Zero, err
		}

		period := types.MonthOf(t.Date).Period()
		perMonth[period] = perMonth[period].Add(t.Amount)
	}

	if len(perMonth) == 0 {
		return decimal.Zero, nil
	}

	sum := decimal.Zero
	for _, amount := range perMonth {
		sum = sum.Add(amount)
	}

	return sum.DivRound(decimal.NewFromInt(int64(len(perMonth))), 2), nil
}

// Offer is what financing a loan product means for an owner.
type Offer struct {
	MonthlyIncome decimal.Decimal
	Assessment    Assessment
	Plans         []models.FinancialPlan
}

// Offer assesses product against the average monthly income of the owner
// at asOf and computes the financing plans.
func (e *Engine) Offer(ctx context.Context, owner string, product models.LoanProduct, alternatives []models.LoanProduct, asOf time.Time) (Offer, error) {
	income, err := e.AverageMonthlyIncome(ctx, owner, asOf)
	if err != nil {
		return Offer{}, err
	}

	return Offer{
		MonthlyIncome: income,
		Assessment:    Assess(product, income, alternatives),
		Plans:         FinancialPlans(product.Price, income),
	}, nil
}

// Consultation returns a new consultation of the owner that records the
// offer for product. No plan is selected.
func (o Offer) Consultation(owner string, product models.LoanProduct) models.Consultation {
	return models.Consultation{
		Owner:              owner,
		LoanProductID:      product.ID,
		Product:            product,
		MonthlyIncome:      o.MonthlyIncome,
		AffordabilityScore: o.Assessment.Score,
		EMIRatio:           o.Assessment.EMIRatio,
		RiskAssessment:     o.Assessment.Risk,
		Recommendation:     o.Assessment.Recommendation,
		RecommendedBanks:   o.Assessment.RecommendedBanks,
		Plans:              o.Plans,
	}
}
