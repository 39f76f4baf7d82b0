package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type LoanProductLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/loan-products/12"`        // The loan product itself
	Plans string `json:"plans" example:"https://example.com/api/v1/loan-products/12/plans"` // Financing plans for the requesting owner
}

// LoanProduct is the representation of a LoanProduct in API v1.
type LoanProduct struct {
	models.LoanProduct
	CategoryName string           `json:"categoryName" example:"Two Wheeler"` // Human readable name of the category
	Links        LoanProductLinks `json:"links"`
}

// newLoanProduct returns the API v1 representation of the resource
func newLoanProduct(c *gin.Context, model models.LoanProduct) LoanProduct {
	s := self(c, "loan-products", model.ID)

	return LoanProduct{
		LoanProduct:  model,
		CategoryName: model.Category.DisplayName(),
		Links: LoanProductLinks{
			Self:  s,
			Plans: s + "/plans",
		},
	}
}

type LoanProductListResponse struct {
	Data       []LoanProduct `json:"data"`                                                       // List of loan products
	Error      *string       `json:"error" example:"the query string contains unparseable data"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                 // Pagination information
}

type LoanProductResponse struct {
	Error *string      `json:"error" example:"there is no loan product matching your query"` // The error, if any occurred
	Data  *LoanProduct `json:"data"`                                                         // The loan product
}

type LoanProductQueryFilter struct {
	Category string `form:"category"`                   // Category of the financed item
	ItemID   string `form:"itemId"`                     // Identifier of the financed item
	BankName string `form:"bankName"`                   // Bank making the offer
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first loan product returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of loan products to return. Defaults to 50.
}

// model returns the fields that are filtered on directly
func (f LoanProductQueryFilter) model() models.LoanProduct {
	return models.LoanProduct{
		Category: models.LoanCategory(f.Category),
		ItemID:   f.ItemID,
		BankName: f.BankName,
	}
}

// LoanOffer is what financing a loan product would mean for an owner.
type LoanOffer struct {
	Product       LoanProduct            `json:"product"`
	MonthlyIncome decimal.Decimal        `json:"monthlyIncome" example:"45000"` // Average monthly income of the last six months
	Assessment    ledger.Assessment      `json:"assessment"`
	Plans         []models.FinancialPlan `json:"plans"` // Financing plans, shortest tenure first
}

type LoanOfferResponse struct {
	Error *string    `json:"error" example:"there is no loan product matching your query"` // The error, if any occurred
	Data  *LoanOffer `json:"data"`                                                         // The offer
}
