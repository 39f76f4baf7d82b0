package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// LoanCategory classifies a loan product.
type LoanCategory string

const (
	LoanTwoWheeler   LoanCategory = "two_wheeler"
	LoanFourWheeler  LoanCategory = "four_wheeler"
	LoanElectronics  LoanCategory = "electronics"
	LoanHomeLoan     LoanCategory = "home_loan"
	LoanPersonalLoan LoanCategory = "personal_loan"
	LoanGoldLoan     LoanCategory = "gold_loan"
)

// LoanCategories are all known loan categories.
var LoanCategories = []LoanCategory{
	LoanTwoWheeler,
	LoanFourWheeler,
	LoanElectronics,
	LoanHomeLoan,
	LoanPersonalLoan,
	LoanGoldLoan,
}

// Valid reports if the category is known.
func (c LoanCategory) Valid() bool {
	return slices.Contains(LoanCategories, c)
}

// DisplayName is the human readable name of the category, e.g. "Two Wheeler".
func (c LoanCategory) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "_", " "))
}

// LoanProduct is one bank's offer to finance an item.
//
// Loan products are shared by all owners and replaced as a whole when the
// catalogue is loaded.
type LoanProduct struct {
	DefaultModel
	ItemID       string          `json:"itemId" gorm:"index:idx_loan_product_item" example:"17"`            // Identifier of the financed item, shared by the offers of all banks
	Category     LoanCategory    `json:"category" gorm:"index:idx_loan_product_item" example:"two_wheeler"` // Category of the financed item
	ModelName    string          `json:"modelName" example:"Hero Splendor Plus"`                            // Name of the financed item
	Price        decimal.Decimal `json:"price" gorm:"type:DECIMAL(14,2)" example:"85000"`                   // Price of the item
	EMI          decimal.Decimal `json:"emi" gorm:"type:DECIMAL(12,2)" example:"3466.5"`                    // Monthly installment the bank offers
	BankName     string          `json:"bankName" example:"HDFC Bank"`                                      // Bank making the offer
	InterestRate decimal.Decimal `json:"interestRate" gorm:"type:DECIMAL(5,2)" example:"11.5"`              // Annual interest rate in percent
	TenureMonths int             `json:"tenureMonths" example:"24"`                                         // Duration of the loan
}

func (p *LoanProduct) BeforeSave(_ *gorm.DB) error {
	p.Normalize()
	return p.Validate()
}

// Normalize trims string fields and rounds the amounts.
func (p *LoanProduct) Normalize() {
	p.ItemID = strings.TrimSpace(p.ItemID)
	p.Category = LoanCategory(strings.ToLower(strings.TrimSpace(string(p.Category))))
	p.ModelName = strings.TrimSpace(p.ModelName)
	p.BankName = strings.TrimSpace(p.BankName)
	p.Price = p.Price.Round(2)
	p.EMI = p.EMI.Round(2)
	p.InterestRate = p.InterestRate.Round(2)
}

// Validate returns a ValidationError for the first invalid field.
func (p LoanProduct) Validate() error {
	if !p.Category.Valid() {
		return ErrLoanCategoryInvalid
	}

	if p.ModelName == "" {
		return ErrLoanModelNameMissing
	}

	if p.BankName == "" {
		return ErrLoanBankNameMissing
	}

	if !p.Price.IsPositive() {
		return ErrLoanPriceNotPositive
	}

	if p.EMI.IsNegative() || p.InterestRate.IsNegative() {
		return ErrLoanTermsNegative
	}

	if p.TenureMonths < 0 {
		return ErrLoanTermsNegative
	}

	return nil
}

// ReplaceLoanProducts deletes the whole catalogue and creates the products
// in one transaction. On error, the previous catalogue is kept.
func ReplaceLoanProducts(db *gorm.DB, products []LoanProduct) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&LoanProduct{}).Error
		if err != nil {
			return fmt.Errorf("deleting loan products: %w", err)
		}

		if len(products) == 0 {
			return nil
		}

		return tx.CreateInBatches(&products, 100).Error
	})
}

// SimilarLoanProducts returns the offers for the same item as p, including
// p itself, with the lowest installment first.
func SimilarLoanProducts(db *gorm.DB, p LoanProduct, limit int) ([]LoanProduct, error) {
	var products []LoanProduct
	err := db.
		Where(&LoanProduct{ItemID: p.ItemID, Category: p.Category}, "ItemID", "Category").
		Order("emi ASC, id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}
