package models

import (
	"fmt"
	"strings"

	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending limit of an owner for one expense category in one month.
type Budget struct {
	DefaultModel
	Owner       string          `json:"-" gorm:"not null;uniqueIndex:idx_budget_period,priority:1"`
	Category    Category        `json:"category" gorm:"uniqueIndex:idx_budget_period,priority:2" example:"food"` // Expense category the limit applies to
	Year        int             `json:"year" gorm:"uniqueIndex:idx_budget_period,priority:3" example:"2024"`     // Year of the budget period, 1 to 9999
	Month       int             `json:"month" gorm:"uniqueIndex:idx_budget_period,priority:4" example:"3"`       // Month of the budget period, 1 to 12
	LimitAmount decimal.Decimal `json:"limitAmount" gorm:"type:DECIMAL(12,2)" example:"5000"`                    // Spending limit, always positive
}

// Period returns the budget period.
func (b Budget) Period() types.Period {
	return types.Period{Year: b.Year, Month: b.Month}
}

// BeforeSave normalizes the budget and rejects invalid data.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Normalize()
	return b.Validate()
}

// Normalize trims string fields and rounds the limit to two decimal places.
func (b *Budget) Normalize() {
	b.Owner = strings.TrimSpace(b.Owner)
	b.Category = Category(strings.ToLower(strings.TrimSpace(string(b.Category))))
	b.LimitAmount = b.LimitAmount.Round(2)
}

// Validate returns a ValidationError for the first invalid field.
func (b Budget) Validate() error {
	if b.Owner == "" {
		return ErrOwnerMissing
	}

	if !KindExpense.Allows(b.Category) {
		return ErrBudgetCategoryInvalid
	}

	if !b.LimitAmount.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	if err := b.Period().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBudgetPeriodInvalid, err)
	}

	return nil
}
