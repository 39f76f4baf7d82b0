package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single income or expense of an owner.
type Transaction struct {
	DefaultModel
	Owner       string          `json:"-" gorm:"not null;index:idx_transaction_owner_date,priority:1"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(12,2)" example:"1250.5"`                                      // Amount of the transaction, always positive
	Kind        Kind            `json:"kind" example:"expense" enums:"income,expense"`                                          // Direction of the transaction
	Category    Category        `json:"category" example:"food"`                                                                // Category, must be valid for the kind
	Date        time.Time       `json:"date" gorm:"index:idx_transaction_owner_date,priority:2" example:"2024-03-15T00:00:00Z"` // Calendar date of the transaction
	Description string          `json:"description" example:"Weekly groceries"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave normalizes the transaction and rejects invalid data.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Normalize()
	return t.Validate()
}

// Normalize
//   - trims whitespace from string fields
//   - rounds the amount to two decimal places
//   - sets the date to midnight UTC of its calendar day
func (t *Transaction) Normalize() {
	t.Owner = strings.TrimSpace(t.Owner)
	t.Description = strings.TrimSpace(t.Description)
	t.Kind = Kind(strings.ToLower(strings.TrimSpace(string(t.Kind))))
	t.Category = Category(strings.ToLower(strings.TrimSpace(string(t.Category))))
	t.Amount = t.Amount.Round(2)

	if !t.Date.IsZero() {
		year, month, day := t.Date.Date()
		t.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
}

// Validate returns a ValidationError for the first invalid field.
func (t Transaction) Validate() error {
	if t.Owner == "" {
		return ErrOwnerMissing
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !t.Kind.Valid() {
		return ErrKindInvalid
	}

	if !t.Kind.Allows(t.Category) {
		return ErrCategoryInvalid
	}

	if t.Date.IsZero() {
		return ErrDateMissing
	}

	return nil
}

// Signed returns the amount with a negative sign for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}
