package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrValidation matches every ValidationError with errors.Is.
	ErrValidation = errors.New("validation failed")
)

// ValidationError is returned when data is rejected before it is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var (
	ErrOwnerMissing           = ValidationError{"owner", "must be set"}
	ErrAmountNotPositive      = ValidationError{"amount", "must be greater than zero"}
	ErrKindInvalid            = ValidationError{"kind", "must be one of 'income', 'expense'"}
	ErrCategoryInvalid        = ValidationError{"category", "is not valid for the transaction kind"}
	ErrDateMissing            = ValidationError{"date", "must be set"}
	ErrBudgetCategoryInvalid  = ValidationError{"category", "must be an expense category"}
	ErrBudgetLimitNotPositive = ValidationError{"limitAmount", "must be greater than zero"}
	ErrBudgetPeriodInvalid    = ValidationError{"month", "must be between 1 and 12 with a year between 1 and 9999"}
	ErrBudgetNotUnique        = ValidationError{"category", "already has a budget for this month"}

	ErrLoanCategoryInvalid        = ValidationError{"category", "must be one of 'two_wheeler', 'four_wheeler', 'electronics', 'home_loan', 'personal_loan', 'gold_loan'"}
	ErrLoanModelNameMissing       = ValidationError{"modelName", "must be set"}
	ErrLoanBankNameMissing        = ValidationError{"bankName", "must be set"}
	ErrLoanPriceNotPositive       = ValidationError{"price", "must be greater than zero"}
	ErrLoanTermsNegative          = ValidationError{"emi", "interest rate and tenure must not be negative"}
	ErrConsultationProductMissing = ValidationError{"loanProductId", "must be set"}
	ErrPlanUnknown                = ValidationError{"planId", "is not a plan of this consultation"}
	ErrPlanNotSelected            = ValidationError{"planId", "no plan is selected for this consultation"}
	ErrPlanStartMissing           = ValidationError{"start", "must be set"}
)
