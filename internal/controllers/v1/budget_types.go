package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type BudgetEditable struct {
	Category    models.Category `json:"category" example:"food"`                                     // The expense category the limit applies to
	Year        int             `json:"year" example:"2024" minimum:"1" maximum:"9999"`              // Year of the budget period
	Month       int             `json:"month" example:"3" minimum:"1" maximum:"12"`                  // Month of the budget period
	LimitAmount decimal.Decimal `json:"limitAmount" example:"5000" minimum:"0.01" multipleOf:"0.01"` // The spending limit
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model(owner string) models.Budget {
	return models.Budget{
		Owner:       owner,
		Category:    editable.Category,
		Year:        editable.Year,
		Month:       editable.Month,
		LimitAmount: editable.LimitAmount,
	}
}

// apply sets the fields of the budget that are named in fields.
func (editable BudgetEditable) apply(budget *models.Budget, fields []string) {
	if slices.Contains(fields, "Category") {
		budget.Category = editable.Category
	}

	if slices.Contains(fields, "Year") {
		budget.Year = editable.Year
	}

	if slices.Contains(fields, "Month") {
		budget.Month = editable.Month
	}

	if slices.Contains(fields, "LimitAmount") {
		budget.LimitAmount = editable.LimitAmount
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/3"`                             // The budget itself
	Progress string `json:"progress" example:"https://example.com/api/v1/budget-progress?year=2024&month=3"` // Progress of all budgets in the same period
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category:    model.Category,
			Year:        model.Year,
			Month:       model.Month,
			LimitAmount: model.LimitAmount,
		},
		Links: BudgetLinks{
			Self:     self(c, "budgets", model.ID),
			Progress: progressURL(url, model.Year, model.Month),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                       // List of budgets
	Error      *string     `json:"error" example:"the query string contains unparseable data"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                 // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                               // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"category already has a budget for this month"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                         // The Budget data, if creation was successful
}

type BudgetQueryFilter struct {
	Category string `form:"category"`                   // Category of the budgets
	Year     int    `form:"year"`                       // Year of the budget period
	Month    int    `form:"month"`                      // Month of the budget period
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

// model returns the fields that are filtered on directly
func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Category: models.Category(f.Category),
		Year:     f.Year,
		Month:    f.Month,
	}
}
