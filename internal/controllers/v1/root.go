package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transactions"`      // URL of transaction list endpoint
	Budgets        string `json:"budgets" example:"https://example.com/api/v1/budgets"`                // URL of budget list endpoint
	Dashboard      string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`            // URL of the dashboard summary
	BudgetProgress string `json:"budgetProgress" example:"https://example.com/api/v1/budget-progress"` // URL of the budget progress
	Breakdown      string `json:"breakdown" example:"https://example.com/api/v1/breakdown"`            // URL of the category breakdown
	Trends         string `json:"trends" example:"https://example.com/api/v1/trends"`                  // URL of the monthly trends
	Months         string `json:"months" example:"https://example.com/api/v1/months"`                  // URL of the month list
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`          // URL of the category list
	Activities     string `json:"activities" example:"https://example.com/api/v1/activities"`          // URL of the activity log
	Export         string `json:"export" example:"https://example.com/api/v1/export"`                  // URL of the XLSX export
	LoanProducts   string `json:"loanProducts" example:"https://example.com/api/v1/loan-products"`     // URL of the loan product catalogue
	Consultations  string `json:"consultations" example:"https://example.com/api/v1/consultations"`    // URL of the consultation list
}

// GetRoot returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	RootResponse
//	@Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Transactions:   url + "/transactions",
			Budgets:        url + "/budgets",
			Dashboard:      url + "/dashboard",
			BudgetProgress: url + "/budget-progress",
			Breakdown:      url + "/breakdown",
			Trends:         url + "/trends",
			Months:         url + "/months",
			Categories:     url + "/categories",
			Activities:     url + "/activities",
			Export:         url + "/export",
			LoanProducts:   url + "/loan-products",
			Consultations:  url + "/consultations",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
