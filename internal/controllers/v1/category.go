package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
)

type Category struct {
	Category models.Category `json:"category" example:"food"` // The category as used in transactions and budgets
	Name     string          `json:"name" example:"Food"`     // Human readable name
}

type Categories struct {
	Income  []Category `json:"income"`  // Categories for income transactions
	Expense []Category `json:"expense"` // Categories for expense transactions and budgets
}

type CategoryListResponse struct {
	Data Categories `json:"data"` // The valid categories per kind
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the categories that are valid for each kind of transaction
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{
		Data: Categories{
			Income:  newCategories(models.KindIncome),
			Expense: newCategories(models.KindExpense),
		},
	})
}

func newCategories(kind models.Kind) []Category {
	categories := make([]Category, 0, len(models.Categories[kind]))
	for _, category := range models.Categories[kind] {
		categories = append(categories, Category{Category: category, Name: category.DisplayName()})
	}

	return categories
}
