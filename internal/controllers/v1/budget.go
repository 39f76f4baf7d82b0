package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", GetBudgets)
		r.POST("", co.CreateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

// getBudget returns the budget with the id from the path if it
// belongs to the owner of the request.
func getBudget(c *gin.Context) (models.Budget, error) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return models.Budget{}, err
	}

	var budget models.Budget
	err = models.DB.WithContext(c.Request.Context()).Scopes(models.OwnedBy(auth.Owner(c))).First(&budget, id).Error
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the budget"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	_, err := getBudget(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		uint64	true	"ID of the budget"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	budget, err := getBudget(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Get budgets
// @Description	Returns a list of budgets, ordered by period and category
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			category	query	string	false	"Filter by category"
// @Param			year		query	int		false	"Filter by year"
// @Param			month		query	int		false	"Filter by month"
// @Param			offset		query	uint	false	"The offset of the first Budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Budgets to return. Defaults to 50."
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	if limit < 1 || limit > maxLimit {
		e := errLimitInvalid.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.WithContext(c.Request.Context()).
		Model(&models.Budget{}).
		Scopes(models.OwnedBy(auth.Owner(c)))

	// gorm ignores the Where statement if no field is set
	if len(queryFields) > 0 {
		model := filter.model()
		q = q.Where(&model, queryFields...)
	}

	// The query is used twice, for the count and the page
	q = q.Session(&gorm.Session{})

	var total int64
	err := q.Count(&total).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	var budgets []models.Budget
	err = q.Order("year DESC, month DESC, category ASC").Offset(int(filter.Offset)).Limit(limit).Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create budgets
// @Description	Creates budgets from the list of submitted budget data. The response code is the highest response code number that a single budget creation would have caused. If it is not equal to 201, at least one budget has an error.
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	owner := auth.Owner(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model(owner)
		err := models.DB.WithContext(c.Request.Context()).Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		co.written(c, owner, models.ActivityCreateBudget, budget.ID, "Created budget of %s for %s in %s", budget.LimitAmount.StringFixed(2), budget.Category, budget.Period())

		data := newBudget(c, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		uint64			true	"ID of the budget"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	budget, err := getBudget(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var update BudgetEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	update.apply(&budget, updateFields)
	err = models.DB.WithContext(c.Request.Context()).Save(&budget).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	co.written(c, budget.Owner, models.ActivityUpdateBudget, budget.ID, "Updated budget of %s for %s in %s", budget.LimitAmount.StringFixed(2), budget.Category, budget.Period())

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the budget"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	budget, err := getBudget(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.WithContext(c.Request.Context()).Delete(&budget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	co.written(c, budget.Owner, models.ActivityDeleteBudget, budget.ID, "Deleted budget for %s in %s", budget.Category, budget.Period())

	c.Status(http.StatusNoContent)
}
