package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// getTransaction returns the transaction with the id from the path if it
// belongs to the owner of the request.
func getTransaction(c *gin.Context) (models.Transaction, error) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return models.Transaction{}, err
	}

	var transaction models.Transaction
	err = models.DB.WithContext(c.Request.Context()).Scopes(models.OwnedBy(auth.Owner(c))).First(&transaction, id).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	_, err := getTransaction(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		uint64	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			kind		query	string	false	"Filter by kind"
// @Param			category	query	string	false	"Filter by category"
// @Param			fromDate	query	string	false	"Transactions at and after this date, YYYY-MM-DD"
// @Param			untilDate	query	string	false	"Transactions before and at this date, YYYY-MM-DD"
// @Param			description	query	string	false	"Glob pattern the description must match, e.g. *coffee*"
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func (co Controller) GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter
	if err := c.ShouldBindQuery(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)

	filter, err := query.filter()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = query.Limit
	}

	if limit < 1 || limit > maxLimit {
		e := errLimitInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &e,
		})
		return
	}

	// The sequence is consumed completely to count all matches
	data := make([]Transaction, 0)
	var total int64
	for transaction, err := range co.Engine.Transactions(c.Request.Context(), auth.Owner(c), filter) {
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TransactionListResponse{
				Error: &e,
			})
			return
		}

		if total >= int64(query.Offset) && len(data) < limit {
			data = append(data, newTransaction(c, transaction))
		}
		total++
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: query.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create transactions
// @Description	Creates transactions from the list of submitted transaction data. The response code is the highest response code number that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	owner := auth.Owner(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		transaction := editable.model(owner)
		err := models.DB.WithContext(c.Request.Context()).Create(&transaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		co.written(c, owner, models.ActivityAddTransaction, transaction.ID, "Added %s of %s for %s", transaction.Kind, transaction.Amount.StringFixed(2), transaction.Category)

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		uint64				true	"ID of the transaction"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update TransactionEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	update.apply(&transaction, updateFields)
	err = models.DB.WithContext(c.Request.Context()).Save(&transaction).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	co.written(c, transaction.Owner, models.ActivityUpdateTransaction, transaction.ID, "Updated %s of %s for %s", transaction.Kind, transaction.Amount.StringFixed(2), transaction.Category)

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	transaction, err := getTransaction(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.WithContext(c.Request.Context()).Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	co.written(c, transaction.Owner, models.ActivityDeleteTransaction, transaction.ID, "Deleted %s of %s for %s", transaction.Kind, transaction.Amount.StringFixed(2), transaction.Category)

	c.Status(http.StatusNoContent)
}
