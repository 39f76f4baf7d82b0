package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterLoanProductRoutes registers the routes for the loan product
// catalogue with the RouterGroup that is passed.
func (co Controller) RegisterLoanProductRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLoanProducts)
		r.GET("", GetLoanProducts)
	}

	// Loan product with ID
	{
		r.OPTIONS("/:id", OptionsLoanProductDetail)
		r.GET("/:id", GetLoanProduct)
		r.OPTIONS("/:id/plans", OptionsLoanProductDetail)
		r.GET("/:id/plans", co.GetLoanProductPlans)
	}
}

// getLoanProduct returns the loan product with the id from the path.
func getLoanProduct(c *gin.Context) (models.LoanProduct, error) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return models.LoanProduct{}, err
	}

	var product models.LoanProduct
	err = models.DB.WithContext(c.Request.Context()).First(&product, id).Error
	if err != nil {
		return models.LoanProduct{}, err
	}

	return product, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Loan Products
// @Success		204
// @Router			/v1/loan-products [options]
func OptionsLoanProducts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Loan Products
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the loan product"
// @Router			/v1/loan-products/{id} [options]
// @Router			/v1/loan-products/{id}/plans [options]
func OptionsLoanProductDetail(c *gin.Context) {
	_, err := getLoanProduct(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get loan products
// @Description	Returns the loan product catalogue, ordered by category, item and installment
// @Tags			Loan Products
// @Produce		json
// @Success		200	{object}	LoanProductListResponse
// @Failure		400	{object}	LoanProductListResponse
// @Failure		500	{object}	LoanProductListResponse
// @Router			/v1/loan-products [get]
// @Param			category	query	string	false	"Filter by category"
// @Param			itemId		query	string	false	"Filter by item"
// @Param			bankName	query	string	false	"Filter by bank"
// @Param			offset		query	uint	false	"The offset of the first loan product returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of loan products to return. Defaults to 50."
func GetLoanProducts(c *gin.Context) {
	var filter LoanProductQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, LoanProductListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if slices.Contains(setFields, "Category") && !models.LoanCategory(filter.Category).Valid() {
		e := errLoanCategoryInvalid.Error()
		c.JSON(http.StatusBadRequest, LoanProductListResponse{
			Error: &e,
		})
		return
	}

	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	if limit < 1 || limit > maxLimit {
		e := errLimitInvalid.Error()
		c.JSON(http.StatusBadRequest, LoanProductListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.WithContext(c.Request.Context()).Model(&models.LoanProduct{})

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
		c.JSON(status(err), LoanProductListResponse{
			Error: &e,
		})
		return
	}

	var products []models.LoanProduct
	err = q.Order("category ASC, item_id ASC, emi ASC, id ASC").Offset(int(filter.Offset)).Limit(limit).Find(&products).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoanProductListResponse{
			Error: &e,
		})
		return
	}

	data := make([]LoanProduct, 0, len(products))
	for _, product := range products {
		data = append(data, newLoanProduct(c, product))
	}

	c.JSON(http.StatusOK, LoanProductListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get loan product
// @Description	Returns a specific loan product
// @Tags			Loan Products
// @Produce		json
// @Success		200	{object}	LoanProductResponse
// @Failure		400	{object}	LoanProductResponse
// @Failure		404	{object}	LoanProductResponse
// @Failure		500	{object}	LoanProductResponse
// @Param			id	path		uint64	true	"ID of the loan product"
// @Router			/v1/loan-products/{id} [get]
func GetLoanProduct(c *gin.Context) {
	product, err := getLoanProduct(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoanProductResponse{
			Error: &e,
		})
		return
	}

	data := newLoanProduct(c, product)
	c.JSON(http.StatusOK, LoanProductResponse{Data: &data})
}

// @Summary		Get financing plans
// @Description	Assesses the loan product against the average monthly income of the last six months and returns the financing plans. Nothing is stored.
// @Tags			Loan Products
// @Produce		json
// @Success		200	{object}	LoanOfferResponse
// @Failure		400	{object}	LoanOfferResponse
// @Failure		404	{object}	LoanOfferResponse
// @Failure		500	{object}	LoanOfferResponse
// @Param			id	path		uint64	true	"ID of the loan product"
// @Router			/v1/loan-products/{id}/plans [get]
func (co Controller) GetLoanProductPlans(c *gin.Context) {
	product, err := getLoanProduct(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoanOfferResponse{Error: &e})
		return
	}

	offer, err := co.offer(c, product)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoanOfferResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, LoanOfferResponse{Data: &LoanOffer{
		Product:       newLoanProduct(c, product),
		MonthlyIncome: offer.MonthlyIncome,
		Assessment:    offer.Assessment,
		Plans:         offer.Plans,
	}})
}

// offer assesses the product for the owner of the request as of now.
func (co Controller) offer(c *gin.Context, product models.LoanProduct) (ledger.Offer, error) {
	ctx := c.Request.Context()

	alternatives, err := models.SimilarLoanProducts(models.DB.WithContext(ctx), product, ledger.RecommendedBanks)
	if err != nil {
		return ledger.Offer{}, err
	}

	return co.Engine.Offer(ctx, auth.Owner(c), product, alternatives, time.Now().UTC())
}
