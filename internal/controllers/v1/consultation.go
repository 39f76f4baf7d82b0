package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"golang.org/x/exp/slices"
)

// defaultConsultationLimit is the number of consultations returned if no limit is requested.
const defaultConsultationLimit = 10

// RegisterConsultationRoutes registers the routes for consultations with
// the RouterGroup that is passed.
func (co Controller) RegisterConsultationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsConsultations)
		r.GET("", GetConsultations)
		r.POST("", co.CreateConsultation)
	}

	// Consultation with ID
	{
		r.OPTIONS("/:id", OptionsConsultationDetail)
		r.GET("/:id", GetConsultation)
		r.DELETE("/:id", co.DeleteConsultation)
		r.OPTIONS("/:id/select", OptionsConsultationAction)
		r.POST("/:id/select", co.SelectPlan)
		r.OPTIONS("/:id/activate", OptionsConsultationAction)
		r.POST("/:id/activate", co.ActivatePlan)
	}
}

// getConsultation returns the consultation with the id from the path if it
// belongs to the owner of the request.
func getConsultation(c *gin.Context) (models.Consultation, error) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return models.Consultation{}, err
	}

	var consultation models.Consultation
	err = models.DB.WithContext(c.Request.Context()).Scopes(models.OwnedBy(auth.Owner(c))).First(&consultation, id).Error
	if err != nil {
		return models.Consultation{}, err
	}

	return consultation, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Consultations
// @Success		204
// @Router			/v1/consultations [options]
func OptionsConsultations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Consultations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the consultation"
// @Router			/v1/consultations/{id} [options]
func OptionsConsultationDetail(c *gin.Context) {
	_, err := getConsultation(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Consultations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the consultation"
// @Router			/v1/consultations/{id}/select [options]
// @Router			/v1/consultations/{id}/activate [options]
func OptionsConsultationAction(c *gin.Context) {
	_, err := getConsultation(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Get consultations
// @Description	Returns the latest consultations, newest first
// @Tags			Consultations
// @Produce		json
// @Success		200		{object}	ConsultationListResponse
// @Failure		400		{object}	ConsultationListResponse
// @Failure		500		{object}	ConsultationListResponse
// @Param			limit	query		int	false	"Maximum number of consultations to return. Defaults to 10."
// @Router			/v1/consultations [get]
func GetConsultations(c *gin.Context) {
	var query ConsultationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ConsultationListResponse{Error: &e})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)
	limit := defaultConsultationLimit
	if slices.Contains(setFields, "Limit") {
		limit = query.Limit
	}

	if limit < 1 || limit > maxLimit {
		e := errLimitInvalid.Error()
		c.JSON(http.StatusBadRequest, ConsultationListResponse{Error: &e})
		return
	}

	consultations, err := models.Consultations(models.DB.WithContext(c.Request.Context()), auth.Owner(c), limit)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationListResponse{Error: &e})
		return
	}

	now := time.Now().UTC()
	data := make([]Consultation, 0, len(consultations))
	for _, consultation := range consultations {
		data = append(data, newConsultation(c, consultation, now))
	}

	c.JSON(http.StatusOK, ConsultationListResponse{Data: data})
}

// @Summary		Get consultation
// @Description	Returns a specific consultation
// @Tags			Consultations
// @Produce		json
// @Success		200	{object}	ConsultationResponse
// @Failure		400	{object}	ConsultationResponse
// @Failure		404	{object}	ConsultationResponse
// @Failure		500	{object}	ConsultationResponse
// @Param			id	path		uint64	true	"ID of the consultation"
// @Router			/v1/consultations/{id} [get]
func GetConsultation(c *gin.Context) {
	consultation, err := getConsultation(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	data := newConsultation(c, consultation, time.Now().UTC())
	c.JSON(http.StatusOK, ConsultationResponse{Data: &data})
}

// @Summary		Create consultation
// @Description	Assesses a loan product against the average monthly income of the last six months and stores the result with the financing plans
// @Tags			Consultations
// @Accept			json
// @Produce		json
// @Success		201				{object}	ConsultationResponse
// @Failure		400				{object}	ConsultationResponse
// @Failure		404				{object}	ConsultationResponse
// @Failure		500				{object}	ConsultationResponse
// @Param			consultation	body		ConsultationCreate	true	"Consultation"
// @Router			/v1/consultations [post]
func (co Controller) CreateConsultation(c *gin.Context) {
	var create ConsultationCreate
	if err := httputil.BindData(c, &create); err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	if create.LoanProductID == 0 {
		e := models.ErrConsultationProductMissing.Error()
		c.JSON(http.StatusBadRequest, ConsultationResponse{Error: &e})
		return
	}

	var product models.LoanProduct
	err := models.DB.WithContext(c.Request.Context()).First(&product, create.LoanProductID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	offer, err := co.offer(c, product)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	owner := auth.Owner(c)
	consultation := offer.Consultation(owner, product)
	err = models.DB.WithContext(c.Request.Context()).Create(&consultation).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	co.written(c, owner, models.ActivityCreateConsultation, consultation.ID, "Assessed %s from %s with an affordability score of %s", product.ModelName, product.BankName, consultation.AffordabilityScore.StringFixed(1))

	data := newConsultation(c, consultation, time.Now().UTC())
	c.JSON(http.StatusCreated, ConsultationResponse{Data: &data})
}

// @Summary		Select plan
// @Description	Selects one of the financing plans of the consultation. Selecting a different plan deactivates an active plan.
// @Tags			Consultations
// @Accept			json
// @Produce		json
// @Success		200		{object}	ConsultationResponse
// @Failure		400		{object}	ConsultationResponse
// @Failure		404		{object}	ConsultationResponse
// @Failure		500		{object}	ConsultationResponse
// @Param			id		path		uint64				true	"ID of the consultation"
// @Param			plan	body		ConsultationSelect	true	"Plan"
// @Router			/v1/consultations/{id}/select [post]
func (co Controller) SelectPlan(c *gin.Context) {
	consultation, err := getConsultation(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	var selection ConsultationSelect
	if err := httputil.BindData(c, &selection); err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	if err := consultation.Select(selection.PlanID); err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	err = models.DB.WithContext(c.Request.Context()).Save(&consultation).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	co.written(c, consultation.Owner, models.ActivitySelectPlan, consultation.ID, "Selected %s for %s", consultation.SelectedPlan.Name, consultation.Product.ModelName)

	data := newConsultation(c, consultation, time.Now().UTC())
	c.JSON(http.StatusOK, ConsultationResponse{Data: &data})
}

// @Summary		Activate plan
// @Description	Starts tracking the selected plan. The body is optional, the plan starts in the current month by default. Activating an active plan restarts it.
// @Tags			Consultations
// @Accept			json
// @Produce		json
// @Success		200			{object}	ConsultationResponse
// @Failure		400			{object}	ConsultationResponse
// @Failure		404			{object}	ConsultationResponse
// @Failure		500			{object}	ConsultationResponse
// @Param			id			path		uint64					true	"ID of the consultation"
// @Param			activation	body		ConsultationActivate	false	"Activation"
// @Router			/v1/consultations/{id}/activate [post]
func (co Controller) ActivatePlan(c *gin.Context) {
	consultation, err := getConsultation(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	var activation ConsultationActivate
	if err := httputil.BindData(c, &activation); err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	now := time.Now().UTC()
	if activation.Start.IsZero() {
		activation.Start = types.MonthOf(now)
	}

	if err := consultation.Activate(activation.Start); err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	err = models.DB.WithContext(c.Request.Context()).Save(&consultation).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsultationResponse{Error: &e})
		return
	}

	co.written(c, consultation.Owner, models.ActivityActivatePlan, consultation.ID, "Activated %s for %s from %s to %s", consultation.SelectedPlan.Name, consultation.Product.ModelName, consultation.PlanStart, consultation.PlanEnd)

	data := newConsultation(c, consultation, now)
	c.JSON(http.StatusOK, ConsultationResponse{Data: &data})
}

// @Summary		Delete consultation
// @Description	Deletes a consultation
// @Tags			Consultations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the consultation"
// @Router			/v1/consultations/{id} [delete]
func (co Controller) DeleteConsultation(c *gin.Context) {
	consultation, err := getConsultation(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.WithContext(c.Request.Context()).Delete(&consultation).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	co.written(c, consultation.Owner, models.ActivityDeleteConsultation, consultation.ID, "Deleted the consultation for %s", consultation.Product.ModelName)

	c.Status(http.StatusNoContent)
}
