package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/auth"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// defaultActivityLimit is the number of activities returned if no limit is requested.
const defaultActivityLimit = 20

type ActivityQuery struct {
	Limit int `form:"limit" example:"20"` // Maximum number of activities to return. Defaults to 20.
}

type ActivityListResponse struct {
	Data  []models.Activity `json:"data"`                                                          // Activities, newest first
	Error *string           `json:"error" example:"the limit parameter must be between 1 and 100"` // The error, if any occurred
}

// RegisterActivityRoutes registers the routes for activities with
// the RouterGroup that is passed.
func RegisterActivityRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsActivities)
	r.GET("", GetActivities)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Activities
// @Success		204
// @Router			/v1/activities [options]
func OptionsActivities(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get activities
// @Description	Returns the latest changes to transactions and budgets
// @Tags			Activities
// @Produce		json
// @Success		200		{object}	ActivityListResponse
// @Failure		400		{object}	ActivityListResponse
// @Failure		500		{object}	ActivityListResponse
// @Param			limit	query		int	false	"Maximum number of activities to return. Defaults to 20."
// @Router			/v1/activities [get]
func GetActivities(c *gin.Context) {
	var query ActivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ActivityListResponse{Error: &e})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)
	limit := defaultActivityLimit
	if slices.Contains(setFields, "Limit") {
		limit = query.Limit
	}

	if limit < 1 || limit > maxLimit {
		e := errLimitInvalid.Error()
		c.JSON(http.StatusBadRequest, ActivityListResponse{Error: &e})
		return
	}

	activities, err := models.Activities(models.DB.WithContext(c.Request.Context()), auth.Owner(c), limit)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActivityListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ActivityListResponse{Data: activities})
}
