// Package v1 implements the JSON API for transactions, budgets, the
// summaries computed from them and loan consultations.
package v1

import (
	"context"
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/cache"
	"github.com/pocketledger/backend/internal/events"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/currency"
)

// Controller holds the collaborators of the API handlers.
type Controller struct {
	Engine    *ledger.Engine
	Cache     cache.Cache
	Publisher events.Publisher
	Currency  currency.Unit
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)

	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterSummaryRoutes(r)
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterActivityRoutes(r.Group("/activities"))
	co.RegisterExportRoutes(r.Group("/export"))
	co.RegisterLoanProductRoutes(r.Group("/loan-products"))
	co.RegisterConsultationRoutes(r.Group("/consultations"))
}

// written is called after every successful write of an owner.
//
// It drops the cached summaries of the owner, records the activity and
// publishes it. Failures are logged, the write itself already succeeded.
func (co Controller) written(c *gin.Context, owner string, activityType models.ActivityType, resourceID uint64, format string, args ...any) {
	ctx := c.Request.Context()
	cache.Invalidate(ctx, co.Cache, owner)

	activity, err := models.RecordActivity(models.DB.WithContext(ctx), owner, activityType, resourceID, format, args...)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("recording activity")
		return
	}

	// Publishing must not be canceled with the request
	err = co.Publisher.Publish(context.WithoutCancel(ctx), activity)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Uint64("activity", activity.ID).Msg("publishing activity")
	}
}

// self returns the URL of a resource.
func self(c *gin.Context, collection string, id uint64) string {
	return fmt.Sprintf("%s/v1/%s/%d", c.GetString(string(models.DBContextURL)), collection, id)
}
