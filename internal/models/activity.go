package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ActivityType names the write operation that created an Activity.
type ActivityType string

const (
	ActivityAddTransaction    ActivityType = "add_transaction"
	ActivityUpdateTransaction ActivityType = "update_transaction"
	ActivityDeleteTransaction ActivityType = "delete_transaction"
	ActivityCreateBudget      ActivityType = "create_budget"
	ActivityUpdateBudget      ActivityType = "update_budget"
	ActivityDeleteBudget      ActivityType = "delete_budget"

	ActivityCreateConsultation ActivityType = "create_consultation"
	ActivitySelectPlan         ActivityType = "select_plan"
	ActivityActivatePlan       ActivityType = "activate_plan"
	ActivityDeleteConsultation ActivityType = "delete_consultation"
)

// Activity is an entry in the activity log of an owner.
type Activity struct {
	ID          uint64       `json:"id" gorm:"primaryKey" example:"7"`
	Owner       string       `json:"owner" gorm:"not null;index"`
	Type        ActivityType `json:"type" example:"add_transaction"`
	Description string       `json:"description" example:"Added expense of 250.00 for food"`
	ResourceID  uint64       `json:"resourceId" example:"42"` // ID of the transaction, budget or consultation
	CreatedAt   time.Time    `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"`
}

// AfterFind sets the timestamp to UTC.
func (a *Activity) AfterFind(_ *gorm.DB) error {
	a.CreatedAt = a.CreatedAt.In(time.UTC)
	return nil
}

// RecordActivity writes a new activity for the owner.
func RecordActivity(db *gorm.DB, owner string, activityType ActivityType, resourceID uint64, format string, args ...any) (Activity, error) {
	a := Activity{
		Owner:       owner,
		Type:        activityType,
		ResourceID:  resourceID,
		Description: fmt.Sprintf(format, args...),
	}

	err := db.Create(&a).Error
	if err != nil {
		return Activity{}, fmt.Errorf("recording activity: %w", err)
	}

	return a, nil
}

// Activities returns the latest activities of the owner, newest first.
func Activities(db *gorm.DB, owner string, limit int) ([]Activity, error) {
	var activities []Activity
	err := db.Scopes(OwnedBy(owner)).Order("id DESC").Limit(limit).Find(&activities).Error
	if err != nil {
		return nil, err
	}

	return activities, nil
}
