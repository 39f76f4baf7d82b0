package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultModel is the base model for all resources.
//
// IDs are assigned in ascending order, a higher ID always belongs to
// a resource created later.
type DefaultModel struct {
	ID uint64 `json:"id" gorm:"primaryKey" example:"42"` // ID of the resource
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}

// OwnedBy scopes a query to the resources of one owner.
func OwnedBy(owner string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner = ?", owner)
	}
}
