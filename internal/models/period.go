package models

import "time"

// Period is a named time window (e.g. a sales season) a Price applies to.
type Period struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	Image       *string   `json:"image" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
