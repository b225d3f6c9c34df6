package models

import "time"

// Product represents an item whose prices are tracked across stores.
// Timestamps are maintained by GORM; there is no DeletedAt on purpose so
// deletes are hard deletes and cascade to dependent Price rows.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Description *string   `json:"description" gorm:"type:text"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	Image       *string   `json:"image" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
