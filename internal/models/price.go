package models

import "time"

// Price is a single (product, store, period) amount observation.
// A Price may not exist without its three parents; the CASCADE constraints
// make the database remove dependent prices when a parent row is deleted.
type Price struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Amount    float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);not null;index"`
	Product   *Product  `json:"product,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	StoreID   string    `json:"storeId" gorm:"type:varchar(36);not null;index"`
	Store     *Store    `json:"store,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	PeriodID  string    `json:"periodId" gorm:"type:varchar(36);not null;index"`
	Period    *Period   `json:"period,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShortestPrice is the per-product minimum produced by the aggregator:
// the lowest amount seen for a product and the store that offered it.
type ShortestPrice struct {
	ProductID string  `json:"productId"`
	Amount    float64 `json:"amount"`
	StoreID   string  `json:"storeId"`
}
