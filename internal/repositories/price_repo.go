package repositories

import (
	"precios/internal/models"
)

// PriceRepository defines the interface for price data access. Read methods
// resolve the product, store and period relations on the returned rows.
type PriceRepository interface {
	GetAll() ([]models.Price, error)
	GetByID(id string) (*models.Price, error)
	// GetByProductID returns the prices of one product, cheapest first.
	GetByProductID(productID string) ([]models.Price, error)
	Create(price *models.Price) error
	Update(price *models.Price) error
	Delete(id string) error
}
