package repositories

import (
	"fmt"
	"precios/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMPriceRepository is a GORM implementation of PriceRepository.
type GORMPriceRepository struct {
	db *gorm.DB
}

// NewGORMPriceRepository creates a new instance of GORMPriceRepository.
func NewGORMPriceRepository(db *gorm.DB) *GORMPriceRepository {
	return &GORMPriceRepository{
		db: db,
	}
}

// GetAll retrieves all prices with their relations resolved.
func (r *GORMPriceRepository) GetAll() ([]models.Price, error) {
	var prices []models.Price
	err := r.db.Preload("Product").Preload("Store").Preload("Period").Find(&prices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all prices: %w", err)
	}
	return prices, nil
}

// GetByID retrieves a single price by its ID with relations resolved.
func (r *GORMPriceRepository) GetByID(id string) (*models.Price, error) {
	var price models.Price
	err := r.db.Preload("Product").Preload("Store").Preload("Period").
		First(&price, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("price with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get price by ID %s: %w", id, err)
	}
	return &price, nil
}

// GetByProductID retrieves the prices of a product ordered by amount
// ascending, relations resolved. The result may be empty.
func (r *GORMPriceRepository) GetByProductID(productID string) ([]models.Price, error) {
	var prices []models.Price
	err := r.db.Preload("Product").Preload("Store").Preload("Period").
		Where("product_id = ?", productID).
		Order("amount asc").
		Find(&prices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get prices of product %s: %w", productID, err)
	}
	return prices, nil
}

// Create inserts a new price. Associations are omitted from the write so a
// parent deleted between validation and this insert fails on the foreign
// key instead of being silently re-created.
func (r *GORMPriceRepository) Create(price *models.Price) error {
	if price.ID == "" {
		price.ID = uuid.New().String()
	}
	if err := r.db.Omit(clause.Associations).Create(price).Error; err != nil {
		return fmt.Errorf("failed to create price: %w", err)
	}
	return nil
}

// Update persists all fields of an existing price, leaving the parent rows
// untouched.
func (r *GORMPriceRepository) Update(price *models.Price) error {
	res := r.db.Omit(clause.Associations).Save(price)
	if res.Error != nil {
		return fmt.Errorf("failed to update price: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("price with ID %s %w", price.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a price by its ID.
func (r *GORMPriceRepository) Delete(id string) error {
	res := r.db.Delete(&models.Price{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete price: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("price with ID %s %w", id, ErrNotFound)
	}
	return nil
}
