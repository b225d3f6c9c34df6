package repositories

import (
	"precios/internal/models"
)

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	GetAll() ([]models.Store, error)
	GetByID(id string) (*models.Store, error)
	Create(store *models.Store) error
	Update(store *models.Store) error
	Delete(id string) error
}
