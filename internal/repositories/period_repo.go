package repositories

import (
	"precios/internal/models"
)

// PeriodRepository defines the interface for period data access.
type PeriodRepository interface {
	GetAll() ([]models.Period, error)
	GetByID(id string) (*models.Period, error)
	Create(period *models.Period) error
	Update(period *models.Period) error
	Delete(id string) error
}
