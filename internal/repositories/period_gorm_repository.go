package repositories

import (
	"fmt"
	"precios/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPeriodRepository is a GORM implementation of PeriodRepository.
type GORMPeriodRepository struct {
	db *gorm.DB
}

// NewGORMPeriodRepository creates a new instance of GORMPeriodRepository.
func NewGORMPeriodRepository(db *gorm.DB) *GORMPeriodRepository {
	return &GORMPeriodRepository{
		db: db,
	}
}

// GetAll retrieves all periods from the database.
func (r *GORMPeriodRepository) GetAll() ([]models.Period, error) {
	var periods []models.Period
	if err := r.db.Find(&periods).Error; err != nil {
		return nil, fmt.Errorf("failed to get all periods: %w", err)
	}
	return periods, nil
}

// GetByID retrieves a single period by its ID from the database.
func (r *GORMPeriodRepository) GetByID(id string) (*models.Period, error) {
	var period models.Period
	if err := r.db.First(&period, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("period with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get period by ID %s: %w", id, err)
	}
	return &period, nil
}

// Create creates a new period in the database.
func (r *GORMPeriodRepository) Create(period *models.Period) error {
	if period.ID == "" {
		period.ID = uuid.New().String()
	}
	if err := r.db.Create(period).Error; err != nil {
		return fmt.Errorf("failed to create period: %w", err)
	}
	return nil
}

// Update persists all fields of an existing period.
func (r *GORMPeriodRepository) Update(period *models.Period) error {
	res := r.db.Save(period)
	if res.Error != nil {
		return fmt.Errorf("failed to update period: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("period with ID %s %w", period.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a period by its ID; its price rows cascade.
func (r *GORMPeriodRepository) Delete(id string) error {
	res := r.db.Delete(&models.Period{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete period: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("period with ID %s %w", id, ErrNotFound)
	}
	return nil
}
