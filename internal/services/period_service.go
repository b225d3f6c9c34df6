package services

import (
	"precios/internal/models"
	"precios/internal/repositories"
)

// CreatePeriodInput carries the fields accepted when creating a period.
type CreatePeriodInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	Image       *string `json:"image"`
}

// UpdatePeriodInput carries the optional fields of a partial period update.
type UpdatePeriodInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	Image       *string `json:"image"`
}

// PeriodService handles business logic related to periods.
type PeriodService struct {
	repo repositories.PeriodRepository
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(repo repositories.PeriodRepository) *PeriodService {
	return &PeriodService{
		repo: repo,
	}
}

// GetAllPeriods retrieves all periods.
func (s *PeriodService) GetAllPeriods() ([]models.Period, error) {
	return s.repo.GetAll()
}

// GetPeriodByID retrieves a single period by its ID.
func (s *PeriodService) GetPeriodByID(id string) (*models.Period, error) {
	return s.repo.GetByID(id)
}

// CreatePeriod persists a new period. isActive defaults to true when not
// supplied.
func (s *PeriodService) CreatePeriod(input CreatePeriodInput) (*models.Period, error) {
	period := &models.Period{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
		Image:       input.Image,
	}
	if input.IsActive != nil {
		period.IsActive = *input.IsActive
	}
	if err := s.repo.Create(period); err != nil {
		return nil, err
	}
	return period, nil
}

// UpdatePeriod applies a partial update: only supplied fields change.
func (s *PeriodService) UpdatePeriod(id string, input UpdatePeriodInput) (*models.Period, error) {
	period, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		period.Name = *input.Name
	}
	if input.Description != nil {
		period.Description = input.Description
	}
	if input.IsActive != nil {
		period.IsActive = *input.IsActive
	}
	if input.Image != nil {
		period.Image = input.Image
	}
	if err := s.repo.Update(period); err != nil {
		return nil, err
	}
	return period, nil
}

// DeletePeriod deletes a period by its ID; dependent prices cascade.
func (s *PeriodService) DeletePeriod(id string) error {
	return s.repo.Delete(id)
}
