package services

import (
	"precios/internal/models"
	"precios/internal/repositories"
)

// CreateStoreInput carries the fields accepted when creating a store.
type CreateStoreInput struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Direction *string `json:"direction"`
	Image     *string `json:"image"`
	IsActive  *bool   `json:"isActive"`
}

// UpdateStoreInput carries the optional fields of a partial store update.
type UpdateStoreInput struct {
	Name      *string `json:"name" validate:"omitempty,max=100"`
	Direction *string `json:"direction"`
	Image     *string `json:"image"`
	IsActive  *bool   `json:"isActive"`
}

// StoreService handles business logic related to stores.
type StoreService struct {
	repo repositories.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo repositories.StoreRepository) *StoreService {
	return &StoreService{
		repo: repo,
	}
}

// GetAllStores retrieves all stores.
func (s *StoreService) GetAllStores() ([]models.Store, error) {
	return s.repo.GetAll()
}

// GetStoreByID retrieves a single store by its ID.
func (s *StoreService) GetStoreByID(id string) (*models.Store, error) {
	return s.repo.GetByID(id)
}

// CreateStore persists a new store. isActive defaults to true when not
// supplied.
func (s *StoreService) CreateStore(input CreateStoreInput) (*models.Store, error) {
	store := &models.Store{
		Name:      input.Name,
		Direction: input.Direction,
		Image:     input.Image,
		IsActive:  true,
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}
	if err := s.repo.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}

// UpdateStore applies a partial update: only supplied fields change.
func (s *StoreService) UpdateStore(id string, input UpdateStoreInput) (*models.Store, error) {
	store, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.Direction != nil {
		store.Direction = input.Direction
	}
	if input.Image != nil {
		store.Image = input.Image
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}
	if err := s.repo.Update(store); err != nil {
		return nil, err
	}
	return store, nil
}

// DeleteStore deletes a store by its ID; dependent prices cascade.
func (s *StoreService) DeleteStore(id string) error {
	return s.repo.Delete(id)
}
