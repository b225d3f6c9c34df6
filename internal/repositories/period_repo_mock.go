package repositories

import (
	"fmt"
	"sync"

	"precios/internal/models"

	"github.com/google/uuid"
)

// MockPeriodRepository is an in-memory implementation of PeriodRepository.
type MockPeriodRepository struct {
	periods map[string]models.Period
	mu      sync.RWMutex
}

// NewMockPeriodRepository creates a new instance of MockPeriodRepository.
func NewMockPeriodRepository() *MockPeriodRepository {
	return &MockPeriodRepository{
		periods: make(map[string]models.Period),
	}
}

// GetAll returns all periods.
func (r *MockPeriodRepository) GetAll() ([]models.Period, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	periodList := make([]models.Period, 0, len(r.periods))
	for _, p := range r.periods {
		periodList = append(periodList, p)
	}
	return periodList, nil
}

// GetByID returns a period by its ID.
func (r *MockPeriodRepository) GetByID(id string) (*models.Period, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	period, ok := r.periods[id]
	if !ok {
		return nil, fmt.Errorf("period with ID %s %w", id, ErrNotFound)
	}
	return &period, nil
}

// Create adds a new period.
func (r *MockPeriodRepository) Create(period *models.Period) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if period.ID == "" {
		period.ID = uuid.New().String()
	}
	r.periods[period.ID] = *period
	return nil
}

// Update modifies an existing period.
func (r *MockPeriodRepository) Update(period *models.Period) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.periods[period.ID]
	if !ok {
		return fmt.Errorf("period with ID %s %w", period.ID, ErrNotFound)
	}
	r.periods[period.ID] = *period
	return nil
}

// Delete removes a period by its ID.
func (r *MockPeriodRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.periods[id]
	if !ok {
		return fmt.Errorf("period with ID %s %w", id, ErrNotFound)
	}
	delete(r.periods, id)
	return nil
}
