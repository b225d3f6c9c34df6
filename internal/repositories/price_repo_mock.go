package repositories

import (
	"fmt"
	"sort"
	"sync"

	"precios/internal/models"

	"github.com/google/uuid"
)

// MockPriceRepository is an in-memory implementation of PriceRepository.
// Prices are kept in a slice so GetAll returns them in insertion order,
// matching the sequential scan the aggregator runs over a real table.
type MockPriceRepository struct {
	prices []models.Price
	mu     sync.RWMutex
}

// NewMockPriceRepository creates a new instance of MockPriceRepository.
func NewMockPriceRepository() *MockPriceRepository {
	return &MockPriceRepository{}
}

// GetAll returns all prices in insertion order.
func (r *MockPriceRepository) GetAll() ([]models.Price, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	priceList := make([]models.Price, len(r.prices))
	copy(priceList, r.prices)
	return priceList, nil
}

// GetByID returns a price by its ID.
func (r *MockPriceRepository) GetByID(id string) (*models.Price, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.prices {
		if p.ID == id {
			price := p
			return &price, nil
		}
	}
	return nil, fmt.Errorf("price with ID %s %w", id, ErrNotFound)
}

// GetByProductID returns the prices of one product, cheapest first.
func (r *MockPriceRepository) GetByProductID(productID string) ([]models.Price, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var priceList []models.Price
	for _, p := range r.prices {
		if p.ProductID == productID {
			priceList = append(priceList, p)
		}
	}
	sort.SliceStable(priceList, func(i, j int) bool {
		return priceList[i].Amount < priceList[j].Amount
	})
	return priceList, nil
}

// Create adds a new price.
func (r *MockPriceRepository) Create(price *models.Price) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if price.ID == "" {
		price.ID = uuid.New().String()
	}
	r.prices = append(r.prices, *price)
	return nil
}

// Update modifies an existing price.
func (r *MockPriceRepository) Update(price *models.Price) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.prices {
		if r.prices[i].ID == price.ID {
			r.prices[i] = *price
			return nil
		}
	}
	return fmt.Errorf("price with ID %s %w", price.ID, ErrNotFound)
}

// Delete removes a price by its ID.
func (r *MockPriceRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.prices {
		if r.prices[i].ID == id {
			r.prices = append(r.prices[:i], r.prices[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("price with ID %s %w", id, ErrNotFound)
}
