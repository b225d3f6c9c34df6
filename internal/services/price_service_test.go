package services_test

import (
	"fmt"
	"testing"

	"precios/internal/models"
	"precios/internal/repositories"
	"precios/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPriceRepository is a mock implementation of repositories.PriceRepository
type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) GetAll() ([]models.Price, error) {
	args := m.Called()
	return args.Get(0).([]models.Price), args.Error(1)
}

func (m *MockPriceRepository) GetByID(id string) (*models.Price, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Price), args.Error(1)
}

func (m *MockPriceRepository) GetByProductID(productID string) ([]models.Price, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Price), args.Error(1)
}

func (m *MockPriceRepository) Create(price *models.Price) error {
	args := m.Called(price)
	return args.Error(0)
}

func (m *MockPriceRepository) Update(price *models.Price) error {
	args := m.Called(price)
	return args.Error(0)
}

func (m *MockPriceRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockStoreRepository is a mock implementation of repositories.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) GetAll() ([]models.Store, error) {
	args := m.Called()
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *MockStoreRepository) GetByID(id string) (*models.Store, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) Create(store *models.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(store *models.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPeriodRepository is a mock implementation of repositories.PeriodRepository
type MockPeriodRepository struct {
	mock.Mock
}

func (m *MockPeriodRepository) GetAll() ([]models.Period, error) {
	args := m.Called()
	return args.Get(0).([]models.Period), args.Error(1)
}

func (m *MockPeriodRepository) GetByID(id string) (*models.Period, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Period), args.Error(1)
}

func (m *MockPeriodRepository) Create(period *models.Period) error {
	args := m.Called(period)
	return args.Error(0)
}

func (m *MockPeriodRepository) Update(period *models.Period) error {
	args := m.Called(period)
	return args.Error(0)
}

func (m *MockPeriodRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func notFoundErr(kind, id string) error {
	return fmt.Errorf("%s with ID %s %w", kind, id, repositories.ErrNotFound)
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func newPriceService(priceRepo *MockPriceRepository, productRepo *MockProductRepository, storeRepo *MockStoreRepository, periodRepo *MockPeriodRepository) *services.PriceService {
	return services.NewPriceService(priceRepo, productRepo, storeRepo, periodRepo, nil)
}

func TestPriceService_FindShortestPrices(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	service := newPriceService(mockPriceRepo, new(MockProductRepository), new(MockStoreRepository), new(MockPeriodRepository))

	// P1 has a tie at 8 between S2 and S3; the later row must win.
	prices := []models.Price{
		{ID: "pr-1", ProductID: "P1", StoreID: "S1", Amount: 10},
		{ID: "pr-2", ProductID: "P1", StoreID: "S2", Amount: 8},
		{ID: "pr-3", ProductID: "P1", StoreID: "S3", Amount: 8},
		{ID: "pr-4", ProductID: "P2", StoreID: "S1", Amount: 5},
	}
	mockPriceRepo.On("GetAll").Return(prices, nil).Once()

	shortest, err := service.FindShortestPrices()
	assert.NoError(t, err)
	assert.Len(t, shortest, 2)

	byProduct := make(map[string]models.ShortestPrice)
	for _, entry := range shortest {
		byProduct[entry.ProductID] = entry
	}
	assert.Equal(t, models.ShortestPrice{ProductID: "P1", Amount: 8, StoreID: "S3"}, byProduct["P1"])
	assert.Equal(t, models.ShortestPrice{ProductID: "P2", Amount: 5, StoreID: "S1"}, byProduct["P2"])
	mockPriceRepo.AssertExpectations(t)
}

func TestPriceService_FindShortestPricesSkipsRowsWithoutProduct(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	service := newPriceService(mockPriceRepo, new(MockProductRepository), new(MockStoreRepository), new(MockPeriodRepository))

	prices := []models.Price{
		{ID: "pr-1", ProductID: "", StoreID: "S1", Amount: 1},
		{ID: "pr-2", ProductID: "P1", StoreID: "S2", Amount: 3},
	}
	mockPriceRepo.On("GetAll").Return(prices, nil).Once()

	shortest, err := service.FindShortestPrices()
	assert.NoError(t, err)
	assert.Len(t, shortest, 1)
	assert.Equal(t, "P1", shortest[0].ProductID)
	mockPriceRepo.AssertExpectations(t)
}

func TestPriceService_CreatePrice(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	mockPeriodRepo := new(MockPeriodRepository)
	service := newPriceService(mockPriceRepo, mockProductRepo, mockStoreRepo, mockPeriodRepo)

	product := &models.Product{ID: "P1", Name: "Milk"}
	store := &models.Store{ID: "S1", Name: "Grocery Mart"}
	period := &models.Period{ID: "T1", Name: "Summer 2025"}

	mockProductRepo.On("GetByID", "P1").Return(product, nil).Once()
	mockStoreRepo.On("GetByID", "S1").Return(store, nil).Once()
	mockPeriodRepo.On("GetByID", "T1").Return(period, nil).Once()
	mockPriceRepo.On("Create", mock.AnythingOfType("*models.Price")).Return(nil).Once()

	price, err := service.CreatePrice(services.CreatePriceInput{
		Amount:    floatPtr(19.99),
		ProductID: "P1",
		StoreID:   "S1",
		PeriodID:  "T1",
	})

	assert.NoError(t, err)
	assert.Equal(t, 19.99, price.Amount)
	assert.Equal(t, "P1", price.ProductID)
	assert.Equal(t, product, price.Product)
	assert.Equal(t, store, price.Store)
	assert.Equal(t, period, price.Period)
	mockPriceRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
	mockStoreRepo.AssertExpectations(t)
	mockPeriodRepo.AssertExpectations(t)
}

func TestPriceService_CreatePriceStopsAtFirstMissingRelation(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	mockPeriodRepo := new(MockPeriodRepository)
	service := newPriceService(mockPriceRepo, mockProductRepo, mockStoreRepo, mockPeriodRepo)

	// Product resolves but the store does not: the error must name the
	// store and the period must never be looked up.
	mockProductRepo.On("GetByID", "P1").Return(&models.Product{ID: "P1"}, nil).Once()
	mockStoreRepo.On("GetByID", "S-missing").Return(nil, notFoundErr("store", "S-missing")).Once()

	price, err := service.CreatePrice(services.CreatePriceInput{
		Amount:    floatPtr(5),
		ProductID: "P1",
		StoreID:   "S-missing",
		PeriodID:  "T1",
	})

	assert.Error(t, err)
	assert.Nil(t, price)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Contains(t, err.Error(), "store with ID S-missing")
	mockPeriodRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockPriceRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockProductRepo.AssertExpectations(t)
	mockStoreRepo.AssertExpectations(t)
}

func TestPriceService_UpdatePriceAmountOnlySkipsRelationChecks(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	mockPeriodRepo := new(MockPeriodRepository)
	service := newPriceService(mockPriceRepo, mockProductRepo, mockStoreRepo, mockPeriodRepo)

	existing := &models.Price{ID: "pr-1", Amount: 10, ProductID: "P1", StoreID: "S1", PeriodID: "T1"}
	mockPriceRepo.On("GetByID", "pr-1").Return(existing, nil).Once()
	mockPriceRepo.On("Update", mock.AnythingOfType("*models.Price")).Return(nil).Once()

	price, err := service.UpdatePrice("pr-1", services.UpdatePriceInput{Amount: floatPtr(7.5)})

	assert.NoError(t, err)
	assert.Equal(t, 7.5, price.Amount)
	assert.Equal(t, "P1", price.ProductID)
	mockProductRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockStoreRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockPeriodRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockPriceRepo.AssertExpectations(t)
}

func TestPriceService_UpdatePriceStoreOnlyRevalidatesAllRelations(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	mockPeriodRepo := new(MockPeriodRepository)
	service := newPriceService(mockPriceRepo, mockProductRepo, mockStoreRepo, mockPeriodRepo)

	existing := &models.Price{ID: "pr-1", Amount: 10, ProductID: "P1", StoreID: "S1", PeriodID: "T1"}
	newStore := &models.Store{ID: "S2", Name: "Corner Shop"}

	mockPriceRepo.On("GetByID", "pr-1").Return(existing, nil).Once()
	// The unchanged product and period ids are re-checked too.
	mockProductRepo.On("GetByID", "P1").Return(&models.Product{ID: "P1"}, nil).Once()
	mockStoreRepo.On("GetByID", "S2").Return(newStore, nil).Once()
	mockPeriodRepo.On("GetByID", "T1").Return(&models.Period{ID: "T1"}, nil).Once()
	mockPriceRepo.On("Update", mock.AnythingOfType("*models.Price")).Return(nil).Once()

	price, err := service.UpdatePrice("pr-1", services.UpdatePriceInput{StoreID: strPtr("S2")})

	assert.NoError(t, err)
	assert.Equal(t, "S2", price.StoreID)
	assert.Equal(t, newStore, price.Store)
	assert.Equal(t, 10.0, price.Amount)
	mockPriceRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
	mockStoreRepo.AssertExpectations(t)
	mockPeriodRepo.AssertExpectations(t)
}

func TestPriceService_UpdatePriceFailsWhenRelationDisappeared(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	mockProductRepo := new(MockProductRepository)
	mockStoreRepo := new(MockStoreRepository)
	mockPeriodRepo := new(MockPeriodRepository)
	service := newPriceService(mockPriceRepo, mockProductRepo, mockStoreRepo, mockPeriodRepo)

	// The price still references P1 but the product was deleted after the
	// price was created.
	existing := &models.Price{ID: "pr-1", Amount: 10, ProductID: "P1", StoreID: "S1", PeriodID: "T1"}
	mockPriceRepo.On("GetByID", "pr-1").Return(existing, nil).Once()
	mockProductRepo.On("GetByID", "P1").Return(nil, notFoundErr("product", "P1")).Once()

	price, err := service.UpdatePrice("pr-1", services.UpdatePriceInput{StoreID: strPtr("S2")})

	assert.Error(t, err)
	assert.Nil(t, price)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Contains(t, err.Error(), "product with ID P1")
	mockPriceRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestPriceService_UpdatePriceNotFound(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	service := newPriceService(mockPriceRepo, new(MockProductRepository), new(MockStoreRepository), new(MockPeriodRepository))

	mockPriceRepo.On("GetByID", "pr-99").Return(nil, notFoundErr("price", "pr-99")).Once()

	price, err := service.UpdatePrice("pr-99", services.UpdatePriceInput{Amount: floatPtr(1)})
	assert.Error(t, err)
	assert.Nil(t, price)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockPriceRepo.AssertExpectations(t)
}

func TestPriceService_FindPricesOfProduct(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	mockProductRepo := new(MockProductRepository)
	service := newPriceService(mockPriceRepo, mockProductRepo, new(MockStoreRepository), new(MockPeriodRepository))

	product := &models.Product{ID: "P1", Name: "Milk"}
	sorted := []models.Price{
		{ID: "pr-2", ProductID: "P1", Amount: 4},
		{ID: "pr-1", ProductID: "P1", Amount: 9},
	}
	mockProductRepo.On("GetByID", "P1").Return(product, nil).Once()
	mockPriceRepo.On("GetByProductID", "P1").Return(sorted, nil).Once()

	result, err := service.FindPricesOfProduct("P1")
	assert.NoError(t, err)
	assert.Equal(t, product, result.Product)
	assert.Equal(t, sorted, result.Prices)
	mockPriceRepo.AssertExpectations(t)
	mockProductRepo.AssertExpectations(t)
}

func TestPriceService_FindPricesOfProductUnknownProduct(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	mockProductRepo := new(MockProductRepository)
	service := newPriceService(mockPriceRepo, mockProductRepo, new(MockStoreRepository), new(MockPeriodRepository))

	mockProductRepo.On("GetByID", "P-missing").Return(nil, notFoundErr("product", "P-missing")).Once()

	result, err := service.FindPricesOfProduct("P-missing")
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockPriceRepo.AssertNotCalled(t, "GetByProductID", mock.Anything)
}

func TestPriceService_DeletePrice(t *testing.T) {
	mockPriceRepo := new(MockPriceRepository)
	service := newPriceService(mockPriceRepo, new(MockProductRepository), new(MockStoreRepository), new(MockPeriodRepository))

	mockPriceRepo.On("Delete", "pr-1").Return(nil).Once()
	assert.NoError(t, service.DeletePrice("pr-1"))

	mockPriceRepo.On("Delete", "pr-1").Return(notFoundErr("price", "pr-1")).Once()
	err := service.DeletePrice("pr-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockPriceRepo.AssertExpectations(t)
}
