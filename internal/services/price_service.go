package services

import (
	"fmt"
	"log"

	"precios/internal/models"
	"precios/internal/repositories"
	"precios/pkg/rabbitmq"
)

// CreatePriceInput carries the fields accepted when creating a price.
// All three relation ids are mandatory.
type CreatePriceInput struct {
	Amount    *float64 `json:"amount" validate:"required,gte=0"`
	ProductID string   `json:"productId" validate:"required,uuid4"`
	StoreID   string   `json:"storeId" validate:"required,uuid4"`
	PeriodID  string   `json:"periodId" validate:"required,uuid4"`
}

// UpdatePriceInput carries the optional fields of a partial price update.
// Nil means "leave unchanged".
type UpdatePriceInput struct {
	Amount    *float64 `json:"amount" validate:"omitempty,gte=0"`
	ProductID *string  `json:"productId" validate:"omitempty,uuid4"`
	StoreID   *string  `json:"storeId" validate:"omitempty,uuid4"`
	PeriodID  *string  `json:"periodId" validate:"omitempty,uuid4"`
}

// ProductPrices is the result of FindPricesOfProduct: the product itself and
// its prices, cheapest first. Prices may be empty.
type ProductPrices struct {
	Product *models.Product `json:"product"`
	Prices  []models.Price  `json:"prices"`
}

// PriceService handles business logic related to prices: CRUD, the
// referential checks run before every price write, and the shortest-price
// aggregation.
type PriceService struct {
	priceRepo   repositories.PriceRepository
	productRepo repositories.ProductRepository
	storeRepo   repositories.StoreRepository
	periodRepo  repositories.PeriodRepository
	mqClient    *rabbitmq.Client
}

// NewPriceService creates a new PriceService. mqClient may be nil, in which
// case catalog events are not published.
func NewPriceService(
	priceRepo repositories.PriceRepository,
	productRepo repositories.ProductRepository,
	storeRepo repositories.StoreRepository,
	periodRepo repositories.PeriodRepository,
	mqClient *rabbitmq.Client,
) *PriceService {
	return &PriceService{
		priceRepo:   priceRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		periodRepo:  periodRepo,
		mqClient:    mqClient,
	}
}

// validateRelations confirms that the referenced product, store and period
// rows exist, in that order, stopping at the first missing one so the error
// always names the first absent entity. Pure read, no locks: a parent may
// still disappear between this check and the write, in which case the write
// fails on the foreign key.
func (s *PriceService) validateRelations(productID, storeID, periodID string) (*models.Product, *models.Store, *models.Period, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, nil, nil, err
	}
	period, err := s.periodRepo.GetByID(periodID)
	if err != nil {
		return nil, nil, nil, err
	}
	return product, store, period, nil
}

// GetAllPrices retrieves all prices with their relations resolved.
func (s *PriceService) GetAllPrices() ([]models.Price, error) {
	return s.priceRepo.GetAll()
}

// GetPriceByID retrieves a single price by its ID.
func (s *PriceService) GetPriceByID(id string) (*models.Price, error) {
	return s.priceRepo.GetByID(id)
}

// FindPricesOfProduct returns a product together with its prices sorted
// ascending by amount. Fails when the product itself does not exist.
func (s *PriceService) FindPricesOfProduct(productID string) (*ProductPrices, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	prices, err := s.priceRepo.GetByProductID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices of product %s: %w", productID, err)
	}
	return &ProductPrices{Product: product, Prices: prices}, nil
}

// FindShortestPrices reduces the full price table to the cheapest entry per
// product. The snapshot is unfiltered: every period and inactive products'
// rows count equally.
func (s *PriceService) FindShortestPrices() ([]models.ShortestPrice, error) {
	prices, err := s.priceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	shortest := shortestPricesByProduct(prices)
	result := make([]models.ShortestPrice, 0, len(shortest))
	for _, entry := range shortest {
		result = append(result, entry)
	}
	return result, nil
}

// CreatePrice validates the three referenced entities and persists a new
// price with both the foreign-key columns and the resolved relation objects
// set, so the in-memory representation matches what was checked.
func (s *PriceService) CreatePrice(input CreatePriceInput) (*models.Price, error) {
	product, store, period, err := s.validateRelations(input.ProductID, input.StoreID, input.PeriodID)
	if err != nil {
		return nil, err
	}

	price := &models.Price{
		Amount:    *input.Amount,
		ProductID: product.ID,
		Product:   product,
		StoreID:   store.ID,
		Store:     store,
		PeriodID:  period.ID,
		Period:    period,
	}
	if err := s.priceRepo.Create(price); err != nil {
		return nil, err
	}

	s.publishPriceEvent("price.created", price)
	return price, nil
}

// UpdatePrice applies a partial update to an existing price. When any of the
// relation ids is supplied, all three are re-validated using the supplied
// value or, for the untouched ones, the price's current value. Supplying
// only a storeId therefore still re-checks the unchanged product and period.
func (s *PriceService) UpdatePrice(id string, input UpdatePriceInput) (*models.Price, error) {
	price, err := s.priceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.ProductID != nil || input.StoreID != nil || input.PeriodID != nil {
		productID := price.ProductID
		if input.ProductID != nil {
			productID = *input.ProductID
		}
		storeID := price.StoreID
		if input.StoreID != nil {
			storeID = *input.StoreID
		}
		periodID := price.PeriodID
		if input.PeriodID != nil {
			periodID = *input.PeriodID
		}

		product, store, period, err := s.validateRelations(productID, storeID, periodID)
		if err != nil {
			return nil, err
		}
		price.ProductID = product.ID
		price.Product = product
		price.StoreID = store.ID
		price.Store = store
		price.PeriodID = period.ID
		price.Period = period
	}

	if input.Amount != nil {
		price.Amount = *input.Amount
	}

	if err := s.priceRepo.Update(price); err != nil {
		return nil, err
	}

	s.publishPriceEvent("price.updated", price)
	return price, nil
}

// DeletePrice deletes a price by its ID.
func (s *PriceService) DeletePrice(id string) error {
	if err := s.priceRepo.Delete(id); err != nil {
		return err
	}
	if s.mqClient != nil {
		payload := map[string]interface{}{"priceId": id}
		if err := s.mqClient.PublishCatalogEvent("price.deleted", payload); err != nil {
			log.Printf("Warning: failed to publish price.deleted event for price %s: %v", id, err)
		}
	}
	return nil
}

// publishPriceEvent sends a catalog event for a price write. Publishing is
// best effort: failures are logged, never returned to the caller.
func (s *PriceService) publishPriceEvent(event string, price *models.Price) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"priceId":   price.ID,
		"amount":    price.Amount,
		"productId": price.ProductID,
		"storeId":   price.StoreID,
		"periodId":  price.PeriodID,
	}
	if err := s.mqClient.PublishCatalogEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for price %s: %v", event, price.ID, err)
	}
}

// shortestPricesByProduct scans a snapshot of price rows once and keeps the
// cheapest entry seen per product along with the store offering it. A row
// replaces the current entry when its amount is lower than or equal to the
// minimum so far, so on equal amounts the row scanned later wins. Rows with
// an empty product id are skipped.
func shortestPricesByProduct(prices []models.Price) map[string]models.ShortestPrice {
	shortest := make(map[string]models.ShortestPrice)
	for _, price := range prices {
		if price.ProductID == "" {
			continue
		}
		current, ok := shortest[price.ProductID]
		if !ok || price.Amount <= current.Amount {
			shortest[price.ProductID] = models.ShortestPrice{
				ProductID: price.ProductID,
				Amount:    price.Amount,
				StoreID:   price.StoreID,
			}
		}
	}
	return shortest
}
