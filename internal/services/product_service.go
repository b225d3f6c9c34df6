package services

import (
	"precios/internal/models"
	"precios/internal/repositories"
)

// CreateProductInput carries the fields accepted when creating a product.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	Image       *string `json:"image" validate:"omitempty,url"`
}

// UpdateProductInput carries the optional fields of a partial product
// update. Nil means "leave unchanged".
type UpdateProductInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	Image       *string `json:"image" validate:"omitempty,url"`
}

// EnrichedProduct is a product annotated with its cheapest known price and
// the name of the store offering it. Both fields are null when no price row
// references the product; the store name is an empty string when a price
// exists but its store cannot be resolved.
type EnrichedProduct struct {
	models.Product
	ShortestPrice          *float64 `json:"shortestPrice"`
	ShortestPriceStoreName *string  `json:"shortestPriceStoreName"`
}

// ProductService handles business logic related to products, including the
// shortest-price enrichment of the product listing.
type ProductService struct {
	repo      repositories.ProductRepository
	storeRepo repositories.StoreRepository
	priceRepo repositories.PriceRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, storeRepo repositories.StoreRepository, priceRepo repositories.PriceRepository) *ProductService {
	return &ProductService{
		repo:      repo,
		storeRepo: storeRepo,
		priceRepo: priceRepo,
	}
}

// GetAllProducts retrieves all products without enrichment.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// ListWithShortestPrice returns all products annotated with their cheapest
// price across all stores and periods. It works over a fresh snapshot of
// products, stores and prices fetched per call; it persists nothing.
func (s *ProductService) ListWithShortestPrice() ([]EnrichedProduct, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	stores, err := s.storeRepo.GetAll()
	if err != nil {
		return nil, err
	}
	prices, err := s.priceRepo.GetAll()
	if err != nil {
		return nil, err
	}

	shortest := shortestPricesByProduct(prices)
	storesByID := make(map[string]models.Store, len(stores))
	for _, store := range stores {
		storesByID[store.ID] = store
	}

	enriched := make([]EnrichedProduct, 0, len(products))
	for _, product := range products {
		item := EnrichedProduct{Product: product}
		if entry, ok := shortest[product.ID]; ok {
			amount := entry.Amount
			item.ShortestPrice = &amount
			name := ""
			if store, ok := storesByID[entry.StoreID]; ok {
				name = store.Name
			}
			item.ShortestPriceStoreName = &name
		}
		enriched = append(enriched, item)
	}
	return enriched, nil
}

// CreateProduct persists a new product. isActive defaults to true when not
// supplied.
func (s *ProductService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
		Image:       input.Image,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies a partial update: only supplied fields change.
func (s *ProductService) UpdateProduct(id string, input UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.Image != nil {
		product.Image = input.Image
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID; dependent prices cascade.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
