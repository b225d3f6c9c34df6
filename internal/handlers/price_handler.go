package handlers

import (
	"log"

	"precios/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PriceHandler handles HTTP requests for prices.
type PriceHandler struct {
	service  *services.PriceService
	validate *validator.Validate
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(service *services.PriceService) *PriceHandler {
	return &PriceHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the price routes. The static paths are
// registered before "/:id" so Fiber does not swallow them as ids. Reads are
// public; mutations go through requireAuth.
func (h *PriceHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	routes := router.Group("/prices")
	routes.Get("/", h.HandleGetPrices)
	routes.Get("/shortest", h.HandleGetShortestPrices)
	routes.Get("/product/:productId", h.HandleGetPricesOfProduct)
	routes.Get("/:id", h.HandleGetPriceByID)
	routes.Post("/", requireAuth, h.HandleCreatePrice)
	routes.Put("/:id", requireAuth, h.HandleUpdatePrice)
	routes.Delete("/:id", requireAuth, h.HandleDeletePrice)
}

// HandleGetPrices retrieves all prices with their relations resolved.
func (h *PriceHandler) HandleGetPrices(c *fiber.Ctx) error {
	prices, err := h.service.GetAllPrices()
	if err != nil {
		log.Printf("Error listing prices: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve prices",
			"error":   err.Error(),
		})
	}
	return c.JSON(prices)
}

// HandleGetShortestPrices returns the cheapest known price per product.
func (h *PriceHandler) HandleGetShortestPrices(c *fiber.Ctx) error {
	shortest, err := h.service.FindShortestPrices()
	if err != nil {
		log.Printf("Error aggregating shortest prices: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not aggregate shortest prices",
			"error":   err.Error(),
		})
	}
	return c.JSON(shortest)
}

// HandleGetPricesOfProduct returns a product and its prices, cheapest
// first.
func (h *PriceHandler) HandleGetPricesOfProduct(c *fiber.Ctx) error {
	productID, ok := paramUUID(c, "productId")
	if !ok {
		return nil
	}
	result, err := h.service.FindPricesOfProduct(productID)
	if err != nil {
		log.Printf("Error listing prices of product %s: %v", productID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve prices of product",
			"error":   err.Error(),
		})
	}
	return c.JSON(result)
}

// HandleGetPriceByID retrieves a single price by its ID.
func (h *PriceHandler) HandleGetPriceByID(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	price, err := h.service.GetPriceByID(id)
	if err != nil {
		log.Printf("Error getting price %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve price",
			"error":   err.Error(),
		})
	}
	return c.JSON(price)
}

// HandleCreatePrice creates a new price after checking that the referenced
// product, store and period all exist; a missing relation is a 404.
func (h *PriceHandler) HandleCreatePrice(c *fiber.Ctx) error {
	var input services.CreatePriceInput
	if err := parseBody(c, &input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	price, err := h.service.CreatePrice(input)
	if err != nil {
		log.Printf("Error creating price: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create price",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(price)
}

// HandleUpdatePrice applies a partial update to an existing price.
func (h *PriceHandler) HandleUpdatePrice(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var input services.UpdatePriceInput
	if err := parseBody(c, &input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	price, err := h.service.UpdatePrice(id, input)
	if err != nil {
		log.Printf("Error updating price %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update price",
			"error":   err.Error(),
		})
	}
	return c.JSON(price)
}

// HandleDeletePrice deletes a price by its ID.
func (h *PriceHandler) HandleDeletePrice(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.service.DeletePrice(id); err != nil {
		log.Printf("Error deleting price %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete price",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
