package handlers

import (
	"log"

	"precios/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	service  *services.StoreService
	validate *validator.Validate
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService) *StoreHandler {
	return &StoreHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the store routes. Reads are public; mutations go
// through requireAuth.
func (h *StoreHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	routes := router.Group("/stores")
	routes.Get("/", h.HandleGetStores)
	routes.Get("/:id", h.HandleGetStoreByID)
	routes.Post("/", requireAuth, h.HandleCreateStore)
	routes.Put("/:id", requireAuth, h.HandleUpdateStore)
	routes.Delete("/:id", requireAuth, h.HandleDeleteStore)
}

// HandleGetStores retrieves all stores.
func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.GetAllStores()
	if err != nil {
		log.Printf("Error listing stores: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve stores",
			"error":   err.Error(),
		})
	}
	return c.JSON(stores)
}

// HandleGetStoreByID retrieves a single store by its ID.
func (h *StoreHandler) HandleGetStoreByID(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	store, err := h.service.GetStoreByID(id)
	if err != nil {
		log.Printf("Error getting store %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve store",
			"error":   err.Error(),
		})
	}
	return c.JSON(store)
}

// HandleCreateStore creates a new store.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var input services.CreateStoreInput
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

	store, err := h.service.CreateStore(input)
	if err != nil {
		log.Printf("Error creating store: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create store",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// HandleUpdateStore applies a partial update to an existing store.
func (h *StoreHandler) HandleUpdateStore(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var input services.UpdateStoreInput
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

	store, err := h.service.UpdateStore(id, input)
	if err != nil {
		log.Printf("Error updating store %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update store",
			"error":   err.Error(),
		})
	}
	return c.JSON(store)
}

// HandleDeleteStore deletes a store; its prices cascade away with it.
func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.service.DeleteStore(id); err != nil {
		log.Printf("Error deleting store %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete store",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
