package handlers

import (
	"log"

	"precios/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PeriodHandler handles HTTP requests for periods.
type PeriodHandler struct {
	service  *services.PeriodService
	validate *validator.Validate
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(service *services.PeriodService) *PeriodHandler {
	return &PeriodHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the period routes. Reads are public; mutations
// go through requireAuth.
func (h *PeriodHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	routes := router.Group("/periods")
	routes.Get("/", h.HandleGetPeriods)
	routes.Get("/:id", h.HandleGetPeriodByID)
	routes.Post("/", requireAuth, h.HandleCreatePeriod)
	routes.Put("/:id", requireAuth, h.HandleUpdatePeriod)
	routes.Delete("/:id", requireAuth, h.HandleDeletePeriod)
}

// HandleGetPeriods retrieves all periods.
func (h *PeriodHandler) HandleGetPeriods(c *fiber.Ctx) error {
	periods, err := h.service.GetAllPeriods()
	if err != nil {
		log.Printf("Error listing periods: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve periods",
			"error":   err.Error(),
		})
	}
	return c.JSON(periods)
}

// HandleGetPeriodByID retrieves a single period by its ID.
func (h *PeriodHandler) HandleGetPeriodByID(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	period, err := h.service.GetPeriodByID(id)
	if err != nil {
		log.Printf("Error getting period %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve period",
			"error":   err.Error(),
		})
	}
	return c.JSON(period)
}

// HandleCreatePeriod creates a new period.
func (h *PeriodHandler) HandleCreatePeriod(c *fiber.Ctx) error {
	var input services.CreatePeriodInput
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

	period, err := h.service.CreatePeriod(input)
	if err != nil {
		log.Printf("Error creating period: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create period",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(period)
}

// HandleUpdatePeriod applies a partial update to an existing period.
func (h *PeriodHandler) HandleUpdatePeriod(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	var input services.UpdatePeriodInput
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

	period, err := h.service.UpdatePeriod(id, input)
	if err != nil {
		log.Printf("Error updating period %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update period",
			"error":   err.Error(),
		})
	}
	return c.JSON(period)
}

// HandleDeletePeriod deletes a period; its prices cascade away with it.
func (h *PeriodHandler) HandleDeletePeriod(c *fiber.Ctx) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return nil
	}
	if err := h.service.DeletePeriod(id); err != nil {
		log.Printf("Error deleting period %s: %v", id, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete period",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
