package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"precios/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseBody decodes a JSON request body into dst, rejecting unknown fields
// so typos and stray fields fail loudly instead of being dropped.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}

// validationMessages flattens validator errors into a field -> message map,
// the shape returned on every 400 validation response.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	} else {
		messages["_"] = err.Error()
	}
	return messages
}

// paramUUID reads a path parameter and checks it parses as a UUID. The
// second return value is false when a 400 has already been written.
func paramUUID(c *fiber.Ctx, name string) (string, bool) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Parameter '%s' must be a valid UUID", name),
		})
		return "", false
	}
	return id, true
}

// statusForError maps a service error to an HTTP status: absent rows (and
// absent referenced relations) are 404, everything else is a 500. Storage
// constraint violations, e.g. a unique-name collision or a foreign key lost
// to a concurrent delete, intentionally fall into the 500 bucket.
func statusForError(err error) int {
	if errors.Is(err, repositories.ErrNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}
