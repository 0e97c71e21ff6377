package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

// statusFor maps the shared error taxonomy onto HTTP status codes. Anything
// unrecognized is an upstream failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// fail converts any service error into the JSON envelope.
func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		// Do not leak upstream error details to clients.
		message = "Something went wrong"
	}
	return c.Status(status).JSON(models.ErrorResponse(message))
}
