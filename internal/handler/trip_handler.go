package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
)

type TripHandler struct {
	tripService *service.TripService
}

func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

func (h *TripHandler) GetTrips(c *fiber.Ctx) error {
	filter := models.CatalogFilter{
		Q:        c.Query("q"),
		Type:     c.Query("type"),
		Activity: c.Query("activity"),
		Limit:    c.QueryInt("limit"),
	}
	if filter.Type != "" && !models.PackageType(filter.Type).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Unknown trip type"))
	}
	if filter.Activity != "" && !models.TripActivity(filter.Activity).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Unknown activity"))
	}

	trips, err := h.tripService.List(filter)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(trips, ""))
}

func (h *TripHandler) GetTripBySlug(c *fiber.Ctx) error {
	trip, err := h.tripService.GetBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(trip, ""))
}
