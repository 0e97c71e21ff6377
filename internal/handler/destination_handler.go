package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
)

type DestinationHandler struct {
	destinationService *service.DestinationService
}

func NewDestinationHandler(destinationService *service.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService}
}

func (h *DestinationHandler) GetDestinations(c *fiber.Ctx) error {
	filter := models.CatalogFilter{
		Q:     c.Query("q"),
		Limit: c.QueryInt("limit"),
	}
	if v := c.Query("popular"); v != "" {
		popular := v == "true" || v == "1"
		filter.Popular = &popular
	}

	destinations, err := h.destinationService.List(filter)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(destinations, ""))
}

func (h *DestinationHandler) GetDestinationBySlug(c *fiber.Ctx) error {
	dest, err := h.destinationService.GetBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(dest, ""))
}

func (h *DestinationHandler) GetDestinationTrips(c *fiber.Ctx) error {
	filter := models.CatalogFilter{
		Q:           c.Query("q"),
		Destination: c.Query("destination"),
		Limit:       c.QueryInt("limit"),
	}

	trips, err := h.destinationService.ListTrips(filter)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(trips, ""))
}

func (h *DestinationHandler) GetDestinationTripBySlug(c *fiber.Ctx) error {
	trip, err := h.destinationService.GetTripBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(trip, ""))
}
