package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
)

type TestimonialHandler struct {
	testimonialService *service.TestimonialService
}

func NewTestimonialHandler(testimonialService *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

func (h *TestimonialHandler) GetTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.testimonialService.List(c.QueryInt("limit"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(testimonials, ""))
}
