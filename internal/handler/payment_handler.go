package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePackageCheckout opens a hosted checkout session for the package named
// by the slug. Requires an authenticated caller.
func (h *PaymentHandler) CreatePackageCheckout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	email, _ := c.Locals("userEmail").(string)

	session, err := h.paymentService.CreatePackageCheckout(userID, email, c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(session, "Checkout session created"))
}
