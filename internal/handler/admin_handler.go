package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/utils"
)

// AdminHandler owns the /api/admin user-management routes. The admin gate is
// enforced by middleware before any of these run.
type AdminHandler struct {
	userService *service.UserService
	validator   *utils.Validator
}

func NewAdminHandler(userService *service.UserService, validator *utils.Validator) *AdminHandler {
	return &AdminHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(users, ""))
}

func (h *AdminHandler) UpdateUserRole(c *fiber.Ctx) error {
	var req models.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	user, err := h.userService.UpdateRole(req.ID, models.Role(req.Role))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(user, "Role updated successfully"))
}
