package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage is the admin path: bytes go to the external image host and the
// permanent hosted URL comes back.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded"))
	}

	result, err := h.uploadService.UploadHosted(file)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(result, "Image uploaded successfully"))
}

type deleteImageRequest struct {
	DeleteURL string `json:"delete_url"`
}

// DeleteImage asks the image host to drop a hosted image. The remote call is
// best-effort; a host failure does not fail the request.
func (h *UploadHandler) DeleteImage(c *fiber.Ctx) error {
	var req deleteImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if req.DeleteURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("delete_url is required"))
	}

	h.uploadService.DeleteHosted(req.DeleteURL)

	return c.JSON(models.SuccessResponse(nil, "Image deleted"))
}

// UploadStoryImage is the user path: the image lands on local disk.
func (h *UploadHandler) UploadStoryImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No file uploaded"))
	}

	result, err := h.uploadService.UploadStory(file)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(result, "Story image uploaded successfully"))
}
