package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/utils"
)

type PackageHandler struct {
	packageService *service.PackageService
	validator      *utils.Validator
}

func NewPackageHandler(packageService *service.PackageService, validator *utils.Validator) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
		validator:      validator,
	}
}

func (h *PackageHandler) GetPackages(c *fiber.Ctx) error {
	filter := models.CatalogFilter{
		Q:     c.Query("q"),
		Type:  c.Query("type"),
		Limit: c.QueryInt("limit"),
	}
	if filter.Type != "" && !models.PackageType(filter.Type).Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Unknown package type"))
	}

	packages, err := h.packageService.List(filter)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(packages, ""))
}

func (h *PackageHandler) GetPackageBySlug(c *fiber.Ctx) error {
	pkg, err := h.packageService.GetBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(pkg, ""))
}

// UpsertPackage creates or replaces a package record. Admin only.
func (h *PackageHandler) UpsertPackage(c *fiber.Ctx) error {
	var req models.PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	pkg, err := h.packageService.Upsert(req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(pkg, "Package saved successfully"))
}

// DeletePackage removes a package by slug. Admin only.
func (h *PackageHandler) DeletePackage(c *fiber.Ctx) error {
	if err := h.packageService.Delete(c.Params("slug")); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Package deleted successfully"))
}
