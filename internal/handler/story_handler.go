package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/service"
)

type StoryHandler struct {
	storyService *service.StoryService
}

func NewStoryHandler(storyService *service.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}

func (h *StoryHandler) GetStories(c *fiber.Ctx) error {
	filter := models.CatalogFilter{
		Q:        c.Query("q"),
		Category: c.Query("category"),
		Limit:    c.QueryInt("limit"),
	}

	stories, err := h.storyService.List(filter)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(stories, ""))
}

func (h *StoryHandler) GetStoryBySlug(c *fiber.Ctx) error {
	story, err := h.storyService.GetBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(story, ""))
}
