package handler

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/utils"
)

const (
	visitCookie       = "visit_count"
	preferencesCookie = "preferences"
	cookieLifetime    = 365 * 24 * time.Hour
)

// CookieHandler serves the trivial cookie-backed endpoints: a visit counter
// and a validated preferences passthrough. Nothing is persisted server-side.
type CookieHandler struct {
	validator *utils.Validator
}

func NewCookieHandler(validator *utils.Validator) *CookieHandler {
	return &CookieHandler{validator: validator}
}

func (h *CookieHandler) Visit(c *fiber.Ctx) error {
	visits, _ := strconv.Atoi(c.Cookies(visitCookie))
	visits++

	c.Cookie(&fiber.Cookie{
		Name:    visitCookie,
		Value:   strconv.Itoa(visits),
		Expires: time.Now().Add(cookieLifetime),
	})

	return c.JSON(models.SuccessResponse(fiber.Map{"visits": visits}, ""))
}

func (h *CookieHandler) GetPreferences(c *fiber.Ctx) error {
	prefs := models.Preferences{Theme: "system", Currency: "USD"}

	if raw := c.Cookies(preferencesCookie); raw != "" {
		// A malformed cookie just resets to defaults.
		_ = json.Unmarshal([]byte(raw), &prefs)
	}

	return c.JSON(models.SuccessResponse(prefs, ""))
}

func (h *CookieHandler) SetPreferences(c *fiber.Ctx) error {
	var prefs models.Preferences
	if err := c.BodyParser(&prefs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(prefs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return fail(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:    preferencesCookie,
		Value:   string(raw),
		Expires: time.Now().Add(cookieLifetime),
	})

	return c.JSON(models.SuccessResponse(prefs, "Preferences saved"))
}
