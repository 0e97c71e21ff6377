package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/middleware"
	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	jwtPkg "github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/jwt"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", middleware.AuthMiddleware(zap.NewNop()), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("userID"),
			"role":    c.Locals("userRole"),
		})
	})
	app.Get("/admin-only", middleware.AuthMiddleware(zap.NewNop()), middleware.AdminMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	user := &models.User{ID: 5, Role: role}
	token, err := jwtPkg.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newApp()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleUser))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareSessionCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newApp()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: tokenFor(t, models.RoleUser)})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// A broken session cookie is swallowed and the bearer token still wins.
func TestAuthMiddlewareCookieFallsBackToBearer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newApp()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "garbage"})
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleUser))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareNoIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newApp()

	cases := []struct {
		name  string
		setup func(*http.Request)
	}{
		{"no credentials", func(r *http.Request) {}},
		{"bad cookie only", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "garbage"})
		}},
		{"malformed header", func(r *http.Request) {
			r.Header.Set("Authorization", "Token abc")
		}},
		{"bad bearer token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer garbage")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tc.setup(req)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newApp()

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleUser))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
