package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
	jwtPkg "github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/pkg/jwt"
)

// SessionCookie is the browser-flow cookie carrying a signed token.
const SessionCookie = "session"

// AuthMiddleware resolves a caller identity, first from the session cookie,
// then from an Authorization bearer token. The cookie leg swallows its own
// errors (logged at debug) so a stale browser session falls through to the
// bearer leg instead of failing the request outright.
func AuthMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cookie := c.Cookies(SessionCookie); cookie != "" {
			claims, err := jwtPkg.ValidateToken(cookie)
			if err == nil {
				setIdentity(c, claims)
				return c.Next()
			}
			logger.Debug("session cookie resolution failed, trying bearer token", zap.Error(err))
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authentication required"))
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			logger.Debug("bearer token validation failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		setIdentity(c, claims)
		return c.Next()
	}
}

// AdminMiddleware layers the role check on top of AuthMiddleware. It assumes
// an identity is already resolved in the request locals.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(models.Role)
		if !ok || role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Admin access required"))
		}
		return c.Next()
	}
}

func setIdentity(c *fiber.Ctx, claims *jwtPkg.Claims) {
	c.Locals("userID", claims.UserID)
	c.Locals("userEmail", claims.Email)
	c.Locals("userName", claims.Username)
	c.Locals("userRole", claims.Role)
}
