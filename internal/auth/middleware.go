package auth

import (
	"errors"
	"strings"

	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
	"github.com/akash012-ctrl/prompt-library-backend/internal/response"
	"github.com/akash012-ctrl/prompt-library-backend/internal/token"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Protected extracts and verifies the bearer token and binds the resolved
// user ID into c.Locals("user_id"). It is the mandatory first guard on
// every protected route; downstream guards assume the identity is bound.
func Protected(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Missing authorization token", nil)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, fiber.StatusUnauthorized, "INVALID_TOKEN_FORMAT", "Invalid token format", nil)
		}

		userID, err := tokens.VerifySessionToken(parts[1])
		if err != nil {
			return response.Error(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token", nil)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// AdminOnly forwards only if the bound identity currently holds the admin
// role. The role is re-read from the store on every request rather than
// trusted from the token, so a demotion takes effect on the next request.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_id").(uint)
		if !ok {
			return response.Unauthorized(c, "User not authenticated")
		}

		var u models.User
		if err := database.DB.First(&u, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.Unauthorized(c, "User not found")
			}
			return response.InternalError(c, "Failed to load user")
		}

		if !u.IsAdmin() {
			return response.Forbidden(c, "Access denied. Admins only.")
		}

		return c.Next()
	}
}
