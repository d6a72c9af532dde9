package middleware

import (
	"errors"

	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
	"github.com/akash012-ctrl/prompt-library-backend/internal/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PromptOwner forwards only if the bound identity owns the prompt named
// by the :id route param. Existence is checked before ownership: a
// non-owner probing a nonexistent id sees 404, never 403, so the guard
// does not reveal whether they would have been authorized.
func PromptOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("user_id").(uint)
		if !ok {
			return response.Unauthorized(c, "User not authenticated")
		}

		promptID, err := c.ParamsInt("id")
		if err != nil {
			return response.BadRequest(c, "Invalid prompt ID", nil)
		}

		var p models.Prompt
		if err := database.DB.First(&p, promptID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NotFound(c, "Prompt")
			}
			return response.InternalError(c, "Failed to load prompt")
		}

		if p.UserID != userID {
			return response.Forbidden(c, "You are not authorized to perform this action")
		}

		return c.Next()
	}
}
