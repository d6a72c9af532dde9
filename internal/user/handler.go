package user

import (
	"errors"
	"log"

	"github.com/akash012-ctrl/prompt-library-backend/internal/models"
	"github.com/akash012-ctrl/prompt-library-backend/internal/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UpdateUserRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func ListUsersHandler(c *fiber.Ctx) error {
	users, err := ListUsers()
	if err != nil {
		log.Printf("list users failed: %v", err)
		return response.InternalError(c, "Failed to list users")
	}
	return response.Success(c, users, "")
}

func GetUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	u, err := GetUser(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User")
		}
		log.Printf("get user %d failed: %v", id, err)
		return response.InternalError(c, "Failed to load user")
	}

	return response.Success(c, u, "")
}

func UpdateUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	var body UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Role != "" && body.Role != models.RoleUser && body.Role != models.RoleAdmin {
		return response.ValidationError(c, map[string]string{
			"role": "role must be 'user' or 'admin'",
		})
	}

	u, err := UpdateUser(uint(id), body.Email, body.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User")
		}
		log.Printf("update user %d failed: %v", id, err)
		return response.InternalError(c, "Failed to update user")
	}

	return response.Success(c, u, "User updated successfully")
}

func DeleteUserHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID", nil)
	}

	affected, err := DeleteUser(uint(id))
	if err != nil {
		log.Printf("delete user %d failed: %v", id, err)
		return response.InternalError(c, "Failed to delete user")
	}
	if affected == 0 {
		return response.NotFound(c, "User")
	}

	return response.Success(c, nil, "User deleted successfully")
}
