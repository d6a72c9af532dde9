package server

import (
	"github.com/akash012-ctrl/prompt-library-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func New(db *gorm.DB, authHandler *auth.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Prompt Library API",
	})

	SetupRoutes(app, authHandler)

	return app
}
