package server

import (
	"time"

	"github.com/akash012-ctrl/prompt-library-backend/internal/auth"
	"github.com/akash012-ctrl/prompt-library-backend/internal/middleware"
	"github.com/akash012-ctrl/prompt-library-backend/internal/prompt"
	"github.com/akash012-ctrl/prompt-library-backend/internal/report"
	"github.com/akash012-ctrl/prompt-library-backend/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func SetupRoutes(app *fiber.App, h *auth.Handler) {
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS, PATCH",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Prompt Library API is running",
		})
	})

	// ==========================================
	// AUTH ROUTES
	// ==========================================
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}), h.Login)
	authGroup.Post("/update-password", auth.Protected(h.Tokens), h.UpdatePassword)
	authGroup.Post("/forgot-password", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
	}), h.ForgotPassword)
	authGroup.Post("/reset-password/:token", h.ResetPassword)

	// ==========================================
	// PROMPTS (public reads, guarded writes)
	// ==========================================
	promptGroup := app.Group("/api/prompts")
	promptGroup.Get("/", prompt.ListPromptsHandler)
	promptGroup.Get("/search", prompt.SearchPromptsHandler)
	promptGroup.Get("/category/:category", prompt.ListByCategoryHandler)
	promptGroup.Get("/:id", prompt.GetPromptHandler)
	promptGroup.Post("/", auth.Protected(h.Tokens), prompt.CreatePromptHandler)
	promptGroup.Put("/:id", auth.Protected(h.Tokens), middleware.PromptOwner(), prompt.UpdatePromptHandler)
	promptGroup.Delete("/:id", auth.Protected(h.Tokens), middleware.PromptOwner(), prompt.DeletePromptHandler)

	// ==========================================
	// REPORTS (create: any authed user; manage: admin)
	// ==========================================
	reportGroup := app.Group("/api/reports")
	reportGroup.Post("/", auth.Protected(h.Tokens), report.CreateReportHandler)
	reportGroup.Get("/", auth.Protected(h.Tokens), auth.AdminOnly(), report.ListReportsHandler)
	reportGroup.Delete("/:id", auth.Protected(h.Tokens), auth.AdminOnly(), report.DeleteReportHandler)

	// ==========================================
	// USER MANAGEMENT (admin only)
	// ==========================================
	userGroup := app.Group("/api/users")
	userGroup.Use(auth.Protected(h.Tokens))
	userGroup.Use(auth.AdminOnly())
	userGroup.Get("/", user.ListUsersHandler)
	userGroup.Get("/:id", user.GetUserHandler)
	userGroup.Put("/:id", user.UpdateUserHandler)
	userGroup.Delete("/:id", user.DeleteUserHandler)
}
