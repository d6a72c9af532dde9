package main

import (
	"log"

	"github.com/akash012-ctrl/prompt-library-backend/internal/auth"
	"github.com/akash012-ctrl/prompt-library-backend/internal/config"
	"github.com/akash012-ctrl/prompt-library-backend/internal/database"
	"github.com/akash012-ctrl/prompt-library-backend/internal/mailer"
	"github.com/akash012-ctrl/prompt-library-backend/internal/server"
	"github.com/akash012-ctrl/prompt-library-backend/internal/token"
)

func main() {
	cfg := config.Load()

	if err := cfg.ValidateJWTSecret(); err != nil {
		log.Fatal("❌ JWT Configuration Error: ", err)
	}
	log.Println("✅ JWT secret validated")

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("❌ Database connection failed: ", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("❌ Migration failed: ", err)
	}
	log.Println("✅ Database migrated successfully")

	tokens := token.New(cfg.JWTSecret)
	authHandler := auth.NewHandler(tokens, mailer.NewSMTP(cfg), cfg.AppBaseURL)

	app := server.New(db, authHandler)

	log.Printf("🚀 Prompt Library API starting on %s", cfg.ServerAddr)
	log.Printf("🔐 JWT Authentication: Enabled")

	if err := app.Listen(cfg.ServerAddr); err != nil {
		log.Fatal("❌ Failed to start server: ", err)
	}
}
