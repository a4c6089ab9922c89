package main

import (
	"log"
	"os"

	"github.com/anirudh21-ch/elearn/auth"
	"github.com/anirudh21-ch/elearn/database"
	"github.com/anirudh21-ch/elearn/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	defer database.Close(db)

	tokens := auth.NewTokenServiceFromEnv()
	h := handlers.New(db, tokens)

	// Ensure the bootstrap admin exists
	h.SeedAdminUser()

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
