package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"filingai/config"
	"filingai/database"
	"filingai/handlers"
	"filingai/middleware"
	"filingai/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := utils.NewLogger()

	var store *database.SubmissionStore
	if cfg.Database.Name != "" {
		db, err := database.Connect(cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
			cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode)
		if err != nil {
			log.Fatalf("Database error: %v", err)
		}
		if err := database.EnsureSchema(db); err != nil {
			log.Fatalf("Database schema error: %v", err)
		}
		store = database.NewSubmissionStore(db)
	} else {
		logger.Warn("DB_NAME not set, submission journaling disabled")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default())

	h := handlers.NewAutomationHandler(cfg, store, logger)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	if cfg.AuthSecret != "" {
		api.Use(middleware.RequireToken(cfg.AuthSecret))
	}
	api.POST("/submissions", h.SubmitForms)
	api.GET("/submissions", h.History)
	api.POST("/options/list", h.ListOptions)

	logger.Info("starting form automation service", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
