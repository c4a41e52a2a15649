package main

import (
	"log"
	"net/http"
	"strings"

	"realestate-analyzer/internal/api"
	"realestate-analyzer/internal/config"
	"realestate-analyzer/internal/dataset"
	"realestate-analyzer/internal/summary"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize the dataset store once, before the first request
	var store *dataset.Store
	if cfg.Dataset.Path != "" {
		store, err = dataset.Load(cfg.Dataset.Path, cfg.Dataset.Sheet)
		if err != nil {
			log.Fatal("Failed to load dataset:", err)
		}
		log.Printf("Dataset loaded from %s: %d records, %d areas", cfg.Dataset.Path, store.Len(), len(store.Areas()))
	} else {
		store = dataset.NewFromSeed()
		log.Printf("Using built-in sample dataset: %d records, %d areas", store.Len(), len(store.Areas()))
	}

	// External summary service is optional; without a key the templated
	// local summary is used for every request
	var gen summary.Generator
	if cfg.Groq.APIKey != "" {
		gen = summary.NewGroqClient(cfg.Groq.BaseURL, cfg.Groq.APIKey, cfg.Groq.Model, cfg.SummaryTimeout())
		log.Printf("Summary service enabled (model: %s)", cfg.Groq.Model)
	} else {
		log.Println("GROQ_API_KEY not set, using local summaries only")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.AllowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Serve the frontend build
	r.Static("/static", "./web/build/static")
	r.StaticFile("/favicon.ico", "./web/build/favicon.ico")
	r.StaticFile("/manifest.json", "./web/build/manifest.json")
	r.GET("/", func(c *gin.Context) {
		c.File("./web/build/index.html")
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// SPA fallback for client-side routing
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File("./web/build/index.html")
	})

	api.SetupRoutes(r.Group("/api"), store, gen, cfg.SummaryTimeout(), cfg.TableRowCap)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
