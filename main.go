// main.go - Entry point for the healthcare records backend

package main

import (
	"log"           // Logging
	"net/http"      // HTTP status codes and methods
	"os"            // For checking the static directory
	"path/filepath" // Static file path handling
	"strings"       // URL path checks

	"healthcare-backend/auth"       // Password hashing and token service
	"healthcare-backend/config"     // Project config management
	"healthcare-backend/database"   // Database connection and migrations
	"healthcare-backend/handlers"   // HTTP handlers for API endpoints
	"healthcare-backend/middleware" // Authentication and CORS middleware

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() {
	// STEP 1: Load configuration and open the database
	cfg := config.Load()

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}

	// Token service is built once from config; the signing secret is
	// read-only for the life of the process.
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// STEP 2: Create Gin router and configure routes
	r := gin.Default()
	r.Use(middleware.CORS())

	authHandler := handlers.NewAuthHandler(db, tokens)
	prescriptions := handlers.NewPrescriptionHandler(db)
	admissions := handlers.NewAdmissionHandler(db)

	// Public routes (no authentication required)
	r.POST("/api/auth/signup", authHandler.Signup)
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/health", handlers.Health)

	// Protected routes (require a valid bearer token)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(tokens))
	{
		api.GET("/prescriptions", prescriptions.List)
		api.POST("/prescriptions", prescriptions.Create)
		api.GET("/admissions", admissions.List)
		api.POST("/admissions", admissions.Create)
	}

	// Frontend assets, when the directory exists
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.NoRoute(serveFrontend(cfg.StaticDir))
	}

	// STEP 3: Start the web server
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}

// serveFrontend serves files from the static directory, falling back
// to index.html for unknown paths so client-side routing works.
func serveFrontend(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		file := filepath.Join(dir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
