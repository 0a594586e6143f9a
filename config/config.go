// config.go - Handles configuration for the project

package config // Declares the package name

import (
	"os"      // For reading environment variables
	"strconv" // For parsing the token lifetime
	"time"    // For durations

	"github.com/joho/godotenv" // Loads .env files in development
)

type Config struct { // Config struct holds all configuration values
	Port      string        // Port the HTTP server listens on
	DBPath    string        // Path to the SQLite database file
	JWTSecret string        // Secret key for signing JWT tokens
	TokenTTL  time.Duration // How long issued tokens stay valid
	StaticDir string        // Directory with the frontend assets (optional)
}

// Load reads config from environment variables or uses defaults.
// A .env file in the working directory is picked up if present.
func Load() *Config {
	_ = godotenv.Load() // Missing .env is fine; env vars still apply

	ttl := 24 * time.Hour // Default token lifetime (1 day)
	if hours, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24")); err == nil && hours > 0 {
		ttl = time.Duration(hours) * time.Hour
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "healthcare.db"),
		JWTSecret: getEnv("JWT_SECRET", "jwt-secret-key"),
		TokenTTL:  ttl,
		StaticDir: getEnv("STATIC_DIR", "frontend"),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
