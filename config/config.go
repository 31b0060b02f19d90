package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	// Lifetime of registration confirmation codes.
	CODE_TTL time.Duration

	// How often the expired-code sweeper runs.
	SWEEP_INTERVAL time.Duration
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	CODE_TTL = getMinutes("CODE_TTL_MINUTES", 10)
	SWEEP_INTERVAL = getMinutes("SWEEP_INTERVAL_MINUTES", 5)
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getMinutes(key string, fallback int) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
		log.Printf("Invalid %s=%q, using default of %d minutes", key, value, fallback)
	}
	return time.Duration(fallback) * time.Minute
}
