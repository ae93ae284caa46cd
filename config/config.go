package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every environment-derived setting. It is built once in main
// and passed into constructors; nothing reads the environment after startup.
type Config struct {
	Port             string
	DatabaseURL      string
	AIServerURL      string
	SeedTestBusiness bool
}

const DefaultAIServerURL = "http://localhost:5000"

// Load reads .env (if present) and builds the Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "3001"),
		DatabaseURL:      os.Getenv("DB_URL"),
		AIServerURL:      getEnv("AI_SERVER_URL", DefaultAIServerURL),
		SeedTestBusiness: getEnv("SEED_TEST_BUSINESS", "true") == "true",
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
