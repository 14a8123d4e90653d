package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// JWT
	JWTSecret string

	// Recommendations
	RecommendLimit       int
	RecommendFallbackMin int
	RecommendCacheTTL    int // seconds

	// Catalogue seeding
	CatalogMinResources int
	CatalogLoadDelay    int // seconds

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		Env:         getEnvOrDefault("ENV", "development"),
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		RedisURL:    mustGetEnv("REDIS_URL"),
		JWTSecret:   mustGetEnv("JWT_SECRET"),

		RecommendLimit:       getEnvAsIntOrDefault("RECOMMEND_LIMIT", 6),
		RecommendFallbackMin: getEnvAsIntOrDefault("RECOMMEND_FALLBACK_MIN", 3),
		RecommendCacheTTL:    getEnvAsIntOrDefault("RECOMMEND_CACHE_TTL_SECONDS", 300),

		CatalogMinResources: getEnvAsIntOrDefault("CATALOG_MIN_RESOURCES", 50),
		CatalogLoadDelay:    getEnvAsIntOrDefault("CATALOG_LOAD_DELAY_SECONDS", 2),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
