package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	GinMode           string
	DBDriver          string // "postgres" or "sqlite3"
	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime int    // minutes
	RedisURL          string // empty disables the user cache
	CacheTTLSeconds   int
	CacheNamespace    string // Prefix for every Redis key
	SeedOnStartup     bool
	RateLimitRPS      float64 // Requests per second per client IP on /api
	RateLimitBurst    int
	PublicBaseURL     string // Production server advertised in the API documentation metadata
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", "postgres"))
	defaultDSN := ""
	if driver == "sqlite3" {
		defaultDSN = "users.db"
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		DBDriver:          driver,
		DatabaseURL:       getEnv("DATABASE_URL", defaultDSN),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetime: getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30),
		RedisURL:          getEnv("REDIS_URL", ""),
		CacheTTLSeconds:   getEnvInt("CACHE_TTL_SECONDS", 300),
		CacheNamespace:    getEnv("CACHE_NAMESPACE", "users-api:"),
		SeedOnStartup:     getEnvBool("SEED_ON_STARTUP", true),
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 20),
		PublicBaseURL:     getEnv("PUBLIC_BASE_URL", "https://api.example.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
		log.Printf("Invalid %s=%q, using default %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatValue
		}
		log.Printf("Invalid %s=%q, using default %v", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
		log.Printf("Invalid %s=%q, using default %t", key, value, defaultValue)
	}
	return defaultValue
}
