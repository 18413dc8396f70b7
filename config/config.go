package config

import (
	"os"
	"time"
)

// Config holds the environment-driven settings for the server.
type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string
	JWTTTL      time.Duration
	GinMode     string
}

// Load reads the configuration from the environment, falling back to
// development defaults.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=swishdrip password=swishdrip dbname=swishdrip port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", "swishdrip-dev-secret"),
		JWTTTL:      getDuration("JWT_TTL", 24*time.Hour),
		GinMode:     getEnv("GIN_MODE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
