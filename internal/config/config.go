package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is assembled from environment variables. A .env file is loaded when
// present so local runs don't need an exported environment.
type Config struct {
	DatabaseURL string
	HTTPAddr    string

	JWTSecret string
	JWTTTL    time.Duration

	// PaymentDelay is the simulated gateway processing time.
	PaymentDelay time.Duration

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:  envOrDefault("DATABASE_URL", "studiobook.db"),
		HTTPAddr:     envOrDefault("HTTP_ADDR", ":8080"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTTTL:       envDuration("JWT_TTL", 24*time.Hour),
		PaymentDelay: envDuration("PAYMENT_DELAY", 2*time.Second),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		LogFormat:    envOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envDuration(name string, def time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
