package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every startup parameter of the dashboard app.
type Config struct {
	Env             string
	HTTPPort        string
	BackendBaseURL  string
	PushGatewayURL  string
	DataDir         string
	RequestTimeout  time.Duration
	RefetchInterval time.Duration
	MaxUploadSizeMB int64
	AllowedOrigins  []string
	RateLimitLimit  int64
	RateLimitPeriod time.Duration
}

// Load reads the environment and returns a ready configuration.
func Load() (*Config, error) {
	// Load .env only if present, otherwise rely on the process environment.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: no .env found, using environment variables: %v", err)
	}

	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Env:             env,
		HTTPPort:        getEnv("HTTP_PORT", "4173"),
		BackendBaseURL:  getEnv("BACKEND_BASE_URL", "http://localhost:8080"),
		PushGatewayURL:  getEnv("PUSH_GATEWAY_URL", "ws://localhost:8080/push"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		MaxUploadSizeMB: mustParseInt64(getEnv("MAX_UPLOAD_MB", "10")),
	}

	if env == "production" {
		if getEnv("BACKEND_BASE_URL", "") == "" {
			return nil, fmt.Errorf("config: BACKEND_BASE_URL is required in production")
		}
		if getEnv("PUSH_GATEWAY_URL", "") == "" {
			return nil, fmt.Errorf("config: PUSH_GATEWAY_URL is required in production")
		}
	}

	// CORS allowed origins for the local UI surface.
	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	} else {
		cfg.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.AllowedOrigins {
			cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	cfg.RequestTimeout = mustParseDuration(getEnv("REQUEST_TIMEOUT", "15s"))
	cfg.RefetchInterval = mustParseDuration(getEnv("REFETCH_INTERVAL", "2m"))

	// Rate limiting for the auth endpoints.
	cfg.RateLimitLimit = mustParseInt64(getEnv("RATE_LIMIT_LIMIT", "10"))
	cfg.RateLimitPeriod = mustParseDuration(getEnv("RATE_LIMIT_PERIOD", "1m"))

	return cfg, nil
}

// getEnv returns an environment variable or the fallback.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func mustParseDuration(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: invalid duration %q, using 15s: %v", raw, err)
		return 15 * time.Second
	}
	return d
}

func mustParseInt64(raw string) int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("config: invalid number %q, using 10: %v", raw, err)
		return 10
	}
	return v
}
