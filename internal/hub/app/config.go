package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cfohub/cfohub/pkg/jwtx"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer    string // Issuer claim for access tokens (default: cfohub)
	JWTSecret string // Required: HMAC secret for signing access tokens (min 32 bytes)

	AccessTTL  time.Duration // Access token lifetime (default: 15m)
	RefreshTTL time.Duration // Refresh token lifetime (default: 168h)

	DatabaseFile string // Path to SQLite database file (default: ./hub.db)
	PepperFile   string // Path to the password-hashing pepper file (default: ./pepper)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-token sweep interval (default: 1h)

	LoginRateLimit    int // Login attempts per minute per IP (default: 5)
	RefreshRateLimit  int // Refresh attempts per minute per IP (default: 10)
	RegisterRateLimit int // Registrations per hour per IP (default: 3)
}

// LoadConfig reads configuration from the environment, after loading a .env
// file if one is present next to the binary.
func LoadConfig() (Config, error) {
	// A missing .env file is not an error; env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:    getEnvOrDefault("HUB_ISSUER", "cfohub"),
		JWTSecret: os.Getenv("HUB_JWT_SECRET"),

		AccessTTL:  getEnvDurationOrDefault("HUB_ACCESS_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTTL: getEnvDurationOrDefault("HUB_REFRESH_TTL", jwtx.DefaultRefreshTokenTTL),

		DatabaseFile: getEnvOrDefault("HUB_DATABASE_FILE", "hub.db"),
		PepperFile:   getEnvOrDefault("HUB_PEPPER_FILE", "pepper"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		LoginRateLimit:    getEnvIntOrDefault("HUB_LOGIN_RATE_LIMIT", 5),
		RefreshRateLimit:  getEnvIntOrDefault("HUB_REFRESH_RATE_LIMIT", 10),
		RegisterRateLimit: getEnvIntOrDefault("HUB_REGISTER_RATE_LIMIT", 3),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("HUB_JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return Config{}, fmt.Errorf("HUB_JWT_SECRET must be at least 32 bytes, got %d", len(cfg.JWTSecret))
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
