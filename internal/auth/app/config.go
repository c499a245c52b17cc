package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/AnikDM/SchoolManagement/pkg/jwtx"
)

type Config struct {
	SigningSecret string        // Required: symmetric key for session tokens (min 32 bytes)
	Issuer        string        // Optional: issuer claim for tokens (default: school-auth)
	Audience      string        // Optional: audience claim for tokens (default: school-management)
	TokenTTL      time.Duration // Optional: session token lifetime (default: 8h)
	AdminUsername string        // Optional: username that gets the admin role (default: admin)

	DatabaseFile string // Optional: path to SQLite database file (default: ./auth.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, consulting an optional
// .env file first. The signing secret is the only hard requirement; Validate
// reports it so the binary fails at startup rather than on first login.
func LoadConfig() Config {
	// Ignore a missing .env, real deployments inject the environment directly.
	_ = godotenv.Load()

	return Config{
		SigningSecret: os.Getenv("AUTH_SIGNING_SECRET"),
		Issuer:        getEnvOrDefault("AUTH_ISSUER", "school-auth"),
		Audience:      getEnvOrDefault("AUTH_AUDIENCE", "school-management"),
		TokenTTL:      getEnvDurationOrDefault("AUTH_TOKEN_TTL", jwtx.DefaultSessionTTL),
		AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),

		DatabaseFile: getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		PepperFile:   getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate checks the invariants LoadConfig cannot default its way out of.
func (c Config) Validate() error {
	if c.SigningSecret == "" {
		return fmt.Errorf("AUTH_SIGNING_SECRET is required")
	}
	if len(c.SigningSecret) < jwtx.MinSecretLength {
		return fmt.Errorf(
			"AUTH_SIGNING_SECRET must be at least %d bytes, got %d",
			jwtx.MinSecretLength, len(c.SigningSecret))
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
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
