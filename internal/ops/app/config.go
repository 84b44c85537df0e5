package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Issuer   string   // Issuer claim for access tokens (default: opsdesk)
	Audience []string // Audience claims validated on access tokens (default: opsdesk)

	DatabaseFile string // Path to the SQLite database file (default: ./opsdesk.db)
	PepperFile   string // Path to the password hashing pepper file (default: ./pepper)

	BootstrapAdminEmail    string // Email of the first Direktur account, created when the profiles table is empty
	BootstrapAdminPassword string // Password for the bootstrap account; generated when empty
	BootstrapAdminName     string // Display name for the bootstrap account (default: Direktur)

	AccessTokenTTL   time.Duration // Access token lifetime (default: 1h)
	RememberTokenTTL time.Duration // Remember token lifetime (default: 30 days)

	Env                   string        // Environment (dev, staging, prod) (default: dev)
	LogLevel              string        // Log level (debug, info, warn, error) (default: info)
	LogFormat             string        // Log format (json, text) (default: json)
	Port                  int           // HTTP server port (default: 8080)
	ShutdownGracePeriod   time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval  time.Duration // Housekeeping interval (default: 1h)
	NotificationRetention time.Duration // How long read notifications are kept (default: 30 days)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       getEnvOrDefault("OPSDESK_ISSUER", "opsdesk"),
		DatabaseFile: getEnvOrDefault("OPSDESK_DATABASE_FILE", "opsdesk.db"),
		PepperFile:   getEnvOrDefault("OPSDESK_PEPPER_FILE", "pepper"),

		BootstrapAdminEmail:    os.Getenv("OPSDESK_BOOTSTRAP_EMAIL"),
		BootstrapAdminPassword: os.Getenv("OPSDESK_BOOTSTRAP_PASSWORD"),
		BootstrapAdminName:     getEnvOrDefault("OPSDESK_BOOTSTRAP_NAME", "Direktur"),

		AccessTokenTTL:   getEnvDurationOrDefault("OPSDESK_ACCESS_TTL", 0),
		RememberTokenTTL: getEnvDurationOrDefault("OPSDESK_REMEMBER_TTL", 0),

		Env:                   getEnvOrDefault("ENV", "dev"),
		LogLevel:              getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:             getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                  getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:   getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval:  getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		NotificationRetention: getEnvDurationOrDefault("NOTIFICATION_RETENTION", 30*24*time.Hour),
	}

	// Audience accepts a comma-separated list; defaults to the issuer so a
	// single-service deployment needs no extra configuration.
	if aud := os.Getenv("OPSDESK_AUDIENCE"); aud != "" {
		for _, a := range strings.Split(aud, ",") {
			if a = strings.TrimSpace(a); a != "" {
				cfg.Audience = append(cfg.Audience, a)
			}
		}
	}
	if len(cfg.Audience) == 0 {
		cfg.Audience = []string{cfg.Issuer}
	}

	return cfg
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

	// Integer values read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
