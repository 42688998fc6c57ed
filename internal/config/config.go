package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort          = "8080"
	defaultJWTTTL        = "168h"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultAdminEmail    = "admin@sharksports.com"
	defaultAdminPassword = "admin123"
	defaultPayUBaseURL   = "https://test.payu.in"
	defaultPublicBaseURL = "http://localhost:8080"
)

type Config struct {
	AppEnv        string
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	AdminEmail    string
	AdminPassword string

	// Gateway fallbacks used when no payment_config row is active.
	PayUKey     string
	PayUSalt    string
	PayUBaseURL string

	// Base URL the payment gateway redirects back to.
	PublicBaseURL string

	// Optional infrastructure. Empty values disable the feature.
	RedisAddr     string
	RedisPassword string
	AMQPURL       string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:        strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:          getEnv("PORT", defaultPort),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:     strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		AdminEmail:    getEnv("ADMIN_EMAIL", defaultAdminEmail),
		AdminPassword: getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		PayUKey:       os.Getenv("PAYU_KEY"),
		PayUSalt:      os.Getenv("PAYU_SALT"),
		PayUBaseURL:   getEnv("PAYU_BASE_URL", defaultPayUBaseURL),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", defaultPublicBaseURL), "/"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AMQPURL:       os.Getenv("AMQP_URL"),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.AppEnv != "dev" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set outside dev")
	}
	if cfg.JWTTTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be > 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, raw)
	}
	return d, nil
}
