package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env      string
	HTTPAddr string

	// DataDir backs the default file store; DatabaseURL switches the slot
	// store to Postgres when set.
	DataDir     string
	DatabaseURL string

	JWTSecret        string
	JWTExpirySeconds int64

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	RestaurantName     string
	RestaurantLocation string
	RestaurantPhone    string
	Currency           string
	DeliveryFee        int64

	CorsAllowedOrigins  []string
	WSHeartbeatInterval time.Duration
}

func Load() Config {
	cfg := Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8087"),

		DataDir:     getEnv("DATA_DIR", "./data"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTExpirySeconds: getEnvInt64("JWT_EXPIRY", 8*3600),

		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		RestaurantName:     getEnv("RESTAURANT_NAME", "Grand Bassam"),
		RestaurantLocation: getEnv("RESTAURANT_LOCATION", "Kouara Kano, Niamey"),
		RestaurantPhone:    getEnv("RESTAURANT_PHONE", "+227 8877 0594"),
		Currency:           getEnv("CURRENCY", "FCFA"),
		DeliveryFee:        getEnvInt64("DELIVERY_FEE", 1000),

		CorsAllowedOrigins:  splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
		WSHeartbeatInterval: getEnvDuration("WS_HEARTBEAT_INTERVAL", 30*time.Second),
	}

	if cfg.DeliveryFee < 0 {
		cfg.DeliveryFee = 0
	}

	// Development keeps the credentials the site shipped with so the admin
	// console works out of the box. Production must set its own.
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" && cfg.Env != "production" {
		cfg.AdminPassword = "bassam227"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt64(key string, fallback int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
