package config

import "os"

// Config holds everything the process reads from the environment. The
// zero-config default is a fully in-memory storefront on :5000.
type Config struct {
	AppPort       string
	DatabaseURL   string // optional; switches catalog/order/content to Postgres
	RedisAddr     string // optional; switches the cart store to Redis
	AdminUsername string
	AdminPassword string
	JWTSecret     string
}

func Load() Config {
	return Config{
		AppPort:       getenv("APP_PORT", "5000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:     getenv("JWT_SECRET", "handicraft-haven-dev-secret"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
