// config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the menu backend.
type Config struct {
	Port  string
	DB    DBConfig
	Admin AdminConfig
	JWT   JWTConfig
}

type DBConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// AdminConfig carries the single admin identity. Username and Password fall
// back to insecure defaults when unset; PasswordHash, when present, takes
// precedence over the plaintext password (bcrypt compare).
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

type JWTConfig struct {
	Secret string
}

// Load reads .env (if present) and builds the configuration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return &Config{
		Port: getEnv("PORT", "8080"),
		DB: DBConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "tastehaven"),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", "admin123"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
