package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DatabaseURL       string
	JWTSecret         string
	AdminPasswordHash string // bcrypt hash of the ops-surface admin password
	Currency          string // one 3-letter code for the whole catalog
}

// Load reads the environment, picking up a local .env file when present.
// Values the service cannot run without fail here instead of at first use.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:              getenv("ADDR", ":8080"),
		DatabaseURL:       getenv("DATABASE_URL", "studio.db"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		Currency:          getenv("CURRENCY", "SEK"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}
	if cfg.AdminPasswordHash == "" {
		return nil, errors.New("ADMIN_PASSWORD_HASH is empty")
	}
	if len(cfg.Currency) != 3 {
		return nil, errors.New("CURRENCY must be a 3-letter code")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
