package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

// loadEnvFiles loads environment variables from .env/.env.local if present.
// It stops at the first file that parses; existing process environment
// variables are never overwritten.
func loadEnvFiles() {
	for _, path := range []string{".env", ".env.local"} {
		if err := godotenv.Load(path); err == nil {
			slog.Debug("Loaded environment variables", "file", path)
			return
		}
	}
}
