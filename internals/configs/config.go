package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// =======================
// ENV LOADER
// =======================

// LoadEnv reads .env when running locally. Deployed environments set
// DEPLOY_ENV and provide everything through real environment variables.
func LoadEnv() {
	if os.Getenv("DEPLOY_ENV") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system environment")
		}
	}
}

// GetEnv returns the value of key or def when unset/empty.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
