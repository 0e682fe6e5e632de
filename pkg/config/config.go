package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file when one exists in the working directory.
// Deployed environments set real environment variables instead.
func Load() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("Error loading .env file: %v", err)
		}
	}
}

// GetEnv returns the value of key, or fallback when the variable is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
