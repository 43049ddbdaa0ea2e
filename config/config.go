package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads a variable from the environment, loading .env once if present.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Print("Error loading .env file")
	}
	return os.Getenv(key)
}
