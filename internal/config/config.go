package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	StaticDir  string
	UploadDir  string
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	return &Config{
		ServerPort: getenv("SERVER_PORT", "8080"),
		StaticDir:  getenv("STATIC_DIR", "static"),
		UploadDir:  getenv("UPLOAD_DIR", "uploads"),
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
