package config

import (
	"net"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultRegion  = "us-east-1"
	DefaultModelID = "anthropic.claude-3-sonnet-20240229-v1:0"
)

type Config struct {
	Host      string
	Port      string
	AWSRegion string
	ModelID   string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Host:      getEnv("HOST", "127.0.0.1"),
		Port:      getEnv("PORT", "8000"),
		AWSRegion: getEnv("AWS_REGION", DefaultRegion),
		ModelID:   getEnv("BEDROCK_MODEL_ID", DefaultModelID),
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
