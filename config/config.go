package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DatabaseURL   string
	DatabaseName  string
	Port          string
	SessionSecret string
	ClientURL     string
}

// ConfigInstance is the global configuration instance
var ConfigInstance *Config

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DatabaseURL:   os.Getenv("DATABASE_CONNECTION_STRING"),
		DatabaseName:  os.Getenv("DATABASE_NAME"),
		Port:          os.Getenv("PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		ClientURL:     os.Getenv("CLIENT_URL"),
	}

	if config.Port == "" {
		config.Port = "4000"
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = "mongodb://127.0.0.1:27017"
	}

	if config.DatabaseName == "" {
		config.DatabaseName = "kambaz"
	}

	if config.ClientURL == "" {
		config.ClientURL = "http://localhost:3000"
	}

	if config.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return config, nil
}
