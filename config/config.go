package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	Port string

	// Persistence
	DataFile    string
	DataBackend string

	// Logging
	LogLevel string
}

// Load reads configuration from the environment, with a .env file as an
// optional source. Missing variables fall back to defaults.
func Load() *Config {
	// A missing .env file is fine; real env vars still apply.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DataFile:    getEnv("DATA_FILE", "./data/transactions.json"),
		DataBackend: getEnv("DATA_BACKEND", "file"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	switch c.DataBackend {
	case "file", "memory":
	default:
		return fmt.Errorf("invalid data backend %q: must be \"file\" or \"memory\"", c.DataBackend)
	}

	if c.DataBackend == "file" && c.DataFile == "" {
		return fmt.Errorf("data file path cannot be empty with the file backend")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
