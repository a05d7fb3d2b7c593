package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath       string
	APIPort      string
	LogLevel     slog.Level
	LogFormat    string
	TaxonomyPath string

	// SearchRateLimit is the sustained per-client search rate in requests
	// per second. Zero disables limiting.
	SearchRateLimit float64
	SearchRateBurst int

	MCPTransport string
	MCPPort      string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent directory, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:       getEnv("DB_PATH", "./data/worldforge.db"),
		APIPort:      getEnv("API_PORT", "9000"),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
		TaxonomyPath: getEnv("TAXONOMY_PATH", ""),
		MCPTransport: strings.ToLower(getEnv("MCP_TRANSPORT", "stdio")),
		MCPPort:      getEnv("MCP_PORT", "9100"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	if cfg.MCPTransport != "stdio" && cfg.MCPTransport != "http" {
		return nil, fmt.Errorf("MCP_TRANSPORT must be stdio or http, got %q", cfg.MCPTransport)
	}

	cfg.SearchRateLimit, err = strconv.ParseFloat(getEnv("SEARCH_RATE_LIMIT", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("SEARCH_RATE_LIMIT must be a number: %w", err)
	}
	if cfg.SearchRateLimit < 0 {
		return nil, fmt.Errorf("SEARCH_RATE_LIMIT must not be negative")
	}
	cfg.SearchRateBurst, err = strconv.Atoi(getEnv("SEARCH_RATE_BURST", "20"))
	if err != nil {
		return nil, fmt.Errorf("SEARCH_RATE_BURST must be a valid integer: %w", err)
	}
	if cfg.SearchRateBurst <= 0 {
		return nil, fmt.Errorf("SEARCH_RATE_BURST must be greater than 0")
	}

	// Create the data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
