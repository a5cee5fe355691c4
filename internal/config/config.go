package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Model     ModelConfig
	Links     LinksFileConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// ModelConfig holds the classifier artifact location
type ModelConfig struct {
	Path string
}

// LinksFileConfig holds the navigation link table location and the
// deployment environment used to resolve links at startup
type LinksFileConfig struct {
	File string
	Env  string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8502"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Model: ModelConfig{
			Path: getEnvOrDefault("MODEL_PATH", "models/random_forest.json"),
		},
		Links: LinksFileConfig{
			File: getEnvOrDefault("LINKS_FILE", "config/links.toml"),
			Env:  getEnvOrDefault("APP_ENV", "local"),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
