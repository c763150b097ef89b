package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the process-level configuration. Everything user-specific lives
// in the addon installation URL instead; nothing here is persisted.
type Config struct {
	// Server
	ServerPort int
	Host       string

	// BaseURL is the externally reachable address embedded in every URL the
	// addon hands to Stremio. It must match what the reverse proxy exposes.
	BaseURL string

	// Trakt OAuth application credentials
	TraktClientID     string
	TraktClientSecret string

	// Debug
	Debug bool
}

// Load reads configuration from the environment.
func Load() *Config {
	port := getEnvInt("PORT", 7000)
	baseURL := getEnv("BASE_URL", fmt.Sprintf("http://localhost:%d", port))

	return &Config{
		ServerPort:        port,
		Host:              getEnv("HOST", "0.0.0.0"),
		BaseURL:           strings.TrimRight(baseURL, "/"),
		TraktClientID:     getEnv("TRAKT_CLIENT_ID", ""),
		TraktClientSecret: getEnv("TRAKT_CLIENT_SECRET", ""),
		Debug:             getEnv("DEBUG", "") == "true",
	}
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or a default value
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
