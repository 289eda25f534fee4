// Package config provides configuration management for the tile estimator.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	LocalStore LocalStoreConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port               string
	RateLimit          int
	RateWindow         time.Duration
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	IdempotencyEnabled bool
	CORSOrigins        []string
	SwaggerUser        string
	SwaggerPass        string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LocalStoreConfig holds the SQLite file store used when MongoDB is disabled
// or unreachable.
type LocalStoreConfig struct {
	Path    string
	Enabled bool
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// LoadEnvFiles loads variables from .env style files into the environment.
// Variables already set are kept. Missing files are ignored.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			RateLimit:          getEnvInt("RATE_LIMIT", 100),
			RateWindow:         getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			IdempotencyEnabled: getEnvBool("IDEMPOTENCY_ENABLED", true),
			CORSOrigins:        parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:        getEnv("SWAGGER_USER", ""),
			SwaggerPass:        getEnv("SWAGGER_PASS", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "tile_estimator"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		LocalStore: LocalStoreConfig{
			Path:    getEnv("LOCAL_STORE_PATH", "data/customers.db"),
			Enabled: getEnvBool("LOCAL_STORE_ENABLED", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseCORSOrigins returns nil for "*", which allows any origin.
func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return defaults
	}
	if s == "*" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
