// Package config loads FinanceBook configuration from the environment.
// Both the REST server and the terminal client read from the same Config;
// each uses only its own section.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Env string

	// Server
	Port          string
	UploadDir     string
	MaxUploadSize int64

	// Database
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Client
	APIURL     string
	Timeout    time.Duration
	MaxRetries int
	TokenFile  string
	PageSize   int
}

const (
	defaultTimeout       = 10 * time.Second
	defaultMaxUploadSize = 25 * 1024 * 1024
)

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env: getEnv("ENV", "development"),

		// Server
		Port:          getEnv("PORT", "8000"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize: int64(getInt("MAX_UPLOAD_SIZE", defaultMaxUploadSize)),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "financebook.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "financebook"),
		DBPassword: getEnv("DB_PASSWORD", "financebook"),
		DBName:     getEnv("DB_NAME", "financebook"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret:        getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		JWTExpirationDur: getDuration("JWT_EXPIRES_IN", 24*time.Hour),

		// Client
		APIURL:     getEnv("FINANCEBOOK_API_URL", "http://localhost:8000/api"),
		Timeout:    getDuration("FINANCEBOOK_TIMEOUT", defaultTimeout),
		MaxRetries: getInt("FINANCEBOOK_MAX_RETRIES", 3),
		TokenFile:  getEnv("FINANCEBOOK_TOKEN_FILE", defaultTokenFile()),
		PageSize:   getInt("FINANCEBOOK_PAGE_SIZE", 10),
	}

	if config.PageSize <= 0 {
		log.Printf("Warning: invalid FINANCEBOOK_PAGE_SIZE %d, falling back to 10\n", config.PageSize)
		config.PageSize = 10
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the active configuration. Used by tests and embedded servers.
func Set(cfg *Config) {
	appConfig = cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".financebook_token"
	}
	return filepath.Join(home, ".financebook", "token")
}
