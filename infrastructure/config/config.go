package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the simulator reads from the environment.
type Config struct {
	// APITokens are the accepted values for "Authorization: Api-Token {token}".
	APITokens []string

	ServerHost  string
	ServerPort  string
	Environment string

	LogLevel  string
	LogFormat string

	CORSEnabled        bool
	CORSAllowedOrigins []string

	// DefaultPageSize caps the metric list response when the client sends no
	// pageSize parameter.
	DefaultPageSize int
	// MaxDataPoints truncates the generation walk for absurd time ranges.
	// 0 disables the cap.
	MaxDataPoints int
}

var (
	ErrNoAPITokens      = errors.New("DT_API_TOKENS must contain at least one token")
	ErrInvalidPageSize  = errors.New("DEFAULT_PAGE_SIZE must be positive")
	ErrInvalidMaxPoints = errors.New("MAX_DATA_POINTS must not be negative")
)

// DefaultAPITokens are the tokens accepted when DT_API_TOKENS is unset,
// matching what test suites against the simulator historically used.
const DefaultAPITokens = "dt0c01.sample.token1,dt0c01.sample.token2,test-token"

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		APITokens:          splitCSV(getEnvOrDefault("DT_API_TOKENS", DefaultAPITokens)),
		ServerHost:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
		ServerPort:         getEnvOrDefault("SERVER_PORT", "8080"),
		Environment:        getEnvOrDefault("ENV", "development"),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", "json"),
		CORSEnabled:        getEnvOrDefaultBool("CORS_ENABLED", true),
		CORSAllowedOrigins: splitCSV(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "")),
		DefaultPageSize:    getEnvOrDefaultInt("DEFAULT_PAGE_SIZE", 500),
		MaxDataPoints:      getEnvOrDefaultInt("MAX_DATA_POINTS", 10000),
	}

	if len(cfg.APITokens) == 0 {
		return nil, ErrNoAPITokens
	}
	if cfg.DefaultPageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	if cfg.MaxDataPoints < 0 {
		return nil, ErrInvalidMaxPoints
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func splitCSV(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
