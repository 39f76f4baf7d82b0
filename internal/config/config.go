// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
	"golang.org/x/text/currency"
)

type Config struct {
	// HTTP server
	APIURL      *url.URL
	ListenAddr  string
	GinMode     string
	LogFormat   string
	CORSOrigins []string
	EnablePprof bool

	// Database
	DBDriver string
	DBDSN    string

	// Authentication
	JWTSecret []byte

	// Cache
	CacheBackend string
	CacheTTL     time.Duration
	CacheSize    int
	RedisAddr    string

	// AMQP, events are only logged if the URL is empty
	AMQPURL      string
	AMQPExchange string

	// Presentation
	Currency           currency.Unit
	RecentTransactions int
}

var (
	dbDrivers     = []string{"sqlite", "postgres"}
	cacheBackends = []string{"none", "memory", "redis"}
)

// Load reads the configuration. Variables from a .env file in the working
// directory are loaded first, the process environment takes precedence.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	apiURL, err := url.Parse(getEnv("API_URL", "http://localhost:8080"))
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	unit, err := currency.ParseISO(getEnv("CURRENCY", "INR"))
	if err != nil {
		return nil, fmt.Errorf("environment variable CURRENCY must be an ISO 4217 code: %w", err)
	}

	cfg := &Config{
		APIURL:      apiURL,
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		GinMode:     getEnv("GIN_MODE", "release"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
		CORSOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof: os.Getenv("ENABLE_PPROF") == "true",

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBDSN:    getEnv("DB_DSN", "data/pocketledger.db"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),

		CacheBackend: getEnv("CACHE_BACKEND", "memory"),
		CacheTTL:     getEnvDuration("CACHE_TTL", time.Minute),
		CacheSize:    getEnvInt("CACHE_SIZE", 1000),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "pocketledger"),

		Currency:           unit,
		RecentTransactions: getEnvInt("RECENT_TRANSACTIONS", 10),
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.APIURL.Scheme != "http" && c.APIURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': scheme must be 'http' or 'https'", c.APIURL))
	}

	if !slices.Contains(dbDrivers, c.DBDriver) {
		errors = append(errors, fmt.Sprintf("invalid database driver '%s': must be one of %v", c.DBDriver, dbDrivers))
	}

	if c.DBDSN == "" {
		errors = append(errors, "database DSN cannot be empty")
	}

	if len(c.JWTSecret) < 32 {
		errors = append(errors, "JWT secret must be at least 32 bytes long")
	}

	if !slices.Contains(cacheBackends, c.CacheBackend) {
		errors = append(errors, fmt.Sprintf("invalid cache backend '%s': must be one of %v", c.CacheBackend, cacheBackends))
	}

	if c.CacheBackend != "none" && c.CacheTTL <= 0 {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must be positive", c.CacheTTL))
	}

	if c.CacheBackend == "memory" && c.CacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheSize))
	}

	if c.CacheBackend == "redis" && c.RedisAddr == "" {
		errors = append(errors, "Redis address cannot be empty when using the redis cache backend")
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if c.RecentTransactions < 1 || c.RecentTransactions > 100 {
		errors = append(errors, fmt.Sprintf("invalid number of recent transactions %d: must be between 1 and 100", c.RecentTransactions))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
