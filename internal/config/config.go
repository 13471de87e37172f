package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Auth      AuthConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	Catalog   CatalogConfig

	// Warnings lists environment values that were ignored in favour of a default
	Warnings []string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver             string // sqlite3 or postgres
	DSN                string // full connection string, takes precedence over the fields below
	SQLitePath         string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            int
	Host            string
	GinMode         string
	AllowedOrigins  []string
	AllowedMethods  []string
	AllowedHeaders  []string
	ShutdownTimeout time.Duration
}

// AuthConfig holds session token configuration
type AuthConfig struct {
	JWTSecret string
	JWTExpiry time.Duration
	Issuer    string
}

// RedisConfig holds Redis configuration. An empty URL disables Redis.
type RedisConfig struct {
	URL       string
	KeyPrefix string
	CacheTTL  time.Duration
}

// RateLimitConfig holds request rate limiting configuration
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// CatalogConfig holds demo catalog configuration
type CatalogConfig struct {
	SeedOnStart bool
	SeedCount   int
}

const devJWTSecret = "dev-secret-change-me"

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		Database: DatabaseConfig{
			Driver:             getEnv("DB_DRIVER", "sqlite3"),
			DSN:                getEnv("DATABASE_URL", ""),
			SQLitePath:         getEnv("SQLITE_PATH", "ecommerce.db"),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               env.getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "shopchat"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     env.getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MaxIdleConnections: env.getEnvAsInt("DB_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Port:            env.getEnvAsInt("SERVER_PORT", 5000),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:         getEnv("GIN_MODE", "debug"),
			AllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods:  getEnvAsList("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders:  getEnvAsList("CORS_ALLOWED_HEADERS", "Content-Type,Authorization,X-Request-ID"),
			ShutdownTimeout: env.getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", devJWTSecret),
			JWTExpiry: env.getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
			Issuer:    getEnv("JWT_ISSUER", "shopchat"),
		},
		Redis: RedisConfig{
			URL:       getEnv("REDIS_URL", ""),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "shopchat:"),
			CacheTTL:  env.getEnvAsDuration("PRODUCT_CACHE_TTL", 5*time.Minute),
		},
		RateLimit: RateLimitConfig{
			Enabled:  env.getEnvAsBool("RATE_LIMIT_ENABLED", true),
			Requests: env.getEnvAsInt("RATE_LIMIT_REQUESTS", 60),
			Window:   env.getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Catalog: CatalogConfig{
			SeedOnStart: env.getEnvAsBool("SEED_ON_START", true),
			SeedCount:   env.getEnvAsInt("SEED_COUNT", 105),
		},
	}

	if cfg.Auth.JWTSecret == devJWTSecret && cfg.Server.GinMode != "release" {
		env.warnf("JWT_SECRET not set, signing session tokens with the development secret")
	}
	cfg.Warnings = env.warnings

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that cannot fall back to a default
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite3 or postgres)", c.Database.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.Server.GinMode == "release" && c.Auth.JWTSecret == devJWTSecret {
		return errors.New("JWT_SECRET must be set in release mode")
	}
	if c.RateLimit.Enabled && c.RateLimit.Requests <= 0 {
		return errors.New("RATE_LIMIT_REQUESTS must be positive")
	}
	return nil
}

// GetDSN returns the connection string for the configured driver
func (c *Config) GetDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}

	if c.Database.Driver == "sqlite3" {
		return c.Database.SQLitePath
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// Helper functions

// envReader parses typed environment values and remembers the bad ones
type envReader struct {
	warnings []string
}

func (r *envReader) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (r *envReader) getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.warnf("Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func (r *envReader) getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		r.warnf("Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func (r *envReader) getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		r.warnf("Invalid duration value for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsList(key, defaultValue string) []string {
	parts := strings.Split(getEnv(key, defaultValue), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
