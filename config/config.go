package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	devJWTSecret = "dev-secret-change-me"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration, optional
	RedisURL string

	// Shopping list requests allowed per client per minute when Redis is set
	ShoppingListRateLimit int

	// Auth configuration
	JWTSecret     string
	AdminPassword string

	// Recipe image storage, optional
	S3BucketName string
	AWSRegion    string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[Config] Ignoring unreadable .env file: %v", err)
	}

	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		loadValues(cfg, os.Getenv)
	case Development, Test:
		loadValues(cfg, envThenSecret)
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = devJWTSecret
		}
	case Production:
		loadValues(cfg, secretThenEnv)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadValues fills cfg through get, which receives the environment variable
// name. Defaults apply to anything left empty.
func loadValues(cfg *Config, get func(string) string) {
	cfg.ServerPort = withDefault(get("SERVER_PORT"), "8080")
	cfg.ServerHost = withDefault(get("SERVER_HOST"), "0.0.0.0")
	cfg.CORSOrigins = splitList(withDefault(get("CORS_ORIGINS"), "http://localhost:3000"))

	cfg.DBDriver = strings.ToLower(withDefault(get("DB_DRIVER"), DriverSQLite))
	cfg.DBPath = withDefault(get("DB_PATH"), "ourkitchen.db")
	cfg.DBHost = withDefault(get("DB_HOST"), "localhost")
	cfg.DBPort = withDefault(get("DB_PORT"), "5432")
	cfg.DBUser = get("DB_USER")
	cfg.DBPassword = get("DB_PASSWORD")
	cfg.DBName = withDefault(get("DB_NAME"), "ourkitchen")
	cfg.DBSSLMode = withDefault(get("DB_SSL_MODE"), "disable")

	cfg.RedisURL = get("REDIS_URL")
	cfg.ShoppingListRateLimit = 60
	if n, err := strconv.Atoi(get("SHOPPING_LIST_RATE_LIMIT")); err == nil && n > 0 {
		cfg.ShoppingListRateLimit = n
	}

	cfg.JWTSecret = get("JWT_SECRET")
	cfg.AdminPassword = get("ADMIN_PASSWORD")

	cfg.S3BucketName = get("S3_BUCKET_NAME")
	cfg.AWSRegion = get("AWS_REGION")
}

// DSN returns the lib/pq connection string for the Postgres driver
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// envThenSecret prefers the environment and falls back to a Docker secret
// named after the lower-cased variable.
func envThenSecret(name string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return readSecret(strings.ToLower(name))
}

// secretThenEnv prefers Docker secrets, as production deployments do.
func secretThenEnv(name string) string {
	if v := readSecret(strings.ToLower(name)); v != "" {
		return v
	}
	return os.Getenv(name)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
