package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Environment string
	Port        string

	// Postgres connection pieces. When DBHost is empty the server falls
	// back to a local SQLite file so development needs no services.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis backs the index page cache. When RedisHost is empty the
	// server uses an in-process store instead.
	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret string

	// PageSize applies to every paginated feed in the process.
	PageSize int

	// IndexCacheTTL bounds how stale the cached global index page may be.
	IndexCacheTTL time.Duration

	AWSRegion  string
	AWSBucket  string
	CDNBaseURL string
	MediaDir   string
}

// Load reads configuration from the environment, applying defaults
// suitable for local development.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		Port:        getEnvOrDefault("PORT", "8686"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnvOrDefault("DB_PORT", "5432"),
		DBUser:     getEnvOrDefault("DB_USER", "quillhub"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvOrDefault("DB_NAME", "quillhub"),
		DBSSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		SQLitePath: getEnvOrDefault("SQLITE_PATH", "quillhub.db"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		PageSize:      getEnvInt("PAGE_SIZE", 10),
		IndexCacheTTL: getEnvDuration("INDEX_CACHE_TTL", 20*time.Second),

		AWSRegion:  getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSBucket:  os.Getenv("AWS_BUCKET"),
		CDNBaseURL: os.Getenv("CDN_BASE_URL"),
		MediaDir:   getEnvOrDefault("UPLOAD_DIR", "media"),
	}

	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("PAGE_SIZE must be at least 1, got %d", cfg.PageSize)
	}
	if cfg.IndexCacheTTL <= 0 {
		return nil, fmt.Errorf("INDEX_CACHE_TTL must be positive, got %s", cfg.IndexCacheTTL)
	}
	if cfg.Environment != "development" && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required outside development")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-only-insecure-secret"
	}

	return cfg, nil
}

// UsePostgres reports whether a Postgres host is configured.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN builds the connection string for gorm's postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	// Accept either a Go duration ("20s") or a bare number of seconds.
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
