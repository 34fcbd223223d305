package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Cache   CacheConfig
	Catalog CatalogConfig
	Deal    DealConfig
	Gemini  GeminiConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// StorageConfig selects and configures the recommendation journal
type StorageConfig struct {
	Driver             string // memory, postgres or sqlite
	DSN                string // full postgres connection string, used when set
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	SQLitePath         string
}

// CacheConfig holds recommendation cache configuration
type CacheConfig struct {
	RedisAddr     string // empty means in-process cache
	RedisPassword string
	RedisDB       int
	TTLSeconds    int
	MaxEntries    int // in-process cache only
}

// CatalogConfig points at an alternate vehicle catalog
type CatalogConfig struct {
	File string
}

// DealConfig holds the upsell/downsell thresholds
type DealConfig struct {
	UpsellThreshold     float64
	UpsellCap           float64
	DownsellThreshold   float64
	DownsellCap         float64
	ReferenceTermMonths int
}

// GeminiConfig holds the optional narrator configuration
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout int
	Enabled bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	geminiKey := getEnv("GEMINI_API_KEY", "")

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", getEnvAsInt("PORT", 3001)),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Storage: StorageConfig{
			Driver:             strings.ToLower(getEnv("STORAGE_DRIVER", "memory")),
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "dreamtrip"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
			SQLitePath:         getEnv("SQLITE_PATH", "dreamtrip.db"),
		},
		Cache: CacheConfig{
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			TTLSeconds:    getEnvAsInt("CACHE_TTL_SECONDS", 600),
			MaxEntries:    getEnvAsInt("CACHE_MAX_ENTRIES", 1000),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", ""),
		},
		Deal: DealConfig{
			UpsellThreshold:     getEnvAsFloat("DEAL_UPSELL_THRESHOLD", 5000),
			UpsellCap:           getEnvAsFloat("DEAL_UPSELL_CAP", 10000),
			DownsellThreshold:   getEnvAsFloat("DEAL_DOWNSELL_THRESHOLD", 3000),
			DownsellCap:         getEnvAsFloat("DEAL_DOWNSELL_CAP", 8000),
			ReferenceTermMonths: getEnvAsInt("DEAL_REFERENCE_TERM_MONTHS", 60),
		},
		Gemini: GeminiConfig{
			APIKey:  geminiKey,
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
			Timeout: getEnvAsInt("GEMINI_TIMEOUT_SECONDS", 10),
			// a key is required; GEMINI_ENABLED=false switches a configured key off
			Enabled: geminiKey != "" && getEnvAsBool("GEMINI_ENABLED", true),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "memory", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q (want memory, postgres or sqlite)", c.Storage.Driver)
	}
	if c.Deal.ReferenceTermMonths <= 0 {
		return fmt.Errorf("DEAL_REFERENCE_TERM_MONTHS must be positive, got %d", c.Deal.ReferenceTermMonths)
	}
	return nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.Storage.DSN != "" {
		return c.Storage.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Storage.Host,
		c.Storage.Port,
		c.Storage.User,
		c.Storage.Password,
		c.Storage.Database,
		c.Storage.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}
