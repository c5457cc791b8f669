package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Engine    EngineConfig
	Auth      AuthConfig
	Narrative NarrativeConfig
	Provider  ProviderConfig
}

// ProviderConfig points at the upstream account aggregator API. An empty
// BaseURL means no live provider is configured and demo data is the only
// source available.
type ProviderConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	RateLimitPerSec  int
	RateLimitBurst   int
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// CacheConfig selects and tunes the request-coalescing cache. The TTL is
// deliberately short: the cache exists to absorb bursts of identical
// dashboard requests, not to serve as a source of truth.
type CacheConfig struct {
	Backend   string // "memory" or "redis"
	TTL       time.Duration
	RedisAddr string
	RedisDB   int
}

// EngineConfig tunes the aggregation engine itself.
type EngineConfig struct {
	// HistoryCap bounds the per-user net worth history list.
	HistoryCap int
	// HistoryDedupWindow is the minimum gap before an identical consecutive
	// net worth value is appended again.
	HistoryDedupWindow time.Duration
	// AnomalyStdDevMultiplier is the k in the mean + k*stddev threshold.
	AnomalyStdDevMultiplier float64
	// SanityBound is the absolute magnitude above which a computed total is
	// treated as a hard violation rather than a displayable number.
	SanityBound float64
	// DemoMode substitutes the fixed placeholder data source for users with
	// no linked accounts.
	DemoMode bool
	// TrendRangeDays is the default lookback window for trend analyses.
	TrendRangeDays int
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

type NarrativeConfig struct {
	Enabled bool
	Model   string
	Timeout time.Duration
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			RateLimitPerSec: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:  getIntEnv("RATE_LIMIT_BURST", 20),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finsight_user"),
			Password:        getEnv("DB_PASSWORD", "finsight_password"),
			Name:            getEnv("DB_NAME", "finsight_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Cache: CacheConfig{
			Backend:   getEnv("CACHE_BACKEND", "memory"),
			TTL:       getDurationEnv("CACHE_TTL", 30*time.Second),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
			RedisDB:   getIntEnv("REDIS_DB", 0),
		},
		Engine: EngineConfig{
			HistoryCap:              getIntEnv("HISTORY_CAP", 100),
			HistoryDedupWindow:      getDurationEnv("HISTORY_DEDUP_WINDOW", 5*time.Minute),
			AnomalyStdDevMultiplier: getFloatEnv("ANOMALY_STDDEV_MULTIPLIER", 2.0),
			SanityBound:             getFloatEnv("METRICS_SANITY_BOUND", 1e9),
			DemoMode:                getBoolEnv("DEMO_MODE", false),
			TrendRangeDays:          getIntEnv("TREND_RANGE_DAYS", 90),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", "finsight"),
		},
		Narrative: NarrativeConfig{
			Enabled: getBoolEnv("NARRATIVE_ENABLED", false),
			Model:   getEnv("NARRATIVE_MODEL", "gemini-2.0-flash"),
			Timeout: getDurationEnv("NARRATIVE_TIMEOUT", 10*time.Second),
		},
		Provider: ProviderConfig{
			BaseURL: getEnv("PROVIDER_BASE_URL", ""),
			APIKey:  getEnv("PROVIDER_API_KEY", ""),
			Timeout: getDurationEnv("PROVIDER_TIMEOUT", 15*time.Second),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.Auth.JWTSecret == "" {
		if config.IsProduction() {
			log.Fatal("JWT_SECRET must be set in production environments")
		}
		log.Println("Development environment: using insecure default JWT secret (set JWT_SECRET to override)")
		config.Auth.JWTSecret = "finsight-dev-secret"
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
