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

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Environment string
	LogLevel    string
	Database    DatabaseConfig
	Server      ServerConfig
	Auth        AuthConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Scheduler   SchedulerConfig
	SteamGifts  SteamGiftsConfig
	Catalog     CatalogConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Name     string
	SSLMode  string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// AuthConfig guards the control API. An empty secret disables the check.
type AuthConfig struct {
	JWTSecret string
}

// RedisConfig holds the optional catalog cache connection
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds the optional event fan-out settings
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// SchedulerConfig holds the cadence of the jobs that are not driven by Settings
type SchedulerConfig struct {
	SafetyCheckInterval time.Duration
	CatalogRefreshCron  string
	CatalogRefreshBatch int
	WinCheckDelay       time.Duration
	DrainTimeout        time.Duration
}

// SteamGiftsConfig holds the site client settings
type SteamGiftsConfig struct {
	BaseURL           string
	RequestsPerMinute int
	Timeout           time.Duration
}

// CatalogConfig holds the game catalog settings
type CatalogConfig struct {
	StoreBaseURL string
	StaleAfter   time.Duration
	CacheTTL     time.Duration
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	env := getEnvWithDefault("GO_ENV", "development")
	if env != "production" {
		// env.local is optional for local runs; real environment variables win
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{
		Environment: env,
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Port, err = getIntEnv("DB_PORT", 5432); err != nil {
		return nil, err
	}
	cfg.Database.SSLMode = getEnvWithDefault("DB_SSLMODE", "disable")

	if cfg.Server.Port, err = getIntEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	cfg.Server.AllowedOrigins = splitList(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:5173"))

	cfg.Auth.JWTSecret = os.Getenv("ADMIN_JWT_SECRET")

	if cfg.Redis.Enabled, err = getBoolEnv("REDIS_ENABLED", false); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = getIntEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = getIntEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "autojoin-events")

	if cfg.Scheduler.SafetyCheckInterval, err = getDurationEnv("SAFETY_CHECK_INTERVAL", 45*time.Second); err != nil {
		return nil, err
	}
	cfg.Scheduler.CatalogRefreshCron = getEnvWithDefault("CATALOG_REFRESH_CRON", "0 */6 * * *")
	if cfg.Scheduler.CatalogRefreshBatch, err = getIntEnv("CATALOG_REFRESH_BATCH", 10); err != nil {
		return nil, err
	}
	if cfg.Scheduler.WinCheckDelay, err = getDurationEnv("WIN_CHECK_DELAY", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Scheduler.DrainTimeout, err = getDurationEnv("SCHEDULER_DRAIN_TIMEOUT", 2*time.Minute); err != nil {
		return nil, err
	}

	cfg.SteamGifts.BaseURL = strings.TrimRight(getEnvWithDefault("STEAMGIFTS_BASE_URL", "https://www.steamgifts.com"), "/")
	if cfg.SteamGifts.RequestsPerMinute, err = getIntEnv("STEAMGIFTS_REQUESTS_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if cfg.SteamGifts.Timeout, err = getDurationEnv("STEAMGIFTS_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	cfg.Catalog.StoreBaseURL = strings.TrimRight(getEnvWithDefault("STEAM_STORE_BASE_URL", "https://store.steampowered.com"), "/")
	if cfg.Catalog.StaleAfter, err = getDurationEnv("CATALOG_STALE_AFTER", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Catalog.CacheTTL, err = getDurationEnv("CATALOG_CACHE_TTL", time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Username, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func getBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
