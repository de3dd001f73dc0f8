package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	RateLimit RateLimitConfig
	Client    ClientConfig
	Policy    PolicyConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
}

// RateLimitConfig bounds unauthenticated auth endpoints per client IP.
type RateLimitConfig struct {
	AuthPerMinute int
}

// ClientConfig configures the workforce CLI.
type ClientConfig struct {
	APIURL      string
	SessionFile string
	HTTPTimeout time.Duration
	Timezone    string
}

type PolicyConfig struct {
	EnforceLeaveDateOrder bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "workforce"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// JWT configuration
	jwtAccessExpiration := getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h")
	if _, err := time.ParseDuration(jwtAccessExpiration); err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: jwtAccessExpiration,
	}

	authPerMinute, err := strconv.Atoi(getEnv("AUTH_RATE_LIMIT_PER_MINUTE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT_PER_MINUTE: %w", err)
	}
	config.RateLimit = RateLimitConfig{AuthPerMinute: authPerMinute}

	// Client configuration
	httpTimeout, err := time.ParseDuration(getEnv("WORKFORCE_HTTP_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKFORCE_HTTP_TIMEOUT: %w", err)
	}

	config.Client = ClientConfig{
		APIURL:      strings.TrimRight(getEnv("WORKFORCE_API_URL", "http://localhost:8080"), "/"),
		SessionFile: getEnv("WORKFORCE_SESSION_FILE", defaultSessionFile()),
		HTTPTimeout: httpTimeout,
		Timezone:    getEnv("ATTENDANCE_TIMEZONE", ""),
	}

	enforceOrder, err := strconv.ParseBool(getEnv("LEAVE_ENFORCE_DATE_ORDER", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_ENFORCE_DATE_ORDER: %w", err)
	}
	config.Policy = PolicyConfig{EnforceLeaveDateOrder: enforceOrder}

	return config, nil
}

// ValidateServer checks the settings the API server cannot start without.
func (c *Config) ValidateServer() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("AUTH_RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

// ValidateClient checks the settings the CLI cannot start without.
func (c *Config) ValidateClient() error {
	if c.Client.APIURL == "" {
		return fmt.Errorf("WORKFORCE_API_URL is required")
	}
	if c.Client.Timezone == "" {
		return fmt.Errorf("ATTENDANCE_TIMEZONE is required (use Local for the host timezone)")
	}
	if c.Client.HTTPTimeout <= 0 {
		return fmt.Errorf("WORKFORCE_HTTP_TIMEOUT must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".workforce-session.json"
	}
	return dir + string(os.PathSeparator) + "workforce" + string(os.PathSeparator) + "session.json"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
