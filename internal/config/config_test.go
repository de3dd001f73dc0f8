package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ATTENDANCE_TIMEZONE", "")
	t.Setenv("WORKFORCE_API_URL", "")
	t.Setenv("JWT_ACCESS_EXPIRATION_TIME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "24h", cfg.JWT.AccessExpiration)
	assert.Equal(t, 10, cfg.RateLimit.AuthPerMinute)
	assert.Equal(t, 15*time.Second, cfg.Client.HTTPTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Client.APIURL)
	assert.False(t, cfg.Policy.EnforceLeaveDateOrder)
	assert.Empty(t, cfg.Client.Timezone)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_PORT", "6543")
	t.Setenv("WORKFORCE_API_URL", "https://hr.example.com/")
	t.Setenv("WORKFORCE_HTTP_TIMEOUT", "3s")
	t.Setenv("ATTENDANCE_TIMEZONE", "Asia/Jakarta")
	t.Setenv("LEAVE_ENFORCE_DATE_ORDER", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "https://hr.example.com", cfg.Client.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Client.HTTPTimeout)
	assert.Equal(t, "Asia/Jakarta", cfg.Client.Timezone)
	assert.True(t, cfg.Policy.EnforceLeaveDateOrder)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.CORSAllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		key   string
		value string
	}{
		{"DB_PORT", "not-a-port"},
		{"APP_PORT", "eighty"},
		{"JWT_ACCESS_EXPIRATION_TIME", "a day"},
		{"AUTH_RATE_LIMIT_PER_MINUTE", "lots"},
		{"WORKFORCE_HTTP_TIMEOUT", "soon"},
		{"LEAVE_ENFORCE_DATE_ORDER", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestValidateServer(t *testing.T) {
	cfg := &Config{
		Database:  DatabaseConfig{Password: "secret"},
		JWT:       JWTConfig{Secret: "jwt-secret"},
		RateLimit: RateLimitConfig{AuthPerMinute: 10},
	}
	assert.NoError(t, cfg.ValidateServer())

	cfg.JWT.Secret = ""
	assert.ErrorContains(t, cfg.ValidateServer(), "JWT_SECRET_KEY")

	cfg.JWT.Secret = "jwt-secret"
	cfg.Database.Password = ""
	assert.ErrorContains(t, cfg.ValidateServer(), "DB_PASSWORD")
}

func TestValidateClient(t *testing.T) {
	cfg := &Config{Client: ClientConfig{APIURL: "http://localhost:8080", HTTPTimeout: time.Second}}
	assert.ErrorContains(t, cfg.ValidateClient(), "ATTENDANCE_TIMEZONE")

	cfg.Client.Timezone = "Local"
	assert.NoError(t, cfg.ValidateClient())
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "pw", Name: "workforce", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://app:pw@db:5432/workforce?sslmode=disable", cfg.DatabaseURL())
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "DEBUG"}}
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.App.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
