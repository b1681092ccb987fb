package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Addr)
	assert.NotEmpty(t, cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 60*time.Minute, cfg.RefreshTokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 60, cfg.RateLimit)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("ACCESS_TOKEN_TTL", "30s")
	t.Setenv("REFRESH_TOKEN_TTL", "45m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 30*time.Second, cfg.AccessTokenTTL)
	assert.Equal(t, 45*time.Minute, cfg.RefreshTokenTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("SECRET_KEY", "env-secret")

	cfg, err := Load([]string{"-a", ":7070", "-s", "flag-secret", "-access-ttl", "1m"})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, time.Minute, cfg.AccessTokenTTL)
}

func TestLoad_InvalidEnvDuration(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_TTL", "not-a-duration")

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := Load([]string{"-s", ""})
	assert.Error(t, err)

	_, err = Load([]string{"-access-ttl", "-1m"})
	assert.Error(t, err)

	_, err = Load([]string{"-refresh-ttl", "0s"})
	assert.Error(t, err)
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q", tt.level)
	}
}
