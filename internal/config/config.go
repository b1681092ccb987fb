// Package config handles configuration for the server,
// including defaults, environment variables, and command-line flags.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime settings for the auth demo server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing tokens (HS256). Rotating it
//     invalidates every outstanding token. Do not use the default in prod.
//   - AccessTokenTTL / RefreshTokenTTL: token lifetimes.
//   - LogLevel: slog level (debug, info, warn, error).
//   - RateLimit / RateLimitWindow: per-IP request budget.
type Config struct {
	Addr            string
	SecretKey       string
	LogLevel        string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	RateLimitWindow time.Duration
	RateLimit       int
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret is the well-known demo value and is insecure.
func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:8000"
	c.SecretKey = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	c.AccessTokenTTL = 15 * time.Minute
	c.RefreshTokenTTL = 60 * time.Minute
	c.LogLevel = "info"
	c.RateLimit = 60
	c.RateLimitWindow = time.Minute
}

// Load builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv накладывает значения переменных окружения поверх дефолтов
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		c.SecretKey = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
		}
		c.AccessTokenTTL = d
	}
	if v, ok := os.LookupEnv("REFRESH_TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid REFRESH_TOKEN_TTL: %w", err)
		}
		c.RefreshTokenTTL = d
	}
	if v, ok := os.LookupEnv("RATE_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT: %w", err)
		}
		c.RateLimit = n
	}
	return nil
}

// parseFlags накладывает значения флагов командной строки
//
// Supported flags:
//
//	-a string        HTTP bind address (e.g., "127.0.0.1:8000")
//	-s string        HMAC secret key
//	-access-ttl dur  access token lifetime (e.g., "15m")
//	-refresh-ttl dur refresh token lifetime (e.g., "1h")
//	-log-level str   log level: debug, info, warn, error
//	-rate-limit int  requests per minute per IP
func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&c.Addr, "a", c.Addr, "address and port to run server")
	fs.StringVar(&c.SecretKey, "s", c.SecretKey, "secret key")
	fs.DurationVar(&c.AccessTokenTTL, "access-ttl", c.AccessTokenTTL, "access token lifetime")
	fs.DurationVar(&c.RefreshTokenTTL, "refresh-ttl", c.RefreshTokenTTL, "refresh token lifetime")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&c.RateLimit, "rate-limit", c.RateLimit, "requests per window per IP")

	return fs.Parse(args)
}

// validate проверяет согласованность итоговой конфигурации
func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("address cannot be empty")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key cannot be empty")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access token TTL must be positive")
	}
	if c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("refresh token TTL must be positive")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	return nil
}

// SlogLevel преобразует LogLevel в slog.Level
// Неизвестное значение дает info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
