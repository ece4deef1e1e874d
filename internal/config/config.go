// Package config loads runtime settings from the environment, after an
// optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/money"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DatabaseURL     string
	LogLevel        slog.Leveler
	LogFormat       string
	Currency        string
	MigrateOnStart  bool
	DevSeed         bool
	ShutdownTimeout time.Duration
	DBMaxConns      int32
}

// Load reads .env (if present) and the process environment.
// Unparseable values are reported instead of silently defaulted.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogFormat:   strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", "json"))),
		Currency:    strings.ToUpper(strings.TrimSpace(getEnv("LEDGER_CURRENCY", "USD"))),
	}
	if _, err := money.ParseCurr(cfg.Currency); err != nil {
		return Config{}, fmt.Errorf("LEDGER_CURRENCY: %w", err)
	}
	level, err := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return Config{}, fmt.Errorf("LOG_FORMAT: want json or text, got %q", cfg.LogFormat)
	}
	if cfg.MigrateOnStart, err = getBool("MIGRATE_ON_START"); err != nil {
		return Config{}, err
	}
	if cfg.DevSeed, err = getBool("DEV_SEED"); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	if raw := os.Getenv("DB_MAX_CONNS"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("DB_MAX_CONNS: invalid value %q", raw)
		}
		cfg.DBMaxConns = int32(n)
	}
	return cfg, nil
}

// ParseLogLevel maps env values to a slog level. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error", "err":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
}

// NewLogger builds the process logger in the configured format.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBool(key string) (bool, error) {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch raw {
	case "", "0", "false", "no":
		return false, nil
	case "1", "true", "yes":
		return true, nil
	}
	return false, fmt.Errorf("%s: invalid boolean %q", key, raw)
}
