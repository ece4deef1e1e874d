package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ADDR", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "LEDGER_CURRENCY", "MIGRATE_ON_START", "DEV_SEED", "SHUTDOWN_TIMEOUT", "DB_MAX_CONNS"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.DatabaseURL != "" || cfg.Currency != "USD" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelInfo || cfg.ShutdownTimeout != 10*time.Second || cfg.MigrateOnStart || cfg.DevSeed {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "Text")
	t.Setenv("LEDGER_CURRENCY", "gbp")
	t.Setenv("MIGRATE_ON_START", "yes")
	t.Setenv("DEV_SEED", "1")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("DB_MAX_CONNS", "12")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "text" || cfg.Currency != "GBP" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.MigrateOnStart || !cfg.DevSeed || cfg.ShutdownTimeout != 3*time.Second || cfg.DBMaxConns != 12 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"LEDGER_CURRENCY":  "NOPE",
		"MIGRATE_ON_START": "maybe",
		"SHUTDOWN_TIMEOUT": "soon",
		"DB_MAX_CONNS":     "-3",
		"LOG_LEVEL":        "verbose",
		"LOG_FORMAT":       "xml",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, val)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{"": slog.LevelInfo, "INFO": slog.LevelInfo, "warn": slog.LevelWarn, "WARNING": slog.LevelWarn, "err": slog.LevelError, "debug": slog.LevelDebug}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLogLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLogLevel("trace"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
