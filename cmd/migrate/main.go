package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tinoosan/bookkeeper/internal/config"
	pgstore "github.com/tinoosan/bookkeeper/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := pgstore.Open(ctx, cfg.DatabaseURL, pgstore.PoolConfig{MaxConns: 1})
	if err != nil {
		logger.Error("failed to connect to postgres", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	logger.Info("applying migrations")
	applied, err := pg.Migrate(ctx)
	if err != nil {
		logger.Error("migrations failed", "err", err)
		pg.Close()
		os.Exit(1)
	}
	if len(applied) == 0 {
		logger.Info("schema up to date")
		return
	}
	logger.Info("migrations applied", "versions", applied)
}
