package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/govalues/decimal"

	"github.com/tinoosan/bookkeeper/internal/config"
	"github.com/tinoosan/bookkeeper/internal/httpapi"
	"github.com/tinoosan/bookkeeper/internal/ledger"
	"github.com/tinoosan/bookkeeper/internal/service/account"
	"github.com/tinoosan/bookkeeper/internal/service/transaction"
	"github.com/tinoosan/bookkeeper/internal/storage/memory"
	pgstore "github.com/tinoosan/bookkeeper/internal/storage/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	var store httpapi.Store
	var closeFn func()

	if cfg.DatabaseURL != "" {
		pg, err := pgstore.Open(ctx, cfg.DatabaseURL, pgstore.PoolConfig{MaxConns: cfg.DBMaxConns})
		if err != nil {
			logger.Error("failed to connect to postgres", "err", err)
			os.Exit(1)
		}
		closeFn = pg.Close
		if cfg.MigrateOnStart {
			applied, err := pg.Migrate(ctx)
			if err != nil {
				logger.Error("migrations failed", "err", err)
				pg.Close()
				os.Exit(1)
			}
			logger.Info("migrations applied", "versions", applied)
		}
		store = pg
		logger.Info("storage backend: postgres")
	} else {
		store = memory.New()
		logger.Info("storage backend: memory")
	}

	// Optional dev seed for compose/local
	if cfg.DevSeed {
		accs, err := seedDev(ctx, store)
		if err != nil {
			logger.Error("dev seed failed", "err", err)
		} else if len(accs) > 0 {
			logDevSeed(logger, accs)
			printDevSeedBanner(accs)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.New(store, cfg.Currency, logger).Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("bookkeeper listening", "addr", srv.Addr, "currency", cfg.Currency)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("server shutdown error", "err", err)
		}
	case err := <-errCh:
		logger.Error("server error", "err", err)
	}
	if closeFn != nil {
		closeFn()
	}
}

// seedDev creates a few demo accounts and transactions on an empty store.
// A store that already holds accounts is left alone.
func seedDev(ctx context.Context, store httpapi.Store) ([]ledger.Account, error) {
	existing, err := store.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, nil
	}
	accounts := account.New(store, store, store)
	txns := transaction.New(store, store)

	demo := []ledger.Account{
		{Name: "Checking", Balance: decimal.MustParse("1500.00"), Active: true},
		{Name: "Savings", Balance: decimal.MustParse("800.00"), Active: true},
		{Name: "Old Card", Balance: decimal.MustParse("0.00"), Active: false},
	}
	created := make([]ledger.Account, 0, len(demo))
	for _, a := range demo {
		acc, err := accounts.Create(ctx, a)
		if err != nil {
			return created, err
		}
		created = append(created, acc)
	}
	today := ledger.DateOf(time.Now())
	for i, amt := range []string{"120.00", "45.50", "300.00"} {
		day := today.AddDate(0, 0, -i)
		amount := decimal.MustParse(amt)
		id := created[0].ID
		if _, err := txns.Create(ctx, ledger.TransactionDraft{AccountID: &id, Date: &day, Amount: &amount}); err != nil {
			return created, err
		}
	}
	return created, nil
}

// logDevSeed emits structured logs with useful IDs
func logDevSeed(l *slog.Logger, accs []ledger.Account) {
	ids := make(map[string]int64, len(accs))
	for _, a := range accs {
		ids[a.Name] = a.ID
	}
	l.Info("DEV seed", "account_ids", ids)
}

// printDevSeedBanner prints a simple banner to stdout for easy copy/paste of IDs
func printDevSeedBanner(accs []ledger.Account) {
	fmt.Println("==================== DEV SEED ====================")
	for _, a := range accs {
		fmt.Printf("%-10s id=%d balance=%s active=%t\n", a.Name, a.ID, a.Balance, a.Active)
	}
	fmt.Println("==================================================")
}
