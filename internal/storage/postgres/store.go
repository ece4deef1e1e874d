// Package postgres provides a pgx-backed storage implementation that satisfies
// the account and transaction store interfaces used by the services.
//
// Decimals travel as text and are cast to numeric in SQL, so no precision is
// lost between govalues/decimal and Postgres. Dates are `date` columns.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinoosan/bookkeeper/internal/errs"
	"github.com/tinoosan/bookkeeper/internal/ledger"
)

// Store holds a pgx connection pool and implements the read/write interfaces
// used across the service layer. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// PoolConfig bounds the connection pool. Zero values keep pgx defaults.
type PoolConfig struct {
	MaxConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// Open establishes a pgx pool using the provided connection string.
func Open(ctx context.Context, dsn string, pc PoolConfig) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if pc.MaxConns > 0 {
		cfg.MaxConns = pc.MaxConns
	}
	if pc.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = pc.MaxConnLifetime
	}
	if pc.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = pc.MaxConnIdleTime
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// --- Account reads ---

const accountColumns = `id, account_name, balance::text, is_active`

// AccountByID fetches a single account.
func (s *Store) AccountByID(ctx context.Context, id int64) (ledger.Account, error) {
	row := s.pool.QueryRow(ctx, `select `+accountColumns+` from accounts where id = $1`, id)
	return scanAccount(row)
}

// AccountByName returns the lowest-id account with exactly this name.
func (s *Store) AccountByName(ctx context.Context, name string) (ledger.Account, error) {
	row := s.pool.QueryRow(ctx, `
		select `+accountColumns+`
		from accounts
		where account_name = $1
		order by id asc
		limit 1
	`, name)
	return scanAccount(row)
}

func (s *Store) AccountsBalanceAbove(ctx context.Context, min decimal.Decimal) ([]ledger.Account, error) {
	return s.queryAccounts(ctx, `where balance > $1::text::numeric`, min.String())
}

func (s *Store) AccountsBalanceBelow(ctx context.Context, max decimal.Decimal) ([]ledger.Account, error) {
	return s.queryAccounts(ctx, `where balance < $1::text::numeric`, max.String())
}

func (s *Store) AccountsByActive(ctx context.Context, active bool) ([]ledger.Account, error) {
	return s.queryAccounts(ctx, `where is_active = $1`, active)
}

// ListAccounts returns every account ordered by id.
func (s *Store) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	return s.queryAccounts(ctx, ``)
}

func (s *Store) queryAccounts(ctx context.Context, where string, args ...any) ([]ledger.Account, error) {
	rows, err := s.pool.Query(ctx, `select `+accountColumns+` from accounts `+where+` order by id asc`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// --- Account writes ---

// CreateAccount inserts an account row and returns it with the generated id.
func (s *Store) CreateAccount(ctx context.Context, a ledger.Account) (ledger.Account, error) {
	err := s.pool.QueryRow(ctx, `
		insert into accounts (account_name, balance, is_active)
		values ($1, $2::text::numeric, $3)
		returning id
	`, a.Name, a.Balance.String(), a.Active).Scan(&a.ID)
	if err != nil {
		return ledger.Account{}, err
	}
	return a, nil
}

// UpdateAccount overwrites name, balance and active flag.
func (s *Store) UpdateAccount(ctx context.Context, a ledger.Account) (ledger.Account, error) {
	ct, err := s.pool.Exec(ctx, `
		update accounts
		set account_name=$1, balance=$2::text::numeric, is_active=$3
		where id=$4
	`, a.Name, a.Balance.String(), a.Active, a.ID)
	if err != nil {
		return ledger.Account{}, err
	}
	if ct.RowsAffected() == 0 {
		return ledger.Account{}, errs.ErrNotFound
	}
	return a, nil
}

// --- Transaction reads ---

const transactionColumns = `id, account_id, date, amount::text`

func (s *Store) TransactionsByAccountID(ctx context.Context, accountID int64) ([]ledger.Transaction, error) {
	return s.queryTransactions(ctx, `where account_id = $1`, accountID)
}

// TransactionsBetween is inclusive on both dates.
func (s *Store) TransactionsBetween(ctx context.Context, start, end time.Time) ([]ledger.Transaction, error) {
	return s.queryTransactions(ctx, `where date between $1 and $2`, ledger.DateOf(start), ledger.DateOf(end))
}

func (s *Store) TransactionsAmountAbove(ctx context.Context, min decimal.Decimal) ([]ledger.Transaction, error) {
	return s.queryTransactions(ctx, `where amount > $1::text::numeric`, min.String())
}

func (s *Store) TransactionsAmountBelow(ctx context.Context, max decimal.Decimal) ([]ledger.Transaction, error) {
	return s.queryTransactions(ctx, `where amount < $1::text::numeric`, max.String())
}

// queryTransactions orders by id, which is insertion (storage) order.
func (s *Store) queryTransactions(ctx context.Context, where string, args ...any) ([]ledger.Transaction, error) {
	rows, err := s.pool.Query(ctx, `select `+transactionColumns+` from transactions `+where+` order by id asc`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// --- Transaction writes ---

// CreateTransaction inserts a transaction row and returns it with the generated id.
func (s *Store) CreateTransaction(ctx context.Context, t ledger.Transaction) (ledger.Transaction, error) {
	t.Date = ledger.DateOf(t.Date)
	err := s.pool.QueryRow(ctx, `
		insert into transactions (account_id, date, amount)
		values ($1, $2, $3::text::numeric)
		returning id
	`, t.AccountID, t.Date, t.Amount.String()).Scan(&t.ID)
	if err != nil {
		return ledger.Transaction{}, err
	}
	return t, nil
}

// --- scanning ---

func scanAccount(row pgx.Row) (ledger.Account, error) {
	var a ledger.Account
	var balance string
	err := row.Scan(&a.ID, &a.Name, &balance, &a.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Account{}, errs.ErrNotFound
	}
	if err != nil {
		return ledger.Account{}, err
	}
	if a.Balance, err = decimal.Parse(balance); err != nil {
		return ledger.Account{}, fmt.Errorf("account %d balance: %w", a.ID, err)
	}
	return a, nil
}

func scanTransaction(row pgx.Row) (ledger.Transaction, error) {
	var t ledger.Transaction
	var amount string
	if err := row.Scan(&t.ID, &t.AccountID, &t.Date, &amount); err != nil {
		return ledger.Transaction{}, err
	}
	t.Date = ledger.DateOf(t.Date)
	var err error
	if t.Amount, err = decimal.Parse(amount); err != nil {
		return ledger.Transaction{}, fmt.Errorf("transaction %d amount: %w", t.ID, err)
	}
	return t, nil
}
