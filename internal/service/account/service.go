// Package account implements the account read/write rules: creation as-is,
// lookups that report absence as a value, and wholesale balance replacement.
package account

import (
	"context"
	"errors"

	"github.com/govalues/decimal"

	"github.com/tinoosan/bookkeeper/internal/errs"
	"github.com/tinoosan/bookkeeper/internal/ledger"
	"github.com/tinoosan/bookkeeper/internal/validation"
)

// Repo is the read side of the account store.
// AccountByID and AccountByName return errs.ErrNotFound when nothing matches.
type Repo interface {
	AccountByID(ctx context.Context, id int64) (ledger.Account, error)
	AccountByName(ctx context.Context, name string) (ledger.Account, error)
	AccountsBalanceAbove(ctx context.Context, min decimal.Decimal) ([]ledger.Account, error)
	AccountsBalanceBelow(ctx context.Context, max decimal.Decimal) ([]ledger.Account, error)
	AccountsByActive(ctx context.Context, active bool) ([]ledger.Account, error)
	ListAccounts(ctx context.Context) ([]ledger.Account, error)
}

// Writer is the write side of the account store. CreateAccount assigns the id;
// UpdateAccount returns errs.ErrNotFound for an unknown id.
type Writer interface {
	CreateAccount(ctx context.Context, a ledger.Account) (ledger.Account, error)
	UpdateAccount(ctx context.Context, a ledger.Account) (ledger.Account, error)
}

// TransactionRepo is the slice of the transaction store the account service reads.
type TransactionRepo interface {
	TransactionsByAccountID(ctx context.Context, accountID int64) ([]ledger.Transaction, error)
}

type Service interface {
	ValidateCreate(d ledger.AccountDraft) error
	Create(ctx context.Context, a ledger.Account) (ledger.Account, error)
	Get(ctx context.Context, id int64) (ledger.Account, bool, error)
	FindByName(ctx context.Context, name string) (ledger.Account, bool, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (ledger.Account, bool, error)
	FindByBalanceGreaterThan(ctx context.Context, min decimal.Decimal) ([]ledger.Account, error)
	FindByBalanceLessThan(ctx context.Context, max decimal.Decimal) ([]ledger.Account, error)
	FindByActive(ctx context.Context, active bool) ([]ledger.Account, error)
	ListTransactions(ctx context.Context, accountID int64) ([]ledger.Transaction, error)
	List(ctx context.Context) ([]ledger.Account, error)
}

type service struct {
	repo   Repo
	writer Writer
	txns   TransactionRepo
}

func New(repo Repo, writer Writer, txns TransactionRepo) Service {
	return &service{repo: repo, writer: writer, txns: txns}
}

// ValidateCreate applies the boundary checks for a new account.
func (s *service) ValidateCreate(d ledger.AccountDraft) error {
	return validation.ValidateAccount(d)
}

// Create persists a as given. The caller is expected to have run ValidateCreate.
func (s *service) Create(ctx context.Context, a ledger.Account) (ledger.Account, error) {
	a.ID = 0
	return s.writer.CreateAccount(ctx, a)
}

func (s *service) Get(ctx context.Context, id int64) (ledger.Account, bool, error) {
	return found(s.repo.AccountByID(ctx, id))
}

func (s *service) FindByName(ctx context.Context, name string) (ledger.Account, bool, error) {
	return found(s.repo.AccountByName(ctx, name))
}

// UpdateBalance replaces the stored balance. An unknown id reports false and
// writes nothing.
func (s *service) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) (ledger.Account, bool, error) {
	acc, ok, err := s.Get(ctx, id)
	if err != nil || !ok {
		return ledger.Account{}, false, err
	}
	acc.Balance = balance
	return found(s.writer.UpdateAccount(ctx, acc))
}

// FindByBalanceGreaterThan is strict: an account holding exactly min is excluded.
func (s *service) FindByBalanceGreaterThan(ctx context.Context, min decimal.Decimal) ([]ledger.Account, error) {
	return s.repo.AccountsBalanceAbove(ctx, min)
}

// FindByBalanceLessThan is strict: an account holding exactly max is excluded.
func (s *service) FindByBalanceLessThan(ctx context.Context, max decimal.Decimal) ([]ledger.Account, error) {
	return s.repo.AccountsBalanceBelow(ctx, max)
}

func (s *service) FindByActive(ctx context.Context, active bool) ([]ledger.Account, error) {
	return s.repo.AccountsByActive(ctx, active)
}

// ListTransactions returns the transactions recorded against accountID. The
// account itself is not looked up, so an unknown id yields an empty slice.
func (s *service) ListTransactions(ctx context.Context, accountID int64) ([]ledger.Transaction, error) {
	out, err := s.txns.TransactionsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []ledger.Transaction{}
	}
	return out, nil
}

// List returns every stored account ordered by id.
func (s *service) List(ctx context.Context) ([]ledger.Account, error) {
	return s.repo.ListAccounts(ctx)
}

// found folds errs.ErrNotFound into a false flag; other errors pass through.
func found(a ledger.Account, err error) (ledger.Account, bool, error) {
	if errors.Is(err, errs.ErrNotFound) {
		return ledger.Account{}, false, nil
	}
	if err != nil {
		return ledger.Account{}, false, err
	}
	return a, true, nil
}
