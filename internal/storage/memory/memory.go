// Package memory provides a simple in-memory implementation used for development and tests.
// Ids come from per-table counters, so they are monotonic like the Postgres bigserial keys.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/govalues/decimal"

	"github.com/tinoosan/bookkeeper/internal/errs"
	"github.com/tinoosan/bookkeeper/internal/ledger"
)

// Store is an in-memory implementation of the account and transaction stores.
// It is guarded by an RWMutex for concurrent reads/writes.
type Store struct {
	mu       sync.RWMutex
	accounts map[int64]ledger.Account
	// transactions is kept in insertion order, which doubles as storage order.
	transactions []ledger.Transaction
	nextAccount  int64
	nextTxn      int64
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{accounts: make(map[int64]ledger.Account)}
}

// Reset drops all data and restarts id sequences. Test helper only.
func (s *Store) Reset() {
	s.mu.Lock()
	s.accounts = map[int64]ledger.Account{}
	s.transactions = nil
	s.nextAccount = 0
	s.nextTxn = 0
	s.mu.Unlock()
}

// --- Accounts ---

// CreateAccount stores a under a fresh id.
func (s *Store) CreateAccount(_ context.Context, a ledger.Account) (ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextAccount++
	a.ID = s.nextAccount
	s.accounts[a.ID] = a
	return a, nil
}

// UpdateAccount replaces an existing account.
func (s *Store) UpdateAccount(_ context.Context, a ledger.Account) (ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.ID]; !ok {
		return ledger.Account{}, errs.ErrNotFound
	}
	s.accounts[a.ID] = a
	return a, nil
}

// AccountByID returns an account by id.
func (s *Store) AccountByID(_ context.Context, id int64) (ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return ledger.Account{}, errs.ErrNotFound
	}
	return a, nil
}

// AccountByName returns the lowest-id account with exactly this name.
func (s *Store) AccountByName(_ context.Context, name string) (ledger.Account, error) {
	matches := s.filterAccounts(func(a ledger.Account) bool { return a.Name == name })
	if len(matches) == 0 {
		return ledger.Account{}, errs.ErrNotFound
	}
	return matches[0], nil
}

func (s *Store) AccountsBalanceAbove(_ context.Context, min decimal.Decimal) ([]ledger.Account, error) {
	return s.filterAccounts(func(a ledger.Account) bool { return a.Balance.Cmp(min) > 0 }), nil
}

func (s *Store) AccountsBalanceBelow(_ context.Context, max decimal.Decimal) ([]ledger.Account, error) {
	return s.filterAccounts(func(a ledger.Account) bool { return a.Balance.Cmp(max) < 0 }), nil
}

func (s *Store) AccountsByActive(_ context.Context, active bool) ([]ledger.Account, error) {
	return s.filterAccounts(func(a ledger.Account) bool { return a.Active == active }), nil
}

// ListAccounts returns every account ordered by id.
func (s *Store) ListAccounts(_ context.Context) ([]ledger.Account, error) {
	return s.filterAccounts(func(ledger.Account) bool { return true }), nil
}

// filterAccounts returns matching accounts sorted by id.
func (s *Store) filterAccounts(keep func(ledger.Account) bool) []ledger.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Account, 0)
	for _, a := range s.accounts {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- Transactions ---

// CreateTransaction appends t under a fresh id.
func (s *Store) CreateTransaction(_ context.Context, t ledger.Transaction) (ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTxn++
	t.ID = s.nextTxn
	t.Date = ledger.DateOf(t.Date)
	s.transactions = append(s.transactions, t)
	return t, nil
}

func (s *Store) TransactionsByAccountID(_ context.Context, accountID int64) ([]ledger.Transaction, error) {
	return s.filterTransactions(func(t ledger.Transaction) bool { return t.AccountID == accountID }), nil
}

// TransactionsBetween matches start <= date <= end.
func (s *Store) TransactionsBetween(_ context.Context, start, end time.Time) ([]ledger.Transaction, error) {
	start, end = ledger.DateOf(start), ledger.DateOf(end)
	return s.filterTransactions(func(t ledger.Transaction) bool {
		return !t.Date.Before(start) && !t.Date.After(end)
	}), nil
}

func (s *Store) TransactionsAmountAbove(_ context.Context, min decimal.Decimal) ([]ledger.Transaction, error) {
	return s.filterTransactions(func(t ledger.Transaction) bool { return t.Amount.Cmp(min) > 0 }), nil
}

func (s *Store) TransactionsAmountBelow(_ context.Context, max decimal.Decimal) ([]ledger.Transaction, error) {
	return s.filterTransactions(func(t ledger.Transaction) bool { return t.Amount.Cmp(max) < 0 }), nil
}

func (s *Store) filterTransactions(keep func(ledger.Transaction) bool) []ledger.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Transaction, 0)
	for _, t := range s.transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
