package transaction

import (
	"context"
	"time"

	"github.com/govalues/decimal"

	"github.com/tinoosan/bookkeeper/internal/ledger"
	"github.com/tinoosan/bookkeeper/internal/validation"
)

// Repo defines read operations needed by the service.
type Repo interface {
	TransactionsByAccountID(ctx context.Context, accountID int64) ([]ledger.Transaction, error)
	// TransactionsBetween is inclusive on both dates.
	TransactionsBetween(ctx context.Context, start, end time.Time) ([]ledger.Transaction, error)
	TransactionsAmountAbove(ctx context.Context, min decimal.Decimal) ([]ledger.Transaction, error)
	TransactionsAmountBelow(ctx context.Context, max decimal.Decimal) ([]ledger.Transaction, error)
}

// Writer defines write operations needed by the service.
type Writer interface {
	// CreateTransaction persists t and returns it with its assigned id.
	CreateTransaction(ctx context.Context, t ledger.Transaction) (ledger.Transaction, error)
}

// Service exposes validated creation of transactions and the query variants.
type Service interface {
	Validate(d ledger.TransactionDraft) error
	Create(ctx context.Context, d ledger.TransactionDraft) (ledger.Transaction, error)
	FindByAccountID(ctx context.Context, accountID int64) ([]ledger.Transaction, error)
	FindBetweenDates(ctx context.Context, start, end time.Time) ([]ledger.Transaction, error)
	FindGreaterThan(ctx context.Context, amount decimal.Decimal) ([]ledger.Transaction, error)
	FindLessThan(ctx context.Context, amount decimal.Decimal) ([]ledger.Transaction, error)
}

type service struct {
	repo   Repo
	writer Writer
}

func New(repo Repo, writer Writer) Service { return &service{repo: repo, writer: writer} }

func (s *service) Validate(d ledger.TransactionDraft) error {
	return validation.ValidateTransaction(d)
}

// Create validates d and persists it. A validation failure is returned before
// the writer is touched. The referenced account is not checked for existence.
func (s *service) Create(ctx context.Context, d ledger.TransactionDraft) (ledger.Transaction, error) {
	if err := s.Validate(d); err != nil {
		return ledger.Transaction{}, err
	}
	return s.writer.CreateTransaction(ctx, d.Transaction())
}

// FindByAccountID returns transactions in storage order.
func (s *service) FindByAccountID(ctx context.Context, accountID int64) ([]ledger.Transaction, error) {
	return nonNil(s.repo.TransactionsByAccountID(ctx, accountID))
}

// FindBetweenDates is inclusive on both ends. start after end is not an
// error; it simply matches nothing.
func (s *service) FindBetweenDates(ctx context.Context, start, end time.Time) ([]ledger.Transaction, error) {
	start, end = ledger.DateOf(start), ledger.DateOf(end)
	if start.After(end) {
		return []ledger.Transaction{}, nil
	}
	return nonNil(s.repo.TransactionsBetween(ctx, start, end))
}

func (s *service) FindGreaterThan(ctx context.Context, amount decimal.Decimal) ([]ledger.Transaction, error) {
	return nonNil(s.repo.TransactionsAmountAbove(ctx, amount))
}

func (s *service) FindLessThan(ctx context.Context, amount decimal.Decimal) ([]ledger.Transaction, error) {
	return nonNil(s.repo.TransactionsAmountBelow(ctx, amount))
}

func nonNil(out []ledger.Transaction, err error) ([]ledger.Transaction, error) {
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []ledger.Transaction{}
	}
	return out, nil
}
