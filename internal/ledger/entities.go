package ledger

import (
	"time"

	"github.com/govalues/decimal"
)

// DateLayout is the wire and storage layout of a transaction date.
const DateLayout = "2006-01-02"

// Account is a named balance-holding entity.
type Account struct {
	// ID is assigned by the store; zero until the account is created.
	ID      int64
	Name    string
	Balance decimal.Decimal
	Active  bool
}

// Transaction is a dated, amount-valued entry against one account.
// AccountID is a logical reference only; nothing checks that the account exists.
type Transaction struct {
	ID        int64
	AccountID int64
	// Date carries no time of day, see DateOf.
	Date   time.Time
	Amount decimal.Decimal
}

// AccountDraft is an account as received from a caller, before creation.
// Nil fields were absent in the request.
type AccountDraft struct {
	Name    *string
	Balance *decimal.Decimal
	Active  *bool
}

// Account converts a validated draft. Absent fields become zero values.
func (d AccountDraft) Account() Account {
	var a Account
	if d.Name != nil {
		a.Name = *d.Name
	}
	if d.Balance != nil {
		a.Balance = *d.Balance
	}
	if d.Active != nil {
		a.Active = *d.Active
	}
	return a
}

// TransactionDraft is a transaction as received from a caller, before creation.
// Nil fields were absent in the request.
type TransactionDraft struct {
	AccountID *int64
	Date      *time.Time
	Amount    *decimal.Decimal
}

// Transaction converts a validated draft. Absent fields become zero values.
func (d TransactionDraft) Transaction() Transaction {
	var t Transaction
	if d.AccountID != nil {
		t.AccountID = *d.AccountID
	}
	if d.Date != nil {
		t.Date = DateOf(*d.Date)
	}
	if d.Amount != nil {
		t.Amount = *d.Amount
	}
	return t
}

// DateOf truncates t to its calendar date at 00:00 UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
