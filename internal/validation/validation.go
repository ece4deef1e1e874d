// Package validation holds the ledger invariants checked before anything is
// written. Every function is pure and reports the first violation it finds.
package validation

import (
	"github.com/govalues/decimal"

	"github.com/tinoosan/bookkeeper/internal/errs"
	"github.com/tinoosan/bookkeeper/internal/ledger"
)

const (
	MsgAccountIDRequired = "Account ID cannot be null"
	MsgDateRequired      = "Transaction date cannot be null"
	MsgAmountInvalid     = "Amount cannot be negative or null"

	MsgNameRequired    = "Account name cannot be null or empty"
	MsgBalanceRequired = "Balance cannot be null"
	MsgBalanceNegative = "Balance cannot be negative"
	MsgActiveRequired  = "Active status cannot be null"
)

// ValidateTransaction checks account id, date and amount, in that order.
// A zero amount is accepted.
func ValidateTransaction(t ledger.TransactionDraft) error {
	if t.AccountID == nil {
		return errs.Invalid("accountId", MsgAccountIDRequired)
	}
	if t.Date == nil {
		return errs.Invalid("date", MsgDateRequired)
	}
	if t.Amount == nil || t.Amount.IsNeg() {
		return errs.Invalid("amount", MsgAmountInvalid)
	}
	return nil
}

// ValidateAccount checks a new account. Only emptiness is rejected for the
// name; a whitespace-only name passes.
func ValidateAccount(a ledger.AccountDraft) error {
	if a.Name == nil || *a.Name == "" {
		return errs.Invalid("accountName", MsgNameRequired)
	}
	if err := ValidateBalance(a.Balance); err != nil {
		return err
	}
	if a.Active == nil {
		return errs.Invalid("isActive", MsgActiveRequired)
	}
	return nil
}

// ValidateBalance requires a present, non-negative balance.
func ValidateBalance(b *decimal.Decimal) error {
	if b == nil {
		return errs.Invalid("balance", MsgBalanceRequired)
	}
	if b.IsNeg() {
		return errs.Invalid("balance", MsgBalanceNegative)
	}
	return nil
}
