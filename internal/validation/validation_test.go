package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/govalues/decimal"

	"github.com/tinoosan/bookkeeper/internal/errs"
	"github.com/tinoosan/bookkeeper/internal/ledger"
)

func ptr[T any](v T) *T { return &v }

func TestValidateTransaction(t *testing.T) {
	today := ledger.DateOf(time.Now())
	cases := []struct {
		name  string
		in    ledger.TransactionDraft
		field string
		msg   string
	}{
		{"valid", ledger.TransactionDraft{AccountID: ptr(int64(1)), Date: &today, Amount: ptr(decimal.MustParse("100.0"))}, "", ""},
		{"zero amount", ledger.TransactionDraft{AccountID: ptr(int64(1)), Date: &today, Amount: ptr(decimal.MustParse("0"))}, "", ""},
		{"missing account", ledger.TransactionDraft{Date: &today, Amount: ptr(decimal.MustParse("1"))}, "accountId", MsgAccountIDRequired},
		{"missing date", ledger.TransactionDraft{AccountID: ptr(int64(1)), Amount: ptr(decimal.MustParse("1"))}, "date", MsgDateRequired},
		{"missing amount", ledger.TransactionDraft{AccountID: ptr(int64(1)), Date: &today}, "amount", MsgAmountInvalid},
		{"negative amount", ledger.TransactionDraft{AccountID: ptr(int64(1)), Date: &today, Amount: ptr(decimal.MustParse("-0.01"))}, "amount", MsgAmountInvalid},
		// checks short-circuit in order: account id first
		{"everything missing", ledger.TransactionDraft{}, "accountId", MsgAccountIDRequired},
		{"date and amount missing", ledger.TransactionDraft{AccountID: ptr(int64(7))}, "date", MsgDateRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransaction(tc.in)
			if tc.msg == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, errs.ErrInvalid) {
				t.Fatalf("expected invalid argument, got %v", err)
			}
			var ve *errs.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *errs.ValidationError, got %T", err)
			}
			if ve.Field != tc.field || ve.Message != tc.msg {
				t.Fatalf("got %s=%q, want %s=%q", ve.Field, ve.Message, tc.field, tc.msg)
			}
		})
	}
}

func TestValidateAccount(t *testing.T) {
	cases := []struct {
		name string
		in   ledger.AccountDraft
		msg  string
	}{
		{"valid", ledger.AccountDraft{Name: ptr("Test Account"), Balance: ptr(decimal.MustParse("1000.0")), Active: ptr(true)}, ""},
		{"whitespace name accepted", ledger.AccountDraft{Name: ptr("   "), Balance: ptr(decimal.MustParse("0")), Active: ptr(false)}, ""},
		{"missing name", ledger.AccountDraft{Balance: ptr(decimal.MustParse("1")), Active: ptr(true)}, MsgNameRequired},
		{"empty name", ledger.AccountDraft{Name: ptr(""), Balance: ptr(decimal.MustParse("1")), Active: ptr(true)}, MsgNameRequired},
		{"missing balance", ledger.AccountDraft{Name: ptr("a"), Active: ptr(true)}, MsgBalanceRequired},
		{"negative balance", ledger.AccountDraft{Name: ptr("a"), Balance: ptr(decimal.MustParse("-5")), Active: ptr(true)}, MsgBalanceNegative},
		{"missing active", ledger.AccountDraft{Name: ptr("a"), Balance: ptr(decimal.MustParse("5"))}, MsgActiveRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAccount(tc.in)
			if tc.msg == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.msg {
				t.Fatalf("expected %q, got %v", tc.msg, err)
			}
		})
	}
}
