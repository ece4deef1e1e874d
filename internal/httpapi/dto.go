package httpapi

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/govalues/decimal"
	"github.com/govalues/money"

	"github.com/tinoosan/bookkeeper/internal/ledger"
)

// Accounts

type postAccountRequest struct {
	// ID is accepted for compatibility and ignored; the store assigns ids.
	ID      *int64       `json:"id,omitempty"`
	Name    *string      `json:"accountName"`
	Balance *json.Number `json:"balance"`
	Active  *bool        `json:"isActive"`
}

type patchBalanceRequest struct {
	Balance *json.Number `json:"balance"`
}

type accountResponse struct {
	ID      int64       `json:"id"`
	Name    string      `json:"accountName"`
	Balance json.Number `json:"balance"`
	Display string      `json:"display,omitempty"`
	Active  bool        `json:"isActive"`
}

// Transactions

type postTransactionRequest struct {
	ID        *int64       `json:"id,omitempty"`
	AccountID *int64       `json:"accountId"`
	Date      *string      `json:"date"`
	Amount    *json.Number `json:"amount"`
}

type transactionResponse struct {
	ID        int64       `json:"id"`
	AccountID int64       `json:"accountId"`
	Date      string      `json:"date"`
	Amount    json.Number `json:"amount"`
	Display   string      `json:"display,omitempty"`
}

type betweenQuery struct {
	Start, End time.Time
}

// maxDigits is the decimal precision; longer inputs would be rounded.
const maxDigits = 19

// parseDecimal turns an optional JSON number into an optional decimal.
func parseDecimal(n *json.Number) (*decimal.Decimal, error) {
	if n == nil {
		return nil, nil
	}
	d, err := parseExact(n.String())
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseExact parses s and rejects values that only fit after rounding.
func parseExact(s string) (decimal.Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q", s)
	}
	want, ok := new(big.Rat).SetString(s)
	got, _ := new(big.Rat).SetString(d.String())
	if !ok || got == nil || want.Cmp(got) != 0 {
		return decimal.Decimal{}, fmt.Errorf("number %q exceeds %d significant digits", s, maxDigits)
	}
	return d, nil
}

func (s *Server) display(d decimal.Decimal) string {
	amt, err := money.ParseAmount(s.currency, d.String())
	if err != nil {
		return ""
	}
	return amt.String()
}

func (s *Server) toAccountResponse(a ledger.Account) accountResponse {
	return accountResponse{
		ID:      a.ID,
		Name:    a.Name,
		Balance: json.Number(a.Balance.String()),
		Display: s.display(a.Balance),
		Active:  a.Active,
	}
}

func (s *Server) toAccountResponses(in []ledger.Account) []accountResponse {
	out := make([]accountResponse, 0, len(in))
	for _, a := range in {
		out = append(out, s.toAccountResponse(a))
	}
	return out
}

func (s *Server) toTransactionResponse(t ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:        t.ID,
		AccountID: t.AccountID,
		Date:      t.Date.Format(ledger.DateLayout),
		Amount:    json.Number(t.Amount.String()),
		Display:   s.display(t.Amount),
	}
}

func (s *Server) toTransactionResponses(in []ledger.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(in))
	for _, t := range in {
		out = append(out, s.toTransactionResponse(t))
	}
	return out
}
