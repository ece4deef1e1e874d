package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/tinoosan/bookkeeper/internal/ledger"
	"github.com/tinoosan/bookkeeper/internal/validation"
)

type ctxKey string

const (
	ctxKeyPostAccount     ctxKey = "validatedPostAccount"
	ctxKeyPatchBalance    ctxKey = "validatedPatchBalance"
	ctxKeyPostTransaction ctxKey = "validatedPostTransaction"
	ctxKeyPathID          ctxKey = "validatedPathID"
	ctxKeyAmount          ctxKey = "validatedAmount"
	ctxKeyBetween         ctxKey = "validatedBetween"
)

// validatePostAccount decodes POST /api/accounts, runs the account checks and
// stores the ledger.Account for the handler.
func (s *Server) validatePostAccount() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req postAccountRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			bal, err := parseDecimal(req.Balance)
			if err != nil {
				badRequest(w, "balance: "+err.Error())
				return
			}
			d := ledger.AccountDraft{Name: req.Name, Balance: bal, Active: req.Active}
			if err := s.accounts.ValidateCreate(d); err != nil {
				s.invalid(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostAccount, d.Account())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validatePatchBalance decodes {"balance": n} and requires a non-negative value.
func (s *Server) validatePatchBalance() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req patchBalanceRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			bal, err := parseDecimal(req.Balance)
			if err != nil {
				badRequest(w, "balance: "+err.Error())
				return
			}
			if err := validation.ValidateBalance(bal); err != nil {
				s.invalid(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPatchBalance, *bal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validatePostTransaction decodes POST /transactions and runs the transaction
// checks before anything reaches the store.
func (s *Server) validatePostTransaction() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req postTransactionRequest
			if !decodeJSON(w, r, &req) {
				return
			}
			d := ledger.TransactionDraft{AccountID: req.AccountID}
			if req.Date != nil {
				day, err := ledger.ParseDate(*req.Date)
				if err != nil {
					badRequest(w, "date must be YYYY-MM-DD")
					return
				}
				d.Date = &day
			}
			amt, err := parseDecimal(req.Amount)
			if err != nil {
				badRequest(w, "amount: "+err.Error())
				return
			}
			d.Amount = amt
			if err := s.txns.Validate(d); err != nil {
				s.invalid(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostTransaction, d)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// pathID parses the named URL parameter as a numeric id.
func (s *Server) pathID(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
			if err != nil {
				badRequest(w, "invalid "+param)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyPathID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// amountQuery requires ?amount= and parses it as a decimal.
func (s *Server) amountQuery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.URL.Query().Get("amount"))
			if raw == "" {
				badRequest(w, "amount is required")
				return
			}
			amt, err := parseExact(raw)
			if err != nil {
				badRequest(w, "amount: "+err.Error())
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyAmount, amt)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateBetween requires ?start= and ?end= as YYYY-MM-DD.
func (s *Server) validateBetween() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			var bq betweenQuery
			for _, p := range []struct {
				name string
				dst  *time.Time
			}{{"start", &bq.Start}, {"end", &bq.End}} {
				raw := q.Get(p.name)
				if raw == "" {
					badRequest(w, p.name+" is required")
					return
				}
				d, err := ledger.ParseDate(raw)
				if err != nil {
					badRequest(w, "invalid "+p.name+": must be YYYY-MM-DD")
					return
				}
				*p.dst = d
			}
			ctx := context.WithValue(r.Context(), ctxKeyBetween, bq)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
