package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/govalues/decimal"

	"github.com/tinoosan/bookkeeper/internal/ledger"
)

// postAccount handles POST /api/accounts
func (s *Server) postAccount(w http.ResponseWriter, r *http.Request) {
	a, _ := r.Context().Value(ctxKeyPostAccount).(ledger.Account)
	created, err := s.accounts.Create(r.Context(), a)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	recordsCreated.WithLabelValues("account").Inc()
	s.log.Info("account created", "req_id", chimw.GetReqID(r.Context()), "account_id", created.ID)
	toJSON(w, http.StatusCreated, s.toAccountResponse(created))
}

// listAccounts handles GET /api/accounts
func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accs, err := s.accounts.List(r.Context())
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, s.toAccountResponses(accs))
}

// getAccount handles GET /api/accounts/{id}
func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(ctxKeyPathID).(int64)
	acc, ok, err := s.accounts.Get(r.Context(), id)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	toJSON(w, http.StatusOK, s.toAccountResponse(acc))
}

// accountTransactions handles GET /api/accounts/{id}/transactions
func (s *Server) accountTransactions(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(ctxKeyPathID).(int64)
	txns, err := s.accounts.ListTransactions(r.Context(), id)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, s.toTransactionResponses(txns))
}

// patchBalance handles PATCH /api/accounts/{id}/balance
func (s *Server) patchBalance(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(ctxKeyPathID).(int64)
	bal, _ := r.Context().Value(ctxKeyPatchBalance).(decimal.Decimal)
	acc, ok, err := s.accounts.UpdateBalance(r.Context(), id, bal)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	s.log.Info("account balance updated", "req_id", chimw.GetReqID(r.Context()), "account_id", acc.ID, "balance", acc.Balance.String())
	toJSON(w, http.StatusOK, s.toAccountResponse(acc))
}

// findAccountByName handles GET /api/accounts/search?name=
func (s *Server) findAccountByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		badRequest(w, "name is required")
		return
	}
	acc, ok, err := s.accounts.FindByName(r.Context(), name)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	toJSON(w, http.StatusOK, s.toAccountResponse(acc))
}

// accountsBalanceGreaterThan handles GET /api/accounts/balance/greater-than?amount=
func (s *Server) accountsBalanceGreaterThan(w http.ResponseWriter, r *http.Request) {
	amt, _ := r.Context().Value(ctxKeyAmount).(decimal.Decimal)
	accs, err := s.accounts.FindByBalanceGreaterThan(r.Context(), amt)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, s.toAccountResponses(accs))
}

// accountsBalanceLessThan handles GET /api/accounts/balance/less-than?amount=
func (s *Server) accountsBalanceLessThan(w http.ResponseWriter, r *http.Request) {
	amt, _ := r.Context().Value(ctxKeyAmount).(decimal.Decimal)
	accs, err := s.accounts.FindByBalanceLessThan(r.Context(), amt)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, s.toAccountResponses(accs))
}

// accountsByActive handles GET /api/accounts/active?active=true|false
func (s *Server) accountsByActive(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("active"))
	if raw == "" {
		badRequest(w, "active is required")
		return
	}
	active, err := strconv.ParseBool(raw)
	if err != nil {
		badRequest(w, "invalid active: must be true or false")
		return
	}
	accs, err := s.accounts.FindByActive(r.Context(), active)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, s.toAccountResponses(accs))
}
