package httpapi

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/govalues/decimal"

	"github.com/tinoosan/bookkeeper/internal/ledger"
)

// postTransaction handles POST /transactions
func (s *Server) postTransaction(w http.ResponseWriter, r *http.Request) {
	d, _ := r.Context().Value(ctxKeyPostTransaction).(ledger.TransactionDraft)
	t, err := s.txns.Create(r.Context(), d)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	recordsCreated.WithLabelValues("transaction").Inc()
	s.log.Info("transaction created",
		"req_id", chimw.GetReqID(r.Context()),
		"transaction_id", t.ID,
		"account_id", t.AccountID,
		"amount", t.Amount.String(),
	)
	toJSON(w, http.StatusCreated, s.toTransactionResponse(t))
}

// transactionsByAccount handles GET /transactions/account/{accountId}
func (s *Server) transactionsByAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := r.Context().Value(ctxKeyPathID).(int64)
	txns, err := s.txns.FindByAccountID(r.Context(), id)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, s.toTransactionResponses(txns))
}

// transactionsBetween handles GET /transactions/between?start=&end=
func (s *Server) transactionsBetween(w http.ResponseWriter, r *http.Request) {
	q, _ := r.Context().Value(ctxKeyBetween).(betweenQuery)
	txns, err := s.txns.FindBetweenDates(r.Context(), q.Start, q.End)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, s.toTransactionResponses(txns))
}

// transactionsGreaterThan handles GET /transactions/greaterThan?amount=
func (s *Server) transactionsGreaterThan(w http.ResponseWriter, r *http.Request) {
	amt, _ := r.Context().Value(ctxKeyAmount).(decimal.Decimal)
	txns, err := s.txns.FindGreaterThan(r.Context(), amt)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, s.toTransactionResponses(txns))
}

// transactionsLessThan handles GET /transactions/lessThan?amount=
func (s *Server) transactionsLessThan(w http.ResponseWriter, r *http.Request) {
	amt, _ := r.Context().Value(ctxKeyAmount).(decimal.Decimal)
	txns, err := s.txns.FindLessThan(r.Context(), amt)
	if err != nil {
		s.serviceErr(w, r, err)
		return
	}
	toJSON(w, http.StatusOK, s.toTransactionResponses(txns))
}
