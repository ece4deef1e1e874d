// Package httpapi wires the HTTP surface of the bookkeeping service.
// Handlers stay thin and delegate the ledger rules to the service layer.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/tinoosan/bookkeeper/internal/service/account"
	"github.com/tinoosan/bookkeeper/internal/service/transaction"
)

// Store is everything the API needs from a storage backend.
type Store interface {
	account.Repo
	account.Writer
	transaction.Repo
	transaction.Writer
}

// Server wires handlers and middleware using Chi.
type Server struct {
	accounts account.Service
	txns     transaction.Service
	store    Store
	currency string
	log      *slog.Logger
	rt       *chi.Mux
}

// New constructs the HTTP server with routes and middleware. currency is the
// ISO code used to render the display form of amounts.
func New(store Store, currency string, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(metricsMiddleware)
	r.Use(recoverer(logger))

	s := &Server{
		accounts: account.New(store, store, store),
		txns:     transaction.New(store, store),
		store:    store,
		currency: currency,
		log:      logger,
		rt:       r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

func (s *Server) routes() {
	s.rt.Route("/api/accounts", func(r chi.Router) {
		r.With(s.validatePostAccount()).Post("/", s.postAccount)
		r.Get("/", s.listAccounts)
		r.Get("/search", s.findAccountByName)
		r.With(s.amountQuery()).Get("/balance/greater-than", s.accountsBalanceGreaterThan)
		r.With(s.amountQuery()).Get("/balance/less-than", s.accountsBalanceLessThan)
		r.Get("/active", s.accountsByActive)
		r.With(s.pathID("id")).Get("/{id}", s.getAccount)
		r.With(s.pathID("id")).Get("/{id}/transactions", s.accountTransactions)
		r.With(s.pathID("id"), s.validatePatchBalance()).Patch("/{id}/balance", s.patchBalance)
	})
	s.rt.Route("/transactions", func(r chi.Router) {
		r.With(s.validatePostTransaction()).Post("/", s.postTransaction)
		r.With(s.pathID("accountId")).Get("/account/{accountId}", s.transactionsByAccount)
		r.With(s.validateBetween()).Get("/between", s.transactionsBetween)
		r.With(s.amountQuery()).Get("/greaterThan", s.transactionsGreaterThan)
		r.With(s.amountQuery()).Get("/lessThan", s.transactionsLessThan)
	})
	// Ops (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Handle("/metrics", metricsHandler())
	s.rt.Get("/openapi.yaml", s.openapiSpec)
}
