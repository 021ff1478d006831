// Package api is the HTTP presentation shell. It translates requests into
// banking service calls and renders whatever the service returns; no
// business rule lives here.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/example/bank-ledger/internal/ledger"
)

// BankService is the slice of the banking service the shell consumes.
type BankService interface {
	OpenAccount(ctx context.Context, name, email, accountType string) (*ledger.Account, error)
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) error
	Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error
	GetStatement(ctx context.Context, accountID string) ([]ledger.Entry, error)
	ListAccounts(ctx context.Context) []*ledger.Account
	SearchByOwner(ctx context.Context, name string) []*ledger.Account
}

type Dependencies struct {
	Logger       *slog.Logger
	Bank         BankService
	MaxBodyBytes int64
}

func NewRouter(deps Dependencies) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = 1 << 20
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(CorrelationID)
	r.Use(RequestLogger(deps.Logger))
	r.Use(BodySizeLimit(deps.MaxBodyBytes))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/accounts", handleOpenAccount(deps))
		r.Get("/accounts", handleListAccounts(deps))
		r.Get("/accounts/search", handleSearchAccounts(deps))
		r.Get("/accounts/{account_id}/statement", handleStatement(deps))
		r.Post("/deposit", handleDeposit(deps))
		r.Post("/withdraw", handleWithdraw(deps))
		r.Post("/transfer", handleTransfer(deps))
	})

	return r
}
