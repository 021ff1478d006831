package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/example/bank-ledger/internal/bank"
	"github.com/example/bank-ledger/internal/ledger"
)

type accountView struct {
	AccountID string `json:"account_id"`
	Owner     string `json:"owner"`
	Email     string `json:"email"`
	Type      string `json:"type"`
	Balance   string `json:"balance"`
}

func viewOf(a *ledger.Account) accountView {
	return accountView{
		AccountID: a.ID,
		Owner:     a.Owner.Name,
		Email:     a.Owner.Email,
		Type:      string(a.Type),
		Balance:   a.Balance().StringFixed(2),
	}
}

func viewsOf(accounts []*ledger.Account) []accountView {
	out := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, viewOf(a))
	}
	return out
}

type openAccountRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

type openAccountResponse struct {
	CorrelationID string      `json:"correlation_id"`
	Account       accountView `json:"account"`
}

type moveMoneyRequest struct {
	AccountID string `json:"account_id,omitempty"`
	FromID    string `json:"from_id,omitempty"`
	ToID      string `json:"to_id,omitempty"`
	Amount    string `json:"amount"`
}

type moveMoneyResponse struct {
	CorrelationID string `json:"correlation_id"`
	Success       bool   `json:"success"`
}

type listAccountsResponse struct {
	CorrelationID string        `json:"correlation_id"`
	Accounts      []accountView `json:"accounts"`
}

type statementResponse struct {
	CorrelationID string         `json:"correlation_id"`
	AccountID     string         `json:"account_id"`
	Entries       []ledger.Entry `json:"entries"`
	Lines         []string       `json:"lines"`
}

func handleOpenAccount(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, r, http.StatusBadRequest, errorResponse{
				Error:         "invalid_json",
				CorrelationID: CorrelationIDFromContext(r.Context()),
			})
			return
		}

		acc, err := deps.Bank.OpenAccount(r.Context(), req.Name, req.Email, req.Type)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, openAccountResponse{
			CorrelationID: CorrelationIDFromContext(r.Context()),
			Account:       viewOf(acc),
		})
	}
}

func handleDeposit(deps Dependencies) http.HandlerFunc {
	return handleMoveMoney(deps, func(r *http.Request, req moveMoneyRequest, amount decimal.Decimal) error {
		return deps.Bank.Deposit(r.Context(), req.AccountID, amount)
	})
}

func handleWithdraw(deps Dependencies) http.HandlerFunc {
	return handleMoveMoney(deps, func(r *http.Request, req moveMoneyRequest, amount decimal.Decimal) error {
		return deps.Bank.Withdraw(r.Context(), req.AccountID, amount)
	})
}

func handleTransfer(deps Dependencies) http.HandlerFunc {
	return handleMoveMoney(deps, func(r *http.Request, req moveMoneyRequest, amount decimal.Decimal) error {
		return deps.Bank.Transfer(r.Context(), req.FromID, req.ToID, amount)
	})
}

func handleMoveMoney(deps Dependencies, call func(*http.Request, moveMoneyRequest, decimal.Decimal) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req moveMoneyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, r, http.StatusBadRequest, errorResponse{
				Error:         "invalid_json",
				CorrelationID: CorrelationIDFromContext(r.Context()),
			})
			return
		}

		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			writeError(w, r, bank.Errorf(bank.InvalidAmount, "amount %q is not a number", req.Amount))
			return
		}

		if err := call(r, req, amount); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, moveMoneyResponse{
			CorrelationID: CorrelationIDFromContext(r.Context()),
			Success:       true,
		})
	}
}

func handleStatement(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "account_id")

		entries, err := deps.Bank.GetStatement(r.Context(), accountID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, e.String())
		}

		writeJSON(w, r, http.StatusOK, statementResponse{
			CorrelationID: CorrelationIDFromContext(r.Context()),
			AccountID:     accountID,
			Entries:       entries,
			Lines:         lines,
		})
	}
}

func handleListAccounts(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, listAccountsResponse{
			CorrelationID: CorrelationIDFromContext(r.Context()),
			Accounts:      viewsOf(deps.Bank.ListAccounts(r.Context())),
		})
	}
}

func handleSearchAccounts(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := r.URL.Query().Get("owner")
		writeJSON(w, r, http.StatusOK, listAccountsResponse{
			CorrelationID: CorrelationIDFromContext(r.Context()),
			Accounts:      viewsOf(deps.Bank.SearchByOwner(r.Context(), owner)),
		})
	}
}
