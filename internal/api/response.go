package api

import (
	"encoding/json"
	"net/http"

	"github.com/example/bank-ledger/internal/bank"
)

type errorResponse struct {
	Error         string `json:"error"`
	Kind          string `json:"kind,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	cid := CorrelationIDFromContext(r.Context())
	if cid != "" {
		w.Header().Set(CorrelationIDHeader, cid)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service error kinds onto HTTP statuses. Anything that
// is not a typed service error is reported as an internal error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal_error"

	kind := bank.KindOf(err)
	switch kind {
	case bank.InvalidName, bank.InvalidEmail, bank.InvalidAccountType, bank.InvalidAmount:
		status = http.StatusBadRequest
	case bank.AccountNotFound:
		status = http.StatusNotFound
	case bank.InsufficientFunds:
		status = http.StatusUnprocessableEntity
	}
	if kind != "" {
		message = err.Error()
	}

	writeJSON(w, r, status, errorResponse{
		Error:         message,
		Kind:          string(kind),
		CorrelationID: CorrelationIDFromContext(r.Context()),
	})
}
