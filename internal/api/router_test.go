package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/bank-ledger/internal/bank"
	"github.com/example/bank-ledger/internal/ledger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := bank.NewService(ledger.NewRepository(), nil, logger)
	ts := httptest.NewServer(NewRouter(Dependencies{Logger: logger, Bank: svc}))
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body map[string]any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOpenAccountAndCorrelationID(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/accounts", map[string]any{
		"name": "Alice", "email": "a@x.com", "type": "SAVINGS",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get(CorrelationIDHeader))

	body := decodeBody(t, resp)
	account := body["account"].(map[string]any)
	require.Equal(t, "ACC1", account["account_id"])
	require.Equal(t, "0.00", account["balance"])
}

func TestOpenAccountValidationStatuses(t *testing.T) {
	ts := newTestServer(t)

	cases := []map[string]any{
		{"name": " ", "email": "a@x.com", "type": "SAVINGS"},
		{"name": "Alice", "email": "no-at-sign", "type": "SAVINGS"},
		{"name": "Alice", "email": "a@x.com", "type": "CHECKING"},
	}
	for _, c := range cases {
		resp := postJSON(t, ts.URL+"/v1/accounts", c)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		require.NotEmpty(t, body["kind"])
	}
}

func TestMoneyMovementFlow(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/accounts", map[string]any{"name": "Alice", "email": "a@x.com", "type": "SAVINGS"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = postJSON(t, ts.URL+"/v1/accounts", map[string]any{"name": "Bob", "email": "b@x.com", "type": "CURRENT"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/v1/deposit", map[string]any{"account_id": "ACC1", "amount": "100"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// over-withdrawal maps to 422
	resp = postJSON(t, ts.URL+"/v1/withdraw", map[string]any{"account_id": "ACC1", "amount": "150"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, string(bank.InsufficientFunds), body["kind"])

	resp = postJSON(t, ts.URL+"/v1/transfer", map[string]any{"from_id": "ACC1", "to_id": "ACC2", "amount": "40"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/v1/accounts/ACC1/statement")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stmt := decodeBody(t, resp)
	lines := stmt["lines"].([]any)
	require.Len(t, lines, 2)
	require.Equal(t, "DEPOSIT (100.00) | Balance: 100.00", lines[0])
	require.Equal(t, "TRANSFER_OUT ACC2 (-40.00) | Balance: 60.00", lines[1])
}

func TestUnknownAccountMapsTo404(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/deposit", map[string]any{"account_id": "ACC999", "amount": "10"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, string(bank.AccountNotFound), body["kind"])
}

func TestBadAmountMapsTo400(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/deposit", map[string]any{"account_id": "ACC1", "amount": "ten"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	require.Equal(t, string(bank.InvalidAmount), body["kind"])
}

func TestSearchAccounts(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/accounts", map[string]any{"name": "Alice", "email": "a@x.com", "type": "SAVINGS"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/v1/accounts/search?owner=ALICE")
	require.NoError(t, err)
	body := decodeBody(t, resp)
	require.Len(t, body["accounts"].([]any), 1)

	resp, err = http.Get(ts.URL + "/v1/accounts/search?owner=nobody")
	require.NoError(t, err)
	body = decodeBody(t, resp)
	require.Empty(t, body["accounts"])
}
