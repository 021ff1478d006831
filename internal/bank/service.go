// Package bank exposes the public banking API: it validates external
// input, resolves accounts through the repository and orchestrates
// multi-account operations. Presentation shells call only this package.
package bank

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/bank-ledger/internal/ledger"
	"github.com/example/bank-ledger/pkg/audit"
)

// Auditor receives one record per successful mutating operation.
type Auditor interface {
	Record(ctx context.Context, rec audit.Record) (audit.Entry, error)
}

// Service is the banking service. All state lives in the repository; the
// service itself is stateless and safe for concurrent use.
type Service struct {
	repo    *ledger.Repository
	auditor Auditor
	log     *slog.Logger
}

// NewService wires a service over repo. auditor may be nil to disable the
// operation journal.
func NewService(repo *ledger.Repository, auditor Auditor, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, auditor: auditor, log: log}
}

// OpenAccount validates the customer details and creates a zero-balance
// account. The name is stored as given; the type is matched
// case-insensitively.
func (s *Service) OpenAccount(ctx context.Context, name, email, accountType string) (*ledger.Account, error) {
	if err := validateOpenAccount(openAccountInput{Name: name, Email: email}); err != nil {
		return nil, err
	}
	typ, ok := ledger.ParseAccountType(strings.TrimSpace(accountType))
	if !ok {
		return nil, Errorf(InvalidAccountType, "account type %q: must be SAVINGS or CURRENT", accountType)
	}

	acc := s.repo.Create(ledger.Customer{Name: name, Email: email}, typ)
	s.log.Info("account_opened", "account_id", acc.ID, "owner", name, "type", typ)
	s.record(ctx, audit.Record{Op: "open_account", AccountID: acc.ID})
	return acc, nil
}

// Deposit credits amount to the account.
func (s *Service) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	acc, err := s.resolve(accountID)
	if err != nil {
		return err
	}

	acc.Deposit(amount)
	s.log.Info("deposit", "account_id", acc.ID, "amount", amount.StringFixed(2))
	s.record(ctx, audit.Record{Op: "deposit", TxID: uuid.NewString(), AccountID: acc.ID, Amount: amount.StringFixed(2)})
	return nil
}

// Withdraw debits amount from the account.
func (s *Service) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	acc, err := s.resolve(accountID)
	if err != nil {
		return err
	}

	if err := acc.Withdraw(amount); err != nil {
		return asServiceError(err, accountID)
	}
	s.log.Info("withdraw", "account_id", acc.ID, "amount", amount.StringFixed(2))
	s.record(ctx, audit.Record{Op: "withdraw", TxID: uuid.NewString(), AccountID: acc.ID, Amount: amount.StringFixed(2)})
	return nil
}

// Transfer moves amount from one account to the other as a single logical
// operation: either both sides change or neither does. fromID == toID is
// a degenerate but valid no-net-effect operation, not an error.
func (s *Service) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	from, err := s.resolve(fromID)
	if err != nil {
		return err
	}
	to, err := s.resolve(toID)
	if err != nil {
		return err
	}

	if err := from.Transfer(to, amount); err != nil {
		return asServiceError(err, fromID)
	}
	s.log.Info("transfer", "from", from.ID, "to", to.ID, "amount", amount.StringFixed(2))
	s.record(ctx, audit.Record{Op: "transfer", TxID: uuid.NewString(), AccountID: from.ID, Counterparty: to.ID, Amount: amount.StringFixed(2)})
	return nil
}

// GetStatement returns the account's full entry history in chronological
// order.
func (s *Service) GetStatement(ctx context.Context, accountID string) ([]ledger.Entry, error) {
	acc, err := s.resolve(accountID)
	if err != nil {
		return nil, err
	}
	return acc.History(), nil
}

// ListAccounts returns all accounts in creation order.
func (s *Service) ListAccounts(ctx context.Context) []*ledger.Account {
	return s.repo.ListAll()
}

// SearchByOwner returns accounts whose owner name matches
// case-insensitively.
func (s *Service) SearchByOwner(ctx context.Context, name string) []*ledger.Account {
	return s.repo.FindByOwnerName(name)
}

func (s *Service) resolve(accountID string) (*ledger.Account, error) {
	acc, err := s.repo.Find(accountID)
	if err != nil {
		return nil, asServiceError(err, accountID)
	}
	return acc, nil
}

// record appends an audit record. Journal failures are logged, never
// surfaced: the ledger operation already succeeded.
func (s *Service) record(ctx context.Context, rec audit.Record) {
	if s.auditor == nil {
		return
	}
	if _, err := s.auditor.Record(ctx, rec); err != nil {
		s.log.Warn("audit_record_failed", "op", rec.Op, "error", err)
	}
}

func checkAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Errorf(InvalidAmount, "amount must be greater than zero, got %s", amount)
	}
	return nil
}

// asServiceError translates ledger errors into typed service errors.
func asServiceError(err error, accountID string) error {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return Errorf(AccountNotFound, "account %q not found", accountID)
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return Errorf(InsufficientFunds, "insufficient funds in account %q", accountID)
	}
	return err
}
