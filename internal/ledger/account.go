package ledger

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInsufficientFunds is returned when a debit would push a balance
// below zero. The account is left untouched.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Customer identifies the owner of an account. Immutable once created.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AccountType is the product category of an account.
type AccountType string

const (
	TypeSavings AccountType = "SAVINGS"
	TypeCurrent AccountType = "CURRENT"
)

// ParseAccountType resolves a case-insensitive type name.
func ParseAccountType(s string) (AccountType, bool) {
	switch AccountType(strings.ToUpper(s)) {
	case TypeSavings:
		return TypeSavings, true
	case TypeCurrent:
		return TypeCurrent, true
	}
	return "", false
}

// Account holds a balance and the ordered history of entries that produced
// it. Only the Repository constructs Accounts. Every mutation updates the
// balance and appends the matching entry inside the same critical section,
// so the two can never diverge.
type Account struct {
	ID    string
	Owner Customer
	Type  AccountType

	mu      sync.Mutex
	balance decimal.Decimal
	history []Entry
}

func newAccount(id string, owner Customer, typ AccountType) *Account {
	return &Account{ID: id, Owner: owner, Type: typ}
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns a snapshot of the account's entries in chronological
// order. The returned slice is a copy; the live history is append-only.
func (a *Account) History() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Entry, len(a.history))
	copy(out, a.history)
	return out
}

// Deposit credits amount and appends a DEPOSIT entry. Amount validity is
// the caller's responsibility; deposits have no failure condition.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	a.append(KindDeposit, "", amount)
}

// Withdraw debits amount and appends a WITHDRAW entry with a negative
// amount. Fails with ErrInsufficientFunds if amount exceeds the balance,
// in which case neither balance nor history changes.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.append(KindWithdraw, "", amount.Neg())
	return nil
}

// Transfer debits a and credits dst as one logical operation: the source
// gets a TRANSFER_OUT entry, the destination a TRANSFER_IN entry, and if
// funds are insufficient neither account is modified. Both locks are held
// until both entries are appended; locks are acquired in account-id order
// so that concurrent opposing transfers cannot deadlock. A transfer to the
// same account is not special-cased: it debits then credits under one lock
// acquisition, appending both entries for a net-zero balance change.
func (a *Account) Transfer(dst *Account, amount decimal.Decimal) error {
	switch {
	case a == dst:
		a.mu.Lock()
		defer a.mu.Unlock()
	case a.ID < dst.ID:
		a.mu.Lock()
		defer a.mu.Unlock()
		dst.mu.Lock()
		defer dst.mu.Unlock()
	default:
		dst.mu.Lock()
		defer dst.mu.Unlock()
		a.mu.Lock()
		defer a.mu.Unlock()
	}

	if a.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	a.append(KindTransferOut, dst.ID, amount.Neg())
	dst.balance = dst.balance.Add(amount)
	dst.append(KindTransferIn, a.ID, amount)
	return nil
}

// append records one entry with the post-mutation balance snapshot.
// Callers must hold a.mu.
func (a *Account) append(kind EntryKind, counterparty string, signed decimal.Decimal) {
	a.history = append(a.history, Entry{
		Kind:         kind,
		Counterparty: counterparty,
		Amount:       signed,
		Balance:      a.balance,
		At:           time.Now().UTC(),
	})
}
