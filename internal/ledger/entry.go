package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies the balance-affecting event an Entry records.
type EntryKind string

const (
	KindDeposit     EntryKind = "DEPOSIT"
	KindWithdraw    EntryKind = "WITHDRAW"
	KindTransferOut EntryKind = "TRANSFER_OUT"
	KindTransferIn  EntryKind = "TRANSFER_IN"
)

// Entry is an immutable record of one balance change on one account.
// Amount is signed: positive for credits, negative for debits. Balance is
// the account balance immediately after this entry was appended.
type Entry struct {
	Kind         EntryKind       `json:"kind"`
	Counterparty string          `json:"counterparty,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Balance      decimal.Decimal `json:"balance"`
	At           time.Time       `json:"at"`
}

// String renders the entry in statement form:
//
//	DEPOSIT (100.00) | Balance: 100.00
//	TRANSFER_OUT ACC2 (-40.00) | Balance: 60.00
func (e Entry) String() string {
	kind := string(e.Kind)
	if e.Counterparty != "" {
		kind = kind + " " + e.Counterparty
	}
	return fmt.Sprintf("%s (%s) | Balance: %s", kind, e.Amount.StringFixed(2), e.Balance.StringFixed(2))
}
