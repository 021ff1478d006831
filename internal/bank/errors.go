package bank

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure. Every failure the service surfaces is
// a validation or business-rule error: none are transient, none are fatal.
type Kind string

const (
	InvalidName        Kind = "INVALID_NAME"
	InvalidEmail       Kind = "INVALID_EMAIL"
	InvalidAccountType Kind = "INVALID_ACCOUNT_TYPE"
	InvalidAmount      Kind = "INVALID_AMOUNT"
	AccountNotFound    Kind = "ACCOUNT_NOT_FOUND"
	InsufficientFunds  Kind = "INSUFFICIENT_FUNDS"
)

// Error is a typed service failure with a human-readable message. Shells
// match on Kind for display and carry on with their loop.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds a service error of the given kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind from err, or "" if err is not a
// service error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
