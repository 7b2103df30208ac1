package application

import (
	"errors"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/pkg/i18n"
)

var (
	// ErrInvalidStatus is returned when querying cells by an unknown status.
	ErrInvalidStatus = errors.New("invalid cell status")
	// ErrMissingTargets is returned when sending without any target output.
	ErrMissingTargets = errors.New("at least one target output is required")
	// ErrMissingWitnesses is returned when the signer leaves inputs without
	// a witness.
	ErrMissingWitnesses = errors.New("signed transaction lacks witnesses")
)

// ErrorKind names the failure of an operation so that callers can branch or
// localize it without matching on messages.
type ErrorKind string

const (
	ErrorKindNone                       ErrorKind = ""
	ErrorKindUnknown                    ErrorKind = "unknown"
	ErrorKindCapacityNotEnough          ErrorKind = "capacity-not-enough"
	ErrorKindCapacityNotEnoughForChange ErrorKind = "capacity-not-enough-for-change"
	ErrorKindInvalidAmount              ErrorKind = "invalid-amount"
	ErrorKindWalletNotFound             ErrorKind = "current-wallet-is-not-found"
	ErrorKindWalletNameExists           ErrorKind = "wallet-name-existed"
	ErrorKindPasswordRequired           ErrorKind = "password-is-required"
	ErrorKindIncorrectPassword          ErrorKind = "password-is-incorrect"
	ErrorKindNoKeyData                  ErrorKind = "current-key-has-no-data"
	ErrorKindInvalidAddress             ErrorKind = "address-is-invalid"
	ErrorKindBroadcastRejected          ErrorKind = "transaction-rejected"
	ErrorKindNoChangeAddress            ErrorKind = "no-change-address"
	ErrorKindTransactionNotFound        ErrorKind = "transaction-is-not-found"
	ErrorKindLockHashNotOwned           ErrorKind = "lock-hash-is-not-owned"
)

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{domain.ErrCapacityNotEnoughForChange, ErrorKindCapacityNotEnoughForChange},
	{domain.ErrCapacityNotEnough, ErrorKindCapacityNotEnough},
	{domain.ErrInvalidAmount, ErrorKindInvalidAmount},
	{domain.ErrWalletNotFound, ErrorKindWalletNotFound},
	{domain.ErrWalletNameExists, ErrorKindWalletNameExists},
	{domain.ErrPasswordRequired, ErrorKindPasswordRequired},
	{domain.ErrIncorrectPassword, ErrorKindIncorrectPassword},
	{domain.ErrNoKeyData, ErrorKindNoKeyData},
	{domain.ErrInvalidAddress, ErrorKindInvalidAddress},
	{domain.ErrBroadcastRejected, ErrorKindBroadcastRejected},
	{domain.ErrNoChangeAddress, ErrorKindNoChangeAddress},
	{domain.ErrTransactionNotFound, ErrorKindTransactionNotFound},
	{domain.ErrLockHashNotOwned, ErrorKindLockHashNotOwned},
}

// ErrorKindOf returns the kind of the given, possibly wrapped, error.
func ErrorKindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindNone
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ErrorKindUnknown
}

// LocalizeError returns the message of the error kind in the language best
// matching lang, or an empty string for a nil error.
func LocalizeError(err error, lang string) string {
	kind := ErrorKindOf(err)
	if kind == ErrorKindNone {
		return ""
	}

	var args []interface{}
	if kind == ErrorKindInvalidAddress {
		var address string
		var addrErr *domain.InvalidAddressError
		if errors.As(err, &addrErr) {
			address = addrErr.Address
		}
		args = append(args, address)
	}
	return i18n.NewTranslator(lang).Translate(string(kind), args...)
}
