package ledger

import (
	"errors"
	"fmt"
)

// Sentinel failures surfaced by the transaction engine. Callers branch on
// these with errors.Is; all of them are recoverable by re-prompting.
var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidPin             = errors.New("incorrect PIN")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientFunds      = errors.New("insufficient balance")
	ErrSameAccountTransfer    = errors.New("cannot transfer to the same account")
	ErrDuplicateAccountNumber = errors.New("could not allocate a unique account number")
	ErrInvalidRate            = errors.New("rate must not be negative")
	ErrInvalidDuration        = errors.New("years must be positive")
	ErrNotConfirmed           = errors.New("deletion not confirmed")
)

// FieldError reports which identity field failed validation at account
// creation. It unwraps to ErrInvalidInput.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e FieldError) Unwrap() error {
	return ErrInvalidInput
}
