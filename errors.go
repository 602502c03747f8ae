package ledger

import (
	"errors"
	"fmt"

	"github.com/etnz/ledger/date"
)

// Errors reported by the engine. Use errors.Is to test for them, the typed
// errors below unwrap to one of these.
var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidAccount     = errors.New("invalid account")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrMalformedVerify    = errors.New("invalid VERIFY-BALANCE operation")
	ErrMultiCurrency      = errors.New("amounts do not contain a single unit")
	ErrUnbalanced         = errors.New("transaction does not balance")
	ErrOutOfOrder         = errors.New("transaction is not in date order")
	ErrAccountNotFound    = errors.New("account not found")
	ErrVerificationFailed = errors.New("verify-balance failed")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrReportMisaligned   = errors.New("balance snapshots are not aligned")
)

// LineError locates a journal parsing error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

// UnbalancedError reports a transaction whose postings do not sum to zero.
type UnbalancedError struct {
	Transaction *Transaction
	Imbalance   Balances // only the units that do not sum to zero
}

func (e *UnbalancedError) Error() string {
	tx := e.Transaction
	msg := fmt.Sprintf("line %d: %v. Date: '%s', description: %s.", tx.Line, ErrUnbalanced, tx.Date, tx.Description)
	for _, unit := range e.Imbalance.Units() {
		msg += fmt.Sprintf(" Imbalance amount: %s.", e.Imbalance[unit])
	}
	return msg
}

func (e *UnbalancedError) Unwrap() error { return ErrUnbalanced }

// OutOfOrderError reports a transaction dated before its predecessor in the journal.
type OutOfOrderError struct {
	Transaction *Transaction
	Previous    date.Date
}

func (e *OutOfOrderError) Error() string {
	tx := e.Transaction
	return fmt.Sprintf("line %d: date: '%s' description: '%s' is not in date order (previous transaction on %s)",
		tx.Line, tx.Date, tx.Description, e.Previous)
}

func (e *OutOfOrderError) Unwrap() error { return ErrOutOfOrder }

// VerificationFailure reports a balance assertion that does not hold.
type VerificationFailure struct {
	Verification
	Actual Amount
}

func (e *VerificationFailure) Error() string {
	return fmt.Sprintf("line %d: FAILED: verify-balance for account '%s' at %s. Expected balance: %s. Actual balance: %s.",
		e.Line, e.Account, e.Date, e.Amount, e.Actual)
}

func (e *VerificationFailure) Unwrap() error { return ErrVerificationFailed }
