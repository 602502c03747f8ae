package ledger

import (
	"errors"
)

// EnsureDateSorted reports every transaction dated before the transaction
// preceding it in the journal.
func EnsureDateSorted(txs []*Transaction) error {
	var errs []error
	for i := 1; i < len(txs); i++ {
		if prev := txs[i-1].Date; txs[i].Date.Before(prev) {
			errs = append(errs, &OutOfOrderError{Transaction: txs[i], Previous: prev})
		}
	}
	return errors.Join(errs...)
}

// EnsureBalanced reports every transaction whose postings do not sum to zero.
func EnsureBalanced(txs []*Transaction) error {
	var errs []error
	for _, tx := range txs {
		imbalance, err := tx.Imbalance()
		if err != nil {
			errs = append(errs, &LineError{Line: tx.Line, Err: err})
			continue
		}
		if len(imbalance) > 0 {
			errs = append(errs, &UnbalancedError{Transaction: tx, Imbalance: imbalance})
		}
	}
	return errors.Join(errs...)
}
