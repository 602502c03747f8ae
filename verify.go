package ledger

import (
	"errors"
	"fmt"
	"slices"
)

// VerificationResult is the outcome of checking one balance assertion.
type VerificationResult struct {
	Verification
	Actual Amount // the balance found, nil if the account had none
	Err    error  // nil when the assertion holds
}

// Verify checks the balance assertions against the transactions.
//
// An assertion is checked when the first transaction dated after it is about
// to be booked, or at the end: it holds when the account balance equals the
// asserted amount. Transactions are booked in journal order, so the journal
// is expected to be date sorted.
//
// It returns the tree with every transaction booked, and one result per
// assertion in date order. A failed assertion is not an error, see
// VerificationErrors.
func Verify(txs []*Transaction, verifications []Verification) (*Tree, []VerificationResult, error) {
	pending := slices.Clone(verifications)
	slices.SortStableFunc(pending, func(a, b Verification) int { return a.Date.Compare(b.Date) })

	tree := NewTree(txs)
	results := make([]VerificationResult, 0, len(pending))
	for _, tx := range txs {
		for len(pending) > 0 && pending[0].Date.Before(tx.Date) {
			results = append(results, check(tree, pending[0]))
			pending = pending[1:]
		}
		if err := tree.BookTransaction(tx); err != nil {
			return nil, nil, fmt.Errorf("booking %s %q: %w", tx.Date, tx.Description, err)
		}
	}
	for _, v := range pending {
		results = append(results, check(tree, v))
	}
	return tree, results, nil
}

// check compares the current balance of v.Account with v.Amount.
func check(tree *Tree, v Verification) VerificationResult {
	r := VerificationResult{Verification: v}
	n, err := tree.Find(v.Account)
	if err != nil {
		r.Err = fmt.Errorf("line %d: verify-balance: %w", v.Line, err)
		return r
	}
	actual, err := n.Balance()
	if err != nil {
		r.Err = fmt.Errorf("line %d: verify-balance: %w", v.Line, err)
		return r
	}
	r.Actual = actual
	// an account with nothing booked yet holds zero.
	if diff, err := Difference(actual, v.Amount); err != nil || !diff.IsZero() {
		r.Err = &VerificationFailure{Verification: v, Actual: actual}
	}
	return r
}

// VerificationErrors joins the errors of the failed results, nil if all hold.
func VerificationErrors(results []VerificationResult) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
