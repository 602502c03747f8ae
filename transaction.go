package ledger

import (
	"github.com/etnz/ledger/date"
)

// Posting is one signed amount applied to one account within a transaction.
type Posting struct {
	Account string // Account is the account path as written in the journal.
	Amount  Amount
	Line    int // Line is the journal line the posting was read from.

	// inherited from the owning transaction.
	Date          date.Date
	Description   string
	TransactionID int // TransactionID is the index of the transaction in the journal.
}

// Affects reports whether the posting changes account or one of its sub-accounts.
func (p *Posting) Affects(account string) bool { return ContainsAccount(account, p.Account) }

// Transaction is a dated, described group of postings that must sum to zero
// per unit.
type Transaction struct {
	Date        date.Date
	Description string
	Line        int // Line is the journal line of the transaction's first line.
	Postings    []Posting
}

// Affects reports whether any of the transaction's postings changes account
// or one of its sub-accounts.
func (t *Transaction) Affects(account string) bool {
	for i := range t.Postings {
		if t.Postings[i].Affects(account) {
			return true
		}
	}
	return false
}

// Sums returns, for each unit, the sum of the postings' quantities multiplied
// by the sign of their account.
func (t *Transaction) Sums() (Balances, error) {
	sums := make(Balances)
	for _, p := range t.Postings {
		sign, err := RootSign(p.Account)
		if err != nil {
			return nil, err
		}
		if p.Amount.IsNil() {
			continue
		}
		sums.Add(A(p.Amount.Quantity()*int64(sign), p.Amount.Unit()))
	}
	return sums, nil
}

// Imbalance returns the units whose signed sum is not zero.
func (t *Transaction) Imbalance() (Balances, error) {
	sums, err := t.Sums()
	if err != nil {
		return nil, err
	}
	for unit, sum := range sums {
		if sum.IsZero() {
			delete(sums, unit)
		}
	}
	return sums, nil
}

// IsBalanced reports whether the transaction obeys the double-entry law.
// A transaction with an invalid account is never balanced.
func (t *Transaction) IsBalanced() bool {
	imbalance, err := t.Imbalance()
	return err == nil && len(imbalance) == 0
}

// Verification is an assertion that an account's balance equals Amount at the
// end of Date, once every transaction of that day is booked.
type Verification struct {
	Date    date.Date
	Account string
	Amount  Amount
	Line    int
}

// Journal holds everything read from a journal file, in file order.
type Journal struct {
	Transactions  []*Transaction
	Verifications []Verification
}

// Filter returns the transactions accepted by all the predicates, in order.
func Filter(txs []*Transaction, predicates ...func(*Transaction) bool) []*Transaction {
	var result []*Transaction
next:
	for _, tx := range txs {
		for _, accept := range predicates {
			if !accept(tx) {
				continue next
			}
		}
		result = append(result, tx)
	}
	return result
}

// InRange returns a predicate that accepts transactions dated within r.
func InRange(r date.Range) func(*Transaction) bool {
	return func(tx *Transaction) bool { return r.Contains(tx.Date) }
}

// Affecting returns a predicate that accepts transactions affecting account.
func Affecting(account string) func(*Transaction) bool {
	return func(tx *Transaction) bool { return tx.Affects(account) }
}
