package ledger

import (
	"errors"
	"strings"
	"testing"
)

func TestEnsureDateSorted(t *testing.T) {
	txs := []*Transaction{
		tx("2013-01-01", "a", "Assets:Cash", AUD(1), "Equity", AUD(1)),
		tx("2013-01-03", "b", "Assets:Cash", AUD(1), "Equity", AUD(1)),
		tx("2013-01-02", "c", "Assets:Cash", AUD(1), "Equity", AUD(1)),
		tx("2013-01-02", "d", "Assets:Cash", AUD(1), "Equity", AUD(1)),
		tx("2012-12-01", "e", "Assets:Cash", AUD(1), "Equity", AUD(1)),
	}
	if err := EnsureDateSorted(txs[:2]); err != nil {
		t.Errorf("EnsureDateSorted() unexpected error: %v", err)
	}

	err := EnsureDateSorted(txs)
	if !errors.Is(err, ErrOutOfOrder) {
		t.Fatalf("EnsureDateSorted() error = %v, want %v", err, ErrOutOfOrder)
	}
	// every offending transaction is reported.
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("EnsureDateSorted() error is not joined: %T", err)
	}
	var got []string
	for _, e := range joined.Unwrap() {
		var ooo *OutOfOrderError
		if errors.As(e, &ooo) {
			got = append(got, ooo.Transaction.Description)
		}
	}
	if strings.Join(got, ",") != "c,e" {
		t.Errorf("out of order transactions = %v, want [c e]", got)
	}
}

func TestEnsureBalanced(t *testing.T) {
	txs := []*Transaction{
		tx("2013-01-01", "ok", "Assets:Cash", AUD(1), "Equity", AUD(1)),
		tx("2013-01-02", "wrong", "Assets:Cash", AUD(1), "Equity", AUD(-1)),
		tx("2013-01-03", "also wrong", "Expenses:Food", AUD(5), "Assets:Cash", AUD(-4)),
	}
	if err := EnsureBalanced(txs[:1]); err != nil {
		t.Errorf("EnsureBalanced() unexpected error: %v", err)
	}

	err := EnsureBalanced(txs)
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("EnsureBalanced() error = %v, want %v", err, ErrUnbalanced)
	}
	msg := err.Error()
	for _, want := range []string{"description: wrong.", "Imbalance amount: $0.02.", "description: also wrong.", "Imbalance amount: $0.01."} {
		if !strings.Contains(msg, want) {
			t.Errorf("EnsureBalanced() error %q does not contain %q", msg, want)
		}
	}
}
