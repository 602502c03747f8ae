package ledger

import (
	"os"
	"strings"
	"testing"

	"github.com/etnz/ledger/date"
)

// AUD is a shortcut to create an amount in cents.
func AUD(cents int64) Amount { return A(cents, "AUD") }

// tx is a shortcut to create a transaction from alternating accounts and amounts.
func tx(on, description string, postings ...any) *Transaction {
	t := &Transaction{Date: date.MustParse(on), Description: description}
	for i := 0; i+1 < len(postings); i += 2 {
		t.Postings = append(t.Postings, Posting{
			Account:     postings[i].(string),
			Amount:      postings[i+1].(Amount),
			Date:        t.Date,
			Description: description,
		})
	}
	return t
}

// decode decodes a journal written inline, failing the test on error.
func decode(t *testing.T, text string) *Journal {
	t.Helper()
	j, err := DecodeJournal(strings.NewReader(text), DecodeOptions{})
	if err != nil {
		t.Fatalf("DecodeJournal() unexpected error: %v", err)
	}
	return j
}

// loadJournal decodes testdata/journal.txt.
func loadJournal(t *testing.T) *Journal {
	t.Helper()
	f, err := os.Open("testdata/journal.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	j, err := DecodeJournal(f, DecodeOptions{})
	if err != nil {
		t.Fatalf("DecodeJournal() unexpected error: %v", err)
	}
	return j
}
