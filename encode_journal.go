package ledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// EncodeJournal writes the journal back in the text format read by
// DecodeJournal: transactions separated by blank lines, then the balance
// assertions.
//
// Amounts are written as stored. A journal decoded with AdjustSigns must be
// decoded again without it.
func EncodeJournal(w io.Writer, j *Journal) error {
	out := bufio.NewWriter(w)
	for i, tx := range j.Transactions {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, strings.TrimSpace(tx.Date.String()+" "+tx.Description))

		rows := make([][]string, len(tx.Postings))
		for k, p := range tx.Postings {
			rows[k] = []string{p.Account, p.Amount.String()}
		}
		for _, line := range JoinColumns(JustifyColumns(rows, "LR"), "  ") {
			fmt.Fprintln(out, line)
		}
	}

	if len(j.Verifications) > 0 && len(j.Transactions) > 0 {
		fmt.Fprintln(out)
	}
	for _, v := range j.Verifications {
		fmt.Fprintf(out, "%s %s %s %s\n", verifyKeyword, v.Date, v.Account, v.Amount)
	}
	return out.Flush()
}
