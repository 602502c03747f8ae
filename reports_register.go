package ledger

import (
	"slices"

	"github.com/etnz/ledger/date"
)

// RegisterOptions select the register to compute.
type RegisterOptions struct {
	Account     string
	First, Last date.Date // rows outside [First, Last] are not reported, zero dates are open
	// IncludeRelated also lists the other postings of the reported transactions.
	IncludeRelated bool
}

// RegisterRow is one posting of a register.
type RegisterRow struct {
	Date        date.Date // zero but on the transaction's first row
	Description string    // empty but on the transaction's first row
	Balance     Amount    // running balance of the account after the posting
	Amount      Amount
	Account     string
	Related     bool // the posting does not affect the account, Balance is meaningless
}

// Cells returns the row's text columns: date, balance, amount, account and description.
func (r RegisterRow) Cells() []string {
	var on, balance string
	if !r.Date.IsZero() {
		on = r.Date.String()
	}
	if !r.Related {
		balance = r.Balance.String()
	}
	return []string{on, balance, r.Amount.String(), r.Account, r.Description}
}

// Register lists the postings affecting an account, or its sub-accounts, with
// the account's running balance.
func Register(txs []*Transaction, opts RegisterOptions) ([]RegisterRow, error) {
	if _, err := NewTree(txs).Find(opts.Account); err != nil {
		return nil, err
	}
	txs = Filter(txs, Affecting(opts.Account))
	tree := NewTree(txs)
	account, err := tree.Find(opts.Account)
	if err != nil {
		return nil, err
	}
	period := date.Range{From: opts.First, To: opts.Last}

	var rows []RegisterRow
	for _, tx := range txs {
		reported := period.Contains(tx.Date)
		first := true
		emit := func(row RegisterRow) {
			if first {
				row.Date, row.Description = tx.Date, tx.Description
				first = false
			}
			rows = append(rows, row)
		}
		for i := range tx.Postings {
			p := &tx.Postings[i]
			if !p.Affects(opts.Account) {
				if reported && opts.IncludeRelated {
					emit(RegisterRow{Amount: p.Amount, Account: p.Account, Related: true})
				}
				continue
			}
			if err := tree.Book(p); err != nil {
				return nil, err
			}
			if !reported {
				continue
			}
			balance, err := account.Balance()
			if err != nil {
				return nil, err
			}
			emit(RegisterRow{Balance: balance, Amount: p.Amount, Account: p.Account})
		}
	}
	return rows, nil
}

// RegisterLines formats rows as justified, tab separated, text lines. With
// reverse the latest posting comes first.
func RegisterLines(rows []RegisterRow, reverse bool) []string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Cells()
	}
	lines := JoinColumns(JustifyColumns(cells, "RRRLL"), "\t")
	if reverse {
		slices.Reverse(lines)
	}
	return lines
}
