package ledger

import (
	"fmt"
	"strings"

	"github.com/etnz/ledger/date"
)

// BalanceOptions select the balance report to compute.
//
// Either AsAt alone (zero meaning after the last transaction), or both First
// and Last to compare balances between two dates.
type BalanceOptions struct {
	AsAt        date.Date
	First, Last date.Date
	Accounts    []string // report only these accounts and their sub-accounts, all if empty
	Stars       bool     // prefix lines with org-mode stars
}

// Ranged reports whether the options ask for a two-date comparison.
func (o BalanceOptions) Ranged() bool { return !o.First.IsZero() || !o.Last.IsZero() }

// Validate checks that the dates form one of the supported combinations.
func (o BalanceOptions) Validate() error {
	switch {
	case !o.AsAt.IsZero() && o.Ranged():
		return fmt.Errorf("%w: as-at date %s given together with first or last date", ErrInvalidDateRange, o.AsAt)
	case o.First.IsZero() != o.Last.IsZero():
		return fmt.Errorf("%w: first and last dates must be given together", ErrInvalidDateRange)
	case o.Ranged() && !o.First.Before(o.Last):
		return fmt.Errorf("%w: first date %s is not before last date %s", ErrInvalidDateRange, o.First, o.Last)
	}
	return nil
}

// BalanceRow is one account of a balance sheet.
type BalanceRow struct {
	AccountLine
	Start   Amount // balance on the first date, ranged sheets only
	Balance Amount // balance on the as-at or last date
	Change  Amount // Balance - Start, ranged sheets only
}

// BalanceSheet is the balance of each account at a date, or at two dates.
type BalanceSheet struct {
	BalanceOptions
	Rows []BalanceRow
	Tree *Tree // the accounts booked up to the as-at or last date
}

// NewBalanceSheet computes the balances of txs' accounts.
func NewBalanceSheet(txs []*Transaction, opts BalanceOptions) (*BalanceSheet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if !opts.Ranged() {
		txs = Filter(txs, InRange(date.Range{To: opts.AsAt}))
		tree, err := CalculateBalances(txs, opts.AsAt)
		if err != nil {
			return nil, err
		}
		lines, err := selectLines(tree, opts.Accounts)
		if err != nil {
			return nil, err
		}
		sheet := &BalanceSheet{BalanceOptions: opts, Tree: tree}
		for _, l := range lines {
			balance, err := l.Node.Balance()
			if err != nil {
				return nil, err
			}
			sheet.Rows = append(sheet.Rows, BalanceRow{AccountLine: l, Balance: balance})
		}
		return sheet, nil
	}

	txs = Filter(txs, InRange(date.Range{To: opts.Last}))
	firstTree, err := CalculateBalances(txs, opts.First)
	if err != nil {
		return nil, err
	}
	lastTree, err := CalculateBalances(txs, opts.Last)
	if err != nil {
		return nil, err
	}
	firstLines, err := selectLines(firstTree, opts.Accounts)
	if err != nil {
		return nil, err
	}
	lastLines, err := selectLines(lastTree, opts.Accounts)
	if err != nil {
		return nil, err
	}
	if len(firstLines) != len(lastLines) {
		return nil, fmt.Errorf("%w: %d accounts on %s and %d on %s", ErrReportMisaligned, len(firstLines), opts.First, len(lastLines), opts.Last)
	}

	sheet := &BalanceSheet{BalanceOptions: opts, Tree: lastTree}
	for i, first := range firstLines {
		last := lastLines[i]
		if first.Depth != last.Depth || first.Name != last.Name {
			return nil, fmt.Errorf("%w: %q on %s and %q on %s", ErrReportMisaligned, first.Indented(), opts.First, last.Indented(), opts.Last)
		}
		start, err := first.Node.Balance()
		if err != nil {
			return nil, err
		}
		balance, err := last.Node.Balance()
		if err != nil {
			return nil, err
		}
		change, err := Difference(balance, start)
		if err != nil {
			return nil, err
		}
		sheet.Rows = append(sheet.Rows, BalanceRow{AccountLine: last, Start: start, Balance: balance, Change: change})
	}
	return sheet, nil
}

// selectLines returns the display lines of the whole tree, or of the given
// accounts, each prefixed with the original spelling of its ancestors.
func selectLines(tree *Tree, accounts []string) ([]AccountLine, error) {
	if len(accounts) == 0 {
		return AccountLines(tree), nil
	}
	var lines []AccountLine
	for _, account := range accounts {
		nodes, err := tree.path(account)
		if err != nil {
			return nil, err
		}
		var prefix string
		for _, n := range nodes[:len(nodes)-1] {
			prefix += n.Name() + AccountSeparator
		}
		lines = append(lines, collapse(nodes[len(nodes)-1:], prefix, 0)...)
	}
	return lines, nil
}

// Lines formats the sheet as justified text columns.
func (s *BalanceSheet) Lines() []string {
	var rows [][]string
	if s.Ranged() {
		rows = append(rows, s.withStars("", []string{s.First.String(), s.Last.String(), "Change", "Account"}))
	}
	for _, r := range s.Rows {
		var cells []string
		if s.Ranged() {
			cells = []string{r.Start.String(), r.Balance.String(), r.Change.String(), r.Indented()}
		} else {
			cells = []string{r.Balance.String(), r.Indented()}
		}
		rows = append(rows, s.withStars(strings.Repeat("*", r.Depth+1), cells))
	}

	justify := "RL"
	if s.Ranged() {
		justify = "RRRL"
	}
	if s.Stars {
		justify = "L" + justify
	}
	return JoinColumns(JustifyColumns(rows, justify), " ")
}

func (s *BalanceSheet) withStars(stars string, cells []string) []string {
	if !s.Stars {
		return cells
	}
	return append([]string{stars}, cells...)
}

// BalanceReport returns the balance sheet of txs as text lines.
func BalanceReport(txs []*Transaction, opts BalanceOptions) ([]string, error) {
	sheet, err := NewBalanceSheet(txs, opts)
	if err != nil {
		return nil, err
	}
	return sheet.Lines(), nil
}
