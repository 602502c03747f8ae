// Package renderer renders the ledger reports as markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/ledger"
	md "github.com/nao1215/markdown"
)

// nbsp indents account names: markdown collapses regular spaces.
const nbsp = "  "

func indented(l ledger.AccountLine) string { return strings.Repeat(nbsp, l.Depth) + l.Name }

// ChartMarkdown renders the chart of accounts as a nested bullet list.
func ChartMarkdown(tree *ledger.Tree) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Chart of Accounts")

	var b strings.Builder
	for _, l := range ledger.AccountLines(tree) {
		fmt.Fprintf(&b, "%s- %s\n", strings.Repeat(ledger.Indent, l.Depth), l.Name)
	}
	doc.PlainText(b.String())
	return doc.String()
}

// BalancesMarkdown renders a balance sheet as a table.
func BalancesMarkdown(s *ledger.BalanceSheet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if s.Ranged() {
		doc.H1(fmt.Sprintf("Balances from %s to %s", s.First, s.Last))
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{s.First.String(), s.Last.String(), "Change", "Account"},
			Rows:   [][]string{},
		}
		for _, r := range s.Rows {
			table.Rows = append(table.Rows, []string{
				r.Start.String(),
				r.Balance.String(),
				r.Change.String(),
				indented(r.AccountLine),
			})
		}
		doc.Table(table)
		return doc.String()
	}

	if s.AsAt.IsZero() {
		doc.H1("Balances")
	} else {
		doc.H1(fmt.Sprintf("Balances as at %s", s.AsAt))
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Balance", "Account"},
		Rows:   [][]string{},
	}
	for _, r := range s.Rows {
		table.Rows = append(table.Rows, []string{
			r.Balance.String(),
			indented(r.AccountLine),
		})
	}
	doc.Table(table)
	return doc.String()
}

// RegisterMarkdown renders the register of account as a table.
func RegisterMarkdown(account string, rows []ledger.RegisterRow, reverse bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Register for %s", account))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Balance", "Amount", "Account", "Description"},
		Rows:   [][]string{},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, r.Cells())
	}
	if reverse {
		for i, j := 0, len(table.Rows)-1; i < j; i, j = i+1, j-1 {
			table.Rows[i], table.Rows[j] = table.Rows[j], table.Rows[i]
		}
	}
	doc.Table(table)
	return doc.String()
}
