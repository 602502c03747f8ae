package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

// balancesCmd holds the flags for the 'balances' subcommand.
type balancesCmd struct {
	dates
	stars      bool
	md         bool
	json       bool
	selectPath string
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "print account balances" }
func (*balancesCmd) Usage() string {
	return `ledger balances [-as-at <date> | -first <date> -last <date>] [-stars] [-md | -json [-select <path>]] [<account>...]

  Prints the balance of every account, or of the given accounts and their
  sub-accounts, after the last transaction or as at a date.

  With -first and -last, prints the balances at both dates and the change
  between them.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asAt, "as-at", "", "report the balances at the end of this date. See the user manual for supported date formats.")
	f.StringVar(&c.first, "first", "", "first date of the comparison")
	f.StringVar(&c.last, "last", "", "last date of the comparison")
	f.BoolVar(&c.ignoreOutside, "ignore-outside-dates", false, "ignore the transactions outside [first, last]")
	f.BoolVar(&c.stars, "stars", false, "prefix each line with org-mode stars")
	f.BoolVar(&c.md, "md", false, "render the report as markdown")
	f.BoolVar(&c.json, "json", false, "write the balance tree as JSON")
	f.StringVar(&c.selectPath, "select", "", "JSONPath expression to select part of the JSON output, e.g. '$[0].balance'")
}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	c.quiet = c.json
	asAt, first, last, err := c.parse()
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	accounts := f.Args()
	sheet, err := ledger.NewBalanceSheet(c.filter(j.Transactions, first, last), ledger.BalanceOptions{
		AsAt:     asAt,
		First:    first,
		Last:     last,
		Accounts: accounts,
		Stars:    c.stars,
	})
	if errors.Is(err, ledger.ErrInvalidDateRange) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error computing balances: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.json:
		doc, err := ledger.ExportBalances(sheet.Tree, accounts)
		if err != nil {
			fmt.Fprintf(stderr, "Error exporting balances: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := ledger.EncodeJSON(stdout, doc, c.selectPath); err != nil {
			fmt.Fprintf(stderr, "Error writing JSON: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.md:
		printMarkdown(renderer.BalancesMarkdown(sheet))
	default:
		printLines(sheet.Lines())
	}
	return subcommands.ExitSuccess
}
