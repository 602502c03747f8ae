package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

// accountsCmd holds the flags for the 'accounts' subcommand.
type accountsCmd struct {
	dates
	md bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "print the chart of accounts" }
func (*accountsCmd) Usage() string {
	return `ledger accounts [-first <date>] [-last <date>] [-ignore-outside-dates] [-md]

  Prints the accounts used in the journal as an indented tree. Accounts with a
  single sub-account are printed on one line.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.first, "first", "", "first date of the period. See the user manual for supported date formats.")
	f.StringVar(&c.last, "last", "", "last date of the period")
	f.BoolVar(&c.ignoreOutside, "ignore-outside-dates", false, "ignore the transactions outside the period")
	f.BoolVar(&c.md, "md", false, "render the chart as markdown")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	_, first, last, err := c.parse()
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tree := ledger.NewTree(c.filter(j.Transactions, first, last))
	if c.md {
		printMarkdown(renderer.ChartMarkdown(tree))
		return subcommands.ExitSuccess
	}
	printLines(ledger.ChartOfAccounts(tree))
	return subcommands.ExitSuccess
}
