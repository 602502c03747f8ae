package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

// registerCmd holds the flags for the 'register' subcommand.
type registerCmd struct {
	dates
	account string
	related bool
	reverse bool
	md      bool
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "print the postings of an account" }
func (*registerCmd) Usage() string {
	return `ledger register -account <account> [-first <date>] [-last <date>] [-related] [-reverse] [-md]

  Prints every posting to the account, or to its sub-accounts, with the
  running balance of the account.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "account to report, required")
	f.StringVar(&c.first, "first", "", "do not print postings before this date. See the user manual for supported date formats.")
	f.StringVar(&c.last, "last", "", "do not print postings after this date")
	f.BoolVar(&c.related, "related", false, "also print the other postings of each transaction")
	f.BoolVar(&c.reverse, "reverse", false, "print the latest postings first")
	f.BoolVar(&c.md, "md", false, "render the register as markdown")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(stderr, "Error: -account is required")
		return subcommands.ExitUsageError
	}
	if err := ledger.ValidateAccount(c.account); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	j, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	_, first, last, err := c.parse()
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	rows, err := ledger.Register(j.Transactions, ledger.RegisterOptions{
		Account:        c.account,
		First:          first,
		Last:           last,
		IncludeRelated: c.related,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error computing register: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.md {
		printMarkdown(renderer.RegisterMarkdown(c.account, rows, c.reverse))
		return subcommands.ExitSuccess
	}
	printLines(ledger.RegisterLines(rows, c.reverse))
	return subcommands.ExitSuccess
}
