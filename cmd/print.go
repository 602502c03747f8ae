package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/date"
	"github.com/google/subcommands"
)

// printCmd holds the flags for the 'print' subcommand.
type printCmd struct {
	dates
	json bool
}

func (*printCmd) Name() string     { return "print" }
func (*printCmd) Synopsis() string { return "print the journal in a normalized layout" }
func (*printCmd) Usage() string {
	return `ledger print [-first <date>] [-last <date>] [-json]

  Prints the transactions, and the balance verifications, of the journal in
  the journal format, with aligned amounts, or as JSON lines.
`
}

func (c *printCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.first, "first", "", "do not print transactions before this date. See the user manual for supported date formats.")
	f.StringVar(&c.last, "last", "", "do not print transactions after this date")
	f.BoolVar(&c.json, "json", false, "print one JSON object per line")
}

func (c *printCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	c.quiet = c.json
	_, first, last, err := c.parse()
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	period := date.Range{From: first, To: last}
	out := &ledger.Journal{Transactions: ledger.Filter(j.Transactions, ledger.InRange(period))}
	for _, v := range j.Verifications {
		if period.Contains(v.Date) {
			out.Verifications = append(out.Verifications, v)
		}
	}
	encode := ledger.EncodeJournal
	if c.json {
		encode = ledger.EncodeJSONL
	}
	if err := encode(stdout, out); err != nil {
		fmt.Fprintf(stderr, "Error writing journal: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
