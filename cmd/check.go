package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the journal" }
func (*checkCmd) Usage() string {
	return `ledger check

  Reads the journal, runs its balance verifications, and checks that the
  transactions are in date order and balanced.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	postings := 0
	for _, tx := range j.Transactions {
		postings += len(tx.Postings)
	}
	fmt.Fprintf(stdout, "%d transactions, %d postings, %d verifications: OK\n", len(j.Transactions), postings, len(j.Verifications))
	return subcommands.ExitSuccess
}
