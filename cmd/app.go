// Package cmd implements the CLI application to report on a double-entry journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ledger"
	"github.com/etnz/ledger/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&checkCmd{}, "journal")
	c.Register(&printCmd{}, "journal")

	c.Register(&accountsCmd{}, "reports")
	c.Register(&balancesCmd{}, "reports")
	c.Register(&registerCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile  = flag.String("config", DefaultConfigFile, "Path to the YAML configuration file")
	journalFile = flag.String("journal", "", "Path to the journal file (default from config, or journal.txt)")
	unit        = flag.String("unit", "", "Unit of account of the journal amounts (default from config, or AUD)")
	adjustSigns = flag.Bool("adjust-signs", false, "negate amounts read for equity, liabilities and income accounts")
	verbose     = flag.Bool("v", false, "print extra information while running")

	ignoreVerificationFailure = flag.Bool("ignore-verification-failure", false, "do not exit if a verify-balance test fails")
	showVerifications         = flag.Bool("show-verifications", false, "print details of balance verifications")
)

// output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// settings returns the configuration with the global flags applied.
func settings() (Config, error) {
	c, err := LoadConfig(*configFile)
	if err != nil {
		return c, err
	}
	if *journalFile != "" {
		c.Journal = *journalFile
	}
	if *unit != "" {
		c.Unit = strings.ToUpper(*unit)
	}
	if *adjustSigns {
		c.AdjustSigns = true
	}
	if *ignoreVerificationFailure {
		c.Strict = false
	}
	if *verbose {
		c.LogLevel = "debug"
	}
	return c, c.Validate()
}

// DecodeJournal reads the configured journal file.
func DecodeJournal(c Config) (*ledger.Journal, error) {
	f, err := os.Open(c.Journal)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	j, err := ledger.DecodeJournal(f, ledger.DecodeOptions{Unit: c.Unit, AdjustSigns: c.AdjustSigns})
	if err != nil {
		return nil, fmt.Errorf("%s:%w", c.Journal, err)
	}
	slog.Debug("journal decoded", "file", c.Journal, "transactions", len(j.Transactions), "verifications", len(j.Verifications))
	return j, nil
}

// Validate checks the balance verifications, then the transactions order and balance.
//
// Each verification failure is printed. They are fatal only in strict mode.
func Validate(c Config, j *ledger.Journal) error {
	_, results, err := ledger.Verify(j.Transactions, j.Verifications)
	if err != nil {
		return err
	}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintln(stderr, r.Err)
			continue
		}
		if *showVerifications || *verbose {
			fmt.Fprintln(stdout, "Verified:", r.Date, r.Account, r.Amount)
		}
	}
	slog.Debug("balances verified", "verifications", len(results), "failed", failed)
	if failed > 0 && c.Strict {
		return errors.New("verify balance operation failed")
	}

	return errors.Join(
		ledger.EnsureDateSorted(j.Transactions),
		ledger.EnsureBalanced(j.Transactions),
	)
}

// load is the common prologue of the reporting subcommands: it reads and
// validates the journal, printing any error.
func load() (*ledger.Journal, subcommands.ExitStatus) {
	c, err := settings()
	if err != nil {
		fmt.Fprintf(stderr, "Error in configuration: %v\n", err)
		return nil, subcommands.ExitUsageError
	}
	InitLogger(c.LogLevel)

	j, err := DecodeJournal(c)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading journal: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	if err := Validate(c, j); err != nil {
		fmt.Fprintf(stderr, "%v\nExiting.\n", err)
		return nil, subcommands.ExitFailure
	}
	return j, subcommands.ExitSuccess
}

// dates holds the date flags shared by the reports.
type dates struct {
	asAt, first, last string
	ignoreOutside     bool
	quiet             bool // no comment lines, for machine-readable output
}

// parse converts the date flags and prints them as comments.
func (d dates) parse() (asAt, first, last date.Date, err error) {
	for _, f := range []struct {
		label string
		value string
		dst   *date.Date
	}{
		{"As at", d.asAt, &asAt},
		{"First date", d.first, &first},
		{"Last date", d.last, &last},
	} {
		if f.value == "" {
			continue
		}
		if *f.dst, err = date.ParseRelative(f.value); err != nil {
			return asAt, first, last, fmt.Errorf("invalid %s: %w", strings.ToLower(f.label), err)
		}
		if !d.quiet {
			fmt.Fprintf(stdout, "# %s: %s\n", f.label, *f.dst)
		}
	}
	return asAt, first, last, nil
}

// filter drops the transactions outside [first, last] if asked to.
func (d dates) filter(txs []*ledger.Transaction, first, last date.Date) []*ledger.Transaction {
	if !d.ignoreOutside {
		return txs
	}
	if !d.quiet {
		fmt.Fprintln(stdout, "# Ignoring transactions earlier/later than specified dates.")
	}
	return ledger.Filter(txs, ledger.InRange(date.Range{From: first, To: last}))
}

// printLines prints report lines.
func printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(stdout, line)
	}
}

// printMarkdown renders markdown for the terminal, or prints it raw when it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		slog.Debug("cannot render markdown", "error", err)
		out = md
	}
	fmt.Fprint(stdout, out)
}
