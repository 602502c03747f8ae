package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
)

// ExtensionPrefix prefixes the name of the external subcommands: "ledger foo"
// runs "ledger-foo" when there is no "foo" subcommand.
const ExtensionPrefix = "ledger-"

// RunExtension attempts to find and execute an external ledger-<subcommand>
// binary. The resolved settings are passed in the LEDGER_* environment
// variables, so an extension calling LoadConfig sees the same journal.
//
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("external command not found", "command", name, "error", err)
		return false, 0
	}

	c, err := settings()
	if err != nil {
		fmt.Fprintf(stderr, "Error in configuration: %v\n", err)
		return true, 2
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), c.Environ()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// Environ returns the settings as the LEDGER_* variables read by LoadConfig.
func (c Config) Environ() []string {
	return []string{
		"LEDGER_JOURNAL=" + c.Journal,
		"LEDGER_UNIT=" + c.Unit,
		"LEDGER_ADJUST_SIGNS=" + strconv.FormatBool(c.AdjustSigns),
		"LEDGER_STRICT=" + strconv.FormatBool(c.Strict),
		"LEDGER_LOG_LEVEL=" + c.LogLevel,
	}
}
