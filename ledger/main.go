// Command ledger reports on a plain-text double-entry journal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ledger/cmd"
	"github.com/etnz/ledger/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Shell completion runs, and exits, when the shell asks for it.
	completion(commander).Complete(name)

	flag.Parse()
	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a subcommand of commander.
func registered(commander *subcommands.Commander, name string) (found bool) {
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}

// completion describes the command line for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	journal := predict.Files("*")
	dates := predict.Set{"0d", "-1d", "-1w", "-1m", "-1q", "-1y"}

	topics, _ := docs.GetAllTopics()
	sub := map[string]*complete.Command{
		"check": {},
		"accounts": {Flags: map[string]complete.Predictor{
			"first":                dates,
			"last":                 dates,
			"ignore-outside-dates": predict.Nothing,
			"md":                   predict.Nothing,
		}},
		"balances": {Flags: map[string]complete.Predictor{
			"as-at":                dates,
			"first":                dates,
			"last":                 dates,
			"ignore-outside-dates": predict.Nothing,
			"stars":                predict.Nothing,
			"md":                   predict.Nothing,
			"json":                 predict.Nothing,
			"select":               predict.Something,
		}},
		"register": {Flags: map[string]complete.Predictor{
			"account": predict.Something,
			"first":   dates,
			"last":    dates,
			"related": predict.Nothing,
			"reverse": predict.Nothing,
			"md":      predict.Nothing,
		}},
		"print": {Flags: map[string]complete.Predictor{
			"first": dates,
			"last":  dates,
			"json":  predict.Nothing,
		}},
		"topic": {Args: predict.Set(append(topics, "readme", "*"))},
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if _, ok := sub[c.Name()]; !ok { // help, flags and commands
			sub[c.Name()] = &complete.Command{}
		}
	})

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"config":                      predict.Files("*.yaml"),
			"journal":                     journal,
			"unit":                        predict.Set{"AUD", "USD", "EUR", "GBP", "NZD"},
			"adjust-signs":                predict.Nothing,
			"v":                           predict.Nothing,
			"ignore-verification-failure": predict.Nothing,
			"show-verifications":          predict.Nothing,
		},
	}
}
