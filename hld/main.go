// Command hld records trades and reports the holdings rebuilt from them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

const name = "hld"

// completion describes the command line for shell completion.
func completion() *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"config":       predict.Files("*.yaml"),
			"ledger-file":  predict.Files("*.jsonl"),
			"quotes-file":  predict.Files("*.json"),
			"finance-file": predict.Files("*.yaml"),
			"currency":     predict.Set{"EUR", "USD"},
			"v":            predict.Nothing,
		},
	}
	for _, c := range cmd.Commands() {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			switch f.Name {
			case "c":
				sub.Flags[f.Name] = predict.Set{"crypto", "stocks", "cs2"}
			case "cur":
				sub.Flags[f.Name] = predict.Set{"EUR", "USD"}
			default:
				sub.Flags[f.Name] = predict.Something
			}
		})
		root.Sub[c.Name()] = sub
	}
	return root
}

func main() {
	// exits here when invoked by the shell for completion.
	completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	ctx, err := cmd.Setup(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	if args := flag.Args(); len(args) > 0 && !registered(args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}

// registered reports whether name is a builtin command.
func registered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}
