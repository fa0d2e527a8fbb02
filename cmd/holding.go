package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
)

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	all bool
}

func (*holdingCmd) Name() string { return "holding" }
func (*holdingCmd) Synopsis() string {
	return "display the open positions valued at the current prices"
}
func (*holdingCmd) Usage() string {
	return `hld holding [-all]

  Rebuilds the positions from the ledger and values them with the quotes.
  Positions are grouped by bucket: crypto, stocks and skins.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "list every holding of the ledger with its raw totals, closed ones included")
}

func (c *holdingCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.all {
		ledger, err := DecodeLedger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.HoldingsMarkdown(holdings.Holdings(ledger.Transactions()), homeCurrency()))
		return subcommands.ExitSuccess
	}

	assets, err := portfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PositionsMarkdown(assets, homeCurrency()))
	return subcommands.ExitSuccess
}
