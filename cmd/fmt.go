package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `hld fmt

  Validates and formats the ledger file. This command reads all transactions,
  validates them in order, applies available quick fixes (missing total cost,
  currency or trade date), and writes them back in a canonical JSONL format.
  The order of the transactions is preserved. Nothing is written if any
  transaction is invalid.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	formatted := holdings.NewLedger()
	if err := formatted.Append(ledger.Transactions()...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeLedger(formatted); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Info().Int("transactions", formatted.Len()).Str("ledger", config.Ledger).Msg("ledger formatted")
	return subcommands.ExitSuccess
}
