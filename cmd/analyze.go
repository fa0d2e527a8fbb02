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

type analyzeCmd struct {
	limit int
}

func (*analyzeCmd) Name() string { return "analyze" }
func (*analyzeCmd) Synopsis() string {
	return "analyze the diversification, risk and health of the portfolio"
}
func (*analyzeCmd) Usage() string {
	return `hld analyze [-n <limit>]

  Computes the portfolio totals per bucket, the best and worst performers,
  the diversification score, the risk level and the health rating.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", holdings.DefaultPerformersLimit, "Number of top and worst performers to show")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets, err := portfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AnalysisMarkdown(holdings.Analyze(assets, c.limit), homeCurrency()))
	return subcommands.ExitSuccess
}
