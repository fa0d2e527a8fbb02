package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/finance"
	"github.com/etnz/holdings/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

type metricsCmd struct{}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "compose the portfolio with the household finances" }
func (*metricsCmd) Usage() string {
	return `hld metrics

  Merges the current value of the portfolio with the cash, debts, incomes and
  fixed costs of the finance file into the net worth, savings rate, cash
  runway, debt to income and investment ratios.
  Without a finance file only the net worth is reported, equal to the
  portfolio value.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {}

func (c *metricsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	assets, err := portfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	data, ok, err := loadFinance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rate, err := loadRate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var calc holdings.FinancialCalculator
	if ok {
		calc = finance.Calculator{}
	}
	home := homeCurrency()
	composer := holdings.NewComposer(calc, holdings.WithHomeCurrency(home), holdings.WithLogger(*zerolog.Ctx(ctx)))
	m := composer.Compose(holdings.Inputs{
		Data:            data,
		InvestmentTotal: holdings.Summarize(assets).Total.Value,
		ExchangeRate:    rate,
	})
	printMarkdown(renderer.MetricsMarkdown(m, home))
	return subcommands.ExitSuccess
}
