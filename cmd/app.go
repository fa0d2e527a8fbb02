// Package cmd implements the hld command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/holdings"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile  = flag.String("config", "hld.yaml", "Path to the YAML configuration file")
	ledgerFile  = flag.String("ledger-file", "", "Path to the ledger file containing transactions (JSONL format)")
	quotesFile  = flag.String("quotes-file", "", "Path to the JSON document holding the current prices")
	financeFile = flag.String("finance-file", "", "Path to the YAML file describing cash, debts, incomes and fixed costs")
	currency    = flag.String("currency", "", "Currency used to display amounts (EUR or USD)")
	Verbose     = flag.Bool("v", false, "Enable verbose logging")
)

// stdout is where the commands print their reports.
var stdout io.Writer = os.Stdout

// logger is the CLI logger, configured by Setup.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

type group struct {
	name     string
	commands []subcommands.Command
}

var groups = []group{
	{"transactions", []subcommands.Command{&buyCmd{}, &sellCmd{}, &txCmd{}, &fmtCmd{}}},
	{"reports", []subcommands.Command{&holdingCmd{}, &analyzeCmd{}, &metricsCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// Commands returns every command of the application.
func Commands() []subcommands.Command {
	var res []subcommands.Command
	for _, g := range groups {
		res = append(res, g.commands...)
	}
	return res
}

// now returns the current time, or the time in HLD_TESTING_NOW if set.
func now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		if t, err := time.Parse(time.DateTime, v); err == nil {
			return t.UTC()
		}
	}
	return time.Now()
}

// homeCurrency returns the configured display currency.
func homeCurrency() holdings.Currency {
	cur, err := holdings.ParseCurrency(config.Currency)
	if err != nil {
		logger.Warn().Str("currency", config.Currency).Msg("unknown currency, using EUR")
		return holdings.EUR
	}
	return cur
}

// DecodeLedger reads the configured ledger file. A missing file is an empty ledger.
func DecodeLedger() (*holdings.Ledger, error) {
	f, err := os.Open(config.Ledger)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Str("ledger", config.Ledger).Msg("ledger does not exist, starting from an empty one")
		return holdings.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", config.Ledger, err)
	}
	defer f.Close()
	ledger, err := holdings.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ledger %q: %w", config.Ledger, err)
	}
	return ledger, nil
}

// EncodeLedger replaces the content of the configured ledger file.
func EncodeLedger(ledger *holdings.Ledger) error {
	f, err := os.Create(config.Ledger)
	if err != nil {
		return fmt.Errorf("cannot create ledger %q: %w", config.Ledger, err)
	}
	if err := holdings.EncodeLedger(f, ledger); err != nil {
		f.Close()
		return fmt.Errorf("cannot write ledger %q: %w", config.Ledger, err)
	}
	return f.Close()
}

// renderMarkdown turns markdown into styled terminal output.
var renderMarkdown = func(md string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// printMarkdown renders markdown for the terminal, or prints it as is when
// it cannot be rendered.
func printMarkdown(md string) {
	out, err := renderMarkdown(md)
	if err != nil {
		logger.Debug().Err(err).Msg("cannot render markdown")
		out = md
	}
	fmt.Fprint(stdout, out)
}
