package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/finance"
	"github.com/etnz/holdings/quotes"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// loadQuotes reads the configured prices. Without a quote source every
// position is valued at its purchase price.
func loadQuotes(ctx context.Context) (holdings.Quotes, error) {
	src := config.Quotes
	if src.File == "" {
		zerolog.Ctx(ctx).Warn().Msg("no quotes file configured, positions are valued at their purchase price")
		return holdings.Quotes{}, nil
	}
	r, err := os.Open(src.File)
	if err != nil {
		return nil, fmt.Errorf("cannot open quotes: %w", err)
	}
	defer r.Close()
	q, err := quotes.Load(r, src.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot load quotes %q: %w", src.File, err)
	}
	return q, nil
}

// loadRate reads the exchange rate from its source if any, or from the
// configuration.
func loadRate() (decimal.Decimal, error) {
	src := config.Rate
	if src.File == "" {
		return decimal.NewFromFloat(config.ExchangeRate), nil
	}
	r, err := os.Open(src.File)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot open exchange rate: %w", err)
	}
	defer r.Close()
	return quotes.LoadRate(r, src.Path)
}

// loadFinance reads the household finances. ok is false when none is configured.
func loadFinance() (data holdings.FinancialData, ok bool, err error) {
	if config.Finance == "" {
		return data, false, nil
	}
	f, err := os.Open(config.Finance)
	if err != nil {
		return data, false, fmt.Errorf("cannot open financial data %q: %w", config.Finance, err)
	}
	defer f.Close()
	data, err = finance.Decode(f)
	if err != nil {
		return data, false, fmt.Errorf("%q: %w", config.Finance, err)
	}
	return data, true, nil
}

// portfolio rebuilds the valued positions from the ledger and the quotes.
func portfolio(ctx context.Context) ([]holdings.EnrichedAsset, error) {
	ledger, err := DecodeLedger()
	if err != nil {
		return nil, err
	}
	prices, err := loadQuotes(ctx)
	if err != nil {
		return nil, err
	}
	positions := holdings.Reconstruct(ledger.Transactions())
	return holdings.EnrichAll(positions, prices, now()), nil
}
