package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/holdings"
	"github.com/etnz/holdings/date"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// appendTransaction validates a transaction against the ledger and appends it
// to the ledger file.
func appendTransaction(tx holdings.Transaction) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	tx = ledger.Transactions()[ledger.Len()-1] // with quick fixes applied

	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(config.Ledger, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", config.Ledger, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := holdings.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", config.Ledger, err)
		return subcommands.ExitFailure
	}
	logger.Info().Str("id", tx.ID).Str("asset", tx.Asset.String()).Msg("transaction recorded")
	return subcommands.ExitSuccess
}

// tradeFlags are the flags shared by buy and sell.
type tradeFlags struct {
	date     string
	symbol   string
	category string
	quantity string
	price    string
	fees     string
	currency string
	memo     string
}

func (c *tradeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trade date (YYYY-MM-DD), today by default")
	f.StringVar(&c.symbol, "s", "", "Asset symbol")
	f.StringVar(&c.category, "c", "", "Asset category (crypto, stocks, cs2)")
	f.StringVar(&c.quantity, "q", "", "Quantity traded")
	f.StringVar(&c.price, "p", "", "Unit price")
	f.StringVar(&c.fees, "f", "0", "Fees paid")
	f.StringVar(&c.currency, "cur", "EUR", "Currency of the price and fees")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

// transaction builds the transaction from the flags.
func (c *tradeFlags) transaction(t holdings.TxType) (holdings.Transaction, error) {
	if c.symbol == "" || c.category == "" || c.quantity == "" || c.price == "" {
		return holdings.Transaction{}, fmt.Errorf("-s, -c, -q and -p are required")
	}
	on := date.Of(now())
	if c.date != "" {
		var err error
		if on, err = date.Parse(c.date); err != nil {
			return holdings.Transaction{}, err
		}
	}
	cat, err := holdings.ParseCategory(c.category)
	if err != nil {
		return holdings.Transaction{}, err
	}
	cur, err := holdings.ParseCurrency(c.currency)
	if err != nil {
		return holdings.Transaction{}, err
	}
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		return holdings.Transaction{}, fmt.Errorf("invalid quantity %q: %w", c.quantity, err)
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		return holdings.Transaction{}, fmt.Errorf("invalid price %q: %w", c.price, err)
	}
	fees, err := decimal.NewFromString(c.fees)
	if err != nil {
		return holdings.Transaction{}, fmt.Errorf("invalid fees %q: %w", c.fees, err)
	}

	asset := holdings.Asset{Symbol: c.symbol, Category: cat}
	var tx holdings.Transaction
	if t == holdings.Sell {
		tx = holdings.NewSell(on, asset, holdings.Q(quantity), holdings.A(price), holdings.A(fees), cur)
	} else {
		tx = holdings.NewBuy(on, asset, holdings.Q(quantity), holdings.A(price), holdings.A(fees), cur)
	}
	return tx.WithID(uuid.NewString()).WithTimestamp(now()).WithMemo(c.memo), nil
}

func (c *tradeFlags) execute(f *flag.FlagSet, t holdings.TxType) subcommands.ExitStatus {
	tx, err := c.transaction(t)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	return appendTransaction(tx)
}

// --- Buy Command ---

type buyCmd struct{ tradeFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of an asset" }
func (*buyCmd) Usage() string {
	return `hld buy -s <symbol> -c <category> -q <quantity> -p <price> [-f <fees>] [-cur <currency>] [-d <date>] [-m <memo>]

  Records a purchase in the ledger. The total cost is quantity times price.
`
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(f, holdings.Buy)
}

// --- Sell Command ---

type sellCmd struct{ tradeFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of an asset" }
func (*sellCmd) Usage() string {
	return `hld sell -s <symbol> -c <category> -q <quantity> -p <price> [-f <fees>] [-cur <currency>] [-d <date>] [-m <memo>]

  Records a sale in the ledger. Selling more than held is rejected.
  A sale reduces the quantity held but not the average purchase price.
`
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(f, holdings.Sell)
}
