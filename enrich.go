package holdings

import (
	"math"
	"strings"
	"time"
)

// PriceLookup resolves the current unit price of a symbol.
type PriceLookup interface {
	Quote(symbol string) (Amount, bool)
}

// PriceFunc adapts a function to a PriceLookup.
type PriceFunc func(symbol string) (Amount, bool)

func (f PriceFunc) Quote(symbol string) (Amount, bool) { return f(symbol) }

// Quotes is a case insensitive price table. Each symbol is stored once,
// under its lower case form.
type Quotes map[string]Amount

// Set records the price of a symbol.
func (q Quotes) Set(symbol string, price Amount) { q[strings.ToLower(symbol)] = price }

// Quote returns the price of a symbol whatever its case.
func (q Quotes) Quote(symbol string) (Amount, bool) {
	p, ok := q[strings.ToLower(symbol)]
	return p, ok
}

// resolvePrice looks the symbol up as is, then lower cased. Non positive
// quotes are ignored.
func resolvePrice(prices PriceLookup, symbol string) (Amount, bool) {
	if prices == nil {
		return Amount{}, false
	}
	for _, s := range []string{symbol, strings.ToLower(symbol)} {
		if p, ok := prices.Quote(s); ok && p.IsPositive() {
			return p, true
		}
	}
	return Amount{}, false
}

// EnrichedAsset is a position valued at the current market price.
type EnrichedAsset struct {
	Position
	Bucket             Bucket
	Priced             bool // false when CurrentPrice fell back to PurchasePrice
	Value              Amount
	Invested           Amount
	Profit             Amount // Value - Invested - Fees
	ProfitPct          Percent
	HoldingDays        int
	PercentOfPortfolio Percent
}

// Enrich values a position with the price found in prices, falling back to the
// purchase price when no quote is available. PercentOfPortfolio is left to zero,
// see EnrichAll.
func Enrich(p Position, prices PriceLookup, now time.Time) EnrichedAsset {
	current, ok := resolvePrice(prices, p.Symbol)
	if !ok {
		current = p.PurchasePrice
	}
	p.CurrentPrice = current

	value := current.Mul(p.Amount)
	invested := p.PurchasePrice.Mul(p.Amount)
	profit := value.Sub(invested).Sub(p.Fees)

	return EnrichedAsset{
		Position:    p,
		Bucket:      p.Bucket(),
		Priced:      ok,
		Value:       value,
		Invested:    invested,
		Profit:      profit,
		ProfitPct:   profit.Ratio(invested),
		HoldingDays: holdingDays(p.PurchaseDate, now),
	}
}

// EnrichAll values every position and computes each asset's share of the
// total portfolio value.
func EnrichAll(ps Positions, prices PriceLookup, now time.Time) []EnrichedAsset {
	assets := make([]EnrichedAsset, 0, ps.Len())
	var total Amount
	for p := range ps.All() {
		a := Enrich(p, prices, now)
		total = total.Add(a.Value)
		assets = append(assets, a)
	}
	for i := range assets {
		assets[i].PercentOfPortfolio = assets[i].Value.Ratio(total)
	}
	return assets
}

// holdingDays returns the number of started days between since and now.
func holdingDays(since, now time.Time) int {
	if since.IsZero() || !now.After(since) {
		return 0
	}
	return int(math.Ceil(now.Sub(since).Hours() / 24))
}
