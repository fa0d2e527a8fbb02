package holdings

import (
	"iter"
	"time"
)

// Holding is the aggregate of every transaction recorded for one asset.
//
// Holdings are rebuilt from scratch on every reconstruction and never
// persisted.
type Holding struct {
	Asset         Asset
	TotalQuantity Quantity      // buys add, sells subtract
	TotalCost     Amount        // accumulated from buys only
	TotalFees     Amount        // accumulated from buys only
	Transactions  []Transaction // contributing transactions, in log order
}

// Closed reports whether the holding quantity is within Epsilon of zero.
func (h Holding) Closed() bool { return h.TotalQuantity.Closed() }

// AveragePrice returns the weighted average unit price of the buy legs.
//
// Sells do not change it: buying 1 at 10000 and 1 at 20000 then selling 1
// leaves an average price of 15000.
func (h Holding) AveragePrice() Amount {
	var quantity Quantity
	var cost Amount
	for _, tx := range h.Transactions {
		if tx.Type != Buy {
			continue
		}
		quantity = quantity.Add(tx.Quantity)
		cost = cost.Add(tx.Price.Mul(tx.Quantity))
	}
	if quantity.IsZero() {
		return Amount{}
	}
	return cost.Div(quantity)
}

// PurchaseDate returns the earliest trade time among the buy legs. On equal
// dates the first one in log order wins.
func (h Holding) PurchaseDate() time.Time {
	var first time.Time
	found := false
	for _, tx := range h.Transactions {
		if tx.Type != Buy {
			continue
		}
		on := tx.TradeTime()
		if !found || on.Before(first) {
			first, found = on, true
		}
	}
	return first
}

// Position is a holding still open, as exposed for pricing and display.
type Position struct {
	Symbol        string
	Category      Category
	Amount        Quantity
	PurchasePrice Amount    // weighted average of the buy legs
	PurchaseDate  time.Time // earliest buy
	Fees          Amount    // fees of the buy legs
	CurrentPrice  Amount    // zero until enriched
	Trades        int       // number of contributing transactions
}

// Bucket returns the display bucket of the position.
func (p Position) Bucket() Bucket { return p.Category.Bucket() }

// Asset returns the key of the position.
func (p Position) Asset() Asset { return Asset{Symbol: p.Symbol, Category: p.Category} }

// Position materializes the holding.
func (h Holding) Position() Position {
	return Position{
		Symbol:        h.Asset.Symbol,
		Category:      h.Asset.Category,
		Amount:        h.TotalQuantity,
		PurchasePrice: h.AveragePrice(),
		PurchaseDate:  h.PurchaseDate(),
		Fees:          h.TotalFees,
		Trades:        len(h.Transactions),
	}
}

// Positions are the open positions grouped by bucket.
type Positions struct {
	Crypto []Position
	Stocks []Position
	Skins  []Position
}

// Bucket returns the positions of a bucket.
func (ps Positions) Bucket(b Bucket) []Position {
	switch b {
	case CryptoBucket:
		return ps.Crypto
	case StocksBucket:
		return ps.Stocks
	case Skins:
		return ps.Skins
	}
	return nil
}

// Len returns the total number of positions.
func (ps Positions) Len() int { return len(ps.Crypto) + len(ps.Stocks) + len(ps.Skins) }

// All iterates over every position, bucket by bucket in display order.
func (ps Positions) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, b := range Buckets {
			for _, p := range ps.Bucket(b) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

func (ps *Positions) add(p Position) {
	switch p.Bucket() {
	case CryptoBucket:
		ps.Crypto = append(ps.Crypto, p)
	case StocksBucket:
		ps.Stocks = append(ps.Stocks, p)
	case Skins:
		ps.Skins = append(ps.Skins, p)
	}
}

// Holdings folds transactions into one Holding per asset, including closed
// ones, in order of first appearance in the log.
func Holdings(txs []Transaction) []Holding {
	index := make(map[Asset]int)
	var holdings []Holding
	for _, tx := range txs {
		i, ok := index[tx.Asset]
		if !ok {
			i = len(holdings)
			index[tx.Asset] = i
			holdings = append(holdings, Holding{Asset: tx.Asset})
		}
		h := &holdings[i]
		switch tx.Type {
		case Buy:
			h.TotalQuantity = h.TotalQuantity.Add(tx.Quantity)
			h.TotalCost = h.TotalCost.Add(tx.TotalCost)
			h.TotalFees = h.TotalFees.Add(tx.Fees)
		case Sell:
			// cost and fees are left untouched by sells.
			h.TotalQuantity = h.TotalQuantity.Sub(tx.Quantity)
		}
		h.Transactions = append(h.Transactions, tx)
	}
	return holdings
}

// Reconstruct rebuilds the open positions from the transaction log.
//
// It is a pure fold: calling it twice with the same log gives the same
// positions. Holdings whose quantity is within Epsilon of zero are dropped.
func Reconstruct(txs []Transaction) Positions {
	var ps Positions
	for _, h := range Holdings(txs) {
		if h.Closed() {
			continue
		}
		ps.add(h.Position())
	}
	return ps
}
