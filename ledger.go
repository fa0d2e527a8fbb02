package holdings

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/etnz/holdings/date"
)

// Ledger is the append-only transaction store.
//
// Transactions are kept in insertion order and are never re-sorted: the order
// in which they were recorded decides ties when selecting the earliest
// purchase date of a position.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the recorded transactions in insertion order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// All returns an iterator over the recorded transactions in insertion order.
func (l *Ledger) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Append validates and records transactions in order. It stops at the first
// invalid transaction, the ones before it are kept.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		valid, err := l.Validate(tx)
		if err != nil {
			return err
		}
		l.transactions = append(l.transactions, valid)
	}
	return nil
}

// Position returns the quantity currently held for an asset.
func (l *Ledger) Position(asset Asset) Quantity {
	var q Quantity
	for _, tx := range l.transactions {
		if tx.Asset != asset {
			continue
		}
		switch tx.Type {
		case Buy:
			q = q.Add(tx.Quantity)
		case Sell:
			q = q.Sub(tx.Quantity)
		}
	}
	return q
}

// Validate checks a transaction before it is admitted in the ledger and
// applies quick fixes where applicable (missing total cost, missing currency,
// missing trade date). It returns the fixed transaction or an error listing
// every validation failure.
func (l *Ledger) Validate(tx Transaction) (Transaction, error) {
	var errs []error

	if tx.TotalCost.IsZero() {
		tx.TotalCost = tx.Price.Mul(tx.Quantity)
	}
	if tx.Currency == "" {
		tx.Currency = EUR
	}
	if tx.Date.IsZero() && !tx.Timestamp.IsZero() {
		tx.Date = date.Of(tx.Timestamp)
	}

	if strings.TrimSpace(tx.Asset.Symbol) == "" {
		errs = append(errs, errors.New("symbol is missing"))
	}
	if _, err := ParseCategory(string(tx.Asset.Category)); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseCurrency(string(tx.Currency)); err != nil {
		errs = append(errs, err)
	}
	if tx.Date.IsZero() {
		errs = append(errs, errors.New("trade date is missing"))
	}
	if !tx.Quantity.IsPositive() {
		errs = append(errs, fmt.Errorf("quantity must be positive, got %s", tx.Quantity))
	}
	if !tx.Price.IsPositive() {
		errs = append(errs, fmt.Errorf("price must be positive, got %s", tx.Price))
	}
	if tx.Fees.IsNegative() {
		errs = append(errs, fmt.Errorf("fees must not be negative, got %s", tx.Fees))
	}
	if !tx.TotalCost.Equal(tx.Price.Mul(tx.Quantity)) {
		errs = append(errs, fmt.Errorf("total cost %s does not match quantity %s at price %s", tx.TotalCost, tx.Quantity, tx.Price))
	}

	switch tx.Type {
	case Buy:
	case Sell:
		held := l.Position(tx.Asset)
		if tx.Quantity.Sub(held).GreaterThan(Epsilon) {
			errs = append(errs, fmt.Errorf("cannot sell %s %s, only %s held", tx.Quantity, tx.Asset, held))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown type %q", tx.Type))
	}

	if len(errs) > 0 {
		return tx, fmt.Errorf("%w %s: %w", ErrInvalidTransaction, describe(tx), errors.Join(errs...))
	}
	return tx, nil
}

// describe returns a short human description of a transaction for error messages.
func describe(tx Transaction) string {
	if tx.ID != "" {
		return fmt.Sprintf("%s (%s %s)", tx.ID, tx.Type, tx.Asset)
	}
	return fmt.Sprintf("(%s %s on %s)", tx.Type, tx.Asset, tx.Date)
}
