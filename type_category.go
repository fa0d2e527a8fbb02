package holdings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownCurrency    = errors.New("unknown currency")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// Category is the asset class recorded in the ledger.
type Category string

const (
	Crypto Category = "crypto"
	Stocks Category = "stocks"
	CS2    Category = "cs2"
)

// Categories lists the recorded asset classes.
var Categories = []Category{Crypto, Stocks, CS2}

// ParseCategory parses a category name, case insensitive.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case Crypto, Stocks, CS2:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Bucket returns the bucket under which positions of this category are displayed.
func (c Category) Bucket() Bucket {
	if c == CS2 {
		return Skins
	}
	return Bucket(c)
}

// Bucket is the externally visible grouping of positions.
type Bucket string

const (
	CryptoBucket Bucket = "crypto"
	StocksBucket Bucket = "stocks"
	Skins        Bucket = "skins"
)

// Buckets lists the buckets in display order.
var Buckets = []Bucket{CryptoBucket, StocksBucket, Skins}

// Currency is the currency a transaction is recorded in.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
)

// ParseCurrency parses a currency code, case insensitive.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case EUR, USD:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
}
